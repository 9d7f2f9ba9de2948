// Package renderer drives the short-form video pipeline: content entries
// plus a style document in, one rendered vertical video and one metadata
// sidecar out per entry. Units render strictly sequentially; the engine
// subprocess saturates the machine on its own and literal-text temp
// resources must not outlive their unit's turn.
package renderer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ZacxDev/shorts-renderer/internal/config"
	ffmpegWrap "github.com/ZacxDev/shorts-renderer/internal/ffmpeg"
	"github.com/ZacxDev/shorts-renderer/internal/font"
	"github.com/ZacxDev/shorts-renderer/internal/graph"
	"github.com/ZacxDev/shorts-renderer/internal/language"
	"github.com/ZacxDev/shorts-renderer/internal/layout"
	"github.com/ZacxDev/shorts-renderer/internal/render"
	"github.com/ZacxDev/shorts-renderer/internal/sidecar"
	"github.com/ZacxDev/shorts-renderer/internal/style"
	"github.com/ZacxDev/shorts-renderer/internal/text"
	"github.com/ZacxDev/shorts-renderer/pkg/types"
)

// Renderer renders batches of content entries.
type Renderer struct {
	opts     *config.RenderOptions
	log      *zap.Logger
	fonts    *font.Resolver
	compiler *graph.Compiler
	invoker  *render.Invoker
}

// New wires the pipeline for the given options.
func New(opts *config.RenderOptions, log *zap.Logger, fontsDir string) *Renderer {
	proc := ffmpegWrap.NewProcessor(log)
	return &Renderer{
		opts:     opts,
		log:      log,
		fonts:    font.NewResolver(fontsDir),
		compiler: graph.NewCompiler(),
		invoker:  render.NewInvoker(proc, log),
	}
}

// LoadContent reads a JSON array of content entries. Processing order is
// input order.
func LoadContent(path string) ([]types.ContentEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read content file")
	}

	var entries []types.ContentEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "failed to parse content file")
	}
	return entries, nil
}

// RenderBatch renders every entry in input order, one at a time. A unit's
// failure stops the batch unless KeepGoing is set, in which case it is
// logged and the remaining units still render.
func (r *Renderer) RenderBatch() error {
	lang, err := language.Get(r.opts.Language)
	if err != nil {
		return err
	}

	entries, err := LoadContent(r.opts.ContentPath)
	if err != nil {
		return err
	}

	var doc *style.Document
	if r.opts.StylePath != "" {
		doc, err = style.Load(r.opts.StylePath)
		if err != nil {
			// A structurally broken style document degrades to the
			// built-in defaults rather than killing the batch.
			r.log.Warn("style document unusable, falling back to defaults", zap.Error(err))
			doc = nil
		}
	}

	cfg := style.Resolve(doc, lang.Code())
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "resolved style is unrenderable")
	}

	fontPath, err := r.fonts.Resolve(lang, cfg.FontPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(r.opts.OutputDir, 0755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	r.log.Info("starting batch",
		zap.Int("entries", len(entries)),
		zap.String("language", lang.Code()),
		zap.String("font", fontPath))

	var failed int
	for i, entry := range entries {
		outputPath := filepath.Join(r.opts.OutputDir, fmt.Sprintf(config.OutputFilePattern, i+1))
		if err := r.RenderOne(entry, lang, cfg, fontPath, outputPath); err != nil {
			if !r.opts.KeepGoing {
				return errors.Wrapf(err, "unit %d failed", i+1)
			}
			failed++
			r.log.Error("unit failed, continuing", zap.Int("unit", i+1), zap.Error(err))
			continue
		}
		r.log.Info("rendered unit", zap.Int("unit", i+1), zap.String("output", outputPath))
	}

	if failed > 0 {
		return errors.Errorf("%d of %d units failed", failed, len(entries))
	}
	return nil
}

// RenderOne renders a single content entry to outputPath and writes its
// sidecar beside it.
func (r *Renderer) RenderOne(entry types.ContentEntry, lang language.Language, cfg style.Config, fontPath, outputPath string) error {
	maxItems := r.opts.MaxItems
	if maxItems <= 0 {
		maxItems = config.DefaultMaxItems
	}
	if len(entry.Items) > maxItems {
		r.log.Warn("truncating item list",
			zap.Int("items", len(entry.Items)),
			zap.Int("cap", maxItems))
	}

	title, itemBlocks, ctaBlocks := BuildLineBlocks(entry, lang, cfg, maxItems)

	geom := layout.ComputeGeometry(cfg)

	g, err := r.compiler.Compile(geom, cfg, fontPath, title, itemBlocks, ctaBlocks)
	if err != nil {
		return err
	}

	duration := r.opts.Duration
	if duration <= 0 {
		duration = config.DefaultDuration
	}

	if err := r.invoker.Invoke(g, r.opts.BackgroundPath, r.opts.AudioPath, duration, outputPath); err != nil {
		return err
	}

	rec := sidecar.Emit(entry, channelDefaults(lang))
	return sidecar.Write(rec, outputPath)
}

// channelDefaults collects the per-language channel boilerplate the sidecar
// merges into every unit's metadata.
func channelDefaults(lang language.Language) sidecar.ChannelDefaults {
	return sidecar.ChannelDefaults{
		TitleSuffix:      lang.TitleSuffix(),
		Description:      lang.DefaultDescription(),
		DescriptionExtra: lang.DefaultDescriptionExtra(),
		Tags:             lang.DefaultTags(),
		TagsExtra:        lang.DefaultTagsExtra(),
	}
}

// BuildLineBlocks normalizes, truncates and wraps one entry into the
// physical display lines the compiler positions. Items beyond maxItems are
// dropped here, at the input-acceptance boundary, so layout never sees
// them. Item indices count physical lines across the whole list, keeping
// vertical advance uniform for wrapped bullets.
func BuildLineBlocks(entry types.ContentEntry, lang language.Language, cfg style.Config, maxItems int) (title, items, cta []types.LineBlock) {
	srcItems := entry.Items
	if maxItems > 0 && len(srcItems) > maxItems {
		srcItems = srcItems[:maxItems]
	}

	bullet := cfg.BulletGlyph
	if bullet == "" {
		bullet = lang.BulletGlyph()
	}

	title = wrapBlocks(types.LineKindTitle, text.Normalize(entry.Title), cfg.TitleWrapChars, lang.WrapMode())

	for _, item := range srcItems {
		lines := text.Wrap(text.Normalize(item), cfg.ItemWrapChars, lang.WrapMode())
		for _, line := range text.FormatItem(lines, bullet) {
			items = append(items, types.LineBlock{
				Kind:  types.LineKindItem,
				Text:  line,
				Index: len(items),
			})
		}
	}

	if s := text.Normalize(entry.CTA); s != "" {
		cta = []types.LineBlock{{Kind: types.LineKindCTA, Text: s}}
	}

	return title, items, cta
}

// wrapBlocks wraps one field into indexed line blocks. An empty field
// yields no blocks: the compiler simply omits those nodes.
func wrapBlocks(kind types.LineKind, s string, limit int, mode types.WrapMode) []types.LineBlock {
	if s == "" {
		return nil
	}
	lines := text.Wrap(s, limit, mode)
	blocks := make([]types.LineBlock, len(lines))
	for i, line := range lines {
		blocks[i] = types.LineBlock{Kind: kind, Text: line, Index: i}
	}
	return blocks
}

// SupportedLanguages returns the registered language codes.
func SupportedLanguages() []string {
	return language.Supported()
}
