package style

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the effective style for one render: the hard-coded defaults
// overlaid with the document's default section, overlaid with the
// language-specific section.
type Config struct {
	CanvasWidth  int
	CanvasHeight int

	MarginX    int
	MarginY    int
	PaddingX   int
	PaddingY   int
	PanelAlpha float64

	TitleSize      int
	ItemSize       int
	CTASize        int
	LineGap        int
	TitleLineGap   int
	TitleBottomGap int
	BulletGlyph    string
	FontPath       string

	TitleWrapChars int
	ItemWrapChars  int
}

// Section mirrors one YAML style section. Every field is optional;
// pointers distinguish "absent" from "set to zero".
type Section struct {
	CanvasWidth  *int `yaml:"canvas_width"`
	CanvasHeight *int `yaml:"canvas_height"`

	MarginX    *int     `yaml:"margin_x"`
	MarginY    *int     `yaml:"margin_y"`
	PaddingX   *int     `yaml:"padding_x"`
	PaddingY   *int     `yaml:"padding_y"`
	PanelAlpha *float64 `yaml:"panel_alpha"`

	TitleSize      *int    `yaml:"title_size"`
	ItemSize       *int    `yaml:"item_size"`
	CTASize        *int    `yaml:"cta_size"`
	LineGap        *int    `yaml:"line_gap"`
	TitleLineGap   *int    `yaml:"title_line_gap"`
	TitleBottomGap *int    `yaml:"title_bottom_gap"`
	BulletGlyph    *string `yaml:"bullet_glyph"`
	FontPath       *string `yaml:"font_path"`

	TitleWrapChars *int `yaml:"title_wrap_chars"`
	ItemWrapChars  *int `yaml:"item_wrap_chars"`
}

// Document is a parsed style file: one default section plus zero or more
// per-language override sections.
type Document struct {
	Default   Section            `yaml:"default"`
	Languages map[string]Section `yaml:"languages"`
}

// Defaults returns the component-level hard-coded style for a 1080x1920
// vertical canvas. Every numeric field has a value here so an empty or
// malformed document still resolves to something renderable.
func Defaults() Config {
	return Config{
		CanvasWidth:  1080,
		CanvasHeight: 1920,

		MarginX:    64,
		MarginY:    210,
		PaddingX:   48,
		PaddingY:   56,
		PanelAlpha: 0.45,

		TitleSize:      72,
		ItemSize:       52,
		CTASize:        44,
		LineGap:        96,
		TitleLineGap:   84,
		TitleBottomGap: 60,
		BulletGlyph:    "•",

		TitleWrapChars: 28,
		ItemWrapChars:  34,
	}
}

// Load reads and parses a YAML style document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read style document")
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse style document")
	}
	return &doc, nil
}

// Resolve merges the document's default section and the language override
// onto the hard-coded defaults. Shallow merge: any key present in the
// language section wins over the default section, which wins over the
// built-ins. The document is not mutated. A nil document resolves to the
// built-in defaults.
func Resolve(doc *Document, language string) Config {
	cfg := Defaults()
	if doc == nil {
		return cfg
	}

	apply(&cfg, doc.Default)
	if override, ok := doc.Languages[language]; ok {
		apply(&cfg, override)
	}
	return cfg
}

func apply(cfg *Config, s Section) {
	if s.CanvasWidth != nil {
		cfg.CanvasWidth = *s.CanvasWidth
	}
	if s.CanvasHeight != nil {
		cfg.CanvasHeight = *s.CanvasHeight
	}
	if s.MarginX != nil {
		cfg.MarginX = *s.MarginX
	}
	if s.MarginY != nil {
		cfg.MarginY = *s.MarginY
	}
	if s.PaddingX != nil {
		cfg.PaddingX = *s.PaddingX
	}
	if s.PaddingY != nil {
		cfg.PaddingY = *s.PaddingY
	}
	if s.PanelAlpha != nil {
		cfg.PanelAlpha = *s.PanelAlpha
	}
	if s.TitleSize != nil {
		cfg.TitleSize = *s.TitleSize
	}
	if s.ItemSize != nil {
		cfg.ItemSize = *s.ItemSize
	}
	if s.CTASize != nil {
		cfg.CTASize = *s.CTASize
	}
	if s.LineGap != nil {
		cfg.LineGap = *s.LineGap
	}
	if s.TitleLineGap != nil {
		cfg.TitleLineGap = *s.TitleLineGap
	}
	if s.TitleBottomGap != nil {
		cfg.TitleBottomGap = *s.TitleBottomGap
	}
	if s.BulletGlyph != nil {
		cfg.BulletGlyph = *s.BulletGlyph
	}
	if s.FontPath != nil {
		cfg.FontPath = *s.FontPath
	}
	if s.TitleWrapChars != nil {
		cfg.TitleWrapChars = *s.TitleWrapChars
	}
	if s.ItemWrapChars != nil {
		cfg.ItemWrapChars = *s.ItemWrapChars
	}
}

// Validate checks that the panel lies entirely within the canvas.
func (c Config) Validate() error {
	if c.MarginX < 0 || c.MarginY < 0 {
		return errors.Errorf("negative margin: %dx%d", c.MarginX, c.MarginY)
	}
	if 2*c.MarginX >= c.CanvasWidth {
		return errors.Errorf("horizontal margin %d leaves no panel width on a %d-wide canvas", c.MarginX, c.CanvasWidth)
	}
	if 2*c.MarginY >= c.CanvasHeight {
		return errors.Errorf("vertical margin %d leaves no panel height on a %d-tall canvas", c.MarginY, c.CanvasHeight)
	}
	return nil
}
