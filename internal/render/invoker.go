package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	ffmpegGo "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"

	"github.com/ZacxDev/shorts-renderer/internal/ffmpeg"
	"github.com/ZacxDev/shorts-renderer/internal/graph"
	"github.com/ZacxDev/shorts-renderer/pkg/types"
)

// Invoker executes compiled instruction graphs against the external
// engine. One call renders one unit, synchronously; the literal-text temp
// files it creates live exactly as long as the subprocess that reads them.
type Invoker struct {
	ffmpeg *ffmpeg.Processor
	log    *zap.Logger
}

// NewInvoker creates an invoker sharing the pipeline's probe processor.
func NewInvoker(proc *ffmpeg.Processor, log *zap.Logger) *Invoker {
	return &Invoker{ffmpeg: proc, log: log}
}

// Invoke serializes the graph, materializes its literal-text table as temp
// files, and runs the engine as a blocking subprocess. A still-image
// background is looped for the requested duration; a clip is
// stream-looped. When the audio path is empty or absent a silent stereo
// track of matching duration is synthesized instead.
//
// There is no retry and no cancellation: a non-zero exit is surfaced once,
// as a *types.RenderError carrying the font path, the text-file handles
// the graph referenced, and the engine's full argument list.
func (iv *Invoker) Invoke(g *graph.Graph, backgroundPath, audioPath string, duration float64, outputPath string) error {
	if err := g.Validate(); err != nil {
		return errors.Wrap(err, "refusing to invoke malformed graph")
	}

	info, err := iv.ffmpeg.ProbeMedia(backgroundPath)
	if err != nil {
		return errors.Wrap(err, "failed to probe background")
	}

	tempDir, err := os.MkdirTemp("", "shorts_text_")
	if err != nil {
		return errors.Wrap(err, "failed to create literal-text directory")
	}
	defer os.RemoveAll(tempDir)

	textFiles, err := writeLiterals(tempDir, g.Literals)
	if err != nil {
		return err
	}

	filterComplex := Serialize(g, textFiles)

	background := backgroundInput(backgroundPath, info.StillImage, duration)
	audio, audioLabel := audioInput(audioPath, duration)

	outputKwargs := ffmpeg.OutputSettings()
	outputKwargs["filter_complex"] = filterComplex
	outputKwargs["map"] = []string{"[" + g.Output() + "]", audioLabel}
	outputKwargs["t"] = duration

	if iv.log != nil {
		iv.log.Debug("invoking render engine",
			zap.String("output", outputPath),
			zap.Bool("still_background", info.StillImage),
			zap.Int("nodes", len(g.Nodes)),
			zap.String("filter_complex", filterComplex))
	}

	out := ffmpegGo.Output([]*ffmpegGo.Stream{background, audio}, outputPath, outputKwargs).
		OverWriteOutput()
	args := out.GetArgs()

	err = out.ErrorToStdOut().Run()

	if err != nil {
		fontPath := ""
		for _, n := range g.Nodes {
			if n.Op == graph.OpDrawText {
				fontPath = n.FontPath
				break
			}
		}
		return &types.RenderError{
			FontPath:  fontPath,
			TextFiles: textFiles,
			Filter:    filterComplex,
			Args:      args,
			Err:       err,
		}
	}

	return nil
}

func backgroundInput(path string, stillImage bool, duration float64) *ffmpegGo.Stream {
	if stillImage {
		return ffmpegGo.Input(path, ffmpegGo.KwArgs{
			"loop":      1,
			"framerate": 30,
			"t":         duration,
		})
	}
	return ffmpegGo.Input(path, ffmpegGo.KwArgs{
		"stream_loop": -1,
		"t":           duration,
	})
}

func audioInput(path string, duration float64) (*ffmpegGo.Stream, string) {
	if path != "" {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return ffmpegGo.Input(path, ffmpegGo.KwArgs{
				"stream_loop": -1,
				"t":           duration,
			}), "1:a"
		}
	}
	// Deterministic silence when no usable track exists.
	return ffmpegGo.Input("anullsrc=channel_layout=stereo:sample_rate=44100", ffmpegGo.KwArgs{
		"f": "lavfi",
		"t": duration,
	}), "1:a"
}

// writeLiterals materializes the graph's literal-text table as one temp
// file per entry. The generated file names contain no characters the
// filter syntax treats specially, which is the whole point: the literal
// strings themselves never touch the serialized graph.
func writeLiterals(dir string, literals []string) ([]string, error) {
	files := make([]string, len(literals))
	for i, text := range literals {
		path := filepath.Join(dir, fmt.Sprintf("line_%03d.txt", i))
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return nil, errors.Wrapf(err, "failed to write literal text %d", i)
		}
		files[i] = path
	}
	return files, nil
}

// Serialize renders the graph in the engine's filter_complex syntax, with
// each draw-text node's TextRef resolved to its temp file path.
func Serialize(g *graph.Graph, textFiles []string) string {
	var sb strings.Builder

	for i, n := range g.Nodes {
		if i > 0 {
			sb.WriteByte(';')
		}
		if n.In == "" {
			sb.WriteString("[0:v]")
		} else {
			sb.WriteString("[" + n.In + "]")
		}

		switch n.Op {
		case graph.OpPanelFill:
			fmt.Fprintf(&sb, "scale=%d:%d,format=yuva420p,drawbox=x=%d:y=%d:w=%d:h=%d:color=black@%.2f:t=fill",
				n.Width, n.Height, n.PanelX, n.PanelY, n.PanelW, n.PanelH, n.Alpha)
		case graph.OpDrawText:
			fmt.Fprintf(&sb, "drawtext=fontfile='%s':textfile='%s':x=%s:y=%d:fontsize=%d:fontcolor=%s",
				n.FontPath, textFiles[n.TextRef], n.X, n.Y, n.Size, n.Color)
			if n.Shadow {
				sb.WriteString(":shadowcolor=black@0.6:shadowx=2:shadowy=2")
			}
		}

		sb.WriteString("[" + n.Out + "]")
	}

	return sb.String()
}
