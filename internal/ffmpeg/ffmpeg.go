package ffmpeg

import (
	"encoding/json"
	"fmt"
	"math"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"
)

// stillImageCodecs are video-stream codec names ffprobe reports for still
// image inputs, which need loop-for-duration treatment instead of
// stream-loop.
var stillImageCodecs = map[string]bool{
	"png":   true,
	"mjpeg": true,
	"bmp":   true,
	"webp":  true,
	"tiff":  true,
}

// MediaInfo describes a probed input file.
type MediaInfo struct {
	Duration   float64
	Width      int
	Height     int
	Codec      string
	StillImage bool
}

// Processor wraps FFmpeg probing and the fixed output encode settings.
type Processor struct {
	log *zap.Logger
}

// NewProcessor creates a new FFmpeg processor
func NewProcessor(log *zap.Logger) *Processor {
	return &Processor{log: log}
}

// ProbeMedia retrieves metadata about a media file.
func (p *Processor) ProbeMedia(inputPath string) (*MediaInfo, error) {
	probe, err := ffmpeg.Probe(inputPath)
	if err != nil {
		return nil, errors.Wrapf(err, "error probing %s", inputPath)
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(probe), &data); err != nil {
		return nil, errors.WithStack(err)
	}

	streams, ok := data["streams"].([]interface{})
	if !ok || len(streams) == 0 {
		return nil, fmt.Errorf("no streams found in %s", inputPath)
	}

	var videoStream map[string]interface{}
	for _, stream := range streams {
		s, ok := stream.(map[string]interface{})
		if !ok {
			continue
		}
		if codecType, _ := s["codec_type"].(string); codecType == "video" {
			videoStream = s
			break
		}
	}

	if videoStream == nil {
		return nil, fmt.Errorf("no video stream found in %s", inputPath)
	}

	info := &MediaInfo{}
	if w, ok := videoStream["width"].(float64); ok {
		info.Width = int(w)
	}
	if h, ok := videoStream["height"].(float64); ok {
		info.Height = int(h)
	}
	info.Codec, _ = videoStream["codec_name"].(string)

	// Stream duration first, then container duration.
	if durationStr, ok := videoStream["duration"].(string); ok {
		if d, err := strconv.ParseFloat(strings.TrimSpace(durationStr), 64); err == nil {
			info.Duration = d
		}
	}
	if info.Duration == 0 {
		if format, ok := data["format"].(map[string]interface{}); ok {
			if durationStr, ok := format["duration"].(string); ok {
				if d, err := strconv.ParseFloat(strings.TrimSpace(durationStr), 64); err == nil {
					info.Duration = d
				}
			}
		}
	}

	nbFrames, _ := videoStream["nb_frames"].(string)
	info.StillImage = stillImageCodecs[info.Codec] || nbFrames == "1" ||
		(info.Duration == 0 && nbFrames == "")

	if p.log != nil {
		p.log.Debug("probed media",
			zap.String("path", inputPath),
			zap.String("codec", info.Codec),
			zap.Float64("duration", info.Duration),
			zap.Bool("still_image", info.StillImage))
	}

	return info, nil
}

// OutputSettings returns the fixed encode settings for rendered units:
// H.264/AAC in MP4 at 30fps, yuv420p, faststart. The pipeline does not
// tune codecs per unit.
func OutputSettings() ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"c:v":        "libx264",
		"c:a":        "aac",
		"b:a":        "192k",
		"pix_fmt":    "yuv420p",
		"r":          30,
		"preset":     "medium",
		"profile:v":  "high",
		"movflags":   "+faststart",
		"threads":    GetOptimalThreadCount(),
		"g":          60,
		"keyint_min": 30,
	}
}

func GetOptimalThreadCount() int {
	cpuCount := runtime.NumCPU()
	// Use 75% of available cores to prevent overload
	return int(math.Max(1, float64(cpuCount)*0.75))
}
