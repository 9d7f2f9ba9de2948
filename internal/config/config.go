package config

// RenderOptions defines options for rendering a batch of content entries
type RenderOptions struct {
	ContentPath    string
	StylePath      string
	BackgroundPath string
	AudioPath      string
	OutputDir      string
	Language       string
	Duration       float64
	MaxItems       int
	KeepGoing      bool
	Verbose        bool
}

const (
	// Output unit naming
	OutputFilePattern = "short_%04d.mp4"

	// Default clip length in seconds
	DefaultDuration = 30.0

	// Default cap on list items per unit; content beyond the cap is
	// truncated at input acceptance, before layout ever sees it
	DefaultMaxItems = 8

	// Environment overrides (loaded from .env when present)
	EnvFontsDir = "SHORTS_FONTS_DIR"
	EnvLogLevel = "SHORTS_LOG_LEVEL"

	// Bundled fonts directory relative to the working directory
	DefaultFontsDir = "fonts"
)
