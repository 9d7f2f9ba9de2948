package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ZacxDev/shorts-renderer/internal/config"
	"github.com/ZacxDev/shorts-renderer/pkg/renderer"
)

var (
	rootCmd = &cobra.Command{
		Use:   "shorts-renderer",
		Short: "Renders short-form vertical video from structured content",
		Long: `shorts-renderer overlays wrapped title, bullet-list and call-to-action
text onto a looping background clip, one video per content entry.

Examples:
  # Render an English batch over a looping clip
  shorts-renderer render -c content.json -b background.mp4 -o ./out -l en

  # Render with a style document and a music track
  shorts-renderer render -c content.json -s style.yaml -b bg.png -a track.mp3 -o ./out -l ja`,
	}

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render one video per content entry",
		Long: fmt.Sprintf(`Render every entry of a content file into a vertical video with a
metadata sidecar written beside it.

Supported languages:
%s
Example:
  shorts-renderer render -c content.json -b background.mp4 -o ./out -l en -d 30`,
			formatSupportedLanguages()),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &config.RenderOptions{}

			opts.ContentPath, _ = cmd.Flags().GetString("content")
			opts.StylePath, _ = cmd.Flags().GetString("style")
			opts.BackgroundPath, _ = cmd.Flags().GetString("background")
			opts.AudioPath, _ = cmd.Flags().GetString("audio")
			opts.OutputDir, _ = cmd.Flags().GetString("output")
			opts.Language, _ = cmd.Flags().GetString("language")
			opts.Duration, _ = cmd.Flags().GetFloat64("duration")
			opts.MaxItems, _ = cmd.Flags().GetInt("max-items")
			opts.KeepGoing, _ = cmd.Flags().GetBool("keep-going")
			opts.Verbose, _ = cmd.Flags().GetBool("verbose")

			if opts.ContentPath == "" || opts.BackgroundPath == "" || opts.OutputDir == "" {
				return fmt.Errorf("content file, background and output directory are required")
			}

			level := os.Getenv(config.EnvLogLevel)
			if opts.Verbose {
				level = "debug"
			}
			log := renderer.NewLogger(level)
			defer log.Sync()

			fontsDir := os.Getenv(config.EnvFontsDir)
			if fontsDir == "" {
				fontsDir = config.DefaultFontsDir
			}

			return renderer.New(opts, log, fontsDir).RenderBatch()
		},
	}

	languagesCmd = &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(formatSupportedLanguages())
		},
	}
)

func formatSupportedLanguages() string {
	var sb strings.Builder
	for _, code := range renderer.SupportedLanguages() {
		sb.WriteString(fmt.Sprintf("- %s\n", code))
	}
	return sb.String()
}

func init() {
	renderCmd.Flags().StringP("content", "c", "", "Content entries file (JSON array)")
	renderCmd.Flags().StringP("style", "s", "", "Style document (YAML)")
	renderCmd.Flags().StringP("background", "b", "", "Background clip or still image")
	renderCmd.Flags().StringP("audio", "a", "", "Audio track (silence when omitted)")
	renderCmd.Flags().StringP("output", "o", "", "Output directory")
	renderCmd.Flags().StringP("language", "l", "en",
		fmt.Sprintf("Content language (%s)", strings.Join(renderer.SupportedLanguages(), ", ")))
	renderCmd.Flags().Float64P("duration", "d", config.DefaultDuration, "Clip duration in seconds")
	renderCmd.Flags().Int("max-items", config.DefaultMaxItems, "Maximum list items per entry")
	renderCmd.Flags().Bool("keep-going", false, "Continue the batch when a unit fails")
	renderCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	renderCmd.MarkFlagRequired("content")
	renderCmd.MarkFlagRequired("background")
	renderCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(languagesCmd)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
