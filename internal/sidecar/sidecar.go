package sidecar

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/ZacxDev/shorts-renderer/pkg/types"
)

const (
	// Platform-imposed metadata limits.
	maxTitleLen       = 100
	maxDescriptionLen = 5000
	maxTags           = 10
)

// ChannelDefaults is the per-language channel metadata applied when a
// content entry carries none of its own.
type ChannelDefaults struct {
	TitleSuffix      string
	Description      string
	DescriptionExtra string
	Tags             []string
	TagsExtra        []string
}

// Emit builds the upload metadata for one rendered unit. Pure function:
// no I/O, the entry is not mutated.
func Emit(entry types.ContentEntry, defaults ChannelDefaults) types.SidecarRecord {
	title := entry.Title
	// Appending the suffix twice on a re-run would corrupt the title, so
	// skip it when already present.
	if defaults.TitleSuffix != "" && !strings.Contains(title, strings.TrimSpace(defaults.TitleSuffix)) {
		title += defaults.TitleSuffix
	}
	title = truncate(title, maxTitleLen)

	description := entry.Description
	if description == "" {
		description = defaults.Description
	}
	if defaults.DescriptionExtra != "" {
		description += "\n" + defaults.DescriptionExtra
	}

	tags := entry.Tags
	if len(tags) == 0 {
		tags = defaults.Tags
	}
	tags = append(append([]string{}, tags...), defaults.TagsExtra...)

	return types.SidecarRecord{
		Title:       title,
		Description: truncate(description, maxDescriptionLen),
		Tags:        dedupe(tags, maxTags),
	}
}

// Write serializes the record next to the rendered video, same base name.
func Write(rec types.SidecarRecord, videoPath string) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	if err := os.WriteFile(base+".json", data, 0644); err != nil {
		return errors.Wrap(err, "failed to write sidecar")
	}
	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func dedupe(tags []string, limit int) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
		if len(out) == limit {
			break
		}
	}
	return out
}
