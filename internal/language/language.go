package language

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/ZacxDev/shorts-renderer/pkg/types"
)

// Language defines the per-language rendering capabilities: how its script
// wraps, which bundled font it prefers, and the channel-level metadata
// defaults applied when content carries none.
type Language interface {
	// Code returns the BCP-47-ish language code (e.g. "en", "ja")
	Code() string

	// WrapMode returns the line-breaking strategy for this script
	WrapMode() types.WrapMode

	// BulletGlyph returns the list-item marker
	BulletGlyph() string

	// FontKey returns the bundled font file name to prefer
	FontKey() string

	// TitleSuffix returns the branding suffix appended to sidecar titles
	TitleSuffix() string

	// DefaultDescription returns the channel default description
	DefaultDescription() string

	// DefaultDescriptionExtra returns the fixed line appended to every
	// sidecar description (empty to append nothing)
	DefaultDescriptionExtra() string

	// DefaultTags returns the channel default tag set
	DefaultTags() []string

	// DefaultTagsExtra returns tags appended to every unit's tag set
	DefaultTagsExtra() []string
}

var languages = make(map[string]Language)

// Register adds a language to the registry
func Register(l Language) {
	languages[l.Code()] = l
}

// Get returns a language by code
func Get(code string) (Language, error) {
	l, ok := languages[code]
	if !ok {
		return nil, fmt.Errorf("unsupported language: %s", code)
	}
	return l, nil
}

// Supported returns the sorted list of registered language codes
func Supported() []string {
	codes := maps.Keys(languages)
	sort.Strings(codes)
	return codes
}
