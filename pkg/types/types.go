package types

// WrapMode selects the line-breaking strategy for a language.
type WrapMode string

const (
	// WrapModeWord breaks on whitespace-delimited tokens.
	WrapModeWord WrapMode = "word"
	// WrapModeGlyph breaks by code-point count, for scripts without
	// inter-word spaces.
	WrapModeGlyph WrapMode = "glyph"
)

// LineKind identifies which text block a wrapped display line belongs to.
type LineKind string

const (
	LineKindTitle LineKind = "title"
	LineKindItem  LineKind = "item"
	LineKindCTA   LineKind = "cta"
)

// ContentEntry is one unit of content to render. Immutable once read;
// one entry yields exactly one rendered video and one sidecar record.
type ContentEntry struct {
	Title       string   `json:"title"`
	Items       []string `json:"items"`
	CTA         string   `json:"cta"`
	Tags        []string `json:"tags"`
	Description string   `json:"description,omitempty"`
}

// LineBlock is one already-wrapped physical display line, positioned
// independently by the layout engine.
type LineBlock struct {
	Kind  LineKind
	Text  string
	Index int
}

// SidecarRecord is the upload metadata written next to each rendered video.
type SidecarRecord struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
