package types

import (
	"errors"
	"fmt"
)

// ErrNoFontAvailable is returned when every candidate in the font fallback
// chain is absent. Fatal for the affected unit: no text can be drawn.
var ErrNoFontAvailable = errors.New("no font available")

// GraphTooLargeError signals that a compiled instruction graph would exceed
// the configured node ceiling. It carries the offending counts for
// diagnosis and is not retried.
type GraphTooLargeError struct {
	Nodes int
	Max   int
}

func (e *GraphTooLargeError) Error() string {
	return fmt.Sprintf("instruction graph too large: %d nodes exceeds maximum of %d", e.Nodes, e.Max)
}

// RenderError is returned when the external engine exits non-zero. It
// carries enough context to diagnose the failure without re-running:
// the resolved font, the literal-text temp files the graph referenced,
// the serialized filter graph, and the full argument list the engine
// was invoked with.
type RenderError struct {
	FontPath  string
	TextFiles []string
	Filter    string
	Args      []string
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed (font=%s, %d text refs, %d args): %v", e.FontPath, len(e.TextFiles), len(e.Args), e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
