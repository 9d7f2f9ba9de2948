package text

import (
	"strings"

	"github.com/ZacxDev/shorts-renderer/pkg/types"
)

// Wrap splits text into display lines no wider than limit. In word mode
// lines are built by greedily appending whitespace-delimited tokens; a
// token that alone exceeds the limit is placed on its own line rather
// than broken mid-word. In glyph mode lines are built by code-point
// count, for scripts without inter-word spaces.
//
// An empty input always yields exactly one empty line, so callers never
// need to special-case missing fields.
func Wrap(text string, limit int, mode types.WrapMode) []string {
	if limit <= 0 {
		limit = 1
	}
	if mode == types.WrapModeGlyph {
		return wrapGlyphs(text, limit)
	}
	return wrapWords(text, limit)
}

func wrapWords(text string, limit int) []string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 1)
	var cur strings.Builder
	curLen := 0

	for _, tok := range tokens {
		tokLen := len([]rune(tok))
		if curLen == 0 {
			cur.WriteString(tok)
			curLen = tokLen
			continue
		}
		if curLen+1+tokLen <= limit {
			cur.WriteByte(' ')
			cur.WriteString(tok)
			curLen += 1 + tokLen
			continue
		}
		lines = append(lines, cur.String())
		cur.Reset()
		cur.WriteString(tok)
		curLen = tokLen
	}
	lines = append(lines, cur.String())

	return lines
}

func wrapGlyphs(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, (len(runes)+limit-1)/limit)
	for start := 0; start < len(runes); start += limit {
		end := start + limit
		if end > len(runes) {
			end = len(runes)
		}
		lines = append(lines, string(runes[start:end]))
	}

	return lines
}

// FormatItem prefixes the first line of a wrapped list item with the
// bullet glyph and a separator, and indents continuation lines with
// blanks of equal visual width so multi-line bullets stay aligned.
func FormatItem(lines []string, bullet string) []string {
	prefix := bullet + " "
	indent := strings.Repeat(" ", len([]rune(prefix)))

	out := make([]string, len(lines))
	for i, line := range lines {
		if i == 0 {
			out[i] = prefix + line
		} else {
			out[i] = indent + line
		}
	}
	return out
}
