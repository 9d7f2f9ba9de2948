package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Punctuation that upstream content generators routinely emit and that the
// drawtext layer has no business seeing in smart form.
var punctReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"\u00a0", " ",
	"–", "-",
	"—", "-",
)

// Normalize cleans a raw content string for layout: strips a leading BOM,
// drops C0/C1 control characters, maps curly quotes and non-breaking
// spaces to their plain equivalents, and applies Unicode canonical
// composition. It never fails and is idempotent.
func Normalize(raw string) string {
	return normalize(raw, false)
}

// NormalizeKeepNewlines is Normalize but preserves '\n', for fields that
// are allowed to span multiple source lines.
func NormalizeKeepNewlines(raw string) string {
	return normalize(raw, true)
}

func normalize(raw string, keepNewlines bool) string {
	s := strings.TrimPrefix(raw, "\ufeff")
	s = punctReplacer.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' && keepNewlines {
			b.WriteRune(r)
			continue
		}
		// C0 controls (incl. \t, \r, \n unless kept) and C1 controls.
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f) {
			continue
		}
		b.WriteRune(r)
	}

	return norm.NFC.String(strings.TrimSpace(b.String()))
}
