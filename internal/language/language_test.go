package language

import (
	"testing"

	"github.com/ZacxDev/shorts-renderer/pkg/types"
)

func TestGetRegisteredLanguages(t *testing.T) {
	for _, code := range []string{"en", "es", "ja", "ko", "zh"} {
		l, err := Get(code)
		if err != nil {
			t.Errorf("Get(%q): %v", code, err)
			continue
		}
		if l.Code() != code {
			t.Errorf("Get(%q).Code() = %q", code, l.Code())
		}
	}
}

func TestGetUnknownLanguage(t *testing.T) {
	if _, err := Get("tlh"); err == nil {
		t.Error("expected error for unregistered language")
	}
}

func TestWrapModesAreClosedEnumeration(t *testing.T) {
	wantGlyph := map[string]bool{"ja": true, "zh": true}

	for _, code := range Supported() {
		l, err := Get(code)
		if err != nil {
			t.Fatal(err)
		}
		mode := l.WrapMode()
		if mode != types.WrapModeWord && mode != types.WrapModeGlyph {
			t.Errorf("%s: unknown wrap mode %q", code, mode)
		}
		if wantGlyph[code] && mode != types.WrapModeGlyph {
			t.Errorf("%s: mode %q, want glyph wrapping", code, mode)
		}
		if !wantGlyph[code] && mode != types.WrapModeWord {
			t.Errorf("%s: mode %q, want word wrapping", code, mode)
		}
	}
}

func TestSupportedIsSorted(t *testing.T) {
	codes := Supported()
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("codes not sorted: %v", codes)
		}
	}
}

func TestEveryLanguageHasRenderablesDefaults(t *testing.T) {
	for _, code := range Supported() {
		l, _ := Get(code)
		if l.BulletGlyph() == "" {
			t.Errorf("%s: empty bullet glyph", code)
		}
		if l.FontKey() == "" {
			t.Errorf("%s: empty font key", code)
		}
		if len(l.DefaultTags()) == 0 {
			t.Errorf("%s: no default tags", code)
		}
		if l.DefaultDescriptionExtra() == "" {
			t.Errorf("%s: empty description extra", code)
		}
		if len(l.DefaultTagsExtra()) == 0 {
			t.Errorf("%s: no extra tags", code)
		}
	}
}
