package sidecar

import (
	"strings"
	"testing"

	"github.com/ZacxDev/shorts-renderer/pkg/types"
)

func TestEmitAppendsSuffix(t *testing.T) {
	rec := Emit(types.ContentEntry{Title: "Morning Habits"}, ChannelDefaults{TitleSuffix: " #shorts"})
	if rec.Title != "Morning Habits #shorts" {
		t.Errorf("title = %q", rec.Title)
	}
}

func TestEmitSuffixIdempotent(t *testing.T) {
	defaults := ChannelDefaults{TitleSuffix: " #shorts"}

	first := Emit(types.ContentEntry{Title: "Morning Habits"}, defaults)
	second := Emit(types.ContentEntry{Title: first.Title}, defaults)

	if second.Title != first.Title {
		t.Errorf("suffix appended twice: %q", second.Title)
	}
	if strings.Count(second.Title, "#shorts") != 1 {
		t.Errorf("expected exactly one suffix, got %q", second.Title)
	}
}

func TestEmitTitleCapped(t *testing.T) {
	long := strings.Repeat("x", 250)
	rec := Emit(types.ContentEntry{Title: long}, ChannelDefaults{})
	if len([]rune(rec.Title)) != 100 {
		t.Errorf("title length = %d, want 100", len([]rune(rec.Title)))
	}
}

func TestEmitDescriptionFallback(t *testing.T) {
	defaults := ChannelDefaults{Description: "channel default", DescriptionExtra: "subscribe!"}

	rec := Emit(types.ContentEntry{}, defaults)
	if rec.Description != "channel default\nsubscribe!" {
		t.Errorf("description = %q", rec.Description)
	}

	rec = Emit(types.ContentEntry{Description: "specific"}, defaults)
	if rec.Description != "specific\nsubscribe!" {
		t.Errorf("description = %q", rec.Description)
	}
}

func TestEmitTags(t *testing.T) {
	rec := Emit(
		types.ContentEntry{Tags: []string{"a", "b", "a", " ", "c"}},
		ChannelDefaults{TagsExtra: []string{"b", "d"}},
	)

	want := []string{"a", "b", "c", "d"}
	if len(rec.Tags) != len(want) {
		t.Fatalf("tags = %v, want %v", rec.Tags, want)
	}
	for i := range want {
		if rec.Tags[i] != want[i] {
			t.Errorf("tag %d = %q, want %q (order must be preserved)", i, rec.Tags[i], want[i])
		}
	}
}

func TestEmitTagsFallbackAndCap(t *testing.T) {
	defaults := ChannelDefaults{Tags: []string{"one", "two"}}
	rec := Emit(types.ContentEntry{}, defaults)
	if len(rec.Tags) != 2 || rec.Tags[0] != "one" {
		t.Errorf("tags = %v, want channel defaults", rec.Tags)
	}

	many := make([]string, 15)
	for i := range many {
		many[i] = strings.Repeat("t", i+1)
	}
	rec = Emit(types.ContentEntry{Tags: many}, ChannelDefaults{})
	if len(rec.Tags) != 10 {
		t.Errorf("got %d tags, want cap of 10", len(rec.Tags))
	}
}

func TestEmitDoesNotMutateEntry(t *testing.T) {
	entry := types.ContentEntry{Title: "t", Tags: []string{"x"}}
	_ = Emit(entry, ChannelDefaults{TitleSuffix: " #s", TagsExtra: []string{"y"}})
	if entry.Title != "t" || len(entry.Tags) != 1 {
		t.Errorf("entry mutated: %+v", entry)
	}
}
