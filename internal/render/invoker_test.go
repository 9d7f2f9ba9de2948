package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ZacxDev/shorts-renderer/internal/graph"
	"github.com/ZacxDev/shorts-renderer/internal/layout"
	"github.com/ZacxDev/shorts-renderer/internal/style"
	"github.com/ZacxDev/shorts-renderer/pkg/types"
)

func compileFixture(t *testing.T, texts ...string) *graph.Graph {
	t.Helper()
	cfg := style.Defaults()

	var title, items []types.LineBlock
	for i, text := range texts {
		if i == 0 {
			title = append(title, types.LineBlock{Kind: types.LineKindTitle, Text: text, Index: 0})
			continue
		}
		items = append(items, types.LineBlock{Kind: types.LineKindItem, Text: text, Index: i - 1})
	}

	g, err := graph.NewCompiler().Compile(layout.ComputeGeometry(cfg), cfg, "/fonts/NotoSans-Bold.ttf", title, items, nil)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func fakeTextFiles(g *graph.Graph) []string {
	files := make([]string, len(g.Literals))
	for i := range files {
		files[i] = fmt.Sprintf("/tmp/shorts_text_x/line_%03d.txt", i)
	}
	return files
}

func TestSerializeChainsSlots(t *testing.T) {
	g := compileFixture(t, "Title", "item one", "item two")
	out := Serialize(g, fakeTextFiles(g))

	segments := strings.Split(out, ";")
	if len(segments) != len(g.Nodes) {
		t.Fatalf("got %d segments, want %d", len(segments), len(g.Nodes))
	}

	if !strings.HasPrefix(segments[0], "[0:v]") {
		t.Errorf("first segment must consume the input stream: %q", segments[0])
	}
	for i, seg := range segments {
		if !strings.HasSuffix(seg, fmt.Sprintf("[v%d]", i)) {
			t.Errorf("segment %d does not produce [v%d]: %q", i, i, seg)
		}
		if i > 0 && !strings.HasPrefix(seg, fmt.Sprintf("[v%d]", i-1)) {
			t.Errorf("segment %d does not consume [v%d]: %q", i, i-1, seg)
		}
	}
}

func TestSerializePanelFill(t *testing.T) {
	g := compileFixture(t, "Title")
	out := Serialize(g, fakeTextFiles(g))

	for _, want := range []string{"scale=1080:1920", "format=yuva420p", "drawbox=", "t=fill"} {
		if !strings.Contains(out, want) {
			t.Errorf("serialized graph missing %q: %s", want, out)
		}
	}
}

func TestSerializeTextIndirection(t *testing.T) {
	hostile := `100%, 'quotes' and [brackets]; colons: everywhere`
	g := compileFixture(t, hostile)
	out := Serialize(g, fakeTextFiles(g))

	// The literal string must never appear in the graph, in any form.
	if strings.Contains(out, "100%") || strings.Contains(out, "brackets") {
		t.Fatalf("literal text leaked into serialized graph: %s", out)
	}
	if !strings.Contains(out, "textfile='/tmp/shorts_text_x/line_000.txt'") {
		t.Errorf("expected textfile reference, got: %s", out)
	}
	if strings.Contains(out, "text='") {
		t.Errorf("inline text= must never be emitted: %s", out)
	}
}

func TestSerializeDrawTextParams(t *testing.T) {
	g := compileFixture(t, "Title")
	out := Serialize(g, fakeTextFiles(g))

	for _, want := range []string{
		"fontfile='/fonts/NotoSans-Bold.ttf'",
		"fontsize=72",
		"fontcolor=white",
		"shadowcolor=black@0.6",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("serialized drawtext missing %q: %s", want, out)
		}
	}
}

func TestWriteLiteralsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	files, err := writeLiterals(dir, []string{"first", "second\nline"})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	for _, f := range files {
		if strings.ContainsAny(f, "':,;[]%") {
			t.Errorf("generated path %q contains filter-syntax characters", f)
		}
	}
}
