package graph

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ZacxDev/shorts-renderer/internal/layout"
	"github.com/ZacxDev/shorts-renderer/internal/style"
	"github.com/ZacxDev/shorts-renderer/pkg/types"
)

// DefaultMaxNodes bounds the compiled graph so pathological content (a
// runaway item list, a title wrapped into dozens of lines) cannot hand the
// external engine an unbounded filter chain.
const DefaultMaxNodes = 64

// OpKind is the operation a node performs.
type OpKind string

const (
	// OpPanelFill scales the background to canvas size, converts it to an
	// alpha-capable pixel format, and fills the panel rectangle.
	OpPanelFill OpKind = "panel-fill"
	// OpDrawText draws one LineBlock.
	OpDrawText OpKind = "draw-text"
)

// Node is one drawing operation in the instruction chain. In names the
// slot it consumes (empty for the first node), Out the slot it produces.
//
// Draw-text nodes never carry the literal string to draw. They carry
// TextRef, an index into the graph's literal table, which the invoker
// resolves to an out-of-band resource at execution time. Arbitrary
// human/model text therefore never needs escaping inside the serialized
// graph.
type Node struct {
	Op  OpKind
	In  string
	Out string

	// panel-fill fields
	Width  int
	Height int
	PanelX int
	PanelY int
	PanelW int
	PanelH int
	Alpha  float64

	// draw-text fields
	TextRef  int
	FontPath string
	X        string
	Y        int
	Size     int
	Color    string
	Shadow   bool
}

// Graph is an ordered single chain of nodes plus the literal-text table
// the draw-text nodes reference.
type Graph struct {
	Nodes    []Node
	Literals []string
}

// Output returns the slot label of the final node, the one mapped to the
// visible output stream.
func (g *Graph) Output() string {
	if len(g.Nodes) == 0 {
		return ""
	}
	return g.Nodes[len(g.Nodes)-1].Out
}

// Validate checks chain integrity: slot labels assigned in strict
// monotonic order with no duplicates, and every node after the first
// consuming exactly its predecessor's output.
func (g *Graph) Validate() error {
	if len(g.Nodes) == 0 {
		return errors.New("empty instruction graph")
	}
	for i, n := range g.Nodes {
		want := fmt.Sprintf("v%d", i)
		if n.Out != want {
			return errors.Errorf("node %d: output slot %q, want %q", i, n.Out, want)
		}
		if i == 0 {
			if n.In != "" {
				return errors.Errorf("node 0 must not consume a slot, got %q", n.In)
			}
			continue
		}
		if n.In != g.Nodes[i-1].Out {
			return errors.Errorf("node %d: consumes %q, want predecessor slot %q", i, n.In, g.Nodes[i-1].Out)
		}
	}
	return nil
}

// Compiler assembles instruction graphs.
type Compiler struct {
	MaxNodes int
}

// NewCompiler returns a compiler with the default node ceiling.
func NewCompiler() *Compiler {
	return &Compiler{MaxNodes: DefaultMaxNodes}
}

// builder threads the integer slot counter through node emission.
type builder struct {
	graph Graph
	slot  int
}

func (b *builder) append(n Node) {
	if b.slot > 0 {
		n.In = fmt.Sprintf("v%d", b.slot-1)
	}
	n.Out = fmt.Sprintf("v%d", b.slot)
	b.slot++
	b.graph.Nodes = append(b.graph.Nodes, n)
}

func (b *builder) literal(text string) int {
	b.graph.Literals = append(b.graph.Literals, text)
	return len(b.graph.Literals) - 1
}

// Compile turns geometry plus wrapped line blocks into the ordered
// instruction chain: one background/panel node, then one draw-text node
// per line in title, item, cta order. A kind with zero blocks simply
// contributes no nodes.
func (c *Compiler) Compile(geom layout.Geometry, cfg style.Config, fontPath string, title, items, cta []types.LineBlock) (*Graph, error) {
	total := 1 + len(title) + len(items) + len(cta)
	if c.MaxNodes > 0 && total > c.MaxNodes {
		return nil, &types.GraphTooLargeError{Nodes: total, Max: c.MaxNodes}
	}

	b := &builder{}

	b.append(Node{
		Op:     OpPanelFill,
		Width:  cfg.CanvasWidth,
		Height: cfg.CanvasHeight,
		PanelX: geom.PanelX,
		PanelY: geom.PanelY,
		PanelW: geom.PanelW,
		PanelH: geom.PanelH,
		Alpha:  cfg.PanelAlpha,
	})

	emit := func(block types.LineBlock, size int) {
		x, y := geom.LineOrigin(block.Kind, block.Index)
		n := Node{
			Op:       OpDrawText,
			TextRef:  b.literal(block.Text),
			FontPath: fontPath,
			X:        fmt.Sprintf("%d", x),
			Y:        y,
			Size:     size,
			Color:    "white",
			Shadow:   true,
		}
		if block.Kind == types.LineKindCTA {
			n.X = layout.CenterXExpr
		}
		b.append(n)
	}

	for _, block := range title {
		emit(block, cfg.TitleSize)
	}
	for _, block := range items {
		emit(block, cfg.ItemSize)
	}
	for _, block := range cta {
		emit(block, cfg.CTASize)
	}

	return &b.graph, nil
}
