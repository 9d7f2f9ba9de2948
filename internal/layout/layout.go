package layout

import (
	"github.com/ZacxDev/shorts-renderer/internal/style"
	"github.com/ZacxDev/shorts-renderer/pkg/types"
)

const (
	// titleLeading is added on top of the configured title line gap when
	// computing the vertical advance between wrapped title lines.
	titleLeading = 8

	// ctaInset lifts the call-to-action off the panel's bottom padding.
	ctaInset = 24
)

// CenterXExpr horizontally centers a drawn string on the canvas. It is an
// engine-side runtime expression because the pixel width of the rendered
// text is only known after shaping.
const CenterXExpr = "(w-text_w)/2"

// Geometry is the absolute pixel layout for one render: the translucent
// panel rectangle and the anchor points every text line is positioned
// from. All values are non-negative for any style that passes
// style.Config.Validate.
type Geometry struct {
	PanelX int
	PanelY int
	PanelW int
	PanelH int

	// TextLeft is the shared left edge for title and item lines.
	TextLeft int

	titleTop     int
	titleAdvance int
	itemStart    int
	lineGap      int
	ctaY         int
}

// ComputeGeometry converts the resolved style into absolute geometry.
func ComputeGeometry(cfg style.Config) Geometry {
	g := Geometry{
		PanelX: cfg.MarginX,
		PanelY: cfg.MarginY,
		PanelW: cfg.CanvasWidth - 2*cfg.MarginX,
		PanelH: cfg.CanvasHeight - 2*cfg.MarginY,
	}

	g.TextLeft = g.PanelX + cfg.PaddingX
	g.titleTop = g.PanelY + cfg.PaddingY

	gap := cfg.TitleLineGap - cfg.TitleSize + titleLeading
	if gap < 0 {
		gap = 0
	}
	g.titleAdvance = cfg.TitleSize + gap

	g.itemStart = g.titleTop + cfg.TitleSize + cfg.TitleLineGap + cfg.TitleBottomGap
	g.lineGap = cfg.LineGap
	g.ctaY = g.PanelY + g.PanelH - cfg.PaddingY - cfg.CTASize - ctaInset

	return g
}

// LineOrigin returns the draw origin for line index k of the given kind.
// For CTA lines the returned x is 0 and callers center horizontally with
// CenterXExpr instead.
func (g Geometry) LineOrigin(kind types.LineKind, k int) (x, y int) {
	switch kind {
	case types.LineKindTitle:
		return g.TextLeft, g.titleTop + k*g.titleAdvance
	case types.LineKindItem:
		return g.TextLeft, g.itemStart + k*g.lineGap
	default:
		return 0, g.ctaY
	}
}
