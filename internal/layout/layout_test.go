package layout

import (
	"testing"

	"github.com/ZacxDev/shorts-renderer/internal/style"
	"github.com/ZacxDev/shorts-renderer/pkg/types"
)

func TestPanelRect(t *testing.T) {
	cfg := style.Defaults()
	g := ComputeGeometry(cfg)

	if g.PanelX != cfg.MarginX || g.PanelY != cfg.MarginY {
		t.Errorf("panel origin (%d,%d), want (%d,%d)", g.PanelX, g.PanelY, cfg.MarginX, cfg.MarginY)
	}
	if g.PanelW != cfg.CanvasWidth-2*cfg.MarginX {
		t.Errorf("panel width %d, want %d", g.PanelW, cfg.CanvasWidth-2*cfg.MarginX)
	}
	if g.PanelH != cfg.CanvasHeight-2*cfg.MarginY {
		t.Errorf("panel height %d, want %d", g.PanelH, cfg.CanvasHeight-2*cfg.MarginY)
	}
	if g.PanelX+g.PanelW > cfg.CanvasWidth || g.PanelY+g.PanelH > cfg.CanvasHeight {
		t.Error("panel extends beyond canvas")
	}
}

func TestSharedLeftEdge(t *testing.T) {
	cfg := style.Defaults()
	g := ComputeGeometry(cfg)

	tx, _ := g.LineOrigin(types.LineKindTitle, 0)
	ix, _ := g.LineOrigin(types.LineKindItem, 0)
	if tx != ix {
		t.Errorf("title x %d != item x %d, want shared left edge", tx, ix)
	}
	if tx != cfg.MarginX+cfg.PaddingX {
		t.Errorf("text left %d, want %d", tx, cfg.MarginX+cfg.PaddingX)
	}
}

func TestVerticalMonotonicity(t *testing.T) {
	g := ComputeGeometry(style.Defaults())

	for _, kind := range []types.LineKind{types.LineKindTitle, types.LineKindItem} {
		prev := -1
		for k := 0; k < 6; k++ {
			_, y := g.LineOrigin(kind, k)
			if y <= prev {
				t.Errorf("%s line %d: y=%d not strictly greater than previous %d", kind, k, y, prev)
			}
			prev = y
		}
	}
}

func TestItemsStartBelowTitle(t *testing.T) {
	cfg := style.Defaults()
	g := ComputeGeometry(cfg)

	_, titleY := g.LineOrigin(types.LineKindTitle, 0)
	_, itemY := g.LineOrigin(types.LineKindItem, 0)
	if itemY <= titleY+cfg.TitleSize {
		t.Errorf("item start %d does not clear the title baseline %d", itemY, titleY+cfg.TitleSize)
	}
}

func TestCTAAnchoredToPanelBottom(t *testing.T) {
	cfg := style.Defaults()
	g := ComputeGeometry(cfg)

	_, ctaY := g.LineOrigin(types.LineKindCTA, 0)
	panelBottom := g.PanelY + g.PanelH
	if ctaY >= panelBottom {
		t.Errorf("cta y=%d is below the panel bottom %d", ctaY, panelBottom)
	}
	if ctaY+cfg.CTASize > panelBottom-cfg.PaddingY {
		t.Errorf("cta overlaps the bottom padding: y=%d size=%d bottom=%d", ctaY, cfg.CTASize, panelBottom)
	}
}

func TestNonNegativeCoordinates(t *testing.T) {
	g := ComputeGeometry(style.Defaults())
	for _, kind := range []types.LineKind{types.LineKindTitle, types.LineKindItem, types.LineKindCTA} {
		x, y := g.LineOrigin(kind, 0)
		if x < 0 || y < 0 {
			t.Errorf("%s origin (%d,%d) is negative", kind, x, y)
		}
	}
}
