package render

import (
	"image/color"
	"testing"

	"github.com/gridsnap/gridsnap/internal/layout"
)

// The background is a cell attribute, invisible at the rune level, so it is
// checked on the canvas directly.
func TestDrawRegionPaintsBackground(t *testing.T) {
	bg := color.RGBA{R: 30, G: 30, B: 46, A: 255}
	r := New(Colors{Background: bg})
	root := layout.NewLeaf(layout.ColumnAt(0))
	root.CalculateRects(0, 0, 1000, 800)

	c := newCanvas(40, 12)
	r.drawRegion(c, root, root)

	if got := c.cells[6*40+20].bg; got != bg {
		t.Errorf("interior cell background = %v, want %v", got, bg)
	}
	if got := c.cells[0].bg; got != bg {
		t.Errorf("border cell background = %v, want %v", got, bg)
	}
	if got := c.cells[0].ch; got == ' ' {
		t.Error("border cell not drawn")
	}
}

func TestDrawRegionNilBackgroundLeavesCellsBare(t *testing.T) {
	r := New(Colors{})
	root := layout.NewLeaf(layout.ColumnAt(0))
	root.CalculateRects(0, 0, 1000, 800)

	c := newCanvas(40, 12)
	r.drawRegion(c, root, root)

	if got := c.cells[6*40+20].bg; got != nil {
		t.Errorf("interior cell background = %v, want nil", got)
	}
}
