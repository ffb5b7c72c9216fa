// Package render draws a layout tree onto a terminal cell grid. The tree
// lives in virtual display units; the renderer projects every region onto
// the current terminal size and draws each as a rounded box, with fills for
// highlight, preview and snap-destination states.
package render

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/gridsnap/gridsnap/internal/layout"
	"github.com/gridsnap/gridsnap/internal/pool"
)

// Border characters for region boxes.
const (
	cornerTL   = '╭'
	cornerTR   = '╮'
	cornerBL   = '╰'
	cornerBR   = '╯'
	cornerSqTL = '┌'
	cornerSqTR = '┐'
	cornerSqBL = '└'
	cornerSqBR = '┘'
	edgeH      = '─'
	edgeV      = '│'

	fillHighlight = '░'
	fillSnap      = '▒'
)

// defaultCornerRadius keeps corners rounded when the caller never sets one.
const defaultCornerRadius = 8

// Colors are the palette the renderer draws with. A nil color means the
// concern is not drawn: no Background leaves the terminal's own background.
type Colors struct {
	Background color.Color
	Border     color.Color
	Highlight  color.Color
	Preview    color.Color
	Snap       color.Color
	Active     color.Color
	Label      color.Color
}

// Renderer projects layout trees onto terminal cells.
type Renderer struct {
	colors Colors

	// ShowLabels draws each region's size in virtual units at its center.
	ShowLabels bool

	// CornerRadius, in virtual display units, rounds region corners when
	// positive; zero draws square corners.
	CornerRadius int
}

// New builds a renderer with the given palette, labels on and rounded
// corners.
func New(colors Colors) *Renderer {
	return &Renderer{colors: colors, ShowLabels: true, CornerRadius: defaultCornerRadius}
}

// Render draws the tree onto a width x height cell grid and returns it as
// newline-joined rows. The projection maps the root rectangle onto the full
// grid, so the tree's own units never need to match the terminal size.
func (r *Renderer) Render(root *layout.Node, width, height int) string {
	c := newCanvas(width, height)
	if root == nil || width < 2 || height < 2 {
		return c.String()
	}

	root.Walk(func(n *layout.Node) {
		if !n.IsLeaf() {
			return
		}
		r.drawRegion(c, root, n)
	})
	return c.String()
}

// drawRegion draws one leaf: its box, its state fill and its label.
func (r *Renderer) drawRegion(c *canvas, root, n *layout.Node) {
	rect := n.Rect.Inset(n.Margin)
	x0, y0, x1, y1 := project(rect, root.Rect, c.w, c.h)
	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}

	fg := r.colors.Border
	fill := rune(0)
	switch {
	case n.SnapDestination:
		fg = r.colors.Snap
		fill = fillSnap
	case n.Preview:
		fg = r.colors.Preview
		fill = fillHighlight
	case n.Resizing:
		fg = r.colors.Active
	case n.Highlighted:
		fg = r.colors.Highlight
		fill = fillHighlight
	}

	if r.colors.Background != nil {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				c.setBg(x, y, r.colors.Background)
			}
		}
	}
	if fill != 0 {
		for y := y0 + 1; y < y1-1; y++ {
			for x := x0 + 1; x < x1-1; x++ {
				c.set(x, y, fill, fg)
			}
		}
	}
	c.box(x0, y0, x1, y1, fg, r.CornerRadius > 0)

	if r.ShowLabels {
		label := fmt.Sprintf("%d×%d", rect.Width, rect.Height)
		c.text((x0+x1-len([]rune(label)))/2, (y0+y1-1)/2, label, r.colors.Label)
	}
}

// project maps a rectangle in virtual units onto cell coordinates, returning
// the half-open cell range [x0,x1) x [y0,y1).
func project(rect, display layout.Rect, w, h int) (x0, y0, x1, y1 int) {
	if display.Width <= 0 || display.Height <= 0 {
		return 0, 0, 0, 0
	}
	x0 = (rect.X - display.X) * w / display.Width
	y0 = (rect.Y - display.Y) * h / display.Height
	x1 = (rect.Right() - display.X) * w / display.Width
	y1 = (rect.Bottom() - display.Y) * h / display.Height
	return x0, y0, x1, y1
}

// cell is one terminal cell with its colors.
type cell struct {
	ch rune
	fg color.Color
	bg color.Color
}

type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i].ch = ' '
	}
	return c
}

// set writes a cell's rune and foreground, leaving its background alone.
func (c *canvas) set(x, y int, ch rune, fg color.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x].ch = ch
	c.cells[y*c.w+x].fg = fg
}

func (c *canvas) setBg(x, y int, bg color.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x].bg = bg
}

func (c *canvas) text(x, y int, s string, fg color.Color) {
	for i, ch := range []rune(s) {
		c.set(x+i, y, ch, fg)
	}
}

// box draws a border on the inside of the half-open cell range, rounded or
// square-cornered.
func (c *canvas) box(x0, y0, x1, y1 int, fg color.Color, rounded bool) {
	for x := x0 + 1; x < x1-1; x++ {
		c.set(x, y0, edgeH, fg)
		c.set(x, y1-1, edgeH, fg)
	}
	for y := y0 + 1; y < y1-1; y++ {
		c.set(x0, y, edgeV, fg)
		c.set(x1-1, y, edgeV, fg)
	}
	tl, tr, bl, br := cornerSqTL, cornerSqTR, cornerSqBL, cornerSqBR
	if rounded {
		tl, tr, bl, br = cornerTL, cornerTR, cornerBL, cornerBR
	}
	c.set(x0, y0, tl, fg)
	c.set(x1-1, y0, tr, fg)
	c.set(x0, y1-1, bl, fg)
	c.set(x1-1, y1-1, br, fg)
}

// String assembles the canvas into styled rows, batching runs of equal color
// into a single style invocation.
func (c *canvas) String() string {
	sb := pool.GetStringBuilder()
	defer pool.PutStringBuilder(sb)

	run := pool.GetStringBuilder()
	defer pool.PutStringBuilder(run)

	for y := 0; y < c.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		for i := 0; i < len(row); {
			j := i
			for j < len(row) && row[j].fg == row[i].fg && row[j].bg == row[i].bg {
				j++
			}
			run.Reset()
			for _, cl := range row[i:j] {
				run.WriteRune(cl.ch)
			}
			if row[i].fg == nil && row[i].bg == nil {
				sb.WriteString(run.String())
			} else {
				style := lipgloss.NewStyle()
				if row[i].fg != nil {
					style = style.Foreground(row[i].fg)
				}
				if row[i].bg != nil {
					style = style.Background(row[i].bg)
				}
				sb.WriteString(style.Render(run.String()))
			}
			i = j
		}
	}
	return sb.String()
}
