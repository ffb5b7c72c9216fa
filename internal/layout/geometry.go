package layout

import "math"

// CalculateRects derives absolute rectangles for the node and every
// descendant from the given work-area rectangle. This is the sole entry
// point by which a caller (re)seeds a tree against a display, and the
// recompute step after every edit.
//
// Edges are always computed as fractions of the rectangle passed here, not
// of intermediate ancestors, so sibling dividers across subtrees line up.
func (n *Node) CalculateRects(x, y, width, height int) {
	n.Rect = Rect{X: x, Y: y, Width: width, Height: height}
	n.layoutChildren(n.Rect)
}

// Recalculate re-runs the geometry pass against the node's cached rectangle.
func (n *Node) Recalculate() {
	n.CalculateRects(n.Rect.X, n.Rect.Y, n.Rect.Width, n.Rect.Height)
}

// layoutChildren assigns child rectangles inside n.Rect, threading the
// display rectangle down unchanged so percentages stay display-relative.
func (n *Node) layoutChildren(display Rect) {
	prevX := n.Rect.X
	prevY := n.Rect.Y

	for i, child := range n.Children {
		last := i == len(n.Children)-1

		switch child.Percent.Axis {
		case Column:
			edge := n.Rect.Right()
			if !last {
				edge = display.X + snapEdge(float64(display.Width)*child.Percent.Frac)
			}
			child.Rect = Rect{X: prevX, Y: n.Rect.Y, Width: edge - prevX, Height: n.Rect.Height}
			prevX = edge
		case Row:
			edge := n.Rect.Bottom()
			if !last {
				edge = display.Y + snapEdge(float64(display.Height)*child.Percent.Frac)
			}
			child.Rect = Rect{X: n.Rect.X, Y: prevY, Width: n.Rect.Width, Height: edge - prevY}
			prevY = edge
		}

		child.layoutChildren(display)
	}
}

// snapEdge rounds an edge offset to the nearest EdgeStep device units.
func snapEdge(v float64) int {
	return int(math.Round(math.Abs(v)/EdgeStep)) * EdgeStep
}

// ValidateRects reports whether every rectangle in the subtree is usable,
// i.e. strictly wider and taller than MinRegionEdge. It is the post-condition
// gate after any edit that changes geometry: callers revert the edit and
// recompute when it fails.
func (n *Node) ValidateRects() bool {
	if n.Rect.Width <= MinRegionEdge || n.Rect.Height <= MinRegionEdge {
		return false
	}
	for _, c := range n.Children {
		if !c.ValidateRects() {
			return false
		}
	}
	return true
}
