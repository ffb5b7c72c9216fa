// Package layout implements the partition tree that describes how a display
// is divided into snappable regions, and the geometry engine that derives
// absolute rectangles from it.
package layout

// Axis is the direction along which a node's children are arranged.
type Axis int

const (
	// Column arranges children left to right; edges are vertical.
	Column Axis = iota
	// Row arranges children top to bottom; edges are horizontal.
	Row
)

// String returns the axis name for logs and errors.
func (a Axis) String() string {
	if a == Row {
		return "row"
	}
	return "column"
}

// Geometry constants, in device units.
const (
	// MinRegionEdge is the smallest usable width or height of a region.
	// Edits that would push any rectangle at or below this are rejected.
	MinRegionEdge = 100
	// EdgeStep is the grid divider edges snap to, to keep sibling edges
	// aligned and avoid sub-pixel jitter.
	EdgeStep = 10
	// MaxMargin is the largest allowed per-region spacing.
	MaxMargin = 20
)

// Percentage is a node's position along its partition axis, as a fraction of
// the top-level display rectangle. A value with Last set marks the final
// child of a node: it has no stored edge and fills whatever space its
// siblings leave.
type Percentage struct {
	Axis Axis
	Frac float64 // fraction of the display span in [0, 1]; unused when Last
	Last bool
}

// ColumnAt returns a column edge at the given fraction of the display width.
func ColumnAt(frac float64) Percentage { return Percentage{Axis: Column, Frac: frac} }

// RowAt returns a row edge at the given fraction of the display height.
func RowAt(frac float64) Percentage { return Percentage{Axis: Row, Frac: frac} }

// LastColumn returns the fill sentinel for a column partition.
func LastColumn() Percentage { return Percentage{Axis: Column, Last: true} }

// LastRow returns the fill sentinel for a row partition.
func LastRow() Percentage { return Percentage{Axis: Row, Last: true} }

// sortKey orders children ascending by fraction, sentinels after everything.
func (p Percentage) sortKey() float64 {
	if p.Last {
		return sentinelMagnitude
	}
	return p.Frac
}

// Rect is an absolute rectangle in device units.
type Rect struct {
	X, Y, Width, Height int
}

// Right returns the x coordinate just past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate just past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Inset returns the rectangle shrunk symmetrically by m on all four sides.
func (r Rect) Inset(m int) Rect {
	return Rect{X: r.X + m, Y: r.Y + m, Width: r.Width - 2*m, Height: r.Height - 2*m}
}

// Node is one region in the partition tree. A leaf is a snappable region; an
// internal node partitions its rectangle among its children along one axis.
//
// Children are kept ordered ascending by fraction with the fill sentinel
// last, and their count is never exactly one. Rect is a cache of the last
// geometry pass, always derivable from the percentages and the display
// rectangle seeded at the root.
type Node struct {
	Percent  Percentage
	Children []*Node
	Rect     Rect

	// Margin is the spacing subtracted symmetrically from the region's
	// drawable and snap rectangles. Editing keeps it uniform tree-wide.
	Margin int

	// Transient state owned by the interactive operations. At most one
	// node in a tree has Resizing or Preview set at any time.
	Resizing        bool
	Preview         bool
	Highlighted     bool
	SnapDestination bool
	OriginalRect    Rect

	// parent is non-owning and nil at the root. It is only followed
	// upward; structural mutations keep it consistent.
	parent *Node
}

// New builds an internal node from the given children, which must already be
// in ascending fraction order with the sentinel last.
func New(p Percentage, children ...*Node) *Node {
	n := &Node{Percent: p, Children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

// NewLeaf builds a childless node.
func NewLeaf(p Percentage) *Node { return &Node{Percent: p} }

// Parent returns the node's parent, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Axis returns the partition axis of the node's children, falling back to
// the node's own axis for a leaf.
func (n *Node) Axis() Axis {
	if len(n.Children) > 0 {
		return n.Children[0].Percent.Axis
	}
	return n.Percent.Axis
}

// Walk visits the node and every descendant in pre-order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
