package layout

import (
	"slices"

	"github.com/charmbracelet/log"
)

// InsertChild splices the child into position, preserving the ascending
// fraction order of the children. Inserting a node that is already present
// or that carries a fill sentinel is logged and ignored.
func (n *Node) InsertChild(child *Node) {
	if child.Percent.Last {
		log.Warn("refusing to insert fill sentinel", "axis", child.Percent.Axis)
		return
	}
	if slices.Contains(n.Children, child) {
		log.Warn("refusing to insert duplicate child", "frac", child.Percent.Frac)
		return
	}

	child.parent = n
	idx := len(n.Children)
	for i, c := range n.Children {
		if c.Percent.sortKey() > child.Percent.sortKey() {
			idx = i
			break
		}
	}
	n.Children = slices.Insert(n.Children, idx, child)
}

// SplitLeaf converts a leaf into an internal node with exactly two children:
// edge, a stored-edge node, and a fill sentinel on the same axis. Both
// inherit the leaf's margin. It returns the sentinel.
func (n *Node) SplitLeaf(edge *Node) *Node {
	filler := NewLeaf(Percentage{Axis: edge.Percent.Axis, Last: true})
	filler.Margin = n.Margin
	edge.Margin = n.Margin
	edge.parent = n
	filler.parent = n
	n.Children = []*Node{edge, filler}
	return filler
}

// Delete removes the target from the subtree. A parent left with a single
// child would violate the tree invariants, so a two-child parent collapses
// back into a leaf instead; with three or more children the one match is
// spliced out. It reports whether a deletion occurred.
func (n *Node) Delete(target *Node) bool {
	for i, c := range n.Children {
		if c == target {
			if len(n.Children) == 2 {
				for _, ch := range n.Children {
					ch.parent = nil
				}
				n.Children = nil
			} else {
				c.parent = nil
				n.Children = slices.Delete(n.Children, i, i+1)
			}
			return true
		}
		if c.Delete(target) {
			return true
		}
	}
	return false
}

// Clone deep-copies the subtree: structure, percentages, margins, cached
// rectangles and the Resizing/Preview flags. Parent links are rebuilt inside
// the clone; the clone root has none.
func (n *Node) Clone() *Node {
	c := &Node{
		Percent:  n.Percent,
		Rect:     n.Rect,
		Margin:   n.Margin,
		Resizing: n.Resizing,
		Preview:  n.Preview,
	}
	for _, child := range n.Children {
		cc := child.Clone()
		cc.parent = c
		c.Children = append(c.Children, cc)
	}
	return c
}

// Revert resets the node's percentage, rectangle, flags and children to the
// snapshot's, enabling the speculative-edit-then-roll-back pattern the
// interactive operations rely on. The snapshot itself is not retained.
func (n *Node) Revert(snapshot *Node) {
	n.Percent = snapshot.Percent
	n.Rect = snapshot.Rect
	n.Margin = snapshot.Margin
	n.Resizing = snapshot.Resizing
	n.Preview = snapshot.Preview
	n.Highlighted = false
	n.SnapDestination = false
	n.OriginalRect = Rect{}

	n.Children = nil
	for _, sc := range snapshot.Children {
		c := sc.Clone()
		c.parent = n
		n.Children = append(n.Children, c)
	}
}
