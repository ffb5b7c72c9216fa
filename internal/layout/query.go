package layout

// FindNode returns the first node in pre-order satisfying the predicate, or
// nil if none does.
func (n *Node) FindNode(pred func(*Node) bool) *Node {
	if pred(n) {
		return n
	}
	for _, c := range n.Children {
		if found := c.FindNode(pred); found != nil {
			return found
		}
	}
	return nil
}

// FindLeafAt returns the leaf whose rectangle contains the point, or nil.
func (n *Node) FindLeafAt(x, y int) *Node {
	return n.FindNode(func(c *Node) bool {
		return c.IsLeaf() && c.Rect.Contains(x, y)
	})
}

// FindDividerAt returns the node whose divider, inflated to a hit zone of
// max(dividerWidth, 2*margin) on either side of the edge, contains the
// point. A node's divider is its trailing edge: the right edge for a column
// node, the bottom edge for a row node. The root has no divider and fill
// sentinels have no stored edge, so neither is ever matched.
func (n *Node) FindDividerAt(x, y, dividerWidth int) *Node {
	if n.parent != nil && !n.Percent.Last {
		reach := max(dividerWidth, 2*n.Margin)
		switch n.Percent.Axis {
		case Column:
			if abs(x-n.Rect.Right()) <= reach && y >= n.Rect.Y && y < n.Rect.Bottom() {
				return n
			}
		case Row:
			if abs(y-n.Rect.Bottom()) <= reach && x >= n.Rect.X && x < n.Rect.Right() {
				return n
			}
		}
	}
	for _, c := range n.Children {
		if found := c.FindDividerAt(x, y, dividerWidth); found != nil {
			return found
		}
	}
	return nil
}

// abs returns the absolute value of an integer.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
