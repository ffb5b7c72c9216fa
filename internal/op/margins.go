package op

import "github.com/gridsnap/gridsnap/internal/layout"

// Margins adjusts the spacing between regions uniformly: one key grows every
// node's margin by one device unit, another shrinks it, clamped to
// [0, layout.MaxMargin].
type Margins struct {
	NopHandler

	tree      TreeFunc
	growKey   Key
	shrinkKey Key
}

// NewMargins builds the margin adjustment operation with its two keys.
func NewMargins(tree TreeFunc, growKey, shrinkKey Key) *Margins {
	return &Margins{tree: tree, growKey: growKey, shrinkKey: shrinkKey}
}

// SetKeys swaps the grow/shrink keys.
func (m *Margins) SetKeys(growKey, shrinkKey Key) {
	m.growKey = growKey
	m.shrinkKey = shrinkKey
}

// KeyPress applies the margin delta tree-wide and recomputes geometry.
func (m *Margins) KeyPress(ev Event) Result {
	var delta int
	switch ev.Key {
	case m.growKey:
		delta = 1
	case m.shrinkKey:
		delta = -1
	default:
		return Result{}
	}

	root := m.tree()
	if root == nil {
		return Result{}
	}
	root.Walk(func(n *layout.Node) {
		n.Margin = min(max(n.Margin+delta, 0), layout.MaxMargin)
	})
	root.Recalculate()
	return Handled(true)
}
