package op

import "github.com/gridsnap/gridsnap/internal/layout"

// Snapping resolves the drop destination for a window being dragged across
// the regions. While its enabling modifiers are held (an empty set means
// always enabled) it tracks the leaf under the pointer as the single
// snapping destination and asks the caller to show the region overlay.
type Snapping struct {
	NopHandler

	tree TreeFunc
	mods Modifier

	dest        *layout.Node
	showRegions bool
}

// NewSnapping builds the snapping operation. mods is the set of modifiers
// that enable it; zero means it is always enabled.
func NewSnapping(tree TreeFunc, mods Modifier) *Snapping {
	return &Snapping{tree: tree, mods: mods}
}

// SetModifiers swaps the enabling modifier set.
func (s *Snapping) SetModifiers(mods Modifier) { s.mods = mods }

// ShowRegions reports whether the region overlay should be visible.
func (s *Snapping) ShowRegions() bool { return s.showRegions }

func (s *Snapping) enabled(mods Modifier) bool {
	return s.mods == 0 || mods.Has(s.mods)
}

// Motion marks the leaf under the pointer as the snapping destination,
// clearing the mark everywhere else first. Without the enabling modifiers,
// or away from any leaf, it behaves as Cancel.
func (s *Snapping) Motion(ev Event) Result {
	if !s.enabled(ev.Mods) {
		return s.Cancel()
	}
	root := s.tree()
	if root == nil {
		return s.Cancel()
	}
	leaf := root.FindLeafAt(ev.X, ev.Y)
	if leaf == nil {
		return s.Cancel()
	}

	root.Walk(func(n *layout.Node) {
		n.SnapDestination = false
		n.Highlighted = false
	})
	leaf.SnapDestination = true
	leaf.Highlighted = true
	s.dest = leaf
	s.showRegions = true
	return Handled(true)
}

// SnapToRect returns the rectangle the dragged window should be moved to:
// the current destination inset by its own margin. The second return is
// false when no destination is marked.
func (s *Snapping) SnapToRect() (layout.Rect, bool) {
	if s.dest == nil {
		return layout.Rect{}, false
	}
	return s.dest.Rect.Inset(s.dest.Margin), true
}

// Cancel clears the destination mark and hides the region overlay. It only
// reports handled when something actually changed, so probing it on events
// that were never snapping-related stays a no-op.
func (s *Snapping) Cancel() Result {
	if !s.showRegions {
		return Result{}
	}
	if root := s.tree(); root != nil {
		root.Walk(func(n *layout.Node) {
			n.SnapDestination = false
			n.Highlighted = false
		})
	}
	s.dest = nil
	s.showRegions = false
	return Handled(true)
}
