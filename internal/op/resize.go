package op

import "github.com/gridsnap/gridsnap/internal/layout"

// Resize drags a divider to move it, or deletes it with the secondary
// button. It is idle until a press lands on a divider hit zone; while a drag
// is active it owns the one node whose Resizing flag is set.
type Resize struct {
	NopHandler

	tree         TreeFunc
	dividerWidth int

	active       *layout.Node
	startPercent layout.Percentage
}

// NewResize builds the divider resize operation. dividerWidth is the base
// hit-zone reach around each divider, in device units.
func NewResize(tree TreeFunc, dividerWidth int) *Resize {
	return &Resize{tree: tree, dividerWidth: dividerWidth}
}

// Active returns the node currently being resized, or nil.
func (r *Resize) Active() *layout.Node { return r.active }

// SetDividerWidth adjusts the divider hit-zone reach.
func (r *Resize) SetDividerWidth(w int) { r.dividerWidth = w }

// ButtonPress starts a drag on a divider (primary), deletes a divider
// (secondary), or stops an in-flight drag. Stopping on a press should not
// happen under normal input sequencing, where release ends the drag, but a
// different input source might deliver it; treat it as the release.
func (r *Resize) ButtonPress(ev Event) Result {
	root := r.tree()
	if root == nil {
		return Result{}
	}

	if r.active == nil && ev.Button == ButtonSecondary {
		divider := root.FindDividerAt(ev.X, ev.Y, r.dividerWidth)
		if divider == nil {
			return Result{}
		}
		root.Delete(divider)
		root.Recalculate()
		return Handled(true)
	}

	if r.active != nil && (ev.Button == ButtonPrimary || ev.Button == ButtonSecondary) {
		return r.stop(root)
	}

	if ev.Button == ButtonPrimary {
		if divider := root.FindDividerAt(ev.X, ev.Y, r.dividerWidth); divider != nil {
			r.start(root, divider)
			return Handled(true)
		}
	}
	return Result{}
}

// Motion moves the active divider to the pointer, rejecting positions that
// would squeeze any region below the minimum size. Rejection is silent: the
// percentage reverts and the drag simply appears to stick.
func (r *Resize) Motion(ev Event) Result {
	if r.active == nil {
		return Result{}
	}
	root := r.tree()

	prev := r.active.Percent
	r.active.Percent.Frac = fracAt(root, r.active.Percent.Axis, ev.X, ev.Y)
	root.Recalculate()
	if !root.ValidateRects() {
		r.active.Percent = prev
		root.Recalculate()
	}
	return Handled(true)
}

// ButtonRelease ends the active drag.
func (r *Resize) ButtonRelease(Event) Result {
	if r.active == nil {
		return Result{}
	}
	return r.stop(r.tree())
}

// Cancel aborts the active drag, restoring the divider to its pre-drag
// position.
func (r *Resize) Cancel() Result {
	if r.active == nil {
		return Result{}
	}
	root := r.tree()
	r.active.Percent = r.startPercent
	root.Recalculate()
	return r.stop(root)
}

// start begins a drag. Before anything moves, the divider is wiggled by 5%
// against a snapshot of every rectangle to discover which regions the drag
// will visibly affect; those are flagged Highlighted for the renderer. The
// wiggle is fully undone before returning, leaving only flags changed.
func (r *Resize) start(root, node *layout.Node) {
	root.Walk(func(n *layout.Node) { n.OriginalRect = n.Rect })

	orig := node.Percent
	node.Percent.Frac *= 0.95
	root.Recalculate()
	root.Walk(func(n *layout.Node) {
		if n.Rect != n.OriginalRect {
			n.Highlighted = true
		}
	})
	node.Percent = orig
	root.Recalculate()

	node.Resizing = true
	r.active = node
	r.startPercent = orig
}

func (r *Resize) stop(root *layout.Node) Result {
	root.Walk(func(n *layout.Node) {
		n.Resizing = false
		n.Highlighted = false
		n.OriginalRect = layout.Rect{}
	})
	r.active = nil
	return Handled(true)
}
