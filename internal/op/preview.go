package op

import "github.com/gridsnap/gridsnap/internal/layout"

// PreviewSplit shows a live preview of a new split while a designated
// modifier is held and the pointer hovers a leaf: one modifier previews a
// column split, the other a row split. The preview follows the pointer and
// commits on a primary press; leaving the parent region or releasing the
// modifiers rolls the whole tree back to a snapshot taken when the preview
// started.
type PreviewSplit struct {
	NopHandler

	tree      TreeFunc
	columnMod Modifier
	rowMod    Modifier

	active   *layout.Node // the preview node; nil when idle
	snapshot *layout.Node // pre-preview tree for rollback
}

// NewPreviewSplit builds the split preview operation with its two mode
// modifiers.
func NewPreviewSplit(tree TreeFunc, columnMod, rowMod Modifier) *PreviewSplit {
	return &PreviewSplit{tree: tree, columnMod: columnMod, rowMod: rowMod}
}

// Active returns the current preview node, or nil.
func (p *PreviewSplit) Active() *layout.Node { return p.active }

// SetModifiers swaps the column/row mode modifiers.
func (p *PreviewSplit) SetModifiers(columnMod, rowMod Modifier) {
	p.columnMod = columnMod
	p.rowMod = rowMod
}

func (p *PreviewSplit) enabled(mods Modifier) bool {
	return mods.Has(p.columnMod) || mods.Has(p.rowMod)
}

// Motion starts, moves or cancels the preview depending on the pointer and
// the held modifiers.
func (p *PreviewSplit) Motion(ev Event) Result {
	root := p.tree()
	if root == nil {
		return Result{}
	}

	if p.active == nil {
		if !p.enabled(ev.Mods) {
			return Result{}
		}
		leaf := root.FindLeafAt(ev.X, ev.Y)
		if leaf == nil {
			return Result{}
		}
		return p.begin(root, leaf, ev)
	}

	// Dropping the modifiers or leaving the parent region aborts.
	if !p.enabled(ev.Mods) {
		return p.Cancel()
	}
	parent := p.active.Parent()
	if parent == nil || !parent.Rect.Contains(ev.X, ev.Y) {
		return p.Cancel()
	}

	prev := p.active.Percent
	p.active.Percent.Frac = fracAt(root, p.active.Percent.Axis, ev.X, ev.Y)
	root.Recalculate()
	if !root.ValidateRects() {
		p.active.Percent = prev
		root.Recalculate()
	}
	return Handled(true)
}

// ButtonPress commits the preview permanently on a primary press, provided
// the current geometry is valid.
func (p *PreviewSplit) ButtonPress(ev Event) Result {
	if p.active == nil || ev.Button != ButtonPrimary {
		return Result{}
	}
	root := p.tree()
	if !root.ValidateRects() {
		return Result{}
	}

	p.snapshot = nil
	root.Walk(func(n *layout.Node) {
		n.Preview = false
		n.OriginalRect = layout.Rect{}
	})
	p.active = nil
	return Handled(true)
}

// KeyRelease cancels the preview once neither mode modifier is held.
func (p *PreviewSplit) KeyRelease(ev Event) Result {
	if p.active == nil || p.enabled(ev.Mods) {
		return Result{}
	}
	return p.Cancel()
}

// Cancel rolls the tree back to the pre-preview snapshot.
func (p *PreviewSplit) Cancel() Result {
	if p.active == nil {
		return Result{}
	}
	root := p.tree()
	root.Revert(p.snapshot)
	p.snapshot = nil
	p.active = nil
	return Handled(true)
}

// begin snapshots the tree and inserts the preview node. If the hovered
// leaf's siblings already partition along the requested axis the preview
// joins them as a new sibling; otherwise the leaf itself is split in two,
// the preview edge plus a fill sentinel inheriting the leaf's margin.
func (p *PreviewSplit) begin(root, leaf *layout.Node, ev Event) Result {
	axis := layout.Column
	if !ev.Mods.Has(p.columnMod) {
		axis = layout.Row
	}

	p.snapshot = root.Clone()

	preview := layout.NewLeaf(layout.Percentage{Axis: axis, Frac: fracAt(root, axis, ev.X, ev.Y)})
	preview.Preview = true
	preview.Margin = leaf.Margin

	if parent := leaf.Parent(); parent != nil && parent.Axis() == axis {
		parent.InsertChild(preview)
	} else {
		leaf.SplitLeaf(preview)
	}

	root.Recalculate()
	if !root.ValidateRects() {
		// The very first position is already invalid; abort before the
		// preview ever becomes visible.
		root.Revert(p.snapshot)
		p.snapshot = nil
		return Handled(false)
	}

	p.active = preview
	return Handled(true)
}
