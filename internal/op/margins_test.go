package op_test

import (
	"testing"

	"github.com/gridsnap/gridsnap/internal/layout"
	"github.com/gridsnap/gridsnap/internal/op"
)

const (
	growKey   = op.Key('m')
	shrinkKey = op.Key('n')
)

func TestMarginsGrowAndShrink(t *testing.T) {
	root := halves()
	m := op.NewMargins(treeFunc(root), growKey, shrinkKey)

	for range 3 {
		res := m.KeyPress(op.Event{Key: growKey})
		if !res.Handled || !res.Redraw {
			t.Fatalf("grow = %+v, want handled+redraw", res)
		}
	}
	root.Walk(func(n *layout.Node) {
		if n.Margin != 3 {
			t.Errorf("margin after three grows = %d, want 3", n.Margin)
		}
	})

	m.KeyPress(op.Event{Key: shrinkKey})
	root.Walk(func(n *layout.Node) {
		if n.Margin != 2 {
			t.Errorf("margin after shrink = %d, want 2", n.Margin)
		}
	})
}

func TestMarginsClampAtBounds(t *testing.T) {
	root := halves()
	m := op.NewMargins(treeFunc(root), growKey, shrinkKey)

	for range layout.MaxMargin + 5 {
		m.KeyPress(op.Event{Key: growKey})
	}
	root.Walk(func(n *layout.Node) {
		if n.Margin != layout.MaxMargin {
			t.Errorf("margin grew past the maximum: %d", n.Margin)
		}
	})

	for range layout.MaxMargin + 5 {
		m.KeyPress(op.Event{Key: shrinkKey})
	}
	root.Walk(func(n *layout.Node) {
		if n.Margin != 0 {
			t.Errorf("margin shrank below zero: %d", n.Margin)
		}
	})
}

func TestMarginsIgnoreOtherKeys(t *testing.T) {
	root := halves()
	m := op.NewMargins(treeFunc(root), growKey, shrinkKey)

	if res := m.KeyPress(op.Event{Key: op.Key('x')}); res.Handled {
		t.Errorf("unrelated key = %+v, want unhandled", res)
	}
	if res := m.KeyPress(op.Event{Key: op.KeyNone}); res.Handled {
		t.Errorf("empty key = %+v, want unhandled", res)
	}
}
