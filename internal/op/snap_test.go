package op_test

import (
	"testing"

	"github.com/gridsnap/gridsnap/internal/layout"
	"github.com/gridsnap/gridsnap/internal/op"
)

func TestSnappingMarksDestination(t *testing.T) {
	root := halves()
	root.Children[0].Margin = 8
	s := op.NewSnapping(treeFunc(root), op.ModShift)

	res := s.Motion(op.Event{X: 200, Y: 200, Mods: op.ModShift})
	if !res.Handled || !res.Redraw {
		t.Fatalf("motion over a leaf = %+v, want handled+redraw", res)
	}
	if !s.ShowRegions() {
		t.Error("region overlay not requested")
	}
	if !root.Children[0].SnapDestination || !root.Children[0].Highlighted {
		t.Error("hovered leaf not marked as the destination")
	}

	rect, ok := s.SnapToRect()
	if !ok {
		t.Fatal("no snap rectangle for a marked destination")
	}
	if want := (layout.Rect{X: 8, Y: 8, Width: 484, Height: 784}); rect != want {
		t.Errorf("snap rect = %+v, want %+v", rect, want)
	}
}

func TestSnappingMovesMarkBetweenLeaves(t *testing.T) {
	root := halves()
	s := op.NewSnapping(treeFunc(root), op.ModShift)

	s.Motion(op.Event{X: 200, Y: 200, Mods: op.ModShift})
	s.Motion(op.Event{X: 800, Y: 200, Mods: op.ModShift})

	if root.Children[0].SnapDestination || root.Children[0].Highlighted {
		t.Error("previous destination mark not cleared")
	}
	if !root.Children[1].SnapDestination {
		t.Error("new destination not marked")
	}
	rect, _ := s.SnapToRect()
	if want := (layout.Rect{X: 500, Y: 0, Width: 500, Height: 800}); rect != want {
		t.Errorf("snap rect = %+v, want %+v", rect, want)
	}
}

func TestSnappingCancelsWithoutModifier(t *testing.T) {
	root := halves()
	s := op.NewSnapping(treeFunc(root), op.ModShift)

	s.Motion(op.Event{X: 200, Y: 200, Mods: op.ModShift})
	res := s.Motion(op.Event{X: 200, Y: 200})
	if !res.Handled || !res.Redraw {
		t.Fatalf("motion after modifier dropped = %+v, want handled+redraw", res)
	}
	root.Walk(func(n *layout.Node) {
		if n.SnapDestination || n.Highlighted {
			t.Errorf("marks survive cancel on node at %+v", n.Rect)
		}
	})
	if _, ok := s.SnapToRect(); ok {
		t.Error("snap rectangle resolved after cancel")
	}
	if s.ShowRegions() {
		t.Error("region overlay still requested after cancel")
	}

	// With nothing left to clear, further cancels stay silent.
	if res := s.Motion(op.Event{X: 200, Y: 200}); res.Handled {
		t.Errorf("idle motion = %+v, want unhandled", res)
	}
	if res := s.Cancel(); res.Handled {
		t.Errorf("idle cancel = %+v, want unhandled", res)
	}
}

func TestSnappingCancelsOffTree(t *testing.T) {
	root := halves()
	s := op.NewSnapping(treeFunc(root), op.ModShift)

	s.Motion(op.Event{X: 200, Y: 200, Mods: op.ModShift})
	res := s.Motion(op.Event{X: 1200, Y: 200, Mods: op.ModShift})
	if !res.Handled {
		t.Fatalf("motion off the tree = %+v, want handled", res)
	}
	if _, ok := s.SnapToRect(); ok {
		t.Error("destination survives leaving the tree")
	}
}

func TestSnappingAlwaysEnabledWithEmptyModifierSet(t *testing.T) {
	root := halves()
	s := op.NewSnapping(treeFunc(root), 0)

	res := s.Motion(op.Event{X: 200, Y: 200})
	if !res.Handled {
		t.Fatalf("unmodified motion = %+v, want handled with an empty modifier set", res)
	}
	if !root.Children[0].SnapDestination {
		t.Error("destination not marked")
	}
}
