package op_test

import (
	"testing"

	"github.com/gridsnap/gridsnap/internal/layout"
	"github.com/gridsnap/gridsnap/internal/op"
)

func TestPresetShortcutAppliesSlot(t *testing.T) {
	slots := []*layout.Node{
		layout.DefaultLayout(),
		nil,
		layout.NewLeaf(layout.ColumnAt(0)),
	}

	var gotSlot int
	var gotPreset *layout.Node
	applied := false
	p := op.NewPresetShortcut(
		[]op.Key{'1', '2', '3', '4'},
		func() []*layout.Node { return slots },
		func(slot int, preset *layout.Node) {
			applied = true
			gotSlot = slot
			gotPreset = preset
		},
	)

	res := p.KeyPress(op.Event{Key: '3'})
	if !res.Handled || !res.Redraw {
		t.Fatalf("slot key = %+v, want handled+redraw", res)
	}
	if !applied || gotSlot != 2 || gotPreset != slots[2] {
		t.Errorf("applied slot %d preset %p, want slot 2 preset %p", gotSlot, gotPreset, slots[2])
	}
}

func TestPresetShortcutEmptySlot(t *testing.T) {
	slots := []*layout.Node{layout.DefaultLayout(), nil}
	applied := false
	p := op.NewPresetShortcut(
		[]op.Key{'1', '2', '3'},
		func() []*layout.Node { return slots },
		func(int, *layout.Node) { applied = true },
	)

	// Slot key with nil preset behind it, and slot key past the end of the
	// list: both consume the key without applying anything.
	for _, key := range []op.Key{'2', '3'} {
		res := p.KeyPress(op.Event{Key: key})
		if !res.Handled || res.Redraw {
			t.Errorf("empty slot key %q = %+v, want handled without redraw", key, res)
		}
	}
	if applied {
		t.Error("empty slot invoked the apply callback")
	}
}

func TestPresetShortcutIgnoresOtherKeys(t *testing.T) {
	p := op.NewPresetShortcut(
		[]op.Key{'1', '2'},
		func() []*layout.Node { return nil },
		func(int, *layout.Node) { t.Error("apply invoked for an unrelated key") },
	)

	if res := p.KeyPress(op.Event{Key: 'q'}); res.Handled {
		t.Errorf("unrelated key = %+v, want unhandled", res)
	}
}

func TestPresetShortcutSkipsUnboundSlots(t *testing.T) {
	slots := []*layout.Node{layout.DefaultLayout(), layout.DefaultLayout()}
	p := op.NewPresetShortcut(
		[]op.Key{'1', op.KeyNone},
		func() []*layout.Node { return slots },
		func(int, *layout.Node) { t.Error("apply invoked through an unbound slot") },
	)

	// Non-printable keys arrive as KeyNone; an unbound slot must not
	// swallow them.
	if res := p.KeyPress(op.Event{Key: op.KeyNone}); res.Handled {
		t.Errorf("unbound slot key = %+v, want unhandled", res)
	}
}
