package app

import (
	"image/color"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/gridsnap/gridsnap/internal/config"
	"github.com/gridsnap/gridsnap/internal/layout"
	"github.com/gridsnap/gridsnap/internal/op"
	"github.com/gridsnap/gridsnap/internal/store"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	return New(config.DefaultConfig(), store.NewAt(t.TempDir()))
}

// =============================================================================
// Construction Tests
// =============================================================================

func TestNewStartsWithDefaultGrid(t *testing.T) {
	e := newTestEditor(t)

	root := e.Tree()
	if root == nil {
		t.Fatal("no tree for the initial display")
	}
	if len(root.Children) != 2 {
		t.Fatalf("initial tree has %d children, want the 2x2 grid", len(root.Children))
	}
	if root.Rect.Width != VirtualWidth || root.Rect.Height != VirtualHeight {
		t.Errorf("root rect = %+v, want the virtual display", root.Rect)
	}
	if err := root.IntegrityError(); err != nil {
		t.Errorf("initial tree integrity: %v", err)
	}
}

func TestNewLoadsPersistedLayout(t *testing.T) {
	st := store.NewAt(t.TempDir())
	saved := layout.New(layout.ColumnAt(0),
		layout.NewLeaf(layout.ColumnAt(0.7)),
		layout.NewLeaf(layout.LastColumn()),
	)
	if err := st.SaveLayout(0, saved); err != nil {
		t.Fatal(err)
	}

	e := New(config.DefaultConfig(), st)
	if got := e.Tree().Children[0].Percent.Frac; got != 0.7 {
		t.Errorf("display 0 fraction = %v, want the persisted 0.7", got)
	}
	// Displays without a stored layout fall back to the default grid.
	e.SwitchDisplay(1)
	if len(e.Tree().Children[0].Children) != 2 {
		t.Error("display 1 did not fall back to the default grid")
	}
}

// =============================================================================
// Display Switching Tests
// =============================================================================

func TestSwitchDisplayWrapsAndPersists(t *testing.T) {
	e := newTestEditor(t)

	e.SwitchDisplay(NumDisplays + 1)
	if e.CurrentDisplay() != 1 {
		t.Errorf("display after wrap = %d, want 1", e.CurrentDisplay())
	}
	e.SwitchDisplay(-1)
	if e.CurrentDisplay() != NumDisplays-1 {
		t.Errorf("display after negative wrap = %d, want %d", e.CurrentDisplay(), NumDisplays-1)
	}

	// Switching away persists the display that was being edited.
	if e.st.LoadLayout(1) == nil {
		t.Error("display 1 was not persisted on switch")
	}
}

// =============================================================================
// Preset Tests
// =============================================================================

func TestApplyPresetClonesAndPersists(t *testing.T) {
	e := newTestEditor(t)

	preset := layout.New(layout.ColumnAt(0),
		layout.NewLeaf(layout.ColumnAt(0.5)),
		layout.NewLeaf(layout.LastColumn()),
	)
	e.applyPreset(0, preset)

	root := e.Tree()
	if root == preset {
		t.Fatal("preset applied without cloning")
	}
	if len(root.Children) != 2 || root.Children[0].Percent.Frac != 0.5 {
		t.Error("applied tree does not match the preset")
	}
	if root.Rect.Width != VirtualWidth {
		t.Error("applied tree has no geometry")
	}
	if e.st.LoadLayout(0) == nil {
		t.Error("applied preset was not persisted")
	}

	// Editing the active tree must not reach back into the preset.
	root.Children[0].Percent.Frac = 0.9
	if preset.Children[0].Percent.Frac != 0.5 {
		t.Error("editing the applied tree mutated the preset")
	}
}

func TestSavePresetSlotShadowsBuiltin(t *testing.T) {
	e := newTestEditor(t)

	e.savePresetSlot(2)

	p := e.st.LoadPreset(2)
	if p == nil {
		t.Fatal("saved preset slot is empty")
	}
	if p.Name != "Custom 3" {
		t.Errorf("preset name = %q", p.Name)
	}

	list := e.presetList()
	if len(list) != len(e.bindings.PresetKeys) {
		t.Fatalf("preset list has %d slots, want %d", len(list), len(e.bindings.PresetKeys))
	}
	if len(list[2].Children) != 2 {
		t.Error("slot 2 does not hold the saved grid")
	}
}

func TestPresetShortcutThroughDispatcher(t *testing.T) {
	e := newTestEditor(t)

	// Key '1' applies the first builtin preset, two column halves.
	res := e.dispatch.KeyPress(op.Event{Key: op.Key('1')})
	if !res.Handled {
		t.Fatalf("preset key = %+v, want handled", res)
	}
	root := e.Tree()
	if len(root.Children) != 2 || !root.Children[0].IsLeaf() {
		t.Error("preset key did not apply the halves preset")
	}
}

// =============================================================================
// Input Translation Tests
// =============================================================================

func TestToUnitsProjectsCellCenters(t *testing.T) {
	e := newTestEditor(t)
	e.width = 80
	e.height = 26 // one row goes to the status bar

	x, y := e.toUnits(40, 12)
	if x != 810 {
		t.Errorf("x = %d, want 810", x)
	}
	if y != 500 {
		t.Errorf("y = %d, want 500", y)
	}

	if x, y := e.toUnits(0, 0); x != 10 || y != 20 {
		t.Errorf("origin cell = (%d,%d), want (10,20)", x, y)
	}
}

func TestMapMods(t *testing.T) {
	tests := []struct {
		in   tea.KeyMod
		want op.Modifier
	}{
		{tea.ModShift, op.ModShift},
		{tea.ModCtrl, op.ModCtrl},
		{tea.ModAlt, op.ModAlt},
		{tea.ModSuper, op.ModSuper},
		{tea.ModMeta, op.ModSuper},
		{tea.ModCtrl | tea.ModShift, op.ModCtrl | op.ModShift},
		{0, 0},
	}
	for _, tt := range tests {
		if got := mapMods(tt.in); got != tt.want {
			t.Errorf("mapMods(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMapButton(t *testing.T) {
	if got := mapButton(tea.MouseLeft); got != op.ButtonPrimary {
		t.Errorf("left = %v, want primary", got)
	}
	if got := mapButton(tea.MouseRight); got != op.ButtonSecondary {
		t.Errorf("right = %v, want secondary", got)
	}
	if got := mapButton(tea.MouseMiddle); got != op.ButtonNone {
		t.Errorf("middle = %v, want none", got)
	}
}

func TestKeyRune(t *testing.T) {
	if got := keyRune(tea.Key{Text: "m", Code: 'm'}); got != op.Key('m') {
		t.Errorf("text key = %v, want 'm'", got)
	}
	if got := keyRune(tea.Key{Code: '+'}); got != op.Key('+') {
		t.Errorf("code key = %v, want '+'", got)
	}
	if got := keyRune(tea.Key{Code: tea.KeyEscape}); got != op.KeyNone {
		t.Errorf("escape = %v, want none", got)
	}
}

// =============================================================================
// End To End Resize Test
// =============================================================================

func TestMouseResizeFlow(t *testing.T) {
	e := newTestEditor(t)
	e.width = 80
	e.height = 26

	// Cell (40,12) projects to unit (810,500), inside the reach of the
	// center divider at 800.
	press := e.mouseEvent(tea.Mouse{X: 40, Y: 12, Button: tea.MouseLeft})
	if res := e.dispatch.ButtonPress(press); !res.Handled {
		t.Fatalf("press on divider = %+v, want handled", res)
	}
	if e.resize.Active() == nil {
		t.Fatal("no active resize after pressing the divider")
	}

	move := e.mouseEvent(tea.Mouse{X: 48, Y: 12, Button: tea.MouseLeft})
	e.dispatch.Motion(move)
	if got := e.Tree().Children[0].Rect.Width; got != 970 {
		t.Errorf("left column width after drag = %d, want 970", got)
	}

	e.dispatch.ButtonRelease(move)
	if e.resize.Active() != nil {
		t.Error("resize still active after release")
	}
}

func TestMousePreviewCommitFlow(t *testing.T) {
	e := newTestEditor(t)
	e.width = 80
	e.height = 26

	// Cell (20,6) projects to unit (410,260), inside the top-left leaf of
	// the default grid.
	move := e.mouseEvent(tea.Mouse{X: 20, Y: 6, Mod: tea.ModCtrl})
	if res := e.dispatch.Motion(move); !res.Handled {
		t.Fatalf("motion with column modifier = %+v, want handled", res)
	}
	if e.preview.Active() == nil {
		t.Fatal("no active preview after modified motion over a leaf")
	}

	press := e.mouseEvent(tea.Mouse{X: 20, Y: 6, Button: tea.MouseLeft, Mod: tea.ModCtrl})
	if res := e.dispatch.ButtonPress(press); !res.Handled {
		t.Fatalf("commit press = %+v, want handled", res)
	}
	if e.preview.Active() != nil {
		t.Error("preview still active after the commit press")
	}
	if e.resize.Active() != nil {
		t.Error("commit press started a resize drag instead of committing")
	}
	e.Tree().Walk(func(n *layout.Node) {
		if n.Preview {
			t.Errorf("preview flag survives the commit on node at %+v", n.Rect)
		}
	})
	if err := e.Tree().IntegrityError(); err != nil {
		t.Errorf("tree unsound after commit: %v", err)
	}
}

func TestAppearanceConfigReachesRenderer(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.CornerRadius = 0
	cfg.Appearance.Background = config.RGBA{9, 9, 9, 255}
	e := New(cfg, store.NewAt(t.TempDir()))

	if e.renderer.CornerRadius != 0 {
		t.Errorf("renderer corner radius = %d, want 0 from config", e.renderer.CornerRadius)
	}
	if got := e.palette().Background; got != (color.RGBA{R: 9, G: 9, B: 9, A: 255}) {
		t.Errorf("palette background = %v, want the configured color", got)
	}
}
