// Package app provides the interactive layout editor: a Bubble Tea model
// that owns one layout tree per display, feeds input events to the editing
// operations and renders the result.
package app

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/gridsnap/gridsnap/internal/config"
	"github.com/gridsnap/gridsnap/internal/layout"
	"github.com/gridsnap/gridsnap/internal/op"
	"github.com/gridsnap/gridsnap/internal/render"
	"github.com/gridsnap/gridsnap/internal/store"
	"github.com/gridsnap/gridsnap/internal/theme"
)

// Virtual display dimensions. Trees always live in this coordinate space;
// terminal cells and screen pixels are projected in and out of it, so a
// layout keeps its meaning across displays of any size.
const (
	VirtualWidth  = 1600
	VirtualHeight = 1000
)

// NumDisplays is how many virtual displays the editor cycles through.
const NumDisplays = 4

// Editor is the Bubble Tea model for the layout editor.
type Editor struct {
	cfg      *config.Config
	bindings config.Bindings
	st       *store.Store
	renderer *render.Renderer

	displays map[int]*layout.Node
	current  int

	resize   *op.Resize
	preview  *op.PreviewSplit
	margins  *op.Margins
	presets  *op.PresetShortcut
	snapping *op.Snapping
	dispatch *op.Dispatcher

	// Terminal size in cells.
	width  int
	height int

	showHelp bool
	status   string

	watcher *fsnotify.Watcher
}

// New builds an editor from the given configuration and store. Each display
// starts from its persisted layout, or the default grid when none exists.
func New(cfg *config.Config, st *store.Store) *Editor {
	e := &Editor{
		cfg:      cfg,
		bindings: config.ResolveBindings(cfg.Input),
		st:       st,
		displays: make(map[int]*layout.Node),
	}

	for d := 0; d < NumDisplays; d++ {
		root := st.LoadLayout(d)
		if root == nil {
			root = layout.DefaultLayout()
		}
		root.CalculateRects(0, 0, VirtualWidth, VirtualHeight)
		e.displays[d] = root
	}

	tree := func() *layout.Node { return e.displays[e.current] }
	e.resize = op.NewResize(tree, cfg.Appearance.DividerWidth)
	e.preview = op.NewPreviewSplit(tree, e.bindings.ColumnSplitMods, e.bindings.RowSplitMods)
	e.margins = op.NewMargins(tree, e.bindings.GrowMarginKey, e.bindings.ShrinkMarginKey)
	e.presets = op.NewPresetShortcut(e.bindings.PresetKeys, e.presetList, e.applyPreset)
	e.snapping = op.NewSnapping(tree, e.bindings.SnapMods)

	// The preview goes first: while one is active its edge sits under the
	// pointer, so the committing press must land before resize can grab
	// that edge as a divider. An active drag or preview wins over
	// destination tracking; keys fall through margins to the preset row.
	e.dispatch = op.NewDispatcher(e.preview, e.resize, e.margins, e.presets, e.snapping)

	e.renderer = render.New(e.palette())
	e.renderer.CornerRadius = cfg.Appearance.CornerRadius
	return e
}

// Tree returns the current display's layout tree.
func (e *Editor) Tree() *layout.Node { return e.displays[e.current] }

// CurrentDisplay returns the index of the display being edited.
func (e *Editor) CurrentDisplay() int { return e.current }

// HelpVisible reports whether the help overlay is showing.
func (e *Editor) HelpVisible() bool { return e.showHelp }

// SwitchDisplay makes another display current, cancelling any in-flight
// operation first so its state cannot leak across trees.
func (e *Editor) SwitchDisplay(d int) {
	if d == e.current {
		return
	}
	e.dispatch.CancelAll()
	e.saveIfIdle()
	e.current = ((d % NumDisplays) + NumDisplays) % NumDisplays
	e.status = fmt.Sprintf("Display %d", e.current+1)
}

// presetList resolves the preset slots into bare trees for the shortcut
// operation.
func (e *Editor) presetList() []*layout.Node {
	list := e.st.Presets(len(e.bindings.PresetKeys))
	trees := make([]*layout.Node, len(list))
	for i, p := range list {
		if p != nil {
			trees[i] = p.Layout
		}
	}
	return trees
}

// applyPreset adopts a clone of a preset as the current display's tree and
// persists it.
func (e *Editor) applyPreset(slot int, preset *layout.Node) {
	e.dispatch.CancelAll()

	root := preset.Clone()
	root.CalculateRects(0, 0, VirtualWidth, VirtualHeight)
	e.displays[e.current] = root

	if err := e.st.SaveLayout(e.current, root); err != nil {
		log.Warn("Could not persist applied preset", "err", err)
	}
	e.status = fmt.Sprintf("Applied preset %d", slot+1)
}

// savePresetSlot stores the current tree as a user preset in the given slot.
func (e *Editor) savePresetSlot(slot int) {
	if slot < 0 || slot >= len(e.bindings.PresetKeys) {
		return
	}
	p := store.NewPreset(fmt.Sprintf("Custom %d", slot+1), e.Tree().Clone())
	if err := e.st.SavePreset(slot, p); err != nil {
		log.Warn("Could not save preset", "slot", slot, "err", err)
		e.status = "Could not save preset"
		return
	}
	e.status = fmt.Sprintf("Saved preset %d", slot+1)
}

// saveIfIdle persists the current tree unless an operation is mid-flight,
// so transient preview or resize state never reaches disk.
func (e *Editor) saveIfIdle() {
	if e.resize.Active() != nil || e.preview.Active() != nil {
		return
	}
	if err := e.st.SaveLayout(e.current, e.Tree()); err != nil {
		log.Warn("Could not persist layout", "display", e.current, "err", err)
	}
}

// saveAll persists every idle display, for shutdown.
func (e *Editor) saveAll() {
	e.dispatch.CancelAll()
	for d, root := range e.displays {
		if err := e.st.SaveLayout(d, root); err != nil {
			log.Warn("Could not persist layout", "display", d, "err", err)
		}
	}
}

// applyConfig swaps in a freshly loaded configuration, rebinding every
// operation in place so active trees survive a reload.
func (e *Editor) applyConfig(cfg *config.Config) {
	e.cfg = cfg
	e.bindings = config.ResolveBindings(cfg.Input)

	e.resize.SetDividerWidth(cfg.Appearance.DividerWidth)
	e.preview.SetModifiers(e.bindings.ColumnSplitMods, e.bindings.RowSplitMods)
	e.margins.SetKeys(e.bindings.GrowMarginKey, e.bindings.ShrinkMarginKey)
	e.presets.SetKeys(e.bindings.PresetKeys)
	e.snapping.SetModifiers(e.bindings.SnapMods)

	if err := theme.Initialize(cfg.Appearance.Theme); err != nil {
		log.Warn("Could not initialize theme", "theme", cfg.Appearance.Theme, "err", err)
	}
	e.renderer = render.New(e.palette())
	e.renderer.CornerRadius = cfg.Appearance.CornerRadius
	e.status = "Configuration reloaded"
}

// palette resolves the render colors: a configured color with a non-zero
// alpha wins over the theme.
func (e *Editor) palette() render.Colors {
	a := e.cfg.Appearance
	return render.Colors{
		Background: colorOr(a.Background, theme.RegionBackground()),
		Border:     colorOr(a.Border, theme.RegionBorder()),
		Highlight:  colorOr(a.Highlight, theme.RegionHighlight()),
		Preview:    theme.PreviewBorder(),
		Snap:       theme.SnapDestination(),
		Active:     theme.DividerActive(),
		Label:      theme.StatusBarFg(),
	}
}

func colorOr(c config.RGBA, fallback color.Color) color.Color {
	if c[3] == 0 {
		return fallback
	}
	return theme.FromRGBA(c)
}

// toUnits projects a terminal cell position into virtual display units,
// using the cell's center so a cell maps to the units it covers.
func (e *Editor) toUnits(cellX, cellY int) (int, int) {
	if e.width <= 0 || e.height <= 0 {
		return 0, 0
	}
	x := (2*cellX + 1) * VirtualWidth / (2 * e.width)
	y := (2*cellY + 1) * VirtualHeight / (2 * e.contentHeight())
	return x, y
}

// contentHeight is the canvas height, the terminal minus the status bar.
func (e *Editor) contentHeight() int {
	if e.height <= 1 {
		return 1
	}
	return e.height - 1
}
