package app

import (
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/gridsnap/gridsnap/internal/config"
	"github.com/gridsnap/gridsnap/internal/op"
)

// ConfigChangedMsg signals that the configuration file was modified on disk.
type ConfigChangedMsg struct{}

// Init starts watching the configuration file for hot reload.
func (e *Editor) Init() tea.Cmd {
	return e.startConfigWatch()
}

// Update handles all incoming messages and updates the editor state.
func (e *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		return e, nil

	case tea.KeyPressMsg:
		return e.handleKeyPress(msg)

	case tea.KeyReleaseMsg:
		key := msg.Key()
		e.dispatch.KeyRelease(op.Event{Mods: mapMods(key.Mod), Key: keyRune(key)})
		return e, nil

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Y >= e.contentHeight() {
			return e, nil
		}
		res := e.dispatch.ButtonPress(e.mouseEvent(mouse))
		if res.Handled {
			e.saveIfIdle()
		}
		return e, nil

	case tea.MouseReleaseMsg:
		mouse := msg.Mouse()
		res := e.dispatch.ButtonRelease(e.mouseEvent(mouse))
		if res.Handled {
			e.saveIfIdle()
		}
		return e, nil

	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		if mouse.Y >= e.contentHeight() {
			return e, nil
		}
		e.dispatch.Motion(e.mouseEvent(mouse))
		return e, nil

	case tea.MouseMsg:
		// Catch-all so wheel and other mouse events never leak.
		return e, nil

	case tea.KeyboardEnhancementsMsg:
		// Key releases only arrive when the terminal supports the Kitty
		// protocol; without it, dropping the preview modifiers is detected
		// on the next motion event instead.
		return e, nil

	case ConfigChangedMsg:
		cfg, err := config.LoadUserConfig()
		if err != nil {
			log.Warn("Could not reload config", "err", err)
		} else {
			e.applyConfig(cfg)
		}
		return e, e.watchConfigCmd()
	}

	return e, nil
}

// handleKeyPress routes a key press: editor chords first, then the
// operations.
func (e *Editor) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.Key()

	switch msg.String() {
	case "q", "ctrl+c":
		e.saveAll()
		return e, tea.Quit
	case "esc":
		if e.showHelp {
			e.showHelp = false
			return e, nil
		}
		e.dispatch.CancelAll()
		e.status = ""
		return e, nil
	case "?":
		e.showHelp = !e.showHelp
		return e, nil
	case "tab":
		e.SwitchDisplay(e.current + 1)
		return e, nil
	case "shift+tab":
		e.SwitchDisplay(e.current - 1)
		return e, nil
	case "r":
		e.Tree().Recalculate()
		return e, nil
	}

	// Ctrl+digit stores the current layout into that preset slot.
	if key.Mod&tea.ModCtrl != 0 && key.Code >= '1' && key.Code <= '9' {
		e.savePresetSlot(int(key.Code - '1'))
		return e, nil
	}

	res := e.dispatch.KeyPress(op.Event{Mods: mapMods(key.Mod), Key: keyRune(key)})
	if res.Handled {
		e.saveIfIdle()
	}
	return e, nil
}

// mouseEvent translates a terminal mouse event into operation coordinates.
func (e *Editor) mouseEvent(mouse tea.Mouse) op.Event {
	x, y := e.toUnits(mouse.X, mouse.Y)
	return op.Event{
		X:      x,
		Y:      y,
		Mods:   mapMods(mouse.Mod),
		Button: mapButton(mouse.Button),
	}
}

func mapMods(mod tea.KeyMod) op.Modifier {
	var m op.Modifier
	if mod&tea.ModShift != 0 {
		m |= op.ModShift
	}
	if mod&tea.ModCtrl != 0 {
		m |= op.ModCtrl
	}
	if mod&tea.ModAlt != 0 {
		m |= op.ModAlt
	}
	if mod&(tea.ModSuper|tea.ModMeta) != 0 {
		m |= op.ModSuper
	}
	return m
}

func mapButton(b tea.MouseButton) op.Button {
	switch b {
	case tea.MouseLeft:
		return op.ButtonPrimary
	case tea.MouseRight:
		return op.ButtonSecondary
	}
	return op.ButtonNone
}

// keyRune extracts the abstract key for the operations: the typed text when
// there is any, else a printable key code.
func keyRune(key tea.Key) op.Key {
	if key.Text != "" {
		return op.Key([]rune(key.Text)[0])
	}
	if key.Code >= 32 && key.Code <= 126 {
		return op.Key(key.Code)
	}
	return op.KeyNone
}

// startConfigWatch creates the file watcher and returns the first listen
// command. Watching is best effort: without a watcher the editor still runs,
// it just needs a restart to pick up config edits.
func (e *Editor) startConfigWatch() tea.Cmd {
	path, err := config.GetConfigPath()
	if err != nil {
		log.Warn("Config watch disabled", "err", err)
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("Config watch disabled", "err", err)
		return nil
	}
	// Watch the directory: editors typically replace the file, which would
	// invalidate a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		log.Warn("Config watch disabled", "err", err)
		watcher.Close()
		return nil
	}

	e.watcher = watcher
	return e.watchConfigCmd()
}

// watchConfigCmd waits for the next relevant change to the config file.
func (e *Editor) watchConfigCmd() tea.Cmd {
	if e.watcher == nil {
		return nil
	}
	path, _ := config.GetConfigPath()

	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-e.watcher.Events:
				if !ok {
					return nil
				}
				if ev.Name == path && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					return ConfigChangedMsg{}
				}
			case err, ok := <-e.watcher.Errors:
				if !ok {
					return nil
				}
				log.Warn("Config watch error", "err", err)
			}
		}
	}
}

// Close releases the editor's file watcher.
func (e *Editor) Close() error {
	if e.watcher == nil {
		return nil
	}
	return e.watcher.Close()
}
