package op

import "github.com/gridsnap/gridsnap/internal/layout"

// PresetsFunc supplies the current preset list. Slots may be nil.
type PresetsFunc func() []*layout.Node

// ApplyFunc applies a preset layout; the caller decides what "apply" means
// (typically: adopt a clone as the display's tree and persist it).
type ApplyFunc func(slot int, preset *layout.Node)

// PresetShortcut maps a row of designated keys onto preset slots: pressing
// the i-th key applies the i-th preset. A slot with no preset behind it
// applies nothing.
type PresetShortcut struct {
	NopHandler

	keys    []Key
	presets PresetsFunc
	apply   ApplyFunc
}

// NewPresetShortcut builds the preset shortcut operation. keys holds the
// slot keys in order, conventionally the digit keys 1 through 8.
func NewPresetShortcut(keys []Key, presets PresetsFunc, apply ApplyFunc) *PresetShortcut {
	return &PresetShortcut{keys: keys, presets: presets, apply: apply}
}

// SetKeys swaps the slot keys.
func (p *PresetShortcut) SetKeys(keys []Key) { p.keys = keys }

// KeyPress applies the preset behind the pressed slot key. Keys outside the
// slot row are not handled.
func (p *PresetShortcut) KeyPress(ev Event) Result {
	for slot, key := range p.keys {
		// A slot whose key failed to parse holds KeyNone; it must never
		// match the KeyNone that non-printable keys map to.
		if key == KeyNone || ev.Key != key {
			continue
		}
		list := p.presets()
		if slot >= len(list) || list[slot] == nil {
			return Handled(false)
		}
		p.apply(slot, list[slot])
		return Handled(true)
	}
	return Result{}
}
