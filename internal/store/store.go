// Package store persists layout trees and presets as JSON files under the
// XDG data home. Loading is forgiving: a missing or corrupt file yields nil
// and a warning rather than an error, so the editor can always start.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/gridsnap/gridsnap/internal/layout"
)

// Store reads and writes layouts and presets under a base directory.
type Store struct {
	dir string
}

// New returns a store rooted at the XDG data home.
func New() *Store {
	return NewAt(filepath.Join(xdg.DataHome, "gridsnap"))
}

// NewAt returns a store rooted at dir.
func NewAt(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's base directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) layoutPath(display int) string {
	return filepath.Join(s.dir, "layouts", fmt.Sprintf("display-%d.json", display))
}

func (s *Store) presetPath(slot int) string {
	return filepath.Join(s.dir, "presets", fmt.Sprintf("slot-%d.json", slot))
}

// LoadLayout returns the persisted tree for a display, or nil when none is
// stored or the stored one is unusable.
func (s *Store) LoadLayout(display int) *layout.Node {
	path := s.layoutPath(display)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		log.Warn("Could not read layout file", "path", path, "err", err)
		return nil
	}

	root := &layout.Node{}
	if err := json.Unmarshal(data, root); err != nil {
		log.Warn("Could not parse layout file", "path", path, "err", err)
		return nil
	}
	if err := root.IntegrityError(); err != nil {
		log.Warn("Discarding stored layout", "path", path, "err", err)
		return nil
	}
	return root
}

// SaveLayout persists a display's tree. Trees that fail the structural
// integrity check are refused, so a half-finished edit can never poison the
// stored state.
func (s *Store) SaveLayout(display int, root *layout.Node) error {
	if err := root.IntegrityError(); err != nil {
		return fmt.Errorf("refusing to save layout: %w", err)
	}

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal layout: %w", err)
	}
	return s.write(s.layoutPath(display), data)
}

// Preset is a user-saved layout occupying a shortcut slot.
type Preset struct {
	ID     uuid.UUID    `json:"id"`
	Name   string       `json:"name"`
	Layout *layout.Node `json:"layout"`
}

// NewPreset builds a preset with a fresh identity.
func NewPreset(name string, root *layout.Node) *Preset {
	return &Preset{ID: uuid.New(), Name: name, Layout: root}
}

// LoadPreset returns the user preset stored in a slot, or nil when the slot
// is empty or unusable.
func (s *Store) LoadPreset(slot int) *Preset {
	path := s.presetPath(slot)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		log.Warn("Could not read preset file", "path", path, "err", err)
		return nil
	}

	p := &Preset{}
	if err := json.Unmarshal(data, p); err != nil {
		log.Warn("Could not parse preset file", "path", path, "err", err)
		return nil
	}
	if p.Layout == nil {
		log.Warn("Preset has no layout", "path", path)
		return nil
	}
	if err := p.Layout.IntegrityError(); err != nil {
		log.Warn("Discarding stored preset", "path", path, "err", err)
		return nil
	}
	return p
}

// SavePreset persists a preset into a slot, subject to the same integrity
// gate as layouts.
func (s *Store) SavePreset(slot int, p *Preset) error {
	if p.Layout == nil {
		return fmt.Errorf("refusing to save preset %q: no layout", p.Name)
	}
	if err := p.Layout.IntegrityError(); err != nil {
		return fmt.Errorf("refusing to save preset %q: %w", p.Name, err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal preset: %w", err)
	}
	return s.write(s.presetPath(slot), data)
}

// DeletePreset clears a slot. Deleting an empty slot is not an error.
func (s *Store) DeletePreset(slot int) error {
	err := os.Remove(s.presetPath(slot))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not delete preset: %w", err)
	}
	return nil
}

// Presets resolves the preset list for the given number of slots: each slot
// holds the user's saved preset when one exists, otherwise the built-in
// preset for that slot, otherwise nothing.
func (s *Store) Presets(slots int) []*Preset {
	builtin := layout.BuiltinPresets()

	list := make([]*Preset, slots)
	for i := range list {
		if p := s.LoadPreset(i); p != nil {
			list[i] = p
			continue
		}
		if i < len(builtin) {
			list[i] = &Preset{Name: builtin[i].Name, Layout: builtin[i].Root}
		}
	}
	return list
}

func (s *Store) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create store directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", filepath.Base(path), err)
	}
	return nil
}
