package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/gridsnap/gridsnap/internal/op"
)

// ParseModifier resolves a single modifier name.
func ParseModifier(name string) (op.Modifier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shift":
		return op.ModShift, nil
	case "ctrl", "control":
		return op.ModCtrl, nil
	case "alt", "option", "opt":
		return op.ModAlt, nil
	case "super", "cmd", "win", "meta":
		return op.ModSuper, nil
	}
	return 0, fmt.Errorf("unknown modifier %q", name)
}

// ParseModifiers resolves a modifier name list into a single OR-ed set.
// Unknown names are skipped with a warning so one typo does not disable the
// whole binding.
func ParseModifiers(names []string) op.Modifier {
	var mods op.Modifier
	for _, name := range names {
		m, err := ParseModifier(name)
		if err != nil {
			log.Warn("Ignoring unknown modifier in config", "modifier", name)
			continue
		}
		mods |= m
	}
	return mods
}

// ParseKey resolves a key name. A key is a single printable rune.
func ParseKey(name string) (op.Key, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) != 1 {
		return op.KeyNone, fmt.Errorf("key %q must be a single character", name)
	}
	r, _ := utf8.DecodeRuneInString(name)
	return op.Key(r), nil
}

// ParseKeys resolves a key name list, skipping unknown names with a warning.
// Skipped slots stay in the result as KeyNone so the slot order is stable.
func ParseKeys(names []string) []op.Key {
	keys := make([]op.Key, len(names))
	for i, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			log.Warn("Ignoring bad key in config", "key", name, "err", err)
			continue
		}
		keys[i] = k
	}
	return keys
}

// Bindings is the input configuration resolved into operation-level types.
type Bindings struct {
	ColumnSplitMods op.Modifier
	RowSplitMods    op.Modifier
	SnapMods        op.Modifier
	GrowMarginKey   op.Key
	ShrinkMarginKey op.Key
	PresetKeys      []op.Key
}

// ResolveBindings parses the input configuration, falling back to the
// default binding wherever a field parses to nothing.
func ResolveBindings(in InputConfig) Bindings {
	def := DefaultConfig().Input

	b := Bindings{
		ColumnSplitMods: ParseModifiers(in.ColumnSplitModifiers),
		RowSplitMods:    ParseModifiers(in.RowSplitModifiers),
		SnapMods:        ParseModifiers(in.SnapModifiers),
		PresetKeys:      ParseKeys(in.PresetKeys),
	}
	if b.ColumnSplitMods == 0 {
		b.ColumnSplitMods = ParseModifiers(def.ColumnSplitModifiers)
	}
	if b.RowSplitMods == 0 {
		b.RowSplitMods = ParseModifiers(def.RowSplitModifiers)
	}
	if len(b.PresetKeys) == 0 {
		b.PresetKeys = ParseKeys(def.PresetKeys)
	}

	var err error
	if b.GrowMarginKey, err = ParseKey(in.GrowMarginKey); err != nil {
		b.GrowMarginKey, _ = ParseKey(def.GrowMarginKey)
	}
	if b.ShrinkMarginKey, err = ParseKey(in.ShrinkMarginKey); err != nil {
		b.ShrinkMarginKey, _ = ParseKey(def.ShrinkMarginKey)
	}
	return b
}
