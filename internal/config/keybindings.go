package config

import "strings"

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// GetKeybindings returns the keybinding sections for the help overlay,
// rendered from the resolved input configuration.
func GetKeybindings(in InputConfig) []KeybindingSection {
	def := DefaultConfig().Input
	column := modifierLabel(in.ColumnSplitModifiers, def.ColumnSplitModifiers)
	row := modifierLabel(in.RowSplitModifiers, def.RowSplitModifiers)

	sections := []KeybindingSection{
		{
			Title: "SPLITTING",
			Bindings: []Keybinding{
				{column + "+hover", "Preview a column split"},
				{row + "+hover", "Preview a row split"},
				{"Left click", "Commit the previewed split"},
			},
		},
		{
			Title: "DIVIDERS",
			Bindings: []Keybinding{
				{"Left drag", "Move a divider"},
				{"Right click", "Delete a divider"},
			},
		},
		{
			Title: "MARGINS",
			Bindings: []Keybinding{
				{orDefault(in.GrowMarginKey, def.GrowMarginKey), "Grow margins"},
				{orDefault(in.ShrinkMarginKey, def.ShrinkMarginKey), "Shrink margins"},
			},
		},
	}

	if keys := in.PresetKeys; len(keys) > 0 {
		sections = append(sections, KeybindingSection{
			Title: "PRESETS",
			Bindings: []Keybinding{
				{keys[0] + "-" + keys[len(keys)-1], "Apply preset"},
			},
		})
	}

	snap := "hover"
	if len(in.SnapModifiers) > 0 {
		snap = modifierLabel(in.SnapModifiers, nil) + "+hover"
	}
	sections = append(sections, KeybindingSection{
		Title: "SNAPPING",
		Bindings: []Keybinding{
			{snap, "Pick the snap destination"},
			{"Esc", "Cancel the current operation"},
		},
	})
	return sections
}

// modifierLabel joins a modifier name list for display, falling back to the
// default list when the configured one is empty.
func modifierLabel(names, fallback []string) string {
	if len(names) == 0 {
		names = fallback
	}
	parts := make([]string, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		parts[i] = strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
	}
	return strings.Join(parts, "+")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
