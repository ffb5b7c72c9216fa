// Package theme provides color themes and styling for the gridsnap editor.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"

	"github.com/gridsnap/gridsnap/internal/config"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Theme not found falls back to the registry default.
	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
	}
	return nil
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// FromRGBA converts a configured color into a renderable one.
func FromRGBA(c config.RGBA) color.Color {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Region fill and border colors

func RegionBackground() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#1e1e2e")
	}
	return t.Bg
}

func RegionBorder() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#585b70")
	}
	return t.BrightBlack
}

func RegionHighlight() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#89b4fa")
	}
	return t.BrightBlue
}

// PreviewBorder outlines a split that has not been committed yet.
func PreviewBorder() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#a6e3a1")
	}
	return t.BrightGreen
}

// SnapDestination marks the region a dragged window would land in.
func SnapDestination() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#f9e2af")
	}
	return t.BrightYellow
}

// DividerActive colors the divider being dragged.
func DividerActive() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#89b4fa")
	}
	return t.BrightBlue
}

// Status bar colors

func StatusBarBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#1a1a2e")
	}
	return t.Bg
}

func StatusBarFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#a0a0b0")
	}
	return t.Fg
}

func StatusBarAccent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ffff")
	}
	return t.BrightCyan
}

// Help overlay colors

func HelpTitle() color.Color {
	return lipgloss.Color("14")
}

func HelpKey() color.Color {
	return lipgloss.Color("11")
}

func HelpText() color.Color {
	return lipgloss.Color("7")
}
