package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gridsnap/gridsnap/internal/config"
	"github.com/gridsnap/gridsnap/internal/theme"
)

// View returns the rendered view.
func (e *Editor) View() tea.View {
	var view tea.View

	var content string
	switch {
	case e.width <= 0 || e.height <= 0:
		content = ""
	case e.showHelp:
		content = e.helpView()
	default:
		content = e.renderer.Render(e.Tree(), e.width, e.contentHeight()) + "\n" + e.statusBar()
	}
	view.SetContent(lipgloss.Sprint(content))

	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	return view
}

// statusBar renders the bottom row: display, margin, operation state and the
// transient status message.
func (e *Editor) statusBar() string {
	accent := lipgloss.NewStyle().Foreground(theme.StatusBarAccent())

	parts := []string{
		accent.Render(fmt.Sprintf("display %d/%d", e.current+1, NumDisplays)),
		fmt.Sprintf("margin %d", e.Tree().Margin),
	}
	switch {
	case e.resize.Active() != nil:
		parts = append(parts, accent.Render("resizing"))
	case e.preview.Active() != nil:
		parts = append(parts, accent.Render("previewing split"))
	case e.snapping.ShowRegions():
		parts = append(parts, accent.Render("snapping"))
	}
	if e.status != "" {
		parts = append(parts, e.status)
	}
	parts = append(parts, "? help")

	return lipgloss.NewStyle().
		Foreground(theme.StatusBarFg()).
		Background(theme.StatusBarBg()).
		Width(e.width).
		Render(" " + strings.Join(parts, "  •  "))
}

// helpView renders the keybinding overlay.
func (e *Editor) helpView() string {
	title := lipgloss.NewStyle().Foreground(theme.HelpTitle()).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(theme.HelpKey())
	textStyle := lipgloss.NewStyle().Foreground(theme.HelpText())

	var sb strings.Builder
	for i, section := range config.GetKeybindings(e.cfg.Input) {
		if i > 0 {
			sb.WriteString("\n")
		}
		if section.Title != "" {
			sb.WriteString(title.Render(section.Title))
			sb.WriteString("\n")
		}
		for _, b := range section.Bindings {
			sb.WriteString(fmt.Sprintf("  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-16s", b.Key)),
				textStyle.Render(b.Description)))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(textStyle.Render("  tab          next display\n"))
	sb.WriteString(textStyle.Render("  ctrl+1..8    save layout as preset\n"))
	sb.WriteString(textStyle.Render("  q            quit\n"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.HelpTitle()).
		Padding(1, 3).
		Render(sb.String())

	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Center, box)
}
