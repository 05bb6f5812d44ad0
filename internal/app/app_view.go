package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// View renders the pickers with a status line and key help.
func (a *App) View() tea.View {
	view := tea.View{
		AltScreen:       true,
		MouseMode:       tea.MouseModeCellMotion,
		BackgroundColor: a.theme.Colors.Background,
		ForegroundColor: a.theme.Colors.Foreground,
	}
	if a.quitting {
		view.SetContent("")
		return view
	}
	view.SetContent(a.zone.Scan(a.render()))
	return view
}

func (a *App) render() string {
	title := a.styles.Title.Render("valuepicker")
	if a.version != "" {
		title += " " + a.styles.Muted.Render(a.version)
	}

	sections := []string{title}
	for _, p := range a.pickers {
		sections = append(sections, p.View())
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	style := a.styles.Pane
	if a.width > 0 {
		style = style.MaxWidth(a.width)
	}
	lines := []string{style.Render(body), a.statusLine()}
	if a.cfg.UI.ShowKeymapHints {
		lines = append(lines, a.help.View(a.keymap))
	}
	return strings.Join(lines, "\n")
}

func (a *App) statusLine() string {
	if a.err != nil {
		return a.styles.Error.Render(a.err.Error())
	}
	if a.status == "" {
		return a.styles.Status.Render(" ")
	}
	return a.styles.Status.Render(a.status)
}
