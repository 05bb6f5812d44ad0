package common

import "charm.land/lipgloss/v2"

// Styles contains the chrome styles shared by the demo screens.
type Styles struct {
	// Layout
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style

	// Text hierarchy
	Title lipgloss.Style // App name, section headers
	Body  lipgloss.Style // Normal text
	Muted lipgloss.Style // De-emphasized text

	// Picker labels
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style

	// Help bar
	Help lipgloss.Style

	// Feedback
	Status lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles builds the chrome styles for a theme.
func NewStyles(t Theme) Styles {
	c := t.Colors
	return Styles{
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(0, 1),

		FocusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderFocused).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Primary),

		Body: lipgloss.NewStyle().
			Foreground(c.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),

		Label: lipgloss.NewStyle().
			Foreground(c.Muted),

		FocusedLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Foreground),

		Help: lipgloss.NewStyle().
			Foreground(c.Muted),

		Status: lipgloss.NewStyle().
			Foreground(c.Secondary),

		Error: lipgloss.NewStyle().
			Foreground(c.Error),
	}
}

// DefaultStyles returns the styles of the default theme.
func DefaultStyles() Styles {
	return NewStyles(GetTheme(ThemeGruvbox))
}
