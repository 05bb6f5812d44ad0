package valuepicker

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/valuepicker/internal/ui/common"
	"github.com/andyrewlee/valuepicker/internal/ui/compositor"
)

// Styles holds the picker paints.
type Styles struct {
	Track   color.Color
	Shadow  color.Color
	Capsule color.Color

	Highlight compositor.Style
	Dimmed    compositor.Style

	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
}

// NewStyles derives picker styles from a theme.
func NewStyles(t common.Theme) Styles {
	c := t.Colors
	chrome := common.NewStyles(t)
	return Styles{
		Track:        c.Surface1,
		Shadow:       c.Shadow,
		Capsule:      c.Surface3,
		Highlight:    compositor.Style{Fg: c.Primary, Bold: true},
		Dimmed:       compositor.Style{Fg: c.Muted, Faint: true},
		Label:        chrome.Label,
		FocusedLabel: chrome.FocusedLabel,
	}
}

// DefaultStyles returns the styles for the default theme.
func DefaultStyles() Styles {
	return NewStyles(common.GetTheme(common.ThemeGruvbox))
}
