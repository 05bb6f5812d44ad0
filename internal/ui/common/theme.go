package common

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// ThemeID identifies a color theme.
type ThemeID string

const (
	ThemeGruvbox      ThemeID = "gruvbox"
	ThemeGruvboxLight ThemeID = "gruvbox-light"
	ThemeTokyoNight   ThemeID = "tokyo-night"
	ThemeDracula      ThemeID = "dracula"
	ThemeNord         ThemeID = "nord"
)

// ThemeColors defines all colors used by the application.
type ThemeColors struct {
	// Base palette
	Background    color.Color
	Foreground    color.Color
	Muted         color.Color
	Border        color.Color
	BorderFocused color.Color

	// Semantic colors
	Primary   color.Color
	Secondary color.Color
	Error     color.Color

	// Surface colors for layering. The picker track is Surface1 and the
	// capsule Surface3.
	Surface0 color.Color
	Surface1 color.Color
	Surface2 color.Color
	Surface3 color.Color

	// Shadow sits under the capsule.
	Shadow color.Color
}

// Theme represents a complete color theme.
type Theme struct {
	ID     ThemeID
	Name   string
	Colors ThemeColors
}

// AvailableThemes returns all predefined themes.
func AvailableThemes() []Theme {
	return []Theme{
		GruvboxTheme(),
		GruvboxLightTheme(),
		TokyoNightTheme(),
		DraculaTheme(),
		NordTheme(),
	}
}

// GetTheme returns a theme by ID, defaulting to Gruvbox.
func GetTheme(id ThemeID) Theme {
	for _, t := range AvailableThemes() {
		if t.ID == id {
			return t
		}
	}
	return GruvboxTheme()
}

// IsTheme reports whether id names a predefined theme.
func IsTheme(id ThemeID) bool {
	for _, t := range AvailableThemes() {
		if t.ID == id {
			return true
		}
	}
	return false
}

// GruvboxTheme - warm, retro, earthy tones with orange accent
func GruvboxTheme() Theme {
	return Theme{
		ID:   ThemeGruvbox,
		Name: "Gruvbox",
		Colors: ThemeColors{
			Background:    lipgloss.Color("#282828"),
			Foreground:    lipgloss.Color("#ebdbb2"),
			Muted:         lipgloss.Color("#928374"),
			Border:        lipgloss.Color("#3c3836"),
			BorderFocused: lipgloss.Color("#fe8019"),

			Primary:   lipgloss.Color("#fe8019"),
			Secondary: lipgloss.Color("#d3869b"),
			Error:     lipgloss.Color("#fb4934"),

			Surface0: lipgloss.Color("#282828"),
			Surface1: lipgloss.Color("#3c3836"),
			Surface2: lipgloss.Color("#504945"),
			Surface3: lipgloss.Color("#665c54"),

			Shadow: lipgloss.Color("#1d2021"),
		},
	}
}

// GruvboxLightTheme - the same palette on a cream background
func GruvboxLightTheme() Theme {
	return Theme{
		ID:   ThemeGruvboxLight,
		Name: "Gruvbox Light",
		Colors: ThemeColors{
			Background:    lipgloss.Color("#fbf1c7"),
			Foreground:    lipgloss.Color("#3c3836"),
			Muted:         lipgloss.Color("#7c6f64"),
			Border:        lipgloss.Color("#d5c4a1"),
			BorderFocused: lipgloss.Color("#af3a03"),

			Primary:   lipgloss.Color("#af3a03"),
			Secondary: lipgloss.Color("#8f3f71"),
			Error:     lipgloss.Color("#9d0006"),

			Surface0: lipgloss.Color("#fbf1c7"),
			Surface1: lipgloss.Color("#ebdbb2"),
			Surface2: lipgloss.Color("#f2e5bc"),
			Surface3: lipgloss.Color("#f9f5d7"),

			Shadow: lipgloss.Color("#bdae93"),
		},
	}
}

// TokyoNightTheme - cool blue tones
func TokyoNightTheme() Theme {
	return Theme{
		ID:   ThemeTokyoNight,
		Name: "Tokyo Night",
		Colors: ThemeColors{
			Background:    lipgloss.Color("#1a1b26"),
			Foreground:    lipgloss.Color("#a9b1d6"),
			Muted:         lipgloss.Color("#565f89"),
			Border:        lipgloss.Color("#292e42"),
			BorderFocused: lipgloss.Color("#7aa2f7"),

			Primary:   lipgloss.Color("#7aa2f7"),
			Secondary: lipgloss.Color("#bb9af7"),
			Error:     lipgloss.Color("#f7768e"),

			Surface0: lipgloss.Color("#1a1b26"),
			Surface1: lipgloss.Color("#1f2335"),
			Surface2: lipgloss.Color("#24283b"),
			Surface3: lipgloss.Color("#33467c"),

			Shadow: lipgloss.Color("#16161e"),
		},
	}
}

// DraculaTheme - purple/pink accents
func DraculaTheme() Theme {
	return Theme{
		ID:   ThemeDracula,
		Name: "Dracula",
		Colors: ThemeColors{
			Background:    lipgloss.Color("#282a36"),
			Foreground:    lipgloss.Color("#f8f8f2"),
			Muted:         lipgloss.Color("#6272a4"),
			Border:        lipgloss.Color("#44475a"),
			BorderFocused: lipgloss.Color("#bd93f9"),

			Primary:   lipgloss.Color("#bd93f9"),
			Secondary: lipgloss.Color("#ff79c6"),
			Error:     lipgloss.Color("#ff5555"),

			Surface0: lipgloss.Color("#282a36"),
			Surface1: lipgloss.Color("#2d303e"),
			Surface2: lipgloss.Color("#343746"),
			Surface3: lipgloss.Color("#44475a"),

			Shadow: lipgloss.Color("#191a21"),
		},
	}
}

// NordTheme - cool, muted arctic colors
func NordTheme() Theme {
	return Theme{
		ID:   ThemeNord,
		Name: "Nord",
		Colors: ThemeColors{
			Background:    lipgloss.Color("#2e3440"),
			Foreground:    lipgloss.Color("#eceff4"),
			Muted:         lipgloss.Color("#4c566a"),
			Border:        lipgloss.Color("#3b4252"),
			BorderFocused: lipgloss.Color("#88c0d0"),

			Primary:   lipgloss.Color("#88c0d0"),
			Secondary: lipgloss.Color("#b48ead"),
			Error:     lipgloss.Color("#bf616a"),

			Surface0: lipgloss.Color("#2e3440"),
			Surface1: lipgloss.Color("#3b4252"),
			Surface2: lipgloss.Color("#434c5e"),
			Surface3: lipgloss.Color("#4c566a"),

			Shadow: lipgloss.Color("#242933"),
		},
	}
}
