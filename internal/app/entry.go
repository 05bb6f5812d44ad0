package app

import (
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/valuepicker/internal/keymap"
	"github.com/andyrewlee/valuepicker/internal/picker"
	"github.com/andyrewlee/valuepicker/internal/ui/valuepicker"
)

// entry is a picker of any value type, as the app routes to it.
type entry interface {
	ID() string
	View() string
	Focus()
	Blur() tea.Cmd
	Focused() bool
	Phase() picker.Phase
	SetZone(z *zone.Manager)
	SetLabel(label string)
	SetStyles(s valuepicker.Styles)
	SetKeyMap(km keymap.KeyMap)
	SetConfig(cfg picker.Config) tea.Cmd

	update(msg tea.Msg) tea.Cmd
	value() string
}

type slot[V comparable] struct {
	*valuepicker.Model[V]
	format func(V) string
}

func newSlot[V comparable](m *valuepicker.Model[V], format func(V) string) *slot[V] {
	return &slot[V]{Model: m, format: format}
}

func (s *slot[V]) update(msg tea.Msg) tea.Cmd {
	_, cmd := s.Model.Update(msg)
	return cmd
}

func (s *slot[V]) value() string {
	return s.format(s.Selection())
}
