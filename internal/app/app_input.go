package app

import (
	"fmt"
	"runtime/debug"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/valuepicker/internal/logging"
	"github.com/andyrewlee/valuepicker/internal/picker"
	"github.com/andyrewlee/valuepicker/internal/ui/common"
)

func (a *App) safeCmd(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				logging.Error("panic in command: %v\n%s", r, debug.Stack())
				msg = errorMsg{err: fmt.Errorf("command panic: %v", r), context: "command"}
			}
		}()
		return cmd()
	}
}

// handleKeyPress handles app-level keys and forwards the rest to the
// focused picker.
func (a *App) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	// Dismiss error on any key
	if a.err != nil {
		a.err = nil
	}

	switch {
	case key.Matches(msg, a.keymap.Quit):
		a.quitting = true
		return tea.Quit
	case key.Matches(msg, a.keymap.FocusNext):
		return a.focus((a.focused + 1) % len(a.pickers))
	case key.Matches(msg, a.keymap.FocusPrev):
		return a.focus((a.focused + len(a.pickers) - 1) % len(a.pickers))
	case key.Matches(msg, a.keymap.Copy):
		return a.copyToClipboard(a.pickers[a.focused].value())
	case key.Matches(msg, a.keymap.ThemeNext):
		return a.nextTheme()
	case key.Matches(msg, a.keymap.Help):
		a.help.ShowAll = !a.help.ShowAll
		return nil
	}
	return a.pickers[a.focused].update(msg)
}

// routeMouse sends pointer messages to every picker. Each picker ignores
// presses outside its own zone and motion or releases when it has no
// gesture, so only the pressed picker reacts. A press that starts a gesture
// also focuses that picker.
func (a *App) routeMouse(msg tea.Msg, press bool) tea.Cmd {
	var cmds []tea.Cmd
	for i, p := range a.pickers {
		cmds = append(cmds, p.update(msg))
		if press && p.Phase() != picker.PhaseIdle {
			cmds = append(cmds, a.focus(i))
		}
	}
	return tea.Batch(cmds...)
}

// nextTheme switches to the following theme and persists the choice.
func (a *App) nextTheme() tea.Cmd {
	themes := common.AvailableThemes()
	next := themes[0]
	for i, t := range themes {
		if t.ID == a.theme.ID {
			next = themes[(i+1)%len(themes)]
			break
		}
	}
	a.applyTheme(string(next.ID))
	a.cfg.UI.Theme = string(next.ID)

	cfg := *a.cfg
	return func() tea.Msg {
		if err := cfg.SaveUISettings(); err != nil {
			return errorMsg{err: err, context: "save theme"}
		}
		return statusMsg("Theme: " + next.Name)
	}
}
