package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
)

func (a *App) copyToClipboard(text string) tea.Cmd {
	if text == "" {
		return func() tea.Msg { return statusMsg("Nothing to copy") }
	}
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return errorMsg{err: fmt.Errorf("clipboard error: %v", err), context: "clipboard"}
		}
		return statusMsg("Copied " + text)
	}
}
