package app

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/valuepicker/internal/config"
	"github.com/andyrewlee/valuepicker/internal/logging"
	"github.com/andyrewlee/valuepicker/internal/picker"
	"github.com/andyrewlee/valuepicker/internal/safego"
)

// SetMsgSender wires the program's Send so background work can post
// messages, and starts watching the config file.
func (a *App) SetMsgSender(send func(tea.Msg)) {
	if send == nil {
		return
	}
	a.send = send
	a.startConfigWatcher()
}

func (a *App) configPath() string {
	if a.cfg.Source != "" {
		return a.cfg.Source
	}
	return a.cfg.Paths.ConfigPath
}

func (a *App) startConfigWatcher() {
	if a.watcher != nil {
		return
	}
	send := a.send
	w, err := config.NewWatcher(a.configPath(), config.DefaultWatchDebounce, func(path string) {
		send(configChangedMsg{path: path})
	})
	if err != nil {
		logging.Warn("Config watcher disabled: %v", err)
		return
	}
	w.OnError(func(err error) {
		logging.Warn("Config watcher error: %v", err)
	})

	ctx, cancel := context.WithCancel(context.Background())
	a.watcher, a.stopWatcher = w, cancel
	a.watcherDone = safego.GoContext(ctx, "config-watcher", func(ctx context.Context) {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logging.Warn("Config watcher stopped: %v", err)
		}
	})
	logging.Info("Watching %s", w.Path())
}

func (a *App) stopConfigWatcher() {
	if a.watcher == nil {
		return
	}
	a.stopWatcher()
	_ = a.watcher.Close()
	<-a.watcherDone
	a.watcher = nil
}

// reloadConfig reads path off the update loop.
func (a *App) reloadConfig(path string) tea.Cmd {
	paths := a.cfg.Paths
	return func() tea.Msg {
		cfg, err := config.LoadFrom(paths, path)
		if err != nil {
			return errorMsg{err: err, context: "reload config"}
		}
		return configReloadedMsg{cfg: cfg}
	}
}

// applyConfig swaps in a reloaded configuration. The selections are kept.
func (a *App) applyConfig(cfg *config.Config) tea.Cmd {
	a.cfg = cfg
	a.applyTheme(cfg.UI.Theme)
	a.applyKeyMap(cfg.KeyMap)

	revenue, display, color := pickerScopes(cfg.Picker.Apply(picker.DefaultConfig()))
	cmds := []tea.Cmd{
		a.pickers[0].SetConfig(revenue),
		a.pickers[1].SetConfig(display),
		a.pickers[2].SetConfig(color),
	}
	logging.Info("Reloaded config from %q", cfg.Source)
	return tea.Batch(cmds...)
}
