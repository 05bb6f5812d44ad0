package app

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/valuepicker/internal/config"
	"github.com/andyrewlee/valuepicker/internal/keymap"
	"github.com/andyrewlee/valuepicker/internal/logging"
	"github.com/andyrewlee/valuepicker/internal/picker"
	"github.com/andyrewlee/valuepicker/internal/ui/common"
	"github.com/andyrewlee/valuepicker/internal/ui/valuepicker"
)

// Options configure the demo.
type Options struct {
	Version string
	// Paths defaults to ~/.valuepicker.
	Paths *config.Paths
	// ConfigPath overrides the config file location.
	ConfigPath string
	// Theme overrides the configured theme for this run.
	Theme string
}

// App is the root model of the demo: three pickers, a status line and help.
type App struct {
	version string

	cfg    *config.Config
	theme  common.Theme
	styles common.Styles
	keymap keymap.KeyMap
	help   help.Model
	zone   *zone.Manager

	revenue string
	display DisplayOption
	color   ColorItem

	pickers []entry
	focused int

	status   string
	err      error
	width    int
	height   int
	quitting bool

	send        func(tea.Msg)
	watcher     *config.Watcher
	stopWatcher context.CancelFunc
	watcherDone <-chan struct{}
}

// New loads the configuration and builds the demo pickers. A config file
// that fails to load is logged and the defaults are used.
func New(opts Options) (*App, error) {
	paths := opts.Paths
	if paths == nil {
		var err error
		if paths, err = config.DefaultPaths(); err != nil {
			return nil, err
		}
	}
	if err := paths.EnsureDirectories(); err != nil {
		logging.Warn("Could not create %s: %v", paths.Home, err)
	}

	cfg, err := config.LoadFrom(paths, opts.ConfigPath)
	if err != nil {
		logging.Warn("Ignoring config: %v", err)
		cfg = config.DefaultConfigAt(paths)
	}
	if opts.Theme != "" {
		cfg.UI.Theme = opts.Theme
	}

	a := &App{
		version: opts.Version,
		cfg:     cfg,
		help:    help.New(),
		zone:    zone.New(),
		revenue: revenuePeriods[0],
		display: DisplayTable,
		color:   colorItems[0],
	}

	revenueCfg, displayCfg, colorCfg := pickerScopes(cfg.Picker.Apply(picker.DefaultConfig()))
	revenue := valuepicker.New(revenueID, picker.Bind(&a.revenue), revenueChildren(), revenueCfg)
	display := valuepicker.New(displayID, picker.Bind(&a.display), displayChildren(), displayCfg)
	color := valuepicker.New(colorID, picker.Bind(&a.color), colorChildren(), colorCfg)
	a.pickers = []entry{
		newSlot(revenue, func(v string) string { return v }),
		newSlot(display, DisplayOption.String),
		newSlot(color, func(c ColorItem) string { return c.Name }),
	}
	labels := []string{"Revenue", "Display", "Color"}
	for i, p := range a.pickers {
		p.SetZone(a.zone)
		p.SetLabel(fmt.Sprintf("%-8s", labels[i]))
	}

	a.applyTheme(cfg.UI.Theme)
	a.applyKeyMap(cfg.KeyMap)
	a.pickers[0].Focus()
	logging.Info("Loaded config from %q, theme %s", cfg.Source, a.theme.ID)
	return a, nil
}

// Init initializes the app.
func (a *App) Init() tea.Cmd { return nil }

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case tea.KeyPressMsg:
		return a, a.safeCmd(a.handleKeyPress(msg))
	case tea.MouseClickMsg:
		return a, a.routeMouse(msg, true)
	case tea.MouseMotionMsg:
		return a, a.routeMouse(msg, false)
	case tea.MouseReleaseMsg:
		return a, a.routeMouse(msg, false)
	case valuepicker.SelectionChangedMsg:
		a.status = fmt.Sprintf("%s: %s", msg.ID, a.valueOf(msg.ID))
		logging.Debug("Selection %s changed %v -> %v (%s)", msg.ID, msg.Previous, msg.Value, msg.Path)
		return a, nil
	case configChangedMsg:
		return a, a.safeCmd(a.reloadConfig(msg.path))
	case configReloadedMsg:
		return a, a.applyConfig(msg.cfg)
	case statusMsg:
		a.status, a.err = string(msg), nil
		return a, nil
	case errorMsg:
		a.err = msg.err
		logging.Warn("%s: %v", msg.context, msg.err)
		return a, nil
	}

	// Animation and preselection messages are addressed by picker id.
	var cmds []tea.Cmd
	for _, p := range a.pickers {
		cmds = append(cmds, p.update(msg))
	}
	return a, tea.Batch(cmds...)
}

// Focused returns the id of the focused picker.
func (a *App) Focused() string { return a.pickers[a.focused].ID() }

// Theme returns the active theme.
func (a *App) Theme() common.Theme { return a.theme }

func (a *App) valueOf(id string) string {
	for _, p := range a.pickers {
		if p.ID() == id {
			return p.value()
		}
	}
	return ""
}

func (a *App) focus(i int) tea.Cmd {
	if i == a.focused {
		a.pickers[i].Focus()
		return nil
	}
	cmd := a.pickers[a.focused].Blur()
	a.focused = i
	a.pickers[i].Focus()
	return cmd
}

func (a *App) applyTheme(id string) {
	if !common.IsTheme(common.ThemeID(id)) {
		logging.Warn("Unknown theme %q, using %s", id, common.ThemeGruvbox)
	}
	a.theme = common.GetTheme(common.ThemeID(id))
	a.styles = common.NewStyles(a.theme)
	a.help.Styles.ShortKey = a.styles.Body
	a.help.Styles.ShortDesc = a.styles.Help
	a.help.Styles.FullKey = a.styles.Body
	a.help.Styles.FullDesc = a.styles.Help
	ps := valuepicker.NewStyles(a.theme)
	for _, p := range a.pickers {
		p.SetStyles(ps)
	}
}

func (a *App) applyKeyMap(cfg config.KeyMapConfig) {
	a.keymap = keymap.New(cfg)
	for _, p := range a.pickers {
		p.SetKeyMap(a.keymap)
	}
}

// Shutdown stops background work.
func (a *App) Shutdown() {
	a.stopConfigWatcher()
	if a.zone != nil {
		a.zone.Close()
	}
}
