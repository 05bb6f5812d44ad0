package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/term"

	"github.com/andyrewlee/valuepicker/internal/app"
	"github.com/andyrewlee/valuepicker/internal/config"
	"github.com/andyrewlee/valuepicker/internal/logging"
	"github.com/andyrewlee/valuepicker/internal/ui/common"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliOptions struct {
	version    bool
	configPath string
	theme      string
	logLevel   logging.Level
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Println(usage())
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "valuepicker: %v\n\n%s\n", err, usage())
		os.Exit(2)
	}
	if opts.version {
		fmt.Printf("valuepicker %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	if !shouldLaunchTUI(
		term.IsTerminal(os.Stdin.Fd()),
		term.IsTerminal(os.Stdout.Fd()),
	) {
		fmt.Fprintln(os.Stderr, "valuepicker needs an interactive terminal")
		os.Exit(1)
	}
	os.Exit(runTUI(opts))
}

func usage() string {
	return "usage: valuepicker [--version] [--config PATH] [--theme ID] [--log-level LEVEL]"
}

func parseArgs(args []string) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("valuepicker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.version, "version", false, "print version and exit")
	fs.BoolVar(&opts.version, "v", false, "print version and exit")
	fs.StringVar(&opts.configPath, "config", "", "config file (JSON or YAML)")
	fs.StringVar(&opts.theme, "theme", "", "theme id")
	level := fs.String("log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	lvl, err := logging.ParseLevel(*level)
	if err != nil {
		return opts, err
	}
	opts.logLevel = lvl
	if opts.theme != "" && !common.IsTheme(common.ThemeID(opts.theme)) {
		return opts, fmt.Errorf("unknown theme %q", opts.theme)
	}
	return opts, nil
}

func shouldLaunchTUI(stdinIsTTY, stdoutIsTTY bool) bool {
	return stdinIsTTY && stdoutIsTTY
}

func runTUI(opts cliOptions) int {
	paths, err := config.DefaultPaths()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving home directory: %v\n", err)
		return 1
	}
	if err := logging.Initialize(paths.LogsRoot, opts.logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
	}
	defer logging.Close()

	logging.Info("Starting valuepicker %s", version)

	startSignalDebug()

	a, err := app.New(app.Options{
		Version:    version,
		Paths:      paths,
		ConfigPath: opts.configPath,
		Theme:      opts.theme,
	})
	if err != nil {
		logging.Error("Failed to initialize app: %v", err)
		fmt.Fprintf(os.Stderr, "Error initializing app: %v\n", err)
		return 1
	}
	defer a.Shutdown()

	p := tea.NewProgram(
		a,
		tea.WithFilter(mouseEventFilter),
	)
	a.SetMsgSender(p.Send)

	if _, err := p.Run(); err != nil {
		logging.Error("App exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		return 1
	}

	logging.Info("valuepicker shutdown complete")
	return 0
}

var (
	lastMouseMotionEvent   time.Time
	lastMouseX, lastMouseY int
)

// mouseEventFilter throttles repeated motion at the same cell.
func mouseEventFilter(m tea.Model, msg tea.Msg) tea.Msg {
	if msg, ok := msg.(tea.MouseMotionMsg); ok {
		if msg.X != lastMouseX || msg.Y != lastMouseY {
			lastMouseX = msg.X
			lastMouseY = msg.Y
			lastMouseMotionEvent = time.Now()
			return msg
		}
		now := time.Now()
		if now.Sub(lastMouseMotionEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseMotionEvent = now
	}
	return msg
}

// signalDebugEnabled reports whether goroutine dumps on SIGUSR1 are wanted:
// always in dev builds, otherwise only with VALUEPICKER_DEBUG_SIGNALS set.
func signalDebugEnabled(version, env string) bool {
	return version == "dev" || strings.TrimSpace(env) != ""
}
