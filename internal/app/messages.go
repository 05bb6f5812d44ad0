package app

import "github.com/andyrewlee/valuepicker/internal/config"

// configChangedMsg reports a write to the config file.
type configChangedMsg struct {
	path string
}

// configReloadedMsg carries a freshly loaded configuration.
type configReloadedMsg struct {
	cfg *config.Config
}

// statusMsg replaces the status line.
type statusMsg string

// errorMsg surfaces a failure in the status line.
type errorMsg struct {
	err     error
	context string
}
