package config

import (
	"os"
	"path/filepath"
)

// Paths holds all the file system paths used by the application
type Paths struct {
	Home           string // ~/.valuepicker
	ConfigPath     string // ~/.valuepicker/config.json
	YAMLConfigPath string // ~/.valuepicker/config.yaml
	LogsRoot       string // ~/.valuepicker/logs
}

// DefaultPaths returns the default paths configuration
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return PathsAt(filepath.Join(home, ".valuepicker")), nil
}

// PathsAt lays out the application files under root.
func PathsAt(root string) *Paths {
	return &Paths{
		Home:           root,
		ConfigPath:     filepath.Join(root, "config.json"),
		YAMLConfigPath: filepath.Join(root, "config.yaml"),
		LogsRoot:       filepath.Join(root, "logs"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.LogsRoot} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// ExistingConfig returns the first config file present, preferring JSON.
// It returns "" when neither exists.
func (p *Paths) ExistingConfig() string {
	for _, path := range []string{p.ConfigPath, p.YAMLConfigPath} {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
