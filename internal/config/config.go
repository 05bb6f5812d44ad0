package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files that are neither JSON nor YAML.
var ErrUnknownFormat = errors.New("unknown config format")

// KeyMapConfig holds user overrides for keybindings.
type KeyMapConfig struct {
	Bindings map[string][]string `json:"bindings,omitempty" yaml:"bindings,omitempty"`
}

// BindingFor returns the configured keys for an action, if present.
func (k KeyMapConfig) BindingFor(action string) ([]string, bool) {
	if len(k.Bindings) == 0 {
		return nil, false
	}
	if keys, ok := k.Bindings[action]; ok {
		return keys, true
	}
	if keys, ok := k.Bindings[strings.ToLower(action)]; ok {
		return keys, true
	}
	return nil, false
}

// Config holds the application configuration
type Config struct {
	Paths *Paths
	// Source is the file the settings were read from, empty for defaults.
	Source string
	Picker PickerSettings
	UI     UISettings
	KeyMap KeyMapConfig
}

// file is the on-disk shape shared by the JSON and YAML formats.
type file struct {
	Picker PickerSettings `json:"picker" yaml:"picker"`
	UI     uiFile         `json:"ui" yaml:"ui"`
	KeyMap KeyMapConfig   `json:"keymap" yaml:"keymap"`
}

type uiFile struct {
	ShowKeymapHints *bool   `json:"show_keymap_hints" yaml:"show_keymap_hints"`
	Theme           *string `json:"theme" yaml:"theme"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return DefaultConfigAt(paths), nil
}

// DefaultConfigAt returns the default configuration rooted at paths.
func DefaultConfigAt(paths *Paths) *Config {
	return &Config{
		Paths:  paths,
		UI:     defaultUISettings(),
		KeyMap: KeyMapConfig{},
	}
}

// Load reads path, or the first config file under ~/.valuepicker when path
// is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return LoadFrom(paths, path)
}

// LoadFrom is Load with explicit paths.
func LoadFrom(paths *Paths, path string) (*Config, error) {
	cfg := DefaultConfigAt(paths)
	if path == "" {
		path = paths.ExistingConfig()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var f file
	if err := decode(path, data, &f); err != nil {
		return nil, err
	}
	if err := f.Picker.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	cfg.Source = path
	cfg.Picker = f.Picker
	if f.UI.ShowKeymapHints != nil {
		cfg.UI.ShowKeymapHints = *f.UI.ShowKeymapHints
	}
	if f.UI.Theme != nil {
		cfg.UI.Theme = *f.UI.Theme
	}
	if len(f.KeyMap.Bindings) > 0 {
		cfg.KeyMap = f.KeyMap
	}
	return cfg, nil
}

func formatOf(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

func decode(path string, data []byte, v any) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}
	switch format {
	case "json":
		err = json.Unmarshal(data, v)
	default:
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("parse %s config %s: %w", format, path, err)
	}
	return nil
}

func encode(path string, v any) ([]byte, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	if format == "json" {
		return json.MarshalIndent(v, "", "  ")
	}
	return yaml.Marshal(v)
}
