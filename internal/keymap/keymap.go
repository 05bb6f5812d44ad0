package keymap

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/andyrewlee/valuepicker/internal/config"
)

// Action identifies a configurable keybinding.
type Action string

const (
	ActionPrev  Action = "prev"
	ActionNext  Action = "next"
	ActionFirst Action = "first"
	ActionLast  Action = "last"

	ActionFocusNext Action = "focus_next"
	ActionFocusPrev Action = "focus_prev"

	ActionCopy      Action = "copy"
	ActionThemeNext Action = "theme_next"
	ActionHelp      Action = "help"
	ActionQuit      Action = "quit"
)

type bindingDef struct {
	action Action
	keys   []string
	desc   string
}

// KeyMap defines all keybindings for the application.
type KeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding

	FocusNext key.Binding
	FocusPrev key.Binding

	Copy      key.Binding
	ThemeNext key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var defaults = []bindingDef{
	{action: ActionPrev, keys: []string{"left", "h"}, desc: "previous"},
	{action: ActionNext, keys: []string{"right", "l"}, desc: "next"},
	{action: ActionFirst, keys: []string{"home", "g"}, desc: "first"},
	{action: ActionLast, keys: []string{"end", "G"}, desc: "last"},
	{action: ActionFocusNext, keys: []string{"tab", "down", "j"}, desc: "next picker"},
	{action: ActionFocusPrev, keys: []string{"shift+tab", "up", "k"}, desc: "previous picker"},
	{action: ActionCopy, keys: []string{"y"}, desc: "copy value"},
	{action: ActionThemeNext, keys: []string{"t"}, desc: "theme"},
	{action: ActionHelp, keys: []string{"?"}, desc: "help"},
	{action: ActionQuit, keys: []string{"q", "ctrl+c"}, desc: "quit"},
}

// New builds a keymap from defaults, applying any user overrides.
func New(cfg config.KeyMapConfig) KeyMap {
	var km KeyMap
	for _, def := range defaults {
		*km.field(def.action) = bindingFromDef(cfg, def)
	}
	return km
}

func (km *KeyMap) field(action Action) *key.Binding {
	switch action {
	case ActionPrev:
		return &km.Prev
	case ActionNext:
		return &km.Next
	case ActionFirst:
		return &km.First
	case ActionLast:
		return &km.Last
	case ActionFocusNext:
		return &km.FocusNext
	case ActionFocusPrev:
		return &km.FocusPrev
	case ActionCopy:
		return &km.Copy
	case ActionThemeNext:
		return &km.ThemeNext
	case ActionHelp:
		return &km.Help
	case ActionQuit:
		return &km.Quit
	default:
		return nil
	}
}

func bindingFromDef(cfg config.KeyMapConfig, def bindingDef) key.Binding {
	keys, ok := cfg.BindingFor(string(def.action))
	if !ok || len(keys) == 0 {
		keys = def.keys
	}
	helpKey := strings.Join(keys, "/")
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKey, def.desc),
	)
}

// PrimaryKey returns the first key in the binding, if present.
func PrimaryKey(binding key.Binding) string {
	keys := binding.Keys()
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// BindingHint returns a single key hint for a binding, falling back to help text.
func BindingHint(binding key.Binding) string {
	k := PrimaryKey(binding)
	if k == "" {
		return binding.Help().Key
	}
	return k
}

// PairHint joins two bindings with a slash using their primary keys.
func PairHint(a, b key.Binding) string {
	left := BindingHint(a)
	right := BindingHint(b)
	if left == "" {
		return right
	}
	if right == "" {
		return left
	}
	return left + "/" + right
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Prev, km.Next, km.FocusNext, km.Copy, km.ThemeNext, km.Help, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Prev, km.Next, km.First, km.Last},
		{km.FocusNext, km.FocusPrev},
		{km.Copy, km.ThemeNext, km.Help, km.Quit},
	}
}

// ActionInfo describes a configurable action for UI display.
type ActionInfo struct {
	Action Action
	Desc   string
	Group  string
}

// ActionInfos returns the ordered list of actions for UI display.
func ActionInfos() []ActionInfo {
	return []ActionInfo{
		{Action: ActionPrev, Desc: "Previous value", Group: "Picker"},
		{Action: ActionNext, Desc: "Next value", Group: "Picker"},
		{Action: ActionFirst, Desc: "First value", Group: "Picker"},
		{Action: ActionLast, Desc: "Last value", Group: "Picker"},
		{Action: ActionFocusNext, Desc: "Focus next picker", Group: "Focus"},
		{Action: ActionFocusPrev, Desc: "Focus previous picker", Group: "Focus"},
		{Action: ActionCopy, Desc: "Copy selection", Group: "Global"},
		{Action: ActionThemeNext, Desc: "Cycle theme", Group: "Global"},
		{Action: ActionHelp, Desc: "Toggle help", Group: "Global"},
		{Action: ActionQuit, Desc: "Quit", Group: "Global"},
	}
}

// BindingForAction returns the binding for the given action.
func BindingForAction(km KeyMap, action Action) key.Binding {
	if b := km.field(action); b != nil {
		return *b
	}
	return key.Binding{}
}
