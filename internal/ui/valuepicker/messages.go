package valuepicker

import "github.com/andyrewlee/valuepicker/internal/picker"

// SelectionChangedMsg is emitted after a commit changes the bound value.
type SelectionChangedMsg struct {
	ID       string
	Value    any
	Previous any
	Path     picker.CommitPath
}

// preselectMsg carries a preselection computed during a layout pass. It is
// applied on the following update, never during the pass that produced it.
type preselectMsg[V comparable] struct {
	id    string
	value V
}

// frameMsg advances the capsule animation of picker id. Ticks whose seq is
// not the picker's latest are stale and dropped.
type frameMsg struct {
	id  string
	seq int
}
