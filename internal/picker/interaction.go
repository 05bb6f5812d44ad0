package picker

import "github.com/andyrewlee/valuepicker/internal/geom"

// Phase is the coarse interaction state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePressing
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePressing:
		return "pressing"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// State is the live interaction state of one picker.
type State[V comparable] struct {
	Pressing        bool
	PressStart      geom.Point
	PressEnd        geom.Point
	Dragging        bool
	DragTranslation geom.Vector
	Preselected     V
	HasPreselected  bool
}

// CommitPath records which gesture produced a commit.
type CommitPath int

const (
	PathNone CommitPath = iota
	PathDrag
	PathTap
	PathKey
)

func (p CommitPath) String() string {
	switch p {
	case PathNone:
		return "none"
	case PathDrag:
		return "drag"
	case PathTap:
		return "tap"
	case PathKey:
		return "key"
	default:
		return "unknown"
	}
}

// Commit is the outcome of a release. Committed is false when nothing was
// written; Changed reports whether the binding ended up with a new value.
type Commit[V comparable] struct {
	Value     V
	Committed bool
	Changed   bool
	Path      CommitPath
}

// Machine interprets press and drag events for one picker.
type Machine[V comparable] struct {
	state State[V]
}

// State returns a copy of the current state.
func (m *Machine[V]) State() State[V] { return m.state }

// Phase summarizes the state.
func (m *Machine[V]) Phase() Phase {
	switch {
	case m.state.Dragging:
		return PhaseDragging
	case m.state.Pressing:
		return PhasePressing
	default:
		return PhaseIdle
	}
}

// PressChanged marks the press active from start.
func (m *Machine[V]) PressChanged(start geom.Point) {
	m.state.Pressing = true
	m.state.PressStart = start
}

// DragChanged marks the drag active with the live translation.
func (m *Machine[V]) DragChanged(translation geom.Vector) {
	m.state.Dragging = true
	m.state.DragTranslation = translation
}

// SetPreselected records v as the preselection. It reports false and does
// nothing when no press or drag is active, so a late deferred update cannot
// revive a finished gesture.
func (m *Machine[V]) SetPreselected(v V) bool {
	if !m.state.Pressing && !m.state.Dragging {
		return false
	}
	m.state.Preselected, m.state.HasPreselected = v, true
	return true
}

// Release ends the press at location. An active drag commits its
// preselection; then, if location lies outside the settled capsule, the item
// under (location.X, container middle) is committed. The later commit wins.
// The state is neutral afterwards.
func (m *Machine[V]) Release(location geom.Point, pass Pass[V], b Binding[V]) Commit[V] {
	prior := b.Get()
	var c Commit[V]

	m.state.Pressing = false
	m.state.PressEnd = location

	if m.state.Dragging {
		m.state.Dragging = false
		m.state.DragTranslation = geom.Vector{}
		if m.state.HasPreselected {
			c = commitTo(b, m.state.Preselected, PathDrag)
		}
	}

	settled := SettledFrame(pass.Config, b.Get(), pass.Items, pass.Container)
	if !settled.Contains(location) {
		probe := geom.Point{X: location.X, Y: pass.Container.MidY()}
		if v, ok := hitTest(pass.Items, probe); ok {
			c = commitTo(b, v, PathTap)
		}
	}

	m.reset()
	c.Changed = c.Committed && c.Value != prior
	return c
}

// Cancel drops any gesture in progress without committing.
func (m *Machine[V]) Cancel() {
	m.reset()
}

// Highlighted reports whether an item tagged tag should render emphasized.
// During a gesture the preselection is shown; otherwise the selection.
func (m *Machine[V]) Highlighted(tag, selection V) bool {
	if m.state.Pressing || m.state.Dragging {
		return m.state.HasPreselected && tag == m.state.Preselected
	}
	return tag == selection
}

// PressingCapsule reports whether the active press began inside frame.
func (m *Machine[V]) PressingCapsule(frame geom.Rect) bool {
	return m.state.Pressing && frame.Contains(m.state.PressStart)
}

func (m *Machine[V]) reset() {
	var zero V
	m.state.Pressing = false
	m.state.Dragging = false
	m.state.DragTranslation = geom.Vector{}
	m.state.Preselected, m.state.HasPreselected = zero, false
}

func commitTo[V comparable](b Binding[V], v V, path CommitPath) Commit[V] {
	if b.Get() != v {
		b.Set(v)
	}
	return Commit[V]{Value: v, Committed: true, Path: path}
}
