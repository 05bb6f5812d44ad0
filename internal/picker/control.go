package picker

import "github.com/andyrewlee/valuepicker/internal/geom"

// Pass is the read-consistent result of one layout pass.
type Pass[V comparable] struct {
	Config    Config
	Container geom.Rect
	Items     []Item[V]
	Selection V
	// Base is the selected item's bounds, zero when it was not laid out.
	Base    geom.Rect
	Settled geom.Rect
	Current geom.Rect
	// Preselect is the item the current frame snapped to, if any. It is
	// an output only and must be applied through Control.Apply on a later
	// turn.
	Preselect    V
	HasPreselect bool
}

// Control drives one picker: it owns the registry, the recognizer and the
// state machine, and writes the selection through the binding.
type Control[V comparable] struct {
	cfg        Config
	binding    Binding[V]
	registry   *Registry[V]
	recognizer Recognizer
	machine    Machine[V]
	container  geom.Rect
	last       Pass[V]
}

// NewControl returns a control with neutral state.
func NewControl[V comparable](cfg Config, b Binding[V]) *Control[V] {
	return &Control[V]{
		cfg:      cfg,
		binding:  b,
		registry: NewRegistry[V](),
	}
}

// Config returns the scope in effect.
func (c *Control[V]) Config() Config { return c.cfg }

// SetConfig replaces the scope. It applies from the next pass.
func (c *Control[V]) SetConfig(cfg Config) { c.cfg = cfg }

// Selection reads the binding.
func (c *Control[V]) Selection() V { return c.binding.Get() }

// Begin starts a layout pass over container.
func (c *Control[V]) Begin(container geom.Rect) {
	c.container = container
	c.registry.Begin()
}

// Register records a tagged item for the pass in progress.
func (c *Control[V]) Register(id V, bounds geom.Rect) {
	c.registry.Register(id, bounds)
}

// End closes the pass and computes the capsule geometry from it.
func (c *Control[V]) End() Pass[V] {
	items := c.registry.Snapshot()
	sel := c.binding.Get()
	p := Pass[V]{
		Config:    c.cfg,
		Container: c.container,
		Items:     items,
		Selection: sel,
	}
	if it, ok := lookup(items, sel); ok {
		p.Base = it.Bounds
	}
	p.Settled = SettledFrame(c.cfg, sel, items, c.container)
	p.Current, p.Preselect, p.HasPreselect = CurrentFrame(c.cfg, p.Base, c.machine.state.DragTranslation, items, c.container)
	c.last = p
	return p
}

// Last returns the most recent pass.
func (c *Control[V]) Last() Pass[V] { return c.last }

// NeedsPreselect reports whether p carries a preselection the machine would
// accept and does not already hold.
func (c *Control[V]) NeedsPreselect(p Pass[V]) bool {
	if !p.HasPreselect || c.Phase() == PhaseIdle {
		return false
	}
	st := c.machine.state
	return !st.HasPreselected || st.Preselected != p.Preselect
}

// Apply is the deferred preselection entry point.
func (c *Control[V]) Apply(v V) bool {
	return c.machine.SetPreselected(v)
}

// Down forwards a pointer press in container coordinates.
func (c *Control[V]) Down(p geom.Point) {
	c.dispatch(c.recognizer.Down(p))
}

// Move forwards pointer motion while pressed.
func (c *Control[V]) Move(p geom.Point) {
	c.dispatch(c.recognizer.Move(p))
}

// Up ends the gesture and returns what, if anything, was committed.
func (c *Control[V]) Up(p geom.Point) Commit[V] {
	if len(c.recognizer.Up(p)) == 0 {
		return Commit[V]{}
	}
	return c.machine.Release(p, c.last, c.binding)
}

// Cancel abandons the gesture in progress.
func (c *Control[V]) Cancel() {
	c.recognizer.Cancel()
	c.machine.Cancel()
}

// Select commits v directly, as keyboard navigation does. Any gesture in
// progress is abandoned.
func (c *Control[V]) Select(v V) Commit[V] {
	c.Cancel()
	prior := c.binding.Get()
	cm := commitTo(c.binding, v, PathKey)
	cm.Changed = v != prior
	return cm
}

// Step returns the item id offset by delta from the selection within the
// last pass, clamped to the ends. With no items it reports false.
func (c *Control[V]) Step(delta int) (V, bool) {
	var zero V
	items := c.last.Items
	if len(items) == 0 {
		return zero, false
	}
	idx := 0
	sel := c.binding.Get()
	for i, it := range items {
		if it.ID == sel {
			idx = i
			break
		}
	}
	idx = max(0, min(len(items)-1, idx+delta))
	return items[idx].ID, true
}

// State returns the machine state.
func (c *Control[V]) State() State[V] { return c.machine.State() }

// Phase returns the machine phase.
func (c *Control[V]) Phase() Phase { return c.machine.Phase() }

// Highlighted reports whether tag renders emphasized right now.
func (c *Control[V]) Highlighted(tag V) bool {
	return c.machine.Highlighted(tag, c.binding.Get())
}

// PressingCapsule reports whether the press began on the displayed capsule.
func (c *Control[V]) PressingCapsule() bool {
	return c.machine.PressingCapsule(c.last.Current)
}

func (c *Control[V]) dispatch(events []Event) {
	for _, ev := range events {
		if ev.Phase != GestureChanged {
			continue
		}
		switch ev.Gesture {
		case GesturePress:
			c.machine.PressChanged(ev.Start)
		case GestureDrag:
			c.machine.DragChanged(ev.Translation)
		}
	}
}
