package valuepicker

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/valuepicker/internal/anim"
	"github.com/andyrewlee/valuepicker/internal/config"
	"github.com/andyrewlee/valuepicker/internal/geom"
	"github.com/andyrewlee/valuepicker/internal/keymap"
	"github.com/andyrewlee/valuepicker/internal/logging"
	"github.com/andyrewlee/valuepicker/internal/picker"
	"github.com/andyrewlee/valuepicker/internal/ui/compositor"
)

var log = logging.For("valuepicker")

// pressedScale is the capsule scale while it is held or dragged.
const pressedScale = 0.95

// Model is a segmented control over values of type V.
type Model[V comparable] struct {
	id       string
	label    string
	children []Child[V]

	ctrl    *picker.Control[V]
	metrics geom.CellMetrics
	layout  layout

	styles  Styles
	keymap  keymap.KeyMap
	zone    *zone.Manager
	focused bool

	frame   *anim.Frame
	scale   *anim.Value
	seq     int
	ticking bool

	canvas *compositor.Canvas
	cache  compositor.FrameCache
}

// New creates a picker identified by id. The id must be unique among the
// pickers sharing a program; it names the picker's zone and its messages.
func New[V comparable](id string, b picker.Binding[V], children []Child[V], cfg picker.Config) *Model[V] {
	m := &Model[V]{
		id:       id,
		children: children,
		ctrl:     picker.NewControl(cfg, b),
		metrics:  geom.DefaultCellMetrics,
		styles:   DefaultStyles(),
		keymap:   keymap.New(config.KeyMapConfig{}),
		frame:    anim.NewFrame(cfg.Animation),
		scale:    anim.NewValue(cfg.Animation, 1),
		canvas:   compositor.NewCanvas(1, 1),
	}
	m.pass()
	return m
}

// Init initializes the picker.
func (m *Model[V]) Init() tea.Cmd { return nil }

// ID returns the picker id.
func (m *Model[V]) ID() string { return m.id }

// SetZone sets the shared zone manager used to locate the track on screen.
// Without one, mouse coordinates are taken as track-local cells.
func (m *Model[V]) SetZone(z *zone.Manager) { m.zone = z }

// SetLabel sets the text shown before the track.
func (m *Model[V]) SetLabel(label string) { m.label = label }

// Label returns the label.
func (m *Model[V]) Label() string { return m.label }

// SetStyles replaces the paints.
func (m *Model[V]) SetStyles(s Styles) {
	m.styles = s
	m.cache.Invalidate()
}

// SetKeyMap replaces the keyboard bindings.
func (m *Model[V]) SetKeyMap(km keymap.KeyMap) { m.keymap = km }

// SetConfig replaces the picker scope and re-lays the track.
func (m *Model[V]) SetConfig(cfg picker.Config) tea.Cmd {
	m.ctrl.SetConfig(cfg)
	m.frame.SetProfile(cfg.Animation)
	m.scale.SetProfile(cfg.Animation)
	m.cache.Invalidate()
	return m.refresh()
}

// SetChildren replaces the segments.
func (m *Model[V]) SetChildren(children []Child[V]) tea.Cmd {
	m.children = children
	m.cache.Invalidate()
	return m.refresh()
}

// Focus sets focus.
func (m *Model[V]) Focus() { m.focused = true }

// Blur removes focus and abandons any gesture in progress.
func (m *Model[V]) Blur() tea.Cmd {
	m.focused = false
	if m.ctrl.Phase() == picker.PhaseIdle {
		return nil
	}
	m.ctrl.Cancel()
	return m.refresh()
}

// Focused returns focus state.
func (m *Model[V]) Focused() bool { return m.focused }

// Selection returns the bound value.
func (m *Model[V]) Selection() V { return m.ctrl.Selection() }

// Phase returns the interaction phase.
func (m *Model[V]) Phase() picker.Phase { return m.ctrl.Phase() }

// Size returns the track size in cells.
func (m *Model[V]) Size() (cols, rows int) { return m.layout.cols, m.layout.rows }

// Animating reports whether the capsule is still moving.
func (m *Model[V]) Animating() bool { return m.frame.Moving() || m.scale.Moving() }

// Sync re-runs the pass when the bound selection was changed outside the
// picker, so the capsule follows it.
func (m *Model[V]) Sync() tea.Cmd {
	if !m.stale() {
		return nil
	}
	return m.refresh()
}

func (m *Model[V]) stale() bool {
	return m.ctrl.Selection() != m.ctrl.Last().Selection
}

// Update handles messages. Every message first syncs with the binding.
func (m *Model[V]) Update(msg tea.Msg) (*Model[V], tea.Cmd) {
	sync := m.Sync()
	_, cmd := m.update(msg)
	return m, tea.Batch(sync, cmd)
}

func (m *Model[V]) update(msg tea.Msg) (*Model[V], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case preselectMsg[V]:
		if msg.id != m.id {
			return m, nil
		}
		m.ctrl.Apply(msg.value)
		return m, m.refresh()
	case frameMsg:
		if msg.id != m.id || msg.seq != m.seq {
			return m, nil
		}
		m.ticking = false
		moving := m.frame.Step()
		if m.scale.Step() {
			moving = true
		}
		if moving {
			return m, m.tick()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model[V]) handleMouseClick(msg tea.MouseClickMsg) (*Model[V], tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return m, nil
	}
	col, row, ok := m.localCell(msg.X, msg.Y)
	if !ok || !m.layout.inside(col, row) {
		return m, nil
	}
	m.ctrl.Down(m.metrics.CellCenter(col, row))
	return m, m.refresh()
}

func (m *Model[V]) handleMouseMotion(msg tea.MouseMotionMsg) (*Model[V], tea.Cmd) {
	if m.ctrl.Phase() == picker.PhaseIdle {
		return m, nil
	}
	col, row, ok := m.localCell(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.ctrl.Move(m.metrics.CellCenter(col, row))
	return m, m.refresh()
}

func (m *Model[V]) handleMouseRelease(msg tea.MouseReleaseMsg) (*Model[V], tea.Cmd) {
	if m.ctrl.Phase() == picker.PhaseIdle {
		return m, nil
	}
	col, row, ok := m.localCell(msg.X, msg.Y)
	if !ok {
		m.ctrl.Cancel()
		return m, m.refresh()
	}
	prior := m.ctrl.Selection()
	cm := m.ctrl.Up(m.metrics.CellCenter(col, row))
	return m, tea.Batch(m.refresh(), m.commitCmd(cm, prior))
}

func (m *Model[V]) handleKey(msg tea.KeyPressMsg) (*Model[V], tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	n := len(m.ctrl.Last().Items)
	var delta int
	switch {
	case key.Matches(msg, m.keymap.Prev):
		delta = -1
	case key.Matches(msg, m.keymap.Next):
		delta = 1
	case key.Matches(msg, m.keymap.First):
		delta = -n
	case key.Matches(msg, m.keymap.Last):
		delta = n
	default:
		return m, nil
	}
	v, ok := m.ctrl.Step(delta)
	if !ok {
		return m, nil
	}
	prior := m.ctrl.Selection()
	cm := m.ctrl.Select(v)
	return m, tea.Batch(m.refresh(), m.commitCmd(cm, prior))
}

// localCell converts screen coordinates to track cells.
func (m *Model[V]) localCell(x, y int) (col, row int, ok bool) {
	if m.zone == nil {
		return x, y, true
	}
	info := m.zone.Get(m.id)
	if info == nil || info.IsZero() {
		return 0, 0, false
	}
	return x - info.StartX, y - info.StartY, true
}

func (m *Model[V]) commitCmd(cm picker.Commit[V], prior V) tea.Cmd {
	if !cm.Changed {
		return nil
	}
	log.Debug("%s: %v -> %v via %s", m.id, prior, cm.Value, cm.Path)
	out := SelectionChangedMsg{ID: m.id, Value: cm.Value, Previous: prior, Path: cm.Path}
	return func() tea.Msg { return out }
}

// pass runs one layout pass: lay out the children, register the tagged ones
// and close the pass.
func (m *Model[V]) pass() picker.Pass[V] {
	m.layout = computeLayout(m.ctrl.Config(), m.metrics, m.children)
	m.ctrl.Begin(m.layout.container)
	for i, child := range m.children {
		if child.Tagged {
			m.ctrl.Register(child.Tag, m.layout.slots[i].bounds)
		}
	}
	p := m.ctrl.End()
	m.frame.Set(p.Current, true)
	return p
}

// refresh re-runs the pass after a state change and returns the follow-up
// commands: a deferred preselection and the animation tick.
func (m *Model[V]) refresh() tea.Cmd {
	p := m.pass()

	target := 1.0
	if m.ctrl.PressingCapsule() || m.ctrl.State().Dragging {
		target = pressedScale
	}
	m.scale.Set(target, true)

	var cmds []tea.Cmd
	if m.ctrl.NeedsPreselect(p) {
		id, v := m.id, p.Preselect
		cmds = append(cmds, func() tea.Msg { return preselectMsg[V]{id: id, value: v} })
	}
	if !m.ticking && m.Animating() {
		cmds = append(cmds, m.tick())
	}
	return tea.Batch(cmds...)
}

func (m *Model[V]) tick() tea.Cmd {
	m.ticking = true
	m.seq++
	id, seq := m.id, m.seq
	return tea.Tick(anim.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id, seq: seq}
	})
}
