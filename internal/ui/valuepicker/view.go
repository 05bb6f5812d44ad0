package valuepicker

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/valuepicker/internal/geom"
	"github.com/andyrewlee/valuepicker/internal/ui/compositor"
)

// shadow geometry, in points
var (
	shadowOffset = geom.Vector{DY: 1}
	shadowOutset = geom.UniformInsets(2)
)

// View renders the label, if any, followed by the track.
func (m *Model[V]) View() string {
	track := m.renderTrack()
	if m.zone != nil {
		track = m.zone.Mark(m.id, track)
	}
	if m.label == "" {
		return track
	}
	style := m.styles.Label
	if m.focused {
		style = m.styles.FocusedLabel
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, style.Render(m.label), "  ", track)
}

func (m *Model[V]) renderTrack() string {
	if m.stale() {
		// No command can be returned from here; jump to the new selection.
		p := m.pass()
		m.frame.Set(p.Current, false)
	}
	frame := m.frame.Current()
	scale := m.scale.Current()

	key := compositor.FastHash(fmt.Sprintf("%v|%v|%v|%v", frame, scale, m.highlightKey(), m.layout.slots))
	if out, ok := m.cache.Get(key); ok {
		return out
	}

	cfg := m.ctrl.Config()
	c := m.canvas
	c.Resize(m.layout.cols, m.layout.rows)
	c.Fill(compositor.Style{})
	c.FillPath(cfg.ContainerShape.BoundaryPath(m.layout.container), m.metrics, m.styles.Track)

	if !frame.IsZero() {
		shadow := frame.Offset(shadowOffset).Outset(shadowOutset)
		c.FillPath(cfg.ItemShape.BoundaryPath(shadow), m.metrics, m.styles.Shadow)
		c.FillPath(cfg.ItemShape.BoundaryPath(frame.Scale(scale)), m.metrics, m.styles.Capsule)
	}

	for i, s := range m.layout.slots {
		child := m.children[i]
		style := m.styles.Dimmed
		if child.Tagged && m.ctrl.Highlighted(child.Tag) {
			style = m.styles.Highlight
		}
		if child.Accent != nil {
			style.Fg = child.Accent
		}
		c.DrawText(s.col, s.row, s.text, style)
	}

	out := c.Render()
	m.cache.Set(key, out)
	return out
}

// highlightKey lists which children are highlighted, for the frame cache.
func (m *Model[V]) highlightKey() []bool {
	out := make([]bool, len(m.children))
	for i, child := range m.children {
		out[i] = child.Tagged && m.ctrl.Highlighted(child.Tag)
	}
	return out
}
