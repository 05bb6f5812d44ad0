package valuepicker

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/valuepicker/internal/geom"
	"github.com/andyrewlee/valuepicker/internal/picker"
)

// slot is one child placed on the track.
type slot struct {
	text   string
	bounds geom.Rect // item bounds in points
	col    int       // first text column
	row    int
}

// layout is the track geometry for one pass.
type layout struct {
	container geom.Rect
	cols      int
	rows      int
	slots     []slot
}

// computeLayout places children left to right. Each child is one line tall
// and as wide as its text; item padding surrounds it and container padding
// surrounds the row. The container is rounded up to whole cells.
func computeLayout[V comparable](cfg picker.Config, m geom.CellMetrics, children []Child[V]) layout {
	cp, ip := cfg.ContainerPadding, cfg.ItemPadding

	slots := make([]slot, 0, len(children))
	x := cp.Leading
	y := cp.Top + ip.Top
	for _, child := range children {
		text := child.line()
		w := float64(ansi.StringWidth(text)) * m.Width
		bounds := geom.Rect{X: x + ip.Leading, Y: y, W: w, H: m.Height}
		slots = append(slots, slot{
			text:   text,
			bounds: bounds,
			col:    m.Column(bounds.X),
			row:    m.Row(bounds.Y),
		})
		x += ip.Leading + w + ip.Trailing
	}

	width := x + cp.Trailing
	height := y + m.Height + ip.Bottom + cp.Bottom
	cols, rows := max(m.Columns(width), 1), max(m.Rows(height), 1)
	w, h := m.Points(cols, rows)
	return layout{
		container: geom.Rect{W: w, H: h},
		cols:      cols,
		rows:      rows,
		slots:     slots,
	}
}

// inside reports whether the cell lies on the track.
func (l layout) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < l.cols && row < l.rows
}
