package geom

import "math"

// CellMetrics maps points onto terminal cells.
type CellMetrics struct {
	Width  float64 // points per column
	Height float64 // points per row
}

// DefaultCellMetrics keeps the default paddings on whole columns
// (6pt container, 12pt item) and puts a one-line label on exactly one row.
var DefaultCellMetrics = CellMetrics{Width: 6, Height: 8}

// CellRect is a rectangle measured in whole cells.
type CellRect struct {
	X, Y, W, H int
}

// CellCenter returns the point at the center of the cell (col, row).
func (m CellMetrics) CellCenter(col, row int) Point {
	return Point{
		X: (float64(col) + 0.5) * m.Width,
		Y: (float64(row) + 0.5) * m.Height,
	}
}

// Column converts a horizontal point offset to the nearest column edge.
func (m CellMetrics) Column(x float64) int {
	return int(math.Round(x / m.Width))
}

// Row converts a vertical point offset to the nearest row edge.
func (m CellMetrics) Row(y float64) int {
	return int(math.Round(y / m.Height))
}

// Columns returns the number of columns needed to hold w points.
func (m CellMetrics) Columns(w float64) int {
	return int(math.Ceil(w / m.Width))
}

// Rows returns the number of rows needed to hold h points.
func (m CellMetrics) Rows(h float64) int {
	return int(math.Ceil(h / m.Height))
}

// Points converts a cell span to points.
func (m CellMetrics) Points(cols, rows int) (w, h float64) {
	return float64(cols) * m.Width, float64(rows) * m.Height
}

// Cells snaps r to the cell grid by rounding each edge.
func (m CellMetrics) Cells(r Rect) CellRect {
	x0, x1 := m.Column(r.MinX()), m.Column(r.MaxX())
	y0, y1 := m.Row(r.MinY()), m.Row(r.MaxY())
	return CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
