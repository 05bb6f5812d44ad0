package compositor

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/andyrewlee/valuepicker/internal/geom"
)

// Style is the paint state of a single cell.
type Style struct {
	Fg    color.Color
	Bg    color.Color
	Bold  bool
	Faint bool
}

func (s Style) lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle().Inline(true)
	if s.Fg != nil {
		st = st.Foreground(s.Fg)
	}
	if s.Bg != nil {
		st = st.Background(s.Bg)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Faint {
		st = st.Faint(true)
	}
	return st
}

// Cell is one terminal cell. Width is 0 for the trailing half of a wide rune.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

func blankCell(style Style) Cell {
	return Cell{Rune: ' ', Width: 1, Style: style}
}

func blankLine(width int, style Style) []Cell {
	line := make([]Cell, width)
	for i := range line {
		line[i] = blankCell(style)
	}
	return line
}

// Canvas is a fixed-size buffer of styled cells.
type Canvas struct {
	Width  int
	Height int
	Cells  [][]Cell

	// renderBuffers keep two frames alive to avoid reallocations while preserving
	// the previous render output.
	renderBuffers    [2]strings.Builder
	renderBufferNext int
}

// NewCanvas creates a new canvas filled with blank cells.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize resets the canvas dimensions when the size changes.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == c.Width && height == c.Height && c.Cells != nil {
		return
	}
	rows := make([][]Cell, height)
	for y := range rows {
		rows[y] = blankLine(width, Style{})
	}
	c.Width = width
	c.Height = height
	c.Cells = rows
}

// Fill blanks the entire canvas with the given style.
func (c *Canvas) Fill(style Style) {
	for y := range c.Cells {
		for x := range c.Cells[y] {
			c.Cells[y][x] = blankCell(style)
		}
	}
}

// SetCell sets a cell if within bounds.
func (c *Canvas) SetCell(x, y int, cell Cell) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Cells[y][x] = cell
}

// Cell returns the cell at x, y, or a blank cell when out of bounds.
func (c *Canvas) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return blankCell(Style{})
	}
	return c.Cells[y][x]
}

// DrawText draws a single line of text starting at x, y. A nil background in
// style keeps whatever background the cells already have.
func (c *Canvas) DrawText(x, y int, text string, style Style) {
	if y < 0 || y >= c.Height {
		return
	}

	col := x
	for _, r := range text {
		if r == '\n' || col >= c.Width {
			break
		}
		width := runewidth.RuneWidth(r)
		if width <= 0 {
			continue
		}
		if col+width > c.Width {
			break
		}
		if col >= 0 {
			st := style
			if st.Bg == nil {
				st.Bg = c.Cells[y][col].Style.Bg
			}
			c.SetCell(col, y, Cell{Rune: r, Width: width, Style: st})
			if width == 2 {
				c.SetCell(col+1, y, Cell{Width: 0, Style: st})
			}
		}
		col += width
	}
}

// FillPath paints bg behind every cell whose centre lies inside path. Path
// coordinates are in points relative to the canvas origin; m maps them to
// cells. Cell content and foreground are kept.
func (c *Canvas) FillPath(path geom.Path, m geom.CellMetrics, bg color.Color) {
	if path.Empty() {
		return
	}
	area := m.Cells(path.Bounds())
	x0, y0 := max(area.X-1, 0), max(area.Y-1, 0)
	x1, y1 := min(area.X+area.W+1, c.Width), min(area.Y+area.H+1, c.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if path.Contains(m.CellCenter(x, y)) {
				c.Cells[y][x].Style.Bg = bg
			}
		}
	}
}

// Render converts the canvas to an ANSI string, one line per row.
func (c *Canvas) Render() string {
	b := &c.renderBuffers[c.renderBufferNext]
	c.renderBufferNext = (c.renderBufferNext + 1) % len(c.renderBuffers)
	b.Reset()
	b.Grow(c.Width * c.Height * 2)

	var run strings.Builder
	for y := 0; y < c.Height; y++ {
		var last Style
		run.Reset()
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(last.lipgloss().Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.Width; x++ {
			cell := c.Cells[y][x]
			if cell.Width == 0 {
				continue
			}
			if cell.Style != last {
				flush()
				last = cell.Style
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			run.WriteRune(r)
		}
		flush()
		if y < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
