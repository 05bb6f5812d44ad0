package valuepicker

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Child is one segment of a picker. Only tagged children are selectable;
// untagged ones take up space and are never highlighted.
type Child[V comparable] struct {
	Tag     V
	Tagged  bool
	Content string
	// Accent overrides the text colour, for swatches and the like.
	Accent color.Color
}

// Tagged returns a selectable child for v.
func Tagged[V comparable](v V, content string) Child[V] {
	return Child[V]{Tag: v, Tagged: true, Content: content}
}

// Untagged returns a child that is laid out but cannot be selected.
func Untagged[V comparable](content string) Child[V] {
	return Child[V]{Content: content}
}

// WithAccent returns c drawn in col.
func (c Child[V]) WithAccent(col color.Color) Child[V] {
	c.Accent = col
	return c
}

// line is the single line of plain text the child renders.
func (c Child[V]) line() string {
	first, _, _ := strings.Cut(c.Content, "\n")
	return ansi.Strip(first)
}
