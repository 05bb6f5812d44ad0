package app

import (
	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/valuepicker/internal/geom"
	"github.com/andyrewlee/valuepicker/internal/picker"
	"github.com/andyrewlee/valuepicker/internal/ui/valuepicker"
)

// Picker ids, also used as zone ids.
const (
	revenueID = "revenue"
	displayID = "display"
	colorID   = "color"
)

var revenuePeriods = []string{"Weekly", "Monthly", "Quarterly", "Yearly"}

// DisplayOption is how a dataset is presented.
type DisplayOption int

const (
	DisplayTable DisplayOption = iota
	DisplayBoard
	DisplayChart
)

var displayOptions = []DisplayOption{DisplayTable, DisplayBoard, DisplayChart}

func (d DisplayOption) String() string {
	switch d {
	case DisplayTable:
		return "Table"
	case DisplayBoard:
		return "Board"
	case DisplayChart:
		return "Chart"
	default:
		return "Unknown"
	}
}

// Icon is the glyph shown before the option's name.
func (d DisplayOption) Icon() string {
	switch d {
	case DisplayTable:
		return "☰"
	case DisplayBoard:
		return "⊞"
	case DisplayChart:
		return "⫼"
	default:
		return "?"
	}
}

// ColorItem is a named colour swatch.
type ColorItem struct {
	Name string
	Hex  string
}

var colorItems = []ColorItem{
	{Name: "Red", Hex: "#ff3b30"},
	{Name: "Orange", Hex: "#ff9500"},
	{Name: "Yellow", Hex: "#ffcc00"},
	{Name: "Green", Hex: "#34c759"},
	{Name: "Mint", Hex: "#00c7be"},
	{Name: "Teal", Hex: "#30b0c7"},
	{Name: "Cyan", Hex: "#32ade6"},
}

func revenueChildren() []valuepicker.Child[string] {
	children := make([]valuepicker.Child[string], 0, len(revenuePeriods))
	for _, p := range revenuePeriods {
		children = append(children, valuepicker.Tagged(p, p))
	}
	return children
}

func displayChildren() []valuepicker.Child[DisplayOption] {
	children := make([]valuepicker.Child[DisplayOption], 0, len(displayOptions))
	for _, d := range displayOptions {
		children = append(children, valuepicker.Tagged(d, d.Icon()+" "+d.String()))
	}
	return children
}

func colorChildren() []valuepicker.Child[ColorItem] {
	children := make([]valuepicker.Child[ColorItem], 0, len(colorItems))
	for _, c := range colorItems {
		children = append(children, valuepicker.Tagged(c, "●").WithAccent(lipgloss.Color(c.Hex)))
	}
	return children
}

// pickerScopes derives the per-picker config scopes from the root scope.
// The colour scope halves the configured horizontal item padding so seven
// swatches stay narrow; vertical padding is inherited unchanged.
func pickerScopes(root picker.Config) (revenue, display, color picker.Config) {
	return root, root, root.With(picker.WithItemPadding(swatchPadding(root.ItemPadding)))
}

func swatchPadding(in geom.Insets) *geom.Insets {
	in.Leading /= 2
	in.Trailing /= 2
	return &in
}
