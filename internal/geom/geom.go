// Package geom holds the small amount of planar geometry the picker needs.
// Coordinates are abstract points with the origin at the top-left corner and
// y growing downward.
package geom

import "math"

// Point is a location in container-local coordinates.
type Point struct {
	X float64
	Y float64
}

// Vector is a translation between two points.
type Vector struct {
	DX float64
	DY float64
}

// Sub returns the translation that moves q onto p.
func (p Point) Sub(q Point) Vector {
	return Vector{DX: p.X - q.X, DY: p.Y - q.Y}
}

// IsZero reports whether the vector has no length.
func (v Vector) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Insets are edge distances, leading/trailing being left/right in a
// left-to-right layout.
type Insets struct {
	Top      float64
	Leading  float64
	Bottom   float64
	Trailing float64
}

// UniformInsets returns insets with the same value on every edge.
func UniformInsets(v float64) Insets {
	return Insets{Top: v, Leading: v, Bottom: v, Trailing: v}
}

// Horizontal is Leading+Trailing.
func (i Insets) Horizontal() float64 { return i.Leading + i.Trailing }

// Vertical is Top+Bottom.
func (i Insets) Vertical() float64 { return i.Top + i.Bottom }

// Rect is an origin plus a size. Widths and heights are expected to be
// non-negative.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }
func (r Rect) MidX() float64 { return r.X + r.W/2 }
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// Area returns W*H.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// IsZero reports whether r is the zero rectangle.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// IsEmpty reports whether r covers no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside r. The minimum edges are inclusive
// and the maximum edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// Intersects reports whether r and o share a region of positive area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersection(o).IsEmpty()
}

// Intersection returns the overlapping region of r and o, or the zero rect
// when they do not overlap.
func (r Rect) Intersection(o Rect) Rect {
	x0 := math.Max(r.MinX(), o.MinX())
	y0 := math.Max(r.MinY(), o.MinY())
	x1 := math.Min(r.MaxX(), o.MaxX())
	y1 := math.Min(r.MaxY(), o.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Offset translates r by v.
func (r Rect) Offset(v Vector) Rect {
	r.X += v.DX
	r.Y += v.DY
	return r
}

// Inset shrinks r by the given insets. The result never has a negative size.
func (r Rect) Inset(in Insets) Rect {
	out := Rect{
		X: r.X + in.Leading,
		Y: r.Y + in.Top,
		W: r.W - in.Horizontal(),
		H: r.H - in.Vertical(),
	}
	out.W = math.Max(out.W, 0)
	out.H = math.Max(out.H, 0)
	return out
}

// Outset grows r by the given insets.
func (r Rect) Outset(in Insets) Rect {
	return Rect{
		X: r.X - in.Leading,
		Y: r.Y - in.Top,
		W: r.W + in.Horizontal(),
		H: r.H + in.Vertical(),
	}
}

// Scale resizes r about its center by factor s.
func (r Rect) Scale(s float64) Rect {
	c := r.Center()
	w := r.W * s
	h := r.H * s
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}
