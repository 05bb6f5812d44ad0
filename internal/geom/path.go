package geom

import "math"

// Path is a closed polygon outline.
type Path struct {
	Points []Point
}

// Empty reports whether the path encloses nothing.
func (p Path) Empty() bool {
	return len(p.Points) < 3
}

// Bounds returns the smallest rect containing every vertex.
func (p Path) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	minX, minY := p.Points[0].X, p.Points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.Points[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Contains reports whether pt is inside the polygon (even-odd rule).
func (p Path) Contains(pt Point) bool {
	if p.Empty() {
		return false
	}
	inside := false
	n := len(p.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue
		}
		x := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
		if pt.X < x {
			inside = !inside
		}
	}
	return inside
}

// RectPath returns the four-corner outline of r.
func RectPath(r Rect) Path {
	return Path{Points: []Point{
		{X: r.MinX(), Y: r.MinY()},
		{X: r.MaxX(), Y: r.MinY()},
		{X: r.MaxX(), Y: r.MaxY()},
		{X: r.MinX(), Y: r.MaxY()},
	}}
}

// arcSegments is the number of straight segments per quarter circle.
const arcSegments = 6

// RoundedRectPath outlines r with circular corners of the given radius. The
// radius is clamped to half the shorter side.
func RoundedRectPath(r Rect, radius float64) Path {
	if r.IsEmpty() {
		return Path{}
	}
	radius = math.Max(0, math.Min(radius, math.Min(r.W, r.H)/2))
	if radius == 0 {
		return RectPath(r)
	}
	corners := []struct {
		c     Point
		start float64
	}{
		{Point{X: r.MaxX() - radius, Y: r.MinY() + radius}, -math.Pi / 2},
		{Point{X: r.MaxX() - radius, Y: r.MaxY() - radius}, 0},
		{Point{X: r.MinX() + radius, Y: r.MaxY() - radius}, math.Pi / 2},
		{Point{X: r.MinX() + radius, Y: r.MinY() + radius}, math.Pi},
	}
	pts := make([]Point, 0, len(corners)*(arcSegments+1))
	for _, corner := range corners {
		for i := 0; i <= arcSegments; i++ {
			a := corner.start + float64(i)/arcSegments*(math.Pi/2)
			pts = append(pts, Point{
				X: corner.c.X + radius*math.Cos(a),
				Y: corner.c.Y + radius*math.Sin(a),
			})
		}
	}
	return Path{Points: pts}
}

// EllipsePath outlines the ellipse inscribed in r.
func EllipsePath(r Rect) Path {
	if r.IsEmpty() {
		return Path{}
	}
	const n = arcSegments * 4
	c := r.Center()
	pts := make([]Point, n)
	for i := range pts {
		a := float64(i) / n * 2 * math.Pi
		pts[i] = Point{X: c.X + r.W/2*math.Cos(a), Y: c.Y + r.H/2*math.Sin(a)}
	}
	return Path{Points: pts}
}
