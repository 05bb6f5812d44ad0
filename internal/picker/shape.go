package picker

import (
	"math"
	"strings"

	"github.com/andyrewlee/valuepicker/internal/geom"
)

// Shape outlines a rectangle. The container background and the capsule are
// both painted through a Shape, so any implementation can stand in for the
// defaults.
type Shape interface {
	BoundaryPath(r geom.Rect) geom.Path
}

// Capsule is a pill: fully rounded along the shorter side.
type Capsule struct{}

func (Capsule) BoundaryPath(r geom.Rect) geom.Path {
	return geom.RoundedRectPath(r, math.Min(r.W, r.H)/2)
}

// Rectangle is the rect itself.
type Rectangle struct{}

func (Rectangle) BoundaryPath(r geom.Rect) geom.Path {
	if r.IsEmpty() {
		return geom.Path{}
	}
	return geom.RectPath(r)
}

// RoundedRectangle rounds every corner by Radius.
type RoundedRectangle struct {
	Radius float64
}

func (s RoundedRectangle) BoundaryPath(r geom.Rect) geom.Path {
	return geom.RoundedRectPath(r, s.Radius)
}

// Circle is the largest circle centered in the rect.
type Circle struct{}

func (Circle) BoundaryPath(r geom.Rect) geom.Path {
	d := math.Min(r.W, r.H)
	c := r.Center()
	return geom.EllipsePath(geom.Rect{X: c.X - d/2, Y: c.Y - d/2, W: d, H: d})
}

// ShapeByName resolves the shape names accepted in config files:
// "capsule", "rectangle", "rounded" and "circle". Unknown names report false.
func ShapeByName(name string, radius float64) (Shape, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "capsule", "":
		return Capsule{}, true
	case "rectangle", "rect":
		return Rectangle{}, true
	case "rounded", "rounded-rectangle":
		return RoundedRectangle{Radius: radius}, true
	case "circle":
		return Circle{}, true
	default:
		return nil, false
	}
}
