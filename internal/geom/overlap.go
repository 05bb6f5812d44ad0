package geom

// OverlapPercentage measures how much two rectangles overlap, in [0,100].
//
// It is 0 for rectangles that do not intersect and 100 when the intersection
// equals either rectangle (one contains the other). Otherwise the
// intersection area is taken relative to the mean of both areas. This is not
// IoU: the preselection threshold is calibrated against this exact formula.
func OverlapPercentage(a, b Rect) float64 {
	if !a.Intersects(b) {
		return 0
	}
	// Edge comparisons instead of comparing the intersection rect itself,
	// which would pick up rounding from the width subtraction.
	if b.ContainsRect(a) || a.ContainsRect(b) {
		return 100
	}
	in := a.Intersection(b)
	mean := (a.Area() + b.Area()) / 2
	return in.Area() / mean * 100
}

// ContainsRect reports whether o lies entirely within r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.MinX() >= r.MinX() && o.MaxX() <= r.MaxX() &&
		o.MinY() >= r.MinY() && o.MaxY() <= r.MaxY()
}
