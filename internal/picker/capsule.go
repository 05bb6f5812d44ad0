package picker

import (
	"math"

	"github.com/andyrewlee/valuepicker/internal/geom"
)

// CapsuleFrame pads base by the item insets and places it in the container,
// shifted by drag. The result never leaves the container horizontally.
func CapsuleFrame(cfg Config, base geom.Rect, drag geom.Vector, container geom.Rect) geom.Rect {
	ip, cp := cfg.ItemPadding, cfg.ContainerPadding
	w := base.W + ip.Leading + ip.Trailing
	h := base.H + ip.Top + ip.Bottom
	x := math.Max(
		cp.Leading,
		math.Min(base.MinX()+drag.DX-cp.Leading-cp.Trailing, container.MaxX()-w-cp.Trailing),
	)
	return geom.Rect{X: x, Y: base.MinY() - cfg.CapsuleNudge, W: w, H: h}
}

// SettledFrame is the resting capsule for selection, or the zero rect when
// no item carries that value.
func SettledFrame[V comparable](cfg Config, selection V, items []Item[V], container geom.Rect) geom.Rect {
	it, ok := lookup(items, selection)
	if !ok {
		return geom.Rect{}
	}
	return CapsuleFrame(cfg, it.Bounds, geom.Vector{}, container)
}

// CurrentFrame is the capsule as displayed while dragging from base. Each item
// the frame overlaps by at least PreselectThreshold percent pulls the frame
// onto its own settled position; the last such item is returned as the
// preselection. Nothing is mutated: applying the preselection is up to the
// caller.
func CurrentFrame[V comparable](cfg Config, base geom.Rect, drag geom.Vector, items []Item[V], container geom.Rect) (geom.Rect, V, bool) {
	var pre V
	if base.IsZero() {
		return geom.Rect{}, pre, false
	}
	frame := CapsuleFrame(cfg, base, drag, container)
	found := false
	for _, it := range items {
		if geom.OverlapPercentage(frame, it.Bounds) >= PreselectThreshold {
			frame = CapsuleFrame(cfg, it.Bounds, geom.Vector{}, container)
			pre, found = it.ID, true
		}
	}
	return frame, pre, found
}
