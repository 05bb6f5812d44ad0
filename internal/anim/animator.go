package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/andyrewlee/valuepicker/internal/geom"
)

// restEpsilon is how close (in points, and points per frame) a channel must
// be to its target before it is snapped and considered at rest.
const restEpsilon = 0.01

type channel struct {
	pos, vel, target float64
}

func (c *channel) step(s harmonica.Spring) bool {
	c.pos, c.vel = s.Update(c.pos, c.vel, c.target)
	if math.Abs(c.pos-c.target) < restEpsilon && math.Abs(c.vel) < restEpsilon {
		c.pos, c.vel = c.target, 0
		return false
	}
	return true
}

func (c *channel) snap(v float64) {
	c.pos, c.vel, c.target = v, 0, v
}

// Value springs a single float toward a target.
type Value struct {
	spring  harmonica.Spring
	profile Profile
	ch      channel
}

// NewValue returns a value resting at v.
func NewValue(p Profile, v float64) *Value {
	a := &Value{}
	a.SetProfile(p)
	a.ch.snap(v)
	return a
}

// SetProfile changes the spring used for future steps.
func (a *Value) SetProfile(p Profile) {
	a.profile = p
	a.spring = p.Spring()
}

// Set moves the target. Without animation the value jumps there.
func (a *Value) Set(target float64, animate bool) {
	if !animate || !a.profile.Animated() {
		a.ch.snap(target)
		return
	}
	a.ch.target = target
}

// Step advances one frame and reports whether the value is still moving.
func (a *Value) Step() bool {
	if a.ch.pos == a.ch.target && a.ch.vel == 0 {
		return false
	}
	return a.ch.step(a.spring)
}

// Current returns the displayed value.
func (a *Value) Current() float64 { return a.ch.pos }

// Target returns the value being animated toward.
func (a *Value) Target() float64 { return a.ch.target }

// Moving reports whether Step would change the value.
func (a *Value) Moving() bool {
	return a.ch.pos != a.ch.target || a.ch.vel != 0
}

// Frame springs a rectangle toward a target, each edge independently.
type Frame struct {
	spring  harmonica.Spring
	profile Profile
	chans   [4]channel // x, y, w, h
	placed  bool
}

// NewFrame returns a frame animator with no position yet. The first target
// it receives is applied without animation.
func NewFrame(p Profile) *Frame {
	f := &Frame{}
	f.SetProfile(p)
	return f
}

// SetProfile changes the spring used for future steps.
func (f *Frame) SetProfile(p Profile) {
	f.profile = p
	f.spring = p.Spring()
}

// Set moves the target rect. The capsule appears and disappears in place:
// a zero rect on either side of the transition is applied immediately, as is
// the first placement.
func (f *Frame) Set(target geom.Rect, animate bool) {
	vals := [4]float64{target.X, target.Y, target.W, target.H}
	jump := !animate || !f.profile.Animated() || !f.placed || target.IsZero() || f.Target().IsZero()
	for i := range f.chans {
		if jump {
			f.chans[i].snap(vals[i])
		} else {
			f.chans[i].target = vals[i]
		}
	}
	f.placed = true
}

// Step advances one frame and reports whether any edge is still moving.
func (f *Frame) Step() bool {
	moving := false
	for i := range f.chans {
		c := &f.chans[i]
		if c.pos == c.target && c.vel == 0 {
			continue
		}
		if c.step(f.spring) {
			moving = true
		}
	}
	return moving
}

// Moving reports whether Step would change the frame.
func (f *Frame) Moving() bool {
	for _, c := range f.chans {
		if c.pos != c.target || c.vel != 0 {
			return true
		}
	}
	return false
}

// Current returns the displayed rect.
func (f *Frame) Current() geom.Rect {
	return geom.Rect{X: f.chans[0].pos, Y: f.chans[1].pos, W: f.chans[2].pos, H: f.chans[3].pos}
}

// Target returns the rect being animated toward.
func (f *Frame) Target() geom.Rect {
	return geom.Rect{X: f.chans[0].target, Y: f.chans[1].target, W: f.chans[2].target, H: f.chans[3].target}
}
