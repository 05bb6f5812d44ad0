// Package anim drives the picker's visual transitions with damped springs.
package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FPS is the frame rate animations are stepped at.
const FPS = 60

// FrameInterval is the delay between animation frames.
const FrameInterval = time.Second / FPS

// Profile describes a spring by perceptual duration and bounce, the same
// pair UI toolkits expose for spring animations.
type Profile struct {
	Duration float64 // seconds
	Bounce   float64 // 0 is critically damped, towards 1 is bouncier
}

// DefaultProfile is the picker's capsule animation.
var DefaultProfile = Profile{Duration: 0.3, Bounce: 0.15}

// Instant disables animation: targets are applied immediately.
var Instant = Profile{}

// Animated reports whether the profile moves over time at all.
func (p Profile) Animated() bool {
	return p.Duration > 0
}

// AngularFrequency converts the duration into harmonica's omega.
func (p Profile) AngularFrequency() float64 {
	if p.Duration <= 0 {
		return 0
	}
	return 2 * math.Pi / p.Duration
}

// DampingRatio converts bounce into harmonica's zeta. Negative bounce gives
// an over-damped spring.
func (p Profile) DampingRatio() float64 {
	if p.Bounce >= 0 {
		return math.Max(0, 1-p.Bounce)
	}
	return 1 / (1 + math.Max(p.Bounce, -0.99))
}

// Spring builds the harmonica spring for one frame step.
func (p Profile) Spring() harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(FPS), p.AngularFrequency(), p.DampingRatio())
}
