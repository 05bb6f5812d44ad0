package anim

import (
	"math"
	"testing"

	"github.com/andyrewlee/valuepicker/internal/geom"
)

func TestProfileConversion(t *testing.T) {
	p := DefaultProfile
	if got := p.AngularFrequency(); math.Abs(got-2*math.Pi/0.3) > 1e-9 {
		t.Fatalf("AngularFrequency = %v", got)
	}
	if got := p.DampingRatio(); math.Abs(got-0.85) > 1e-9 {
		t.Fatalf("DampingRatio = %v", got)
	}
	if Instant.Animated() {
		t.Fatalf("Instant profile should not animate")
	}
	if got := (Profile{Duration: 0.3, Bounce: -0.5}).DampingRatio(); got <= 1 {
		t.Fatalf("negative bounce should over-damp, got %v", got)
	}
}

func TestFrameFirstPlacementJumps(t *testing.T) {
	f := NewFrame(DefaultProfile)
	target := geom.R(6, 6, 60, 24)
	f.Set(target, true)
	if f.Current() != target {
		t.Fatalf("Current = %+v, want %+v", f.Current(), target)
	}
	if f.Moving() {
		t.Fatalf("first placement should not animate")
	}
}

func TestFrameAnimatesAndSettles(t *testing.T) {
	f := NewFrame(DefaultProfile)
	f.Set(geom.R(6, 6, 60, 24), true)

	target := geom.R(66, 6, 72, 24)
	f.Set(target, true)
	if !f.Moving() {
		t.Fatalf("expected frame to be moving after retarget")
	}

	f.Step()
	mid := f.Current()
	if mid.X <= 6 || mid.X >= 66 {
		t.Fatalf("expected x between endpoints after one frame, got %v", mid.X)
	}

	frames := 1
	for f.Step() {
		frames++
		if frames > 300 {
			t.Fatalf("frame did not settle within 300 steps (at %+v)", f.Current())
		}
	}
	if f.Current() != target {
		t.Fatalf("settled at %+v, want %+v", f.Current(), target)
	}
}

func TestFrameZeroTargetJumps(t *testing.T) {
	f := NewFrame(DefaultProfile)
	f.Set(geom.R(6, 6, 60, 24), true)
	f.Set(geom.Rect{}, true)
	if !f.Current().IsZero() || f.Moving() {
		t.Fatalf("expected immediate hide, got %+v", f.Current())
	}
	f.Set(geom.R(66, 6, 60, 24), true)
	if f.Current() != geom.R(66, 6, 60, 24) {
		t.Fatalf("expected immediate show, got %+v", f.Current())
	}
}

func TestValueInstantProfile(t *testing.T) {
	v := NewValue(Instant, 1)
	v.Set(0.95, true)
	if v.Current() != 0.95 || v.Moving() {
		t.Fatalf("instant profile should jump, got %v", v.Current())
	}
}

func TestValueSettles(t *testing.T) {
	v := NewValue(DefaultProfile, 1)
	v.Set(0.95, true)
	steps := 0
	for v.Step() {
		steps++
		if steps > 300 {
			t.Fatalf("value did not settle, at %v", v.Current())
		}
	}
	if v.Current() != 0.95 {
		t.Fatalf("Current = %v, want 0.95", v.Current())
	}
}
