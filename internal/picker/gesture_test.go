package picker

import (
	"testing"

	"github.com/andyrewlee/valuepicker/internal/geom"
)

func kinds(events []Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		phase := "changed"
		if ev.Phase == GestureEnded {
			phase = "ended"
		}
		out[i] = ev.Gesture.String() + ":" + phase
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecognizerTap(t *testing.T) {
	var r Recognizer
	p := geom.Point{X: 3, Y: 4}
	if got := kinds(r.Down(p)); !equalStrings(got, []string{"press:changed"}) {
		t.Fatalf("Down = %v", got)
	}
	if got := kinds(r.Move(p)); !equalStrings(got, []string{"press:changed"}) {
		t.Fatalf("stationary Move = %v", got)
	}
	if got := kinds(r.Up(p)); !equalStrings(got, []string{"press:ended"}) {
		t.Fatalf("Up = %v", got)
	}
	if r.Active() {
		t.Fatalf("recognizer still active after Up")
	}
}

func TestRecognizerDrag(t *testing.T) {
	var r Recognizer
	r.Down(geom.Point{X: 10, Y: 10})

	evs := r.Move(geom.Point{X: 16, Y: 10})
	if got := kinds(evs); !equalStrings(got, []string{"press:changed", "drag:changed"}) {
		t.Fatalf("Move = %v", got)
	}
	if evs[1].Translation != (geom.Vector{DX: 6}) {
		t.Fatalf("translation = %+v", evs[1].Translation)
	}

	// Returning to the start keeps the drag alive.
	if got := kinds(r.Move(geom.Point{X: 10, Y: 10})); !equalStrings(got, []string{"press:changed", "drag:changed"}) {
		t.Fatalf("Move back = %v", got)
	}

	if got := kinds(r.Up(geom.Point{X: 10, Y: 10})); !equalStrings(got, []string{"drag:ended", "press:ended"}) {
		t.Fatalf("Up = %v", got)
	}
}

func TestRecognizerIgnoresStrayEvents(t *testing.T) {
	var r Recognizer
	if evs := r.Move(geom.Point{X: 1}); evs != nil {
		t.Fatalf("Move without Down = %v", kinds(evs))
	}
	if evs := r.Up(geom.Point{X: 1}); evs != nil {
		t.Fatalf("Up without Down = %v", kinds(evs))
	}
}

func TestRecognizerNewPressSupersedes(t *testing.T) {
	var r Recognizer
	r.Down(geom.Point{X: 0})
	r.Move(geom.Point{X: 20})
	evs := r.Down(geom.Point{X: 50})
	if r.Dragging() {
		t.Fatalf("new press should reset drag state")
	}
	if evs[0].Start != (geom.Point{X: 50}) {
		t.Fatalf("start = %+v", evs[0].Start)
	}
}
