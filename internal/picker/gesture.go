package picker

import "github.com/andyrewlee/valuepicker/internal/geom"

// Gesture identifies which of the two simultaneous recognizers produced an
// event.
type Gesture int

const (
	// GesturePress starts on contact and tracks every move.
	GesturePress Gesture = iota
	// GestureDrag starts once the pointer has actually moved.
	GestureDrag
)

func (g Gesture) String() string {
	switch g {
	case GesturePress:
		return "press"
	case GestureDrag:
		return "drag"
	default:
		return "unknown"
	}
}

// GesturePhase is the lifecycle step an event reports.
type GesturePhase int

const (
	GestureChanged GesturePhase = iota
	GestureEnded
)

// Event is one recognizer output.
type Event struct {
	Gesture     Gesture
	Phase       GesturePhase
	Start       geom.Point
	Location    geom.Point
	Translation geom.Vector
}

// Recognizer turns raw pointer input into press and drag event streams. The
// press stream has no minimum distance; the drag stream only begins once the
// translation is non-zero and only ends if it began.
type Recognizer struct {
	down     bool
	dragging bool
	start    geom.Point
}

// Active reports whether a pointer is down.
func (r *Recognizer) Active() bool { return r.down }

// Dragging reports whether the drag stream has begun.
func (r *Recognizer) Dragging() bool { return r.dragging }

// Down begins a gesture at p. A Down while already down supersedes the
// previous gesture without ending it.
func (r *Recognizer) Down(p geom.Point) []Event {
	r.down, r.dragging, r.start = true, false, p
	return []Event{{Gesture: GesturePress, Phase: GestureChanged, Start: p, Location: p}}
}

// Move tracks the pointer while down. Moves without a prior Down are ignored.
func (r *Recognizer) Move(p geom.Point) []Event {
	if !r.down {
		return nil
	}
	t := p.Sub(r.start)
	events := []Event{{Gesture: GesturePress, Phase: GestureChanged, Start: r.start, Location: p, Translation: t}}
	if !t.IsZero() || r.dragging {
		r.dragging = true
		events = append(events, Event{Gesture: GestureDrag, Phase: GestureChanged, Start: r.start, Location: p, Translation: t})
	}
	return events
}

// Up ends the gesture at p. The drag stream ends first when it was active.
func (r *Recognizer) Up(p geom.Point) []Event {
	if !r.down {
		return nil
	}
	t := p.Sub(r.start)
	var events []Event
	if r.dragging {
		events = append(events, Event{Gesture: GestureDrag, Phase: GestureEnded, Start: r.start, Location: p, Translation: t})
	}
	events = append(events, Event{Gesture: GesturePress, Phase: GestureEnded, Start: r.start, Location: p, Translation: t})
	r.Cancel()
	return events
}

// Cancel forgets the current gesture without emitting anything.
func (r *Recognizer) Cancel() {
	r.down, r.dragging, r.start = false, false, geom.Point{}
}
