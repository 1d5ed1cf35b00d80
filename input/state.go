package input

import "time"

// Snapshot is the input state handed to one frame
// IsDown is level-triggered; WasPressed is set only on the frame the button went down
type Snapshot struct {
	isDown     [ButtonCount]bool
	wasPressed [ButtonCount]bool

	// Analog sticks in [-1, 1]; zero without a pad
	LX, LY float64
	RX, RY float64
}

func (s Snapshot) IsDown(b Button) bool {
	return b < ButtonCount && s.isDown[b]
}

func (s Snapshot) WasPressed(b Button) bool {
	return b < ButtonCount && s.wasPressed[b]
}

// Tracker accumulates platform events between frames
// With a non-zero hold timeout a pressed button is released when no repeat arrives in
// time, which emulates key-up on terminals that only report presses
// Not safe for concurrent use; the frame goroutine owns it
type Tracker struct {
	current     Snapshot
	lastSeen    [ButtonCount]time.Time
	holdTimeout time.Duration
}

// NewTracker creates a tracker; holdTimeout 0 disables release emulation
func NewTracker(holdTimeout time.Duration) *Tracker {
	return &Tracker{holdTimeout: holdTimeout}
}

// Press marks b down; the pressed edge is raised only on an up to down transition
// Repeats of a held button refresh its hold deadline
func (t *Tracker) Press(b Button, now time.Time) {
	if b >= ButtonCount {
		return
	}
	if !t.current.isDown[b] {
		t.current.wasPressed[b] = true
	}
	t.current.isDown[b] = true
	t.lastSeen[b] = now
}

func (t *Tracker) Release(b Button) {
	if b >= ButtonCount {
		return
	}
	t.current.isDown[b] = false
}

// SetAxes stores analog stick positions, clamped to [-1, 1]
func (t *Tracker) SetAxes(lx, ly, rx, ry float64) {
	t.current.LX, t.current.LY = clampAxis(lx), clampAxis(ly)
	t.current.RX, t.current.RY = clampAxis(rx), clampAxis(ry)
}

// Expire releases buttons whose last press is older than the hold timeout
func (t *Tracker) Expire(now time.Time) {
	if t.holdTimeout <= 0 {
		return
	}
	for b := range ButtonCount {
		if t.current.isDown[b] && now.Sub(t.lastSeen[b]) > t.holdTimeout {
			t.current.isDown[b] = false
		}
	}
}

// Snapshot returns the state for this frame and clears pressed edges
func (t *Tracker) Snapshot() Snapshot {
	s := t.current
	t.current.wasPressed = [ButtonCount]bool{}
	return s
}

// Reset releases everything
func (t *Tracker) Reset() {
	t.current = Snapshot{}
}

func clampAxis(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// EventKind distinguishes platform events queued for the frame goroutine
type EventKind uint8

const (
	EventPress EventKind = iota
	EventRelease
	EventAxes
)

// Event is one platform input change; pollers send these over a channel so the Tracker
// is only touched by the frame goroutine
type Event struct {
	Kind   EventKind
	Button Button
	LX, LY float64
	RX, RY float64
}

// Apply folds ev into the tracker
func (t *Tracker) Apply(ev Event, now time.Time) {
	switch ev.Kind {
	case EventPress:
		t.Press(ev.Button, now)
	case EventRelease:
		t.Release(ev.Button)
	case EventAxes:
		t.SetAxes(ev.LX, ev.LY, ev.RX, ev.RY)
	}
}
