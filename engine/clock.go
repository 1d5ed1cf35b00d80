package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/flatsouls/parameter"
)

// TimeSource provides the current time; the frame clock reads it once per tick
type TimeSource interface {
	Now() time.Time
}

// SystemTime provides the real system time with monotonic clock readings
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now()
}

// ManualTime is a controllable time source for tests
type ManualTime struct {
	mu      sync.RWMutex
	current time.Time
}

// NewManualTime creates a manual time source starting at start
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{current: start}
}

func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set jumps to t, which may be earlier than the current time
func (m *ManualTime) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance moves the current time forward by d
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// Clock turns a time source into the millisecond stamps Tick consumes and the
// clamped step the simulation integrates with
type Clock struct {
	source TimeSource
	start  time.Time
	last   int64
}

// NewClock starts counting milliseconds from source's current time
func NewClock(source TimeSource) *Clock {
	return &Clock{source: source, start: source.Now()}
}

// Now returns the source's current time
func (c *Clock) Now() time.Time {
	return c.source.Now()
}

// Millis returns milliseconds elapsed since the clock was created
func (c *Clock) Millis() int64 {
	return c.source.Now().Sub(c.start).Milliseconds()
}

// Delta returns the step in seconds since the previous call, clamped to
// [0, MaxFrameDelta]; a clock moving backwards yields 0
func (c *Clock) Delta(ms int64) float64 {
	d := ms - c.last
	c.last = ms
	if d < 0 {
		return 0
	}
	if limit := parameter.MaxFrameDelta.Milliseconds(); d > limit {
		d = limit
	}
	return float64(d) / 1000
}
