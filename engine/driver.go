package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/lixenwraith/flatsouls/input"
	"github.com/lixenwraith/flatsouls/log"
	"github.com/lixenwraith/flatsouls/render"
)

// Driver runs the frame loop on a fixed-interval ticker
// Input events arrive over a channel from the platform poller and are folded into the
// tracker between ticks, so the Context is only ever touched by the Run goroutine
type Driver struct {
	ctx      *Context
	tracker  *input.Tracker
	events   <-chan input.Event
	submit   render.Submitter
	interval time.Duration
}

// NewDriver wires a context to an input channel and a submitter
func NewDriver(ctx *Context, tracker *input.Tracker, events <-chan input.Event, submit render.Submitter, interval time.Duration) *Driver {
	return &Driver{
		ctx:      ctx,
		tracker:  tracker,
		events:   events,
		submit:   submit,
		interval: interval,
	}
}

// Run ticks until Start is pressed, the event channel closes, or ctx is cancelled
// A submit error stops the loop and is returned
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.ctx.Logger.Info("frame loop started", log.Duration("interval", d.interval))
	defer d.ctx.Logger.Info("frame loop stopped", log.Uint64("frames", d.ctx.FrameNumber))

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-d.events:
			if !ok {
				return nil
			}
			d.tracker.Apply(ev, d.ctx.Clock.Now())

		case <-ticker.C:
			quit, err := d.Step()
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// Step runs one frame: expire held keys, tick, submit
func (d *Driver) Step() (bool, error) {
	clock := d.ctx.Clock
	d.tracker.Expire(clock.Now())

	quit := d.ctx.Tick(clock.Millis(), d.tracker.Snapshot())
	if err := d.submit.Submit(d.ctx.Frame()); err != nil {
		return false, fmt.Errorf("submit frame %d: %w", d.ctx.FrameNumber, err)
	}
	return quit, nil
}
