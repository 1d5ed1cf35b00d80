package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flatsouls/core"
	"github.com/lixenwraith/flatsouls/input"
	"github.com/lixenwraith/flatsouls/log"
)

// Poller reads tcell events on its own goroutine and forwards button presses
// Terminals never report key release, so only EventPress is sent; the frame side
// releases buttons through the tracker hold timeout
type Poller struct {
	screen tcell.Screen
	keys   *input.KeyTable
	events chan<- input.Event
	logger log.Log
}

func NewPoller(screen tcell.Screen, keys *input.KeyTable, events chan<- input.Event, logger log.Log) *Poller {
	return &Poller{screen: screen, keys: keys, events: events, logger: logger}
}

// Run polls until ctx is cancelled or the screen is finalized, then closes the events
// channel
func (p *Poller) Run(ctx context.Context) error {
	defer close(p.events)

	// PollEvent blocks; an interrupt wakes it once ctx is done
	stop := make(chan struct{})
	defer close(stop)
	core.Go(func() {
		select {
		case <-ctx.Done():
			_ = p.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	})

	for {
		ev := p.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			b, ok := Translate(p.keys, ev)
			if !ok {
				continue
			}
			select {
			case p.events <- input.Event{Kind: input.EventPress, Button: b}:
			case <-ctx.Done():
				return nil
			}
		case *tcell.EventResize:
			p.screen.Sync()
			w, h := ev.Size()
			p.logger.Debug("terminal resized", log.Int("width", w), log.Int("height", h))
		}
	}
}
