// Package engine drives the simulation: it owns the entity store, runs the per-frame
// update and collision pass, and fills the render batch for a submitter
package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/flatsouls/arena"
	"github.com/lixenwraith/flatsouls/config"
	"github.com/lixenwraith/flatsouls/entity"
	"github.com/lixenwraith/flatsouls/log"
	"github.com/lixenwraith/flatsouls/physics"
	"github.com/lixenwraith/flatsouls/render"
	"github.com/lixenwraith/flatsouls/status"
)

// Audio receives gameplay cues; implementations must not block the frame
type Audio interface {
	PlayBump()
	PlayJump()
}

type silentAudio struct{}

func (silentAudio) PlayBump() {}
func (silentAudio) PlayJump() {}

// Context holds all simulation state for one run
// Everything here is owned by the frame goroutine; no field is safe for concurrent use
type Context struct {
	// ===== Immutable After Init =====

	Config   *config.Config
	Logger   log.Log
	Audio    Audio
	Clock    *Clock
	Resolver *physics.Resolver
	Spatial  bool // spatial scene: gravity, jumping and cube rendering
	Stats    *status.Registry

	// ===== Frame State =====

	Store  *entity.Store
	Batch  *render.Batch
	Camera render.Camera

	FrameNumber uint64

	obstacles   []entity.Entity // pre-update view swept by every mover
	sideContact []bool         // per slot, whether the previous frame touched a side wall

	// ===== Cached Metrics =====

	statFrames    *atomic.Int64
	statEvictions *atomic.Int64
	statBumps     *atomic.Int64
	statJumps     *atomic.Int64
	statDropped   *atomic.Int64
	statDelta     *status.AtomicFloat
}

// NewContext allocates the store and batch from their arenas and picks the sweep
// dimension from the configured scene; audio may be nil
func NewContext(cfg *config.Config, logger log.Log, clock *Clock, glyphs *render.GlyphTable, audio Audio) (*Context, error) {
	if audio == nil {
		audio = silentAudio{}
	}

	store, err := entity.NewStore(arena.New[entity.Entity](cfg.Store.Capacity), cfg.Store.Capacity)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	vertexMem := arena.New[render.Vertex](cfg.Render.SpriteCapacity + cfg.Render.TextCapacity)
	batch, err := render.NewBatch(vertexMem, cfg.Render.SpriteCapacity, cfg.Render.TextCapacity, glyphs)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	spatial := cfg.Scene.Kind == config.SceneSpatial
	var sweeper physics.Sweeper = physics.Planar{}
	if spatial {
		sweeper = physics.Spatial{}
	}

	stats := status.NewRegistry()
	c := &Context{
		Config:      cfg,
		Logger:      logger,
		Audio:       audio,
		Clock:       clock,
		Resolver:    physics.NewResolver(sweeper),
		Spatial:     spatial,
		Stats:       stats,
		Store:       store,
		Batch:       batch,
		Camera:      render.NewCamera(cfg.Render.CameraHeight),
		obstacles:   make([]entity.Entity, 0, cfg.Store.Capacity),
		sideContact: make([]bool, cfg.Store.Capacity),

		statFrames:    stats.Ints.Get("frames"),
		statEvictions: stats.Ints.Get("evictions"),
		statBumps:     stats.Ints.Get("bumps"),
		statJumps:     stats.Ints.Get("jumps"),
		statDropped:   stats.Ints.Get("dropped_pushes"),
		statDelta:     stats.Floats.Get("frame_delta"),
	}

	store.OnEvict(func(slot int, evicted entity.Entity) {
		c.sideContact[slot] = false
		c.statEvictions.Add(1)
		c.Logger.Debug("entity evicted",
			log.Int("slot", slot),
			log.Stringer("type", evicted.Type),
			log.Int("priority", int(evicted.Priority)))
	})

	return c, nil
}

// Spawn inserts e, evicting a lower-priority entity when the store is full
func (c *Context) Spawn(e entity.Entity) error {
	return c.Store.InsertWithEviction(e)
}

// Frame captures the batch for submission
func (c *Context) Frame() render.Frame {
	return c.Batch.Frame(c.Camera)
}
