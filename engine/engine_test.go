package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/flatsouls/config"
	"github.com/lixenwraith/flatsouls/entity"
	"github.com/lixenwraith/flatsouls/input"
	"github.com/lixenwraith/flatsouls/log"
	"github.com/lixenwraith/flatsouls/parameter"
	"github.com/lixenwraith/flatsouls/physics"
	"github.com/lixenwraith/flatsouls/render"
	"github.com/lixenwraith/flatsouls/vmath"
)

const frameMs = 16

type countingAudio struct {
	bumps, jumps int
}

func (a *countingAudio) PlayBump() { a.bumps++ }
func (a *countingAudio) PlayJump() { a.jumps++ }

type harness struct {
	ctx     *Context
	audio   *countingAudio
	tracker *input.Tracker
	ms      int64
}

func newHarness(t *testing.T, scene string, logger log.Log, mutate ...func(*config.Config)) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Scene.Kind = scene
	for _, m := range mutate {
		m(cfg)
	}
	if logger == nil {
		logger = log.NewNop()
	}

	audio := &countingAudio{}
	clock := NewClock(NewManualTime(time.Unix(0, 0)))
	ctx, err := NewContext(cfg, logger, clock, render.MonospaceGlyphs(parameter.FontSize), audio)
	require.NoError(t, err)
	require.NoError(t, ctx.Setup())

	return &harness{ctx: ctx, audio: audio, tracker: input.NewTracker(0)}
}

// step ticks one 16ms frame with exactly the given buttons held
func (h *harness) step(held ...input.Button) bool {
	h.ms += frameMs
	now := time.UnixMilli(h.ms)
	var down [input.ButtonCount]bool
	for _, b := range held {
		down[b] = true
	}
	for b := range input.ButtonCount {
		if down[b] {
			h.tracker.Press(b, now)
		} else {
			h.tracker.Release(b)
		}
	}
	return h.ctx.Tick(h.ms, h.tracker.Snapshot())
}

func (h *harness) player() *entity.Entity {
	return h.ctx.Store.At(0)
}

func TestClockDelta(t *testing.T) {
	mt := NewManualTime(time.Unix(100, 0))
	c := NewClock(mt)

	mt.Advance(16 * time.Millisecond)
	ms := c.Millis()
	assert.Equal(t, int64(16), ms)
	assert.InDelta(t, 0.016, c.Delta(ms), 1e-12)

	mt.Advance(200 * time.Millisecond)
	assert.InDelta(t, parameter.MaxFrameDelta.Seconds(), c.Delta(c.Millis()), 1e-12, "stalls are clamped")

	assert.Equal(t, 0.0, c.Delta(100), "backwards clock")
	assert.InDelta(t, 0.016, c.Delta(116), 1e-12)

	mt.Set(time.Unix(100, 0))
	assert.Equal(t, int64(0), c.Millis())
}

func TestSetupScenes(t *testing.T) {
	h := newHarness(t, config.ScenePlanar, nil)
	require.Equal(t, 5, h.ctx.Store.Len())
	assert.Equal(t, entity.Player, h.player().Type)
	assert.IsType(t, physics.Planar{}, h.ctx.Resolver.Sweeper())
	assert.Equal(t, entity.PriorityPlayer, h.ctx.Store.At(4).Priority, "top wall outranks the others")

	h = newHarness(t, config.SceneSpatial, nil)
	require.Equal(t, 6, h.ctx.Store.Len())
	assert.IsType(t, physics.Spatial{}, h.ctx.Resolver.Sweeper())
	assert.True(t, h.ctx.Spatial)

	cfg := config.Default()
	cfg.Scene.Kind = "hyperbolic"
	ctx, err := NewContext(cfg, log.NewNop(), NewClock(SystemTime{}), nil, nil)
	require.NoError(t, err)
	assert.Error(t, ctx.Setup())
}

func TestTickIdleFrame(t *testing.T) {
	h := newHarness(t, config.ScenePlanar, nil)

	quit := h.step()
	assert.False(t, quit)
	assert.Equal(t, 5*render.VerticesPerQuad, len(h.ctx.Batch.Sprites()), "player plus four walls")
	assert.Equal(t, len(parameter.PlayerLabel)*render.VerticesPerQuad, len(h.ctx.Batch.Text()))
	assert.True(t, h.player().Pos.IsZero())
	assert.InDelta(t, 0.016, h.player().AnimationTime, 1e-12)
	assert.Equal(t, h.player().Pos.X, h.ctx.Camera.Pos.X)
	assert.Equal(t, parameter.CameraHeight, h.ctx.Camera.Pos.Z)

	// batch is rebuilt, not appended
	h.step()
	assert.Equal(t, 5*render.VerticesPerQuad, len(h.ctx.Batch.Sprites()))
}

func TestTickStartQuits(t *testing.T) {
	h := newHarness(t, config.ScenePlanar, nil)
	assert.True(t, h.step(input.Start))
	assert.False(t, h.step(input.Start), "held Start is not a new press")
}

func TestPlayerStopsAtWall(t *testing.T) {
	h := newHarness(t, config.ScenePlanar, nil)

	// right wall inner face at 3.9, player half width 0.5
	limit := 3.9 - parameter.PlayerHalfWidth
	for range 300 {
		h.step(input.Right)
		require.LessOrEqual(t, h.player().Pos.X, limit)
	}

	p := h.player()
	assert.InDelta(t, limit-physics.Bias, p.Pos.X, 1e-6)
	assert.Equal(t, 0.0, p.Pos.Y)
	assert.Equal(t, entity.Right, p.LastDirection)
	assert.Equal(t, 1, h.audio.bumps, "bump only on first contact")
	assert.Equal(t, int64(1), h.ctx.Stats.Ints.Get("bumps").Load())
}

func TestPlayerSpeedCapAndSkid(t *testing.T) {
	h := newHarness(t, config.ScenePlanar, nil)

	for range 30 {
		h.step(input.Left, input.Up)
		assert.LessOrEqual(t, h.player().Vel.XY().Len(), parameter.PlayerMaxSpeed+1e-9)
	}
	assert.InDelta(t, parameter.PlayerMaxSpeed, h.player().Vel.XY().Len(), 1e-9)
	assert.Equal(t, entity.Left, h.player().LastDirection)

	for range 30 {
		h.step()
	}
	assert.Equal(t, 0.0, h.player().Vel.X, "released axes skid to a full stop")
	assert.Equal(t, 0.0, h.player().Vel.Y)
	assert.Equal(t, entity.Left, h.player().LastDirection, "facing survives stopping")
}

func TestPlayerAnimationState(t *testing.T) {
	assert.Equal(t, render.AnimationPlayerStandingRight, playerAnimation(0, entity.Up))
	assert.Equal(t, render.AnimationPlayerStandingLeft, playerAnimation(0, entity.Left))
	assert.Equal(t, render.AnimationPlayerWalkingLeft, playerAnimation(1, entity.Left))
	assert.Equal(t, render.AnimationPlayerWalkingRight, playerAnimation(1, entity.Right))
}

func TestSpatialLandingAndJump(t *testing.T) {
	h := newHarness(t, config.SceneSpatial, nil)

	for range 120 {
		h.step()
	}
	p := h.player()
	assert.InDelta(t, 0.5+physics.Bias, p.Pos.Z, 1e-6, "rests on the floor")
	assert.Equal(t, 0, h.audio.bumps, "floor contact is silent")
	assert.Equal(t, 6*render.VerticesPerCube, len(h.ctx.Batch.Sprites()))
	assert.Empty(t, h.ctx.Batch.Text())

	h.step(input.A)
	assert.Equal(t, 1, h.audio.jumps)
	assert.Greater(t, h.player().Pos.Z, 0.6)

	for range 120 {
		h.step(input.A)
	}
	assert.Equal(t, 1, h.audio.jumps, "held A jumps once")
	assert.InDelta(t, 0.5+physics.Bias, h.player().Pos.Z, 1e-6)
}

func TestPlanarIgnoresJump(t *testing.T) {
	h := newHarness(t, config.ScenePlanar, nil)
	h.step(input.A)
	assert.Equal(t, 0, h.audio.jumps)
	assert.Equal(t, 0.0, h.player().Pos.Z)
}

func TestTickPanicsOnUnknownType(t *testing.T) {
	h := newHarness(t, config.ScenePlanar, nil)
	h.ctx.Store.At(2).Type = entity.Type(42)
	assert.Panics(t, func() { h.step() })
}

func TestTickSkipsNull(t *testing.T) {
	h := newHarness(t, config.ScenePlanar, nil)
	h.ctx.Store.At(1).Type = entity.Null
	h.step()
	assert.Equal(t, 4*render.VerticesPerQuad, len(h.ctx.Batch.Sprites()))
	assert.Equal(t, 0.0, h.ctx.Store.At(1).AnimationTime)
}

func TestDeterministicReplay(t *testing.T) {
	script := func(frame int) []input.Button {
		switch {
		case frame < 40:
			return []input.Button{input.Right, input.Up}
		case frame < 90:
			return []input.Button{input.Down}
		case frame < 120:
			return nil
		default:
			return []input.Button{input.Left}
		}
	}

	run := func() uint64 {
		h := newHarness(t, config.ScenePlanar, nil)
		for f := range 240 {
			h.step(script(f)...)
		}
		return h.ctx.Store.Digest()
	}
	assert.Equal(t, run(), run())
}

func TestSpawnEvictionIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := newHarness(t, config.ScenePlanar, log.NewWithCore(core), func(c *config.Config) {
		c.Store.Capacity = 5
	})

	err := h.ctx.Spawn(entity.Entity{Type: entity.Thing, Priority: entity.PriorityUnimportant})
	assert.ErrorIs(t, err, entity.ErrRejected)

	require.NoError(t, h.ctx.Spawn(entity.Entity{Type: entity.Derper, Priority: entity.PriorityPlayer}))
	assert.Equal(t, entity.Derper, h.ctx.Store.At(1).Type, "first lowest-priority wall replaced")

	evicted := logs.FilterMessage("entity evicted").All()
	require.Len(t, evicted, 1)
	assert.Equal(t, int64(1), evicted[0].ContextMap()["slot"])
	assert.Equal(t, "Wall", evicted[0].ContextMap()["type"])
	assert.Equal(t, int64(1), h.ctx.Stats.Ints.Get("evictions").Load())
}

// TestMoversSweepFrameStart places a mover behind another that leaves in the same frame
// The trailing mover must still hit where the leader was when the frame began
func TestMoversSweepFrameStart(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := newHarness(t, config.ScenePlanar, log.NewWithCore(core))

	h.ctx.Store.Reset()
	leader := entity.Entity{
		Type:     entity.Player,
		Priority: entity.PriorityPlayer,
		Hitbox:   playerHitbox(),
		Vel:      vmath.V3(3, 0, 0),
	}
	trailer := leader
	trailer.Pos = vmath.V3(-1.1, 0, 0)
	require.NoError(t, h.ctx.Store.Insert(leader))
	require.NoError(t, h.ctx.Store.Insert(trailer))

	// 50ms with nothing held: skid and friction leave 2.3 u/s, 0.115 u this frame
	h.ctx.Tick(50, input.Snapshot{})

	assert.InDelta(t, 0.115, h.ctx.Store.At(0).Pos.X, 1e-9)
	assert.InDelta(t, -1.1+0.115, h.ctx.Store.At(1).Pos.X, 1e-9, "players are transparent")

	contacts := logs.FilterMessage("contact").All()
	require.Len(t, contacts, 1, "only the trailer reaches the leader's starting box")
	fields := contacts[0].ContextMap()
	assert.Equal(t, int64(1), fields["slot"])
	assert.Equal(t, int64(0), fields["obstacle"])
	assert.Equal(t, "Player", fields["type"])
	assert.InDelta(t, 0.1/0.115, fields["t"], 1e-6)
	assert.Equal(t, -1.0, fields["nx"])
}

func TestDebugDump(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := newHarness(t, config.ScenePlanar, log.NewWithCore(core))

	for range parameter.DebugDumpInterval {
		h.step()
	}
	dumps := logs.FilterMessage("frame dump").All()
	require.Len(t, dumps, 1)
	assert.Equal(t, int64(5), dumps[0].ContextMap()["entities"])
	assert.Equal(t, 5, logs.FilterMessage("entity").Len())

	stats := logs.FilterMessage("stats").All()
	require.Len(t, stats, 1)
	assert.Equal(t, int64(parameter.DebugDumpInterval), stats[0].ContextMap()["frames"])
}

func TestSilentAudioDefault(t *testing.T) {
	ctx, err := NewContext(config.Default(), log.NewNop(), NewClock(SystemTime{}), nil, nil)
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		ctx.Audio.PlayBump()
		ctx.Audio.PlayJump()
	})
}

var errDevice = errors.New("device lost")
