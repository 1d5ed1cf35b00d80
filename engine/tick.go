package engine

import (
	"fmt"

	"github.com/lixenwraith/flatsouls/entity"
	"github.com/lixenwraith/flatsouls/input"
	"github.com/lixenwraith/flatsouls/log"
	"github.com/lixenwraith/flatsouls/parameter"
	"github.com/lixenwraith/flatsouls/physics"
	"github.com/lixenwraith/flatsouls/render"
	"github.com/lixenwraith/flatsouls/vmath"
)

// Tick advances the simulation to ms (milliseconds since start) and refills the batch
// Every mover is swept against the entities as they were before this tick
// Returns true when Start was pressed this frame
func (c *Context) Tick(ms int64, in input.Snapshot) bool {
	dt := c.Clock.Delta(ms)
	c.FrameNumber++
	c.statFrames.Add(1)
	c.statDelta.Set(dt)

	c.Batch.Clear()
	c.obstacles = c.Store.Snapshot(c.obstacles)

	for i, e := range c.Store.All() {
		switch e.Type {
		case entity.Null:
			continue
		case entity.Player:
			c.updatePlayer(i, e, in, dt)
		case entity.Wall:
			c.drawWall(e)
		case entity.Monster, entity.Derper, entity.Thing:
		default:
			panic(fmt.Sprintf("engine: unknown entity type %s in slot %d", e.Type, i))
		}
		e.AnimationTime += dt
	}

	c.statDropped.Add(int64(c.Batch.Dropped()))

	if c.FrameNumber%parameter.DebugDumpInterval == 0 && c.Logger.Enabled(log.LevelDebug) {
		c.dump()
	}

	return in.WasPressed(input.Start)
}

func (c *Context) updatePlayer(slot int, e *entity.Entity, in input.Snapshot, dt float64) {
	p := c.Config.Player
	right, left := in.IsDown(input.Right), in.IsDown(input.Left)
	up, down := in.IsDown(input.Up), in.IsDown(input.Down)

	// skid on the axis whose direction was released
	e.Vel.X = physics.Skid(e.Vel.X, heldToward(e.Vel.X, right, left), p.Skid, dt)
	e.Vel.Y = physics.Skid(e.Vel.Y, heldToward(e.Vel.Y, up, down), p.Skid, dt)

	if !right && !left {
		e.Vel.X = physics.Friction(e.Vel.X, p.Skid, dt)
	}
	if !up && !down {
		e.Vel.Y = physics.Friction(e.Vel.Y, p.Skid, dt)
	}

	e.Vel.X = physics.Accelerate(e.Vel.X, right, left, p.Acceleration, dt)
	e.Vel.Y = physics.Accelerate(e.Vel.Y, up, down, p.Acceleration, dt)

	if c.Spatial {
		if in.WasPressed(input.A) {
			e.Vel.Z = p.JumpPower
			c.Audio.PlayJump()
			c.statJumps.Add(1)
		}
		physics.ApplyGravity(&e.Vel, p.Gravity, dt)
	}

	if e.Vel.X > 0 {
		e.LastDirection = entity.Right
	}
	if e.Vel.X < 0 {
		e.LastDirection = entity.Left
	}

	speed := physics.CapPlanarSpeed(&e.Vel, p.MaxSpeed)

	rep := c.Resolver.Resolve(c.obstacles, slot, e, dt)
	c.noteContacts(slot, &rep)

	if c.Spatial {
		c.Batch.PushCube(e.Pos, e.Hitbox)
	} else {
		c.Batch.PushAnimSprite(e.Pos, 1, 1, playerAnimation(speed, e.LastDirection), e.AnimationTime)
		c.Batch.PushText(parameter.PlayerLabel, e.Pos, parameter.PlayerLabelHeight, true)
	}

	c.Camera.Follow(e.Pos)
}

func (c *Context) drawWall(e *entity.Entity) {
	if c.Spatial {
		c.Batch.PushCube(e.Pos, e.Hitbox)
		return
	}
	size := e.Hitbox.XY().Size()
	c.Batch.PushAnimSprite(e.Pos, size.X, size.Y, render.AnimationPlayerWalkingLeft, e.AnimationTime)
}

// noteContacts logs every contact at debug level and plays the bump cue when a mover
// starts touching a side wall
// Floors and ceilings are touched every frame under gravity and stay silent
func (c *Context) noteContacts(slot int, rep *physics.Report) {
	side := false
	debug := c.Logger.Enabled(log.LevelDebug)
	for _, ct := range rep.Contacts() {
		if ct.Type == entity.Wall && vmath.Abs(ct.Normal.Z) < 0.5 {
			side = true
		}
		if debug {
			c.Logger.Debug("contact",
				log.Uint64("frame", c.FrameNumber),
				log.Int("slot", slot),
				log.Int("obstacle", ct.Index),
				log.Stringer("type", ct.Type),
				log.Float64("t", ct.T),
				log.Float64("nx", ct.Normal.X),
				log.Float64("ny", ct.Normal.Y),
				log.Float64("nz", ct.Normal.Z))
		}
	}

	if side && !c.sideContact[slot] {
		c.Audio.PlayBump()
		c.statBumps.Add(1)
	}
	c.sideContact[slot] = side
}

// heldToward reports whether the button pushing along v's sign is down
func heldToward(v float64, pos, neg bool) bool {
	if v > 0 {
		return pos
	}
	if v < 0 {
		return neg
	}
	return false
}

func playerAnimation(speed float64, dir entity.Direction) render.AnimationState {
	if speed < parameter.PlayerWalkThreshold {
		if dir == entity.Left {
			return render.AnimationPlayerStandingLeft
		}
		return render.AnimationPlayerStandingRight
	}
	if dir == entity.Left {
		return render.AnimationPlayerWalkingLeft
	}
	return render.AnimationPlayerWalkingRight
}

// dump logs every entity and the batch fill level
func (c *Context) dump() {
	for i, e := range c.Store.All() {
		c.Logger.Debug("entity", log.Int("slot", i), log.Stringer("entity", e))
	}
	c.Logger.Debug("frame dump",
		log.Uint64("frame", c.FrameNumber),
		log.Int("entities", c.Store.Len()),
		log.Int("sprite_vertices", len(c.Batch.Sprites())),
		log.Int("text_vertices", len(c.Batch.Text())),
		log.Int("dropped", c.Batch.Dropped()),
		log.Uint64("digest", c.Store.Digest()))
	c.Logger.Debug("stats", c.Stats.Fields()...)
}
