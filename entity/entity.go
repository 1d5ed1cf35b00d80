// Package entity defines the runtime's entity record and the fixed-capacity store holding it
package entity

import (
	"fmt"

	"github.com/lixenwraith/flatsouls/vmath"
)

// Type tags the entity variant; per-type behaviour is dispatched with a switch on it
type Type uint8

const (
	Null Type = iota
	Player
	Wall
	Monster
	Derper
	Thing
	typeCount
)

var typeNames = [typeCount]string{
	Null:    "Null",
	Player:  "Player",
	Wall:    "Wall",
	Monster: "Monster",
	Derper:  "Derper",
	Thing:   "Thing",
}

func (t Type) String() string {
	if t < typeCount {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Valid reports whether t is a declared variant
func (t Type) Valid() bool {
	return t < typeCount
}

// Direction is the last horizontal or vertical facing of an entity
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Priority orders entities for eviction when the store is full; lower is evicted first
type Priority int

const (
	PriorityUnimportant Priority = -1
	PriorityMap         Priority = 0
	PriorityPlayer      Priority = 1
)

// Entity is stored by value in the Store
// Hitbox is local to Pos; 2D scenes live in the XY plane and ignore Z during sweeps
type Entity struct {
	Type     Type
	Pos      vmath.Vec3
	Vel      vmath.Vec3
	Priority Priority

	// Physics
	Hitbox vmath.Cube

	// Animation
	AnimationTime float64
	LastDirection Direction

	// Monster steering target, unused until monsters have behaviour
	Target vmath.Vec2
}

// Bounds returns the hitbox in world space
func (e *Entity) Bounds() vmath.Cube {
	return e.Hitbox.Offset(e.Pos)
}

// Center returns the world-space center of the hitbox
func (e *Entity) Center() vmath.Vec3 {
	return e.Hitbox.Min().Add(e.Pos).Add(e.Hitbox.HalfExtent())
}

func (e Entity) String() string {
	return fmt.Sprintf("%s: pos: (%f,%f,%f) hitbox: (%f,%f,%f)-(%f,%f,%f)",
		e.Type, e.Pos.X, e.Pos.Y, e.Pos.Z,
		e.Hitbox.X0, e.Hitbox.Y0, e.Hitbox.Z0, e.Hitbox.X1, e.Hitbox.Y1, e.Hitbox.Z1)
}

// NewPlayer builds a player entity at pos with the given local hitbox
func NewPlayer(pos vmath.Vec3, hitbox vmath.Cube) Entity {
	return Entity{
		Type:     Player,
		Pos:      pos,
		Priority: PriorityPlayer,
		Hitbox:   hitbox,
	}
}

// NewWall builds a static wall entity
func NewWall(pos vmath.Vec3, hitbox vmath.Cube) Entity {
	return Entity{
		Type:     Wall,
		Pos:      pos,
		Priority: PriorityMap,
		Hitbox:   hitbox,
	}
}
