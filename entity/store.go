package entity

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/lixenwraith/flatsouls/arena"
)

// Capacity is the default number of entity slots
const Capacity = 256

var (
	// ErrFull is returned by Insert when every slot is taken
	ErrFull = errors.New("entity: store full")
	// ErrRejected is returned by InsertWithEviction when no stored entity has lower priority
	ErrRejected = errors.New("entity: insert rejected")
	// ErrNullType is returned when inserting an entity whose Type is Null or undeclared
	ErrNullType = errors.New("entity: invalid type")
)

// EvictFunc observes an entity being replaced; it must not retain pointers into the store
type EvictFunc func(slot int, evicted Entity)

// Store is a fixed-capacity ordered sequence of entities
// Order is insertion order and is stable across frames except for evictions, which
// reuse the evicted slot in place
// Callers address entities by slot index; pointers from At are valid only until the
// next mutation of that slot
type Store struct {
	slots   []Entity
	count   int
	onEvict EvictFunc
	scratch []byte
}

// NewStore carves capacity slots out of mem
func NewStore(mem *arena.Arena[Entity], capacity int) (*Store, error) {
	slots, err := mem.Push(capacity)
	if err != nil {
		return nil, fmt.Errorf("entity store: %w", err)
	}
	return &Store{slots: slots}, nil
}

// OnEvict installs the eviction observer
func (s *Store) OnEvict(fn EvictFunc) {
	s.onEvict = fn
}

// Insert appends e; it never evicts
func (s *Store) Insert(e Entity) error {
	if e.Type == Null || !e.Type.Valid() {
		return fmt.Errorf("%w: %s", ErrNullType, e.Type)
	}
	if s.count == len(s.slots) {
		return ErrFull
	}
	s.slots[s.count] = e
	s.count++
	return nil
}

// InsertWithEviction appends e, or when full replaces the lowest-priority entity if e's
// priority is strictly greater; ties on the minimum resolve to the lowest index
// A rejected insert leaves the store unchanged
func (s *Store) InsertWithEviction(e Entity) error {
	if s.count < len(s.slots) {
		return s.Insert(e)
	}
	if e.Type == Null || !e.Type.Valid() {
		return fmt.Errorf("%w: %s", ErrNullType, e.Type)
	}
	if s.count == 0 {
		return ErrRejected
	}

	victim := 0
	for i := 1; i < s.count; i++ {
		if s.slots[i].Priority < s.slots[victim].Priority {
			victim = i
		}
	}
	if s.slots[victim].Priority >= e.Priority {
		return ErrRejected
	}

	if s.onEvict != nil {
		s.onEvict(victim, s.slots[victim])
	}
	s.slots[victim] = e
	return nil
}

// Len returns the number of live entities
func (s *Store) Len() int { return s.count }

// Cap returns the slot capacity
func (s *Store) Cap() int { return len(s.slots) }

// At returns the entity in slot i; it panics when i is out of range
func (s *Store) At(i int) *Entity {
	if i < 0 || i >= s.count {
		panic(fmt.Sprintf("entity: slot %d out of range [0,%d)", i, s.count))
	}
	return &s.slots[i]
}

// All yields live entities in store order
func (s *Store) All() iter.Seq2[int, *Entity] {
	return func(yield func(int, *Entity) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(i, &s.slots[i]) {
				return
			}
		}
	}
}

// Snapshot copies the live entities into dst, reusing its storage
func (s *Store) Snapshot(dst []Entity) []Entity {
	return append(dst[:0], s.slots[:s.count]...)
}

// Reset drops every entity without firing the eviction hook
func (s *Store) Reset() {
	clear(s.slots[:s.count])
	s.count = 0
}

// Digest hashes the live state; equal digests mean bit-identical entities in the same order
func (s *Store) Digest() uint64 {
	h := xxhash.New()
	for i := 0; i < s.count; i++ {
		s.scratch = appendEntity(s.scratch[:0], &s.slots[i])
		_, _ = h.Write(s.scratch)
	}
	return h.Sum64()
}

func appendEntity(b []byte, e *Entity) []byte {
	b = append(b, byte(e.Type), byte(e.LastDirection))
	b = binary.LittleEndian.AppendUint64(b, uint64(int64(e.Priority)))
	for _, f := range [...]float64{
		e.Pos.X, e.Pos.Y, e.Pos.Z,
		e.Vel.X, e.Vel.Y, e.Vel.Z,
		e.Hitbox.X0, e.Hitbox.Y0, e.Hitbox.Z0, e.Hitbox.X1, e.Hitbox.Y1, e.Hitbox.Z1,
		e.AnimationTime, e.Target.X, e.Target.Y,
	} {
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(f))
	}
	return b
}
