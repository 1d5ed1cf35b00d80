// Package arena provides a typed bump allocator over a block reserved once at startup
// Allocations are released in stack order via Mark/Pop or all at once via Reset
package arena

import (
	"errors"
	"fmt"
)

// ErrFull is returned when a push does not fit the remaining capacity
var ErrFull = errors.New("arena: out of space")

// Mark is a release point returned by Mark and consumed by Pop
type Mark int

// Arena hands out zeroed sub-slices of a fixed backing block
// Slices stay valid until the arena is popped below them or reset
type Arena[T any] struct {
	block []T
	top   int
}

// New reserves a block holding capacity elements of T
func New[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena[T]{block: make([]T, capacity)}
}

// Push reserves n elements and returns them zeroed
// The returned slice has cap == len so appends never spill into neighbouring allocations
func (a *Arena[T]) Push(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("arena: negative push %d", n)
	}
	if a.top+n > len(a.block) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrFull, n, len(a.block)-a.top)
	}
	s := a.block[a.top : a.top+n : a.top+n]
	clear(s)
	a.top += n
	return s, nil
}

// MustPush is Push for startup-time allocations whose size is known to fit
func (a *Arena[T]) MustPush(n int) []T {
	s, err := a.Push(n)
	if err != nil {
		panic(err)
	}
	return s
}

// Mark records the current top for a later Pop
func (a *Arena[T]) Mark() Mark {
	return Mark(a.top)
}

// Pop releases everything pushed after m
// Marks above the current top are ignored
func (a *Arena[T]) Pop(m Mark) {
	if int(m) < 0 || int(m) > a.top {
		return
	}
	a.top = int(m)
}

// Reset releases every allocation
func (a *Arena[T]) Reset() {
	a.top = 0
}

// Len returns the number of elements in use
func (a *Arena[T]) Len() int { return a.top }

// Cap returns the block size
func (a *Arena[T]) Cap() int { return len(a.block) }

// Available returns the number of elements still free
func (a *Arena[T]) Available() int { return len(a.block) - a.top }
