// Package physics implements swept-box collision with a glide response, plus the kinetic
// helpers the frame driver uses to turn input into velocity
package physics

import (
	"github.com/lixenwraith/flatsouls/entity"
	"github.com/lixenwraith/flatsouls/vmath"
)

// MaxIterations bounds the sweep/respond passes per mover per frame
// A mover wedged into more surfaces than this keeps the residual motion of the last pass
const MaxIterations = 4

// Contact is one earliest-hit reported by a sweep pass
type Contact struct {
	Index  int         // obstacle index in the swept view
	Type   entity.Type // obstacle type
	T      float64     // time of impact along the pass segment, in [0,1]
	Normal vmath.Vec3  // unit outward face normal
}

// Report describes what Resolve did for one mover
type Report struct {
	// Iterations is the number of sweep passes run; 0 when the mover was at rest
	Iterations int
	contacts   [MaxIterations]Contact
	count      int
}

// Contacts returns the hits in pass order
func (r *Report) Contacts() []Contact {
	return r.contacts[:r.count]
}

// HitWall reports whether any pass glided along a wall
func (r *Report) HitWall() bool {
	for _, c := range r.contacts[:r.count] {
		if c.Type == entity.Wall {
			return true
		}
	}
	return false
}

func (r *Report) add(c Contact) {
	r.contacts[r.count] = c
	r.count++
}

// Resolver moves entities through a set of obstacles, stopping and gliding on walls
type Resolver struct {
	sweeper Sweeper
}

// NewResolver creates a resolver using s for segment/box tests
func NewResolver(s Sweeper) *Resolver {
	return &Resolver{sweeper: s}
}

// Sweeper returns the dimension strategy in use
func (r *Resolver) Sweeper() Sweeper {
	return r.sweeper
}

// Resolve advances e by its velocity over dt against obstacles
//
// obstacles is the frame's view of the world; slot self (e's own slot, or -1) is skipped
// Walls stop the mover Bias short of the surface and keep only the tangential part of the
// displacement as the new velocity. Other types are reported as contacts with no response
// and are not swept again in this call, so the remaining passes can still find a wall
// behind them; re-sweeping a non-wall would report it on every pass and let the mover
// tunnel through that wall. Among equal times of impact the lowest slot wins.
// After at most MaxIterations passes the remaining velocity is integrated: pos += vel*dt
func (r *Resolver) Resolve(obstacles []entity.Entity, self int, e *entity.Entity, dt float64) Report {
	var rep Report
	if e.Vel.IsZero() {
		return rep
	}

	half := e.Hitbox.HalfExtent()
	var ignored [MaxIterations]int
	numIgnored := 0

	for pass := 0; pass < MaxIterations; pass++ {
		rep.Iterations++

		x0 := e.Center()
		x1 := x0.Add(e.Vel.Scale(dt))

		hit := -1
		t := NoHit
		var n vmath.Vec3
		for j := range obstacles {
			if j == self || isIgnored(ignored[:numIgnored], j) {
				continue
			}
			o := &obstacles[j]
			if o.Type == entity.Null {
				continue
			}

			box := o.Bounds().Expand(half)
			tj, nj, ok := r.sweeper.Sweep(x0, x1, box)
			if ok && tj < t {
				hit, t, n = j, tj, nj
			}
		}

		if hit < 0 {
			break
		}

		n = n.Normalize()
		contact := Contact{Index: hit, Type: obstacles[hit].Type, T: t, Normal: n}
		rep.add(contact)

		if obstacles[hit].Type != entity.Wall {
			ignored[numIgnored] = hit
			numIgnored++
			continue
		}

		glide(e, x1.Sub(x0), n, t, dt)
	}

	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	return rep
}

// glide moves e up to the surface along n and keeps the tangential part of v as velocity
// v is the full displacement of this pass, a is the part reaching the wall, b the part
// sliding along it
func glide(e *entity.Entity, v, n vmath.Vec3, t, dt float64) {
	dot := v.Dot(n)

	a := n.Scale(dot * t)
	a = a.Add(n.Scale(Bias))
	e.Pos = e.Pos.Add(a)

	b := v.Sub(n.Scale(dot))
	e.Vel = b.Div(dt)
}

func isIgnored(slots []int, j int) bool {
	for _, s := range slots {
		if s == j {
			return true
		}
	}
	return false
}
