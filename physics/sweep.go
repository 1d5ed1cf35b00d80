package physics

import (
	"github.com/lixenwraith/flatsouls/vmath"
)

// Sweep numerics; changing any of them changes resolved positions
const (
	// Epsilon rejects segment/face pairs whose determinant is this close to parallel
	Epsilon = 1e-4
	// Bias is the distance a glided mover is kept off the wall surface
	Bias = 1e-4
	// NoHit is the time-of-impact sentinel; any real hit has t <= 1
	NoHit = 2.0
)

// Sweeper finds where a motion segment first crosses the boundary of an expanded box
// It returns the parameter t along x0→x1 and the (unnormalized, outward) face normal
// Implementations pick the dimensionality: Planar tests box edges in XY, Spatial tests faces
type Sweeper interface {
	Sweep(x0, x1 vmath.Vec3, box vmath.Cube) (t float64, n vmath.Vec3, ok bool)
}

// Planar sweeps in the XY plane against the four edges of the box; Z is ignored
type Planar struct{}

// Spatial sweeps in 3D against the six faces of the box
type Spatial struct{}

var (
	_ Sweeper = Planar{}
	_ Sweeper = Spatial{}
)

// Sweep tests edges in the order top, bottom, left, right
// Edges run clockwise so (-v.Y, v.X) points out of the box; the first edge wins equal t
func (Planar) Sweep(x0, x1 vmath.Vec3, box vmath.Cube) (float64, vmath.Vec3, bool) {
	p0, p1 := x0.XY(), x1.XY()
	edges := [4][2]vmath.Vec2{
		{{X: box.X0, Y: box.Y1}, {X: box.X1, Y: box.Y1}}, // top
		{{X: box.X1, Y: box.Y0}, {X: box.X0, Y: box.Y0}}, // bottom
		{{X: box.X0, Y: box.Y0}, {X: box.X0, Y: box.Y1}}, // left
		{{X: box.X1, Y: box.Y1}, {X: box.X1, Y: box.Y0}}, // right
	}

	t := NoHit
	var n vmath.Vec2
	for _, e := range edges {
		et, en, ok := SegmentEdge(p0, p1, e[0], e[1])
		if ok && et < t {
			t, n = et, en
		}
	}
	if t == NoHit {
		return NoHit, vmath.Vec3{}, false
	}
	return t, vmath.Vec3{X: n.X, Y: n.Y}, true
}

// Sweep tests faces in the order -X, +X, -Y, +Y, -Z, +Z
// Each face is given as an origin and two edge endpoints ordered so that the cross
// product of the edges points outward; the first face wins equal t
func (Spatial) Sweep(x0, x1 vmath.Vec3, box vmath.Cube) (float64, vmath.Vec3, bool) {
	w0, w1 := box.Min(), box.Max()
	faces := [6][3]vmath.Vec3{
		{{X: w0.X, Y: w0.Y, Z: w0.Z}, {X: w0.X, Y: w0.Y, Z: w1.Z}, {X: w0.X, Y: w1.Y, Z: w0.Z}},
		{{X: w1.X, Y: w0.Y, Z: w0.Z}, {X: w1.X, Y: w1.Y, Z: w0.Z}, {X: w1.X, Y: w0.Y, Z: w1.Z}},
		{{X: w0.X, Y: w0.Y, Z: w0.Z}, {X: w1.X, Y: w0.Y, Z: w0.Z}, {X: w0.X, Y: w0.Y, Z: w1.Z}},
		{{X: w0.X, Y: w1.Y, Z: w0.Z}, {X: w0.X, Y: w1.Y, Z: w1.Z}, {X: w1.X, Y: w1.Y, Z: w0.Z}},
		{{X: w0.X, Y: w0.Y, Z: w0.Z}, {X: w0.X, Y: w1.Y, Z: w0.Z}, {X: w1.X, Y: w0.Y, Z: w0.Z}},
		{{X: w0.X, Y: w0.Y, Z: w1.Z}, {X: w1.X, Y: w0.Y, Z: w1.Z}, {X: w0.X, Y: w1.Y, Z: w1.Z}},
	}

	t := NoHit
	var n vmath.Vec3
	for _, f := range faces {
		ft, fn, ok := SegmentFace(x0, x1, f[0], f[1], f[2])
		if ok && ft < t {
			t, n = ft, fn
		}
	}
	if t == NoHit {
		return NoHit, vmath.Vec3{}, false
	}
	return t, n, true
}

// SegmentEdge intersects segment x0→x1 with edge w0→w1
// Returns t along the segment and the edge normal (-v.Y, v.X), v = w1-w0
// Near-parallel pairs (|det| < Epsilon) and hits outside either segment report no hit
func SegmentEdge(x0, x1, w0, w1 vmath.Vec2) (float64, vmath.Vec2, bool) {
	u := x1.Sub(x0)
	v := w1.Sub(w0)
	d := u.X*v.Y - u.Y*v.X
	if vmath.Abs(d) < Epsilon {
		return NoHit, vmath.Vec2{}, false
	}

	w := w0.Sub(x0)
	s := (w.X*u.Y - w.Y*u.X) / d
	t := (w.X*v.Y - w.Y*v.X) / d
	if !vmath.InUnit(t) || !vmath.InUnit(s) {
		return NoHit, vmath.Vec2{}, false
	}
	return t, vmath.Vec2{X: -v.Y, Y: v.X}, true
}

// SegmentFace intersects segment x0→x1 with the parallelogram spanned from p0 by
// p1-p0 and p2-p0; the returned normal is (p1-p0)×(p2-p0), unnormalized
// Near-parallel pairs (|denominator| < Epsilon) and hits outside the face report no hit
func SegmentFace(x0, x1, p0, p1, p2 vmath.Vec3) (float64, vmath.Vec3, bool) {
	dx := x1.Sub(x0)
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	n := e1.Cross(e2)

	d := dx.Dot(n)
	if vmath.Abs(d) < Epsilon {
		return NoHit, vmath.Vec3{}, false
	}

	t := p0.Sub(x0).Dot(n) / d
	if !vmath.InUnit(t) {
		return NoHit, vmath.Vec3{}, false
	}

	rel := x0.Add(dx.Scale(t)).Sub(p0)
	u := rel.Dot(e1) / e1.LenSq()
	v := rel.Dot(e2) / e2.LenSq()
	if !vmath.InUnit(u) || !vmath.InUnit(v) {
		return NoHit, vmath.Vec3{}, false
	}
	return t, n, true
}
