package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/flatsouls/parameter"
	"github.com/lixenwraith/flatsouls/vmath"
)

// Camera looks straight down -Z from Height above the entity it follows, +Y up on screen
type Camera struct {
	Pos    vmath.Vec3
	Height float64
	FOV    float64 // vertical, degrees
	Near   float64
	Far    float64
}

func NewCamera(height float64) Camera {
	return Camera{
		Pos:    vmath.V3(0, 0, height),
		Height: height,
		FOV:    parameter.CameraFOV,
		Near:   parameter.CameraNear,
		Far:    parameter.CameraFar,
	}
}

// Follow places the camera Height above target
func (c *Camera) Follow(target vmath.Vec3) {
	c.Pos = target
	c.Pos.Z += c.Height
}

func (c Camera) View() mgl32.Mat4 {
	eye := toGL(c.Pos)
	return mgl32.LookAtV(eye, eye.Sub(mgl32.Vec3{0, 0, 1}), mgl32.Vec3{0, 1, 0})
}

func (c Camera) Projection(aspect float64) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(float32(c.FOV)), float32(aspect), float32(c.Near), float32(c.Far))
}

// ViewProjection combines both for a viewport of the given width/height ratio
func (c Camera) ViewProjection(aspect float64) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}

// Project maps world point p through vp into a w×h viewport with y down
// depth is 0 at the near plane and 1 at the far plane; ok is false for points behind the
// camera or outside the depth range
func Project(vp mgl32.Mat4, p vmath.Vec3, w, h float64) (x, y, depth float64, ok bool) {
	clip := vp.Mul4x1(mgl32.Vec4{float32(p.X), float32(p.Y), float32(p.Z), 1})
	if clip.W() <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}
	x = (float64(ndc.X()) + 1) / 2 * w
	y = (1 - float64(ndc.Y())) / 2 * h
	depth = (float64(ndc.Z()) + 1) / 2
	return x, y, depth, true
}

func toGL(v vmath.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
