package physics

import (
	"github.com/lixenwraith/flatsouls/vmath"
)

// Skid bleeds a velocity component toward zero by rate*dt without crossing zero
// held reports whether the input pushing in the component's current direction is down
func Skid(v float64, held bool, rate, dt float64) float64 {
	if held {
		return v
	}
	if v > 0 {
		return v - vmath.Min(rate*dt, v)
	}
	if v < 0 {
		return v + vmath.Min(rate*dt, -v)
	}
	return v
}

// Friction pulls an idle axis toward zero by rate*dt without crossing zero
func Friction(v, rate, dt float64) float64 {
	return v - vmath.Sign(v)*vmath.Min(dt*rate, vmath.Abs(v))
}

// Accelerate adds accel*dt in the positive direction when pos is held and subtracts it
// when neg is held; holding both cancels out
func Accelerate(v float64, pos, neg bool, accel, dt float64) float64 {
	if pos {
		v += dt * accel
	}
	if neg {
		v -= dt * accel
	}
	return v
}

// CapPlanarSpeed limits the XY magnitude of vel to maxSpeed, leaving Z untouched
// Returns the XY speed measured before clamping
func CapPlanarSpeed(vel *vmath.Vec3, maxSpeed float64) float64 {
	speed := vel.XY().Len()
	if speed > maxSpeed {
		vel.X = vel.X * maxSpeed / speed
		vel.Y = vel.Y * maxSpeed / speed
	}
	return speed
}

// ApplyGravity accelerates vel along -Z
func ApplyGravity(vel *vmath.Vec3, gravity, dt float64) {
	vel.Z -= dt * gravity
}
