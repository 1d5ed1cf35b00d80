package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/flatsouls/vmath"
)

// AnimationState selects a strip of the sprite sheet
type AnimationState uint8

const (
	AnimationNull AnimationState = iota
	AnimationPlayerStandingLeft
	AnimationPlayerStandingRight
	AnimationPlayerWalkingLeft
	AnimationPlayerWalkingRight
	animationCount
)

// spriteSheetAnimation describes frames laid out left to right, wrapping downward
// Coordinates are normalized to the sprite sheet
type spriteSheetAnimation struct {
	x, y, w, h, dx, dy float64
	columns, num       int
	time               float64 // seconds per frame
}

var spriteAnimations = [animationCount]spriteSheetAnimation{
	AnimationNull:                {},
	AnimationPlayerStandingLeft:  {0.0, 0.25, 0.25, 0.25, 0.25, 0.25, 4, 1, 0.5},
	AnimationPlayerStandingRight: {0.25, 0.0, 0.25, 0.25, 0.25, 0.25, 4, 1, 0.5},
	AnimationPlayerWalkingLeft:   {0.0, 0.25, 0.25, 0.25, 0.25, 0.25, 4, 4, 0.2},
	AnimationPlayerWalkingRight:  {0.0, 0.0, 0.25, 0.25, 0.25, 0.25, 4, 4, 0.2},
}

func (s AnimationState) String() string {
	switch s {
	case AnimationNull:
		return "Null"
	case AnimationPlayerStandingLeft:
		return "PlayerStandingLeft"
	case AnimationPlayerStandingRight:
		return "PlayerStandingRight"
	case AnimationPlayerWalkingLeft:
		return "PlayerWalkingLeft"
	case AnimationPlayerWalkingRight:
		return "PlayerWalkingRight"
	}
	return fmt.Sprintf("AnimationState(%d)", uint8(s))
}

// AnimTex returns the sprite sheet rect for state at time seconds into the animation
// Panics on Null or undeclared states
func AnimTex(state AnimationState, time float64) vmath.Rect {
	if state == AnimationNull || state >= animationCount {
		panic(fmt.Sprintf("render: invalid animation state %s", state))
	}

	s := spriteAnimations[state]
	n := int(math.Mod(time, float64(s.num)*s.time) / s.time)
	x0 := s.x + float64(n%s.columns)*s.dx
	y0 := s.y - float64(n/s.columns)*s.dy
	return vmath.NewRect(x0, y0, x0+s.w, y0+s.h)
}
