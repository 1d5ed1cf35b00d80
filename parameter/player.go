package parameter

// Player Movement
const (
	// PlayerAcceleration is applied per second while a direction is held
	PlayerAcceleration = 15.0

	// PlayerMaxSpeed caps the planar speed
	PlayerMaxSpeed = 3.0

	// PlayerSkid is the per-second deceleration on released or idle axes
	PlayerSkid = 7.0

	// PlayerGravity pulls along -Z in spatial scenes
	PlayerGravity = 20.0

	// PlayerJumpPower is the upward velocity set by A in spatial scenes
	PlayerJumpPower = 10.0

	// PlayerWalkThreshold is the planar speed above which the walking animation plays
	PlayerWalkThreshold = 0.001
)

// Player Shape
const (
	PlayerHalfWidth = 0.5

	// PlayerLabelHeight is the world height of the name tag glyphs
	PlayerLabelHeight = 0.1

	PlayerLabel = "Player"
)
