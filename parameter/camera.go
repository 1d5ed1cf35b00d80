package parameter

// Camera follow configuration
const (
	// CameraHeight is the distance above the followed entity
	CameraHeight = 5.0

	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 60.0

	CameraNear = 0.1
	CameraFar  = 100.0

	// TerminalCellAspect is the height of a terminal cell over its width
	TerminalCellAspect = 2.0
)
