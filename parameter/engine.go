package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the frame driver tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta clamps the simulated step after stalls (window drag, breakpoint)
	MaxFrameDelta = 50 * time.Millisecond

	// DebugDumpInterval is the number of frames between debug-level entity dumps
	DebugDumpInterval = 300
)

// Store & Arena Limits
const (
	// EntityCapacity is the default number of entity slots
	EntityCapacity = 256

	// InputQueueSize is the buffered capacity between the platform poller and the frame loop
	InputQueueSize = 64
)
