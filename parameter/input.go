package parameter

import "time"

// Terminal Input Emulation
const (
	// KeyHoldTimeout releases a button when no repeat arrives for this long
	// Terminals report presses and auto-repeats but never releases
	KeyHoldTimeout = 250 * time.Millisecond
)
