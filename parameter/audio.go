package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive sounds of the same kind
	MinSoundGap = 120 * time.Millisecond
)

// Bump Sound, played when the player glides along a wall
const (
	BumpSoundFrequency = 110.0
	BumpSoundDuration  = 80 * time.Millisecond
	BumpSoundAttack    = 5 * time.Millisecond
	BumpSoundRelease   = 40 * time.Millisecond
)

// Jump Sound
const (
	JumpSoundFrom     = 330.0
	JumpSoundTo       = 660.0
	JumpSoundDuration = 150 * time.Millisecond
	JumpSoundAttack   = 5 * time.Millisecond
	JumpSoundRelease  = 60 * time.Millisecond
)
