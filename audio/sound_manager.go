// Package audio plays the runtime's synthesized sound effects through beep
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/flatsouls/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundType identifies an effect
type SoundType int

const (
	SoundBump SoundType = iota
	SoundJump
	soundTypeCount
)

// SoundManager manages all game audio
// Every Play call is a no-op until Initialize succeeds, so the game runs without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	volume      float64
	lastPlayed  [soundTypeCount]time.Time
	now         func() time.Time
	played      [soundTypeCount]int
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 1.0,
		now:    time.Now,
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayBump plays the wall contact thud
func (sm *SoundManager) PlayBump() {
	sm.play(SoundBump)
}

// PlayJump plays the jump chirp
func (sm *SoundManager) PlayJump() {
	sm.play(SoundJump)
}

// Played returns how many times t was started; throttled and uninitialized calls do
// not count
func (sm *SoundManager) Played(t SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[t]
}

func (sm *SoundManager) play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.admit(t) {
		return
	}

	var s beep.Streamer
	switch t {
	case SoundBump:
		s = CreateBumpSound(sampleRate, sm.volume)
	case SoundJump:
		s = CreateJumpSound(sampleRate, sm.volume)
	default:
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// admit rate-limits repeats of the same effect; caller holds mu
func (sm *SoundManager) admit(t SoundType) bool {
	now := sm.now()
	if !sm.lastPlayed[t].IsZero() && now.Sub(sm.lastPlayed[t]) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[t] = now
	sm.played[t]++
	return true
}
