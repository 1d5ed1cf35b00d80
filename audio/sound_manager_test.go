package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/flatsouls/parameter"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayBump()
	sm.PlayJump()
	sm.Cleanup()

	if n := sm.Played(SoundBump); n != 0 {
		t.Errorf("Played(SoundBump) = %d without a device, want 0", n)
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization fails in CI without an audio device; the game runs silent
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got: %v", err)
	}
	sm.PlayBump()
	sm.Cleanup()
}

func TestAdmitThrottlesRepeats(t *testing.T) {
	sm := NewSoundManager()
	now := time.Unix(0, 0)
	sm.now = func() time.Time { return now }

	if !sm.admit(SoundBump) {
		t.Fatal("first bump rejected")
	}
	now = now.Add(parameter.MinSoundGap / 2)
	if sm.admit(SoundBump) {
		t.Error("bump inside the gap admitted")
	}
	if !sm.admit(SoundJump) {
		t.Error("gap must be per sound type")
	}
	now = now.Add(parameter.MinSoundGap)
	if !sm.admit(SoundBump) {
		t.Error("bump after the gap rejected")
	}
	if got := sm.Played(SoundBump); got != 2 {
		t.Errorf("Played(SoundBump) = %d, want 2", got)
	}
}

func TestToneSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := Tone{Wave: Square, From: 220, To: 220, Duration: 50 * time.Millisecond, Gain: 1}.Streamer(rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Stream = (%d, %v), want (50, true)", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("sample %d = %f, want ±1", i, v)
		}
	}
}

// TestToneEndsAfterDuration verifies the stream drains and then reports exhaustion
func TestToneEndsAfterDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := Tone{Wave: Sine, From: 100, To: 200, Duration: 10 * time.Millisecond, Gain: 1}.Streamer(rate)

	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)
	if n != 10 || !ok {
		t.Fatalf("first Stream = (%d, %v), want (10, true)", n, ok)
	}
	n, ok = osc.Stream(samples)
	if n != 0 || ok {
		t.Errorf("drained Stream = (%d, %v), want (0, false)", n, ok)
	}
}

// TestEnvelopeShape verifies silence at the edges and full volume in the middle
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := Tone{
		Wave:     Square,
		Duration: 100 * time.Millisecond,
		Attack:   10 * time.Millisecond,
		Release:  10 * time.Millisecond,
		Gain:     1,
	}.Streamer(rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("streamed %d samples, want 100", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("attack start = %f, want 0", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain = %f, want 1", samples[50][0])
	}
	if samples[99][0] >= samples[91][0] {
		t.Errorf("release not decreasing: %f >= %f", samples[99][0], samples[91][0])
	}
}

func TestEffectsStream(t *testing.T) {
	for name, s := range map[string]beep.Streamer{
		"bump": CreateBumpSound(sampleRate, 1),
		"jump": CreateJumpSound(sampleRate, 1),
		"mute": CreateJumpSound(sampleRate, 0),
	} {
		buf := make([][2]float64, 512)
		n, ok := s.Stream(buf)
		if n == 0 || !ok {
			t.Errorf("%s: Stream = (%d, %v)", name, n, ok)
		}
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Errorf("%s: sample %d out of range: %f", name, i, buf[i][0])
				break
			}
		}
	}
}
