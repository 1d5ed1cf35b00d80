package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/flatsouls/parameter"
)

// Wave maps a phase in [0,1) to a sample in [-1,1]
type Wave func(phase float64) float64

func Sine(p float64) float64 { return math.Sin(2 * math.Pi * p) }

func Square(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return -1
}

func Saw(p float64) float64 { return 2*p - 1 }

// Tone describes a synthesized cue: a wave gliding linearly From→To Hz over Duration,
// shaped by linear attack and release ramps
type Tone struct {
	Wave     Wave
	From     float64
	To       float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Gain     float64 // linear; 0 is silent
}

var (
	bumpTone = Tone{
		Wave:     Square,
		From:     parameter.BumpSoundFrequency,
		To:       parameter.BumpSoundFrequency,
		Duration: parameter.BumpSoundDuration,
		Attack:   parameter.BumpSoundAttack,
		Release:  parameter.BumpSoundRelease,
		Gain:     0.3,
	}
	jumpTone = Tone{
		Wave:     Sine,
		From:     parameter.JumpSoundFrom,
		To:       parameter.JumpSoundTo,
		Duration: parameter.JumpSoundDuration,
		Attack:   parameter.JumpSoundAttack,
		Release:  parameter.JumpSoundRelease,
		Gain:     0.5,
	}
)

// Streamer renders t at rate; the stream ends after Duration
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	s := &toneStreamer{
		tone:    t,
		rate:    float64(rate),
		total:   rate.N(t.Duration),
		attack:  rate.N(t.Attack),
		release: rate.N(t.Release),
	}
	if t.Gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(t.Gain)}
}

type toneStreamer struct {
	tone  Tone
	rate  float64
	phase float64

	pos     int
	total   int
	attack  int
	release int
}

func (s *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.total {
		return 0, false
	}

	n := min(len(samples), s.total-s.pos)
	glide := s.tone.To - s.tone.From
	for i := range n {
		v := s.tone.Wave(s.phase) * s.envelope()
		samples[i] = [2]float64{v, v}

		freq := s.tone.From + glide*float64(s.pos)/float64(s.total)
		s.phase += freq / s.rate
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return n, true
}

func (s *toneStreamer) Err() error { return nil }

// envelope is the gain at the current position; the release ramp wins over attack
func (s *toneStreamer) envelope() float64 {
	if s.release > 0 && s.pos >= s.total-s.release {
		return float64(s.total-s.pos) / float64(s.release)
	}
	if s.attack > 0 && s.pos < s.attack {
		return float64(s.pos) / float64(s.attack)
	}
	return 1
}

// CreateBumpSound generates a short low thud for wall contact
func CreateBumpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	t := bumpTone
	t.Gain *= vol
	return t.Streamer(rate)
}

// CreateJumpSound generates a rising chirp
func CreateJumpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	t := jumpTone
	t.Gain *= vol
	return t.Streamer(rate)
}
