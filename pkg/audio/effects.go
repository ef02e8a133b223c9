// pkg/audio/effects.go
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Effect timings
const (
	footstepDuration = 60 * time.Millisecond
	shotDuration     = 120 * time.Millisecond
	impactDuration   = 90 * time.Millisecond
	hitDuration      = 250 * time.Millisecond
	chimeNote        = 180 * time.Millisecond
	attack           = 5 * time.Millisecond
)

// Footsteps pick one of these pitches, like choosing between recorded samples.
var footstepPitches = [...]float64{90, 110, 135}

// oscillator produces a fixed-length wave. sweep is added to the frequency
// per second, so shots can fall in pitch.
type oscillator struct {
	freq     float64
	sweep    float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a wave streamer that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return newSweep(freq, 0, duration, wave, rate)
}

func newSweep(freq, sweep float64, duration time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:   freq,
		sweep:  sweep,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := math.Max(o.freq+o.sweep*t, 0)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and exponentially out afterwards
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	decay    float64
	rate     beep.SampleRate
}

// NewEnvelope wraps s with a linear attack and an exponential decay. decay
// is the falloff rate per second.
func NewEnvelope(s beep.Streamer, attack time.Duration, decay float64, rate beep.SampleRate) beep.Streamer {
	return &envelope{streamer: s, attack: rate.N(attack), decay: decay, rate: rate}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else {
			vol = math.Exp(-e.decay * float64(e.position-e.attack) / float64(e.rate))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. Zero volume is silent rather than -Inf dB.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect builds the streamer for a sound. It returns nil for unknown types.
func Effect(sound SoundType, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch sound {
	case SoundFootstep:
		pitch := footstepPitches[rand.IntN(len(footstepPitches))]
		thump := NewOscillator(pitch, footstepDuration, WaveSine, rate)
		scuff := NewOscillator(0, footstepDuration, WaveNoise, rate)
		s = NewEnvelope(beep.Mix(newVolume(thump, 0.8), newVolume(scuff, 0.2)), attack, 60, rate)
	case SoundShot:
		s = NewEnvelope(newSweep(900, -4000, shotDuration, WaveSaw, rate), attack, 25, rate)
	case SoundImpact:
		s = NewEnvelope(NewOscillator(0, impactDuration, WaveNoise, rate), attack, 40, rate)
	case SoundHit:
		s = NewEnvelope(newSweep(220, -400, hitDuration, WaveSquare, rate), attack, 10, rate)
	case SoundComplete:
		first := NewEnvelope(NewOscillator(659.25, chimeNote, WaveSine, rate), attack, 8, rate)
		second := NewEnvelope(NewOscillator(987.77, 2*chimeNote, WaveSine, rate), attack, 6, rate)
		s = beep.Seq(first, second)
	default:
		return nil
	}

	return newVolume(s, cfg.EffectVolumes[sound]*cfg.MasterVolume)
}
