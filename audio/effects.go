package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/flappy/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, sweeping linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one pitch to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so zero volume is handled as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateFlapSound generates a short rising chirp
func CreateFlapSound(rate beep.SampleRate) beep.Streamer {
	sweep := NewSweep(constants.FlapSoundFromHz, constants.FlapSoundToHz, constants.FlapSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(sweep, constants.FlapSoundDuration, constants.FlapSoundAttack, constants.FlapSoundRelease, rate)
	return newVolume(shaped, 0.35)
}

// CreatePointSound generates a two note coin chime
func CreatePointSound(rate beep.SampleRate) (beep.Streamer, error) {
	note := func(freq float64, d, release time.Duration) (beep.Streamer, error) {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, fmt.Errorf("point tone %.0fHz: %w", freq, err)
		}
		return NewEnvelope(beep.Take(rate.N(d), tone), d, constants.PointSoundAttack, release, rate), nil
	}

	n1, err := note(constants.PointSoundNote1Hz, constants.PointSoundNote1Duration, constants.PointSoundNote1Release)
	if err != nil {
		return nil, err
	}
	n2, err := note(constants.PointSoundNote2Hz, constants.PointSoundNote2Duration, constants.PointSoundNote2Release)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Seq(n1, n2), 0.5), nil
}

// CreateHitSound generates a low thump with a noise burst
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	body := NewEnvelope(
		NewOscillator(constants.HitSoundHz, constants.HitSoundDuration, WaveSaw, rate),
		constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)
	noise := NewEnvelope(
		NewOscillator(0, constants.HitSoundDuration, WaveNoise, rate),
		constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)

	return beep.Mix(newVolume(body, 0.4), newVolume(noise, 0.25))
}

// CreateDieSound generates a falling sweep after a short pause
func CreateDieSound(rate beep.SampleRate) beep.Streamer {
	sweep := NewSweep(constants.DieSoundFromHz, constants.DieSoundToHz, constants.DieSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(sweep, constants.DieSoundDuration, constants.DieSoundAttack, constants.DieSoundRelease, rate)
	return beep.Seq(beep.Silence(rate.N(constants.DieSoundDelay)), newVolume(shaped, 0.5))
}

// GetSoundEffect returns the streamer for the given sound, nil for unknown types
func GetSoundEffect(soundType SoundType, rate beep.SampleRate) (beep.Streamer, error) {
	switch soundType {
	case SoundFlap:
		return CreateFlapSound(rate), nil
	case SoundPoint:
		return CreatePointSound(rate)
	case SoundHit:
		return CreateHitSound(rate), nil
	case SoundDie:
		return CreateDieSound(rate), nil
	default:
		return nil, nil
	}
}
