// Package audio synthesizes the game's sound effects with beep.
// All sounds are generated oscillators, no sample assets to ship.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite streamer producing the given wave.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
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

// NewEnvelope wraps a streamer with attack/release volume shaping.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer with a volume effect.
// math.Log2(0) is -Inf, so zero volume is handled by muting.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateEatSound is a short ding for normal food.
func CreateEatSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(880.0, 80*time.Millisecond, WaveSine, rate)
	shaped := NewEnvelope(osc, 80*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, 0.6*vol)
}

// CreateBonusSound is a two-note chime for bonus food.
func CreateBonusSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewOscillator(987.77, 90*time.Millisecond, WaveSquare, rate) // B5
	n1Shaped := NewEnvelope(n1, 90*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, rate)

	n2 := NewOscillator(1318.51, 140*time.Millisecond, WaveSquare, rate) // E6
	n2Shaped := NewEnvelope(n2, 140*time.Millisecond, 5*time.Millisecond, 100*time.Millisecond, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.5*vol)
}

// CreatePowerUpSound is a rising three-note arpeggio for a collected grant.
func CreatePowerUpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	var notes []beep.Streamer
	for _, freq := range []float64{523.25, 659.25, 783.99} { // C5 E5 G5
		osc := NewOscillator(freq, 70*time.Millisecond, WaveSine, rate)
		notes = append(notes, NewEnvelope(osc, 70*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(notes...), 0.55*vol)
}

// CreateExpireSound is a short falling tone for an expired power-up.
func CreateExpireSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewOscillator(659.25, 70*time.Millisecond, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, 70*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, rate)

	n2 := NewOscillator(523.25, 110*time.Millisecond, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, 110*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.4*vol)
}

// CreateTeleportSound is a quick noise whoosh for portal travel.
func CreateTeleportSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewOscillator(0, 160*time.Millisecond, WaveNoise, rate)
	shaped := NewEnvelope(noise, 160*time.Millisecond, 20*time.Millisecond, 120*time.Millisecond, rate)
	return newVolume(shaped, 0.35*vol)
}

// CreateGameOverSound is a low saw buzz for the death tick.
func CreateGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(110.0, 400*time.Millisecond, WaveSaw, rate)
	shaped := NewEnvelope(osc, 400*time.Millisecond, 10*time.Millisecond, 300*time.Millisecond, rate)
	return newVolume(shaped, 0.5*vol)
}

// CreateLevelCompleteSound is a four-note fanfare for a cleared maze.
func CreateLevelCompleteSound(rate beep.SampleRate, vol float64) beep.Streamer {
	var notes []beep.Streamer
	for _, freq := range []float64{523.25, 659.25, 783.99, 1046.50} { // C5 E5 G5 C6
		osc := NewOscillator(freq, 120*time.Millisecond, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, 120*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(notes...), 0.5*vol)
}
