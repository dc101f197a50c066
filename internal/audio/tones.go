package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a finite streamer: one oscillator shaped by a linear
// attack/release envelope.
type tone struct {
	freq     float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	attack   int
	release  int
}

// NewTone creates a streamer that plays a single enveloped note and ends.
func NewTone(freq float64, duration, attack, release time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att = total / 2
		rel = total - att
	}
	return &tone{
		freq:    freq,
		wave:    wave,
		rate:    rate,
		total:   total,
		attack:  att,
		release: rel,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (t.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		val *= t.gain()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // Keep in [0, 1)
		t.position++
	}
	return len(samples), true
}

// gain returns the envelope value at the current position.
func (t *tone) gain() float64 {
	if t.attack > 0 && t.position < t.attack {
		return float64(t.position) / float64(t.attack)
	}
	tail := t.total - t.position
	if t.release > 0 && tail < t.release {
		return float64(tail) / float64(t.release)
	}
	return 1.0
}

func (t *tone) Err() error { return nil }

// pulse is an endless streamer used as minimal background music: a low
// carrier slowly gated by an LFO. It never reports completion; stop it by
// pausing the surrounding beep.Ctrl.
type pulse struct {
	freq     float64
	lfoFreq  float64
	rate     beep.SampleRate
	phase    float64
	lfoPhase float64
}

// NewPulse creates an endless background pulse with the given carrier and
// gate frequencies.
func NewPulse(freq, lfoFreq float64, rate beep.SampleRate) beep.Streamer {
	return &pulse{freq: freq, lfoFreq: lfoFreq, rate: rate}
}

func (p *pulse) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		carrier := math.Sin(2 * math.Pi * p.phase)
		gate := 0.5 + 0.5*math.Sin(2*math.Pi*p.lfoPhase)
		val := carrier * gate * musicVolume

		samples[i][0] = val
		samples[i][1] = val

		p.phase += p.freq / float64(p.rate)
		p.phase -= math.Floor(p.phase)
		p.lfoPhase += p.lfoFreq / float64(p.rate)
		p.lfoPhase -= math.Floor(p.lfoPhase)
	}
	return len(samples), true
}

func (p *pulse) Err() error { return nil }
