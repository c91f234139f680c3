package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/keysmash/internal/core"
)

// silenceGain is where the exponential decay ends (-100 dB).
const silenceGain = 1e-5

// voice is a single oscillator with an exponential decay envelope.
type voice struct {
	wave     core.Waveform
	freq     float64
	rate     beep.SampleRate
	phase    float64
	position int
	length   int
	k        float64 // per-sample decay exponent
}

// newVoice creates a tone that fades from full gain to silence over decay.
func newVoice(t core.Tone, decay time.Duration, rate beep.SampleRate) *voice {
	length := max(rate.N(decay), 1)
	return &voice{
		wave:   t.Waveform,
		freq:   t.Frequency,
		rate:   rate,
		length: length,
		k:      math.Log(silenceGain) / float64(length),
	}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.position >= v.length {
			return i, i > 0
		}

		val := oscillate(v.wave, v.phase) * math.Exp(v.k*float64(v.position))
		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.freq / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.position++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// oscillate returns the waveform value at phase in [0, 1).
func oscillate(w core.Waveform, phase float64) float64 {
	switch w {
	case core.WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case core.WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case core.WaveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// withVolume scales s by vol in [0, 1]; zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
