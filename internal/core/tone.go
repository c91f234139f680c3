package core

import "fmt"

// Waveform selects the oscillator shape of a feedback tone.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSquare
	WaveSaw
)

// String returns the config name of the waveform.
func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveTriangle:
		return "triangle"
	case WaveSquare:
		return "square"
	case WaveSaw:
		return "saw"
	default:
		return "unknown"
	}
}

// ParseWaveform converts a config name to a Waveform.
func ParseWaveform(name string) (Waveform, error) {
	switch name {
	case "sine", "":
		return WaveSine, nil
	case "triangle":
		return WaveTriangle, nil
	case "square":
		return WaveSquare, nil
	case "saw", "sawtooth":
		return WaveSaw, nil
	default:
		return WaveSine, fmt.Errorf("unknown waveform %q", name)
	}
}

// Tone is a single feedback sound request: a frequency in Hz and a waveform.
type Tone struct {
	Frequency float64
	Waveform  Waveform
}
