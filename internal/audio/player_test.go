package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/keysmash/internal/config"
	"github.com/vovakirdan/keysmash/internal/core"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestVoiceLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []core.Waveform{core.WaveSine, core.WaveTriangle, core.WaveSquare, core.WaveSaw} {
		t.Run(wave.String(), func(t *testing.T) {
			samples := drain(newVoice(core.Tone{Frequency: 440, Waveform: wave}, 250*time.Millisecond, rate))

			if len(samples) != rate.N(250*time.Millisecond) {
				t.Errorf("streamed %d samples, expected %d", len(samples), rate.N(250*time.Millisecond))
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("sample %d = %v, expected equal channels in [-1, 1]", i, s)
				}
			}
		})
	}
}

func TestVoiceDecays(t *testing.T) {
	rate := beep.SampleRate(8000)
	samples := drain(newVoice(core.Tone{Frequency: 100, Waveform: core.WaveSquare}, time.Second, rate))

	if math.Abs(samples[0][0]) != 1 {
		t.Errorf("first sample = %v, expected full gain", samples[0][0])
	}
	mid := math.Abs(samples[len(samples)/2][0])
	if mid > 0.01 || mid < 1e-4 {
		t.Errorf("midpoint gain = %v, expected about 3e-3", mid)
	}
	if last := math.Abs(samples[len(samples)-1][0]); last > 2e-5 {
		t.Errorf("last sample = %v, expected silence", last)
	}
}

func TestVoiceEmptyAfterEnd(t *testing.T) {
	v := newVoice(core.Tone{Frequency: 440}, time.Millisecond, beep.SampleRate(8000))
	drain(v)
	if n, ok := v.Stream(make([][2]float64, 4)); n != 0 || ok {
		t.Errorf("Stream() after end = (%d, %v), expected (0, false)", n, ok)
	}
}

func TestOscillate(t *testing.T) {
	tests := []struct {
		wave  core.Waveform
		phase float64
		want  float64
	}{
		{core.WaveSine, 0.25, 1},
		{core.WaveSine, 0.75, -1},
		{core.WaveTriangle, 0, -1},
		{core.WaveTriangle, 0.5, 1},
		{core.WaveTriangle, 0.25, 0},
		{core.WaveSquare, 0.1, 1},
		{core.WaveSquare, 0.6, -1},
		{core.WaveSaw, 0, -1},
		{core.WaveSaw, 0.5, 0},
	}

	for _, tc := range tests {
		if got := oscillate(tc.wave, tc.phase); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("oscillate(%v, %v) = %v, expected %v", tc.wave, tc.phase, got, tc.want)
		}
	}
}

func TestPlayerVolume(t *testing.T) {
	p := NewPlayer(0.5, 100*time.Millisecond)
	p.rate = beep.SampleRate(8000)

	loud := drain(newVoice(core.Tone{Frequency: 100, Waveform: core.WaveSquare}, 100*time.Millisecond, p.rate))
	quiet := drain(p.Stream(core.Tone{Frequency: 100, Waveform: core.WaveSquare}))

	if len(loud) != len(quiet) {
		t.Fatalf("lengths differ: %d vs %d", len(loud), len(quiet))
	}
	if got := quiet[0][0] / loud[0][0]; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("volume ratio = %v, expected 0.5", got)
	}

	mute := NewPlayer(0, 100*time.Millisecond)
	for _, s := range drain(mute.Stream(core.Tone{Frequency: 100})) {
		if s[0] != 0 {
			t.Fatal("zero volume should be silent")
		}
	}
}

func TestPlayRequiresInit(t *testing.T) {
	var played int
	p := NewPlayer(1, 10*time.Millisecond)
	p.play = func(s ...beep.Streamer) { played += len(s) }

	p.Play(core.Tone{Frequency: 440})
	if played != 0 {
		t.Error("Play() before Init should be dropped")
	}

	p.ready = true
	p.Play(core.Tone{Frequency: 440})
	p.Play(core.Tone{Frequency: 0})
	if played != 1 {
		t.Errorf("played %d tones, expected 1", played)
	}
}

func TestOpenDisabledIsSilent(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Enabled = false

	if _, ok := Open(cfg, nil).(Silent); !ok {
		t.Error("Open() with audio disabled should return Silent")
	}
}
