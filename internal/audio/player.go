// Package audio plays the feedback tones through the system speaker.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/keysmash/internal/config"
	"github.com/vovakirdan/keysmash/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sink plays tones without blocking the caller.
type Sink interface {
	Play(core.Tone)
	Close()
}

// Silent discards every tone.
type Silent struct{}

func (Silent) Play(core.Tone) {}
func (Silent) Close()         {}

// Player synthesizes tones and hands them to the speaker.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	decay  time.Duration
	ready  bool
	play   func(...beep.Streamer)
}

// NewPlayer creates a player. Init must succeed before tones are audible.
func NewPlayer(volume float64, decay time.Duration) *Player {
	return &Player{
		rate:   sampleRate,
		volume: core.ClampF(volume, 0, 1),
		decay:  decay,
		play:   speaker.Play,
	}
}

// Init opens the speaker. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Play starts a tone and returns immediately.
func (p *Player) Play(t core.Tone) {
	p.mu.Lock()
	ready := p.ready
	p.mu.Unlock()

	if !ready || t.Frequency <= 0 {
		return
	}
	p.play(p.Stream(t))
}

// Stream returns the samples of a tone at the player's volume and decay.
func (p *Player) Stream(t core.Tone) beep.Streamer {
	return withVolume(newVoice(t, p.decay, p.rate), p.volume)
}

// Close releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Close()
	p.ready = false
}

// Open returns a ready player for cfg, or Silent when audio is disabled or
// the speaker cannot be opened.
func Open(cfg config.AudioConfig, logger *log.Logger) Sink {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return Silent{}
	}

	p := NewPlayer(cfg.Volume, time.Duration(cfg.DecayMS)*time.Millisecond)
	if err := p.Init(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return Silent{}
	}
	logger.Debug("audio ready", "rate", int(p.rate), "volume", cfg.Volume)
	return p
}
