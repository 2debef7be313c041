// Package audio synthesises the game's sound effects with beep.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate of every synthesised sound.
const SampleRate = beep.SampleRate(44100)

// Player plays sounds through the system speaker. A Player whose speaker
// failed to initialise stays silent.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	ready  bool
	muted  atomic.Bool
	logger *log.Logger
}

// NewPlayer creates a player. Call Init before sounds can be heard.
func NewPlayer(logger *log.Logger) *Player {
	return &Player{mixer: &beep.Mixer{}, logger: logger}
}

// Init opens the speaker. On failure the player degrades to silence and
// the error is returned for logging.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Ready reports whether the speaker is open.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Play starts the sound for key. Unknown keys, a muted player and a
// closed speaker drop the sound.
func (p *Player) Play(key string) {
	if p == nil || p.muted.Load() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	s, ok := Sound(key, SampleRate)
	if !ok {
		if p.logger != nil {
			p.logger.Debug("unknown sound", "key", key)
		}
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted mutes or unmutes the player.
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Muted reports whether sounds are dropped.
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// ToggleMuted flips the muted flag and returns the new value.
func (p *Player) ToggleMuted() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Close stops every playing sound.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}

// Silent is an audio hook that drops every sound. SSH sessions use it.
type Silent struct{}

// Play does nothing.
func (Silent) Play(string) {}
