// Package audio plays short tones when a projectile lands.
package audio

import (
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"gduel/internal/sim"
)

const (
	sampleRate = beep.SampleRate(44100)

	hitDuration  = 60 * time.Millisecond
	opponentTone = 880.0 // Hz, the player scored
	playerTone   = 220.0 // Hz, the player was hit
)

type Player struct {
	enabled bool
	log     *slog.Logger
}

// New opens the speaker when enabled. Sound is optional: if the speaker
// cannot be opened the failure is logged and every call becomes a no-op.
func New(enabled bool, log *slog.Logger) *Player {
	p := &Player{log: log}
	if !enabled {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Warn("audio disabled", "err", err)
		return p
	}
	p.enabled = true
	return p
}

func (p *Player) Enabled() bool {
	return p.enabled
}

// PlayHit sounds the tone for a hit on target.
func (p *Player) PlayHit(target sim.CharacterID) {
	if !p.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, toneFor(target))
	if err != nil {
		p.log.Debug("tone", "err", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(hitDuration), sine))
}

func toneFor(target sim.CharacterID) float64 {
	if target == sim.Opponent {
		return opponentTone
	}
	return playerTone
}

// Close silences anything still playing.
func (p *Player) Close() {
	if p.enabled {
		speaker.Clear()
	}
}
