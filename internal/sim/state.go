// Package sim is the per-frame simulation of the duel: two characters,
// their projectiles and the win/loss state machine. It does no I/O.
package sim

import (
	"errors"
	"fmt"

	"gduel/internal/geom"
)

var ErrInvalidState = errors.New("invalid game state")

type Phase int

const (
	Playing Phase = iota
	GameOver
	Victory
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	case Victory:
		return "victory"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Terminal reports whether the phase ends the match.
func (p Phase) Terminal() bool {
	return p == GameOver || p == Victory
}

// Hit records one projectile striking a character.
type Hit struct {
	Shooter CharacterID
	Target  CharacterID
	Health  int // target health after the hit
}

type StepResult struct {
	Phase Phase
	Ended bool // the step that entered a terminal phase
	Hits  []Hit
}

// State is the whole game. The frame driver holds the only reference.
type State struct {
	Bounds   geom.Size
	Player   *Character
	Opponent *Character
	Phase    Phase
	Frame    uint64
}

func NewState(bounds geom.Size, player, opponent *Character) (*State, error) {
	if player == nil || opponent == nil {
		return nil, fmt.Errorf("%w: both characters are required", ErrInvalidState)
	}
	if !bounds.Known() {
		return nil, fmt.Errorf("%w: bounds %vx%v", ErrInvalidState, bounds.W, bounds.H)
	}
	return &State{
		Bounds:   bounds,
		Player:   player,
		Opponent: opponent,
		Phase:    Playing,
	}, nil
}

// Character returns the character with the given id.
func (s *State) Character(id CharacterID) *Character {
	if id == Opponent {
		return s.Opponent
	}
	return s.Player
}

// SetBounds changes the playfield size, e.g. after a terminal resize.
// Characters are clamped into the new bounds on their next update.
func (s *State) SetBounds(bounds geom.Size) {
	if bounds.Known() {
		s.Bounds = bounds
	}
}

// Step advances the game by one frame. Once the phase is terminal Step
// changes nothing.
func (s *State) Step() StepResult {
	if s.Phase.Terminal() {
		return StepResult{Phase: s.Phase}
	}
	s.Frame++

	var hits []Hit
	if s.Player.Ready() {
		s.Player.Integrate()
		s.Player.ClampTo(s.Bounds)
		hits = s.updateProjectiles(s.Player, s.Opponent, hits)
	}
	if s.Opponent.Ready() {
		s.patrol()
		s.Opponent.Integrate()
		s.Opponent.ClampTo(s.Bounds)
		hits = s.updateProjectiles(s.Opponent, s.Player, hits)
	}

	switch {
	case s.Player.Health <= 0:
		s.Phase = GameOver
	case s.Opponent.Health <= 0:
		s.Phase = Victory
	}

	return StepResult{
		Phase: s.Phase,
		Ended: s.Phase.Terminal(),
		Hits:  hits,
	}
}

func (s *State) updateProjectiles(shooter, target *Character, hits []Hit) []Hit {
	for _, p := range shooter.Projectiles {
		if shooter.ProjectileMotion == Bouncing {
			p.Bounce(s.Bounds)
		}
		p.Integrate()

		if target.Ready() && geom.Overlaps(p.Rect(), target.Rect()) {
			target.Health -= HitDamage
			p.Collided = true
			hits = append(hits, Hit{Shooter: shooter.ID, Target: target.ID, Health: target.Health})
		}
	}
	shooter.filterProjectiles(s.Bounds)
	return hits
}

// patrol is the opponent's AI: bounce off the walls, face the player and
// fire on exact vertical alignment with the player's top or bottom edge.
func (s *State) patrol() {
	o, p := s.Opponent, s.Player

	if o.Pos.X <= 0 || o.Pos.X >= s.Bounds.W-o.Size.W {
		o.Vel.X = -o.Vel.X
	}
	if o.Pos.Y <= 0 || o.Pos.Y >= s.Bounds.H-o.Size.H {
		o.Vel.Y = -o.Vel.Y
	}

	o.Flipped = o.Pos.X < p.Pos.X

	if o.Pos.Y == p.Pos.Y || o.Pos.Y == p.Pos.Y+p.Size.H {
		o.Shoot()
	}
}
