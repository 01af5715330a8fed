package sim

import (
	"errors"
	"fmt"
	"strings"

	"gduel/internal/geom"
)

const (
	// ProjectileRadius is the radius of every projectile, in pixels.
	ProjectileRadius = 5.0

	// HitDamage is taken from a character's health per projectile hit.
	HitDamage = 10
)

var ErrInvalidCharacter = errors.New("invalid character")

type CharacterID int

const (
	Player CharacterID = iota
	Opponent
)

func (id CharacterID) String() string {
	switch id {
	case Player:
		return "player"
	case Opponent:
		return "opponent"
	default:
		return fmt.Sprintf("character(%d)", int(id))
	}
}

// MotionStyle selects how a character's projectiles travel.
type MotionStyle int

const (
	Straight MotionStyle = iota
	Bouncing
)

func (m MotionStyle) String() string {
	if m == Bouncing {
		return "bouncing"
	}
	return "straight"
}

// ParseMotionStyle accepts "straight"/"horizontal" and "bouncing"/"diagonal".
func ParseMotionStyle(s string) (MotionStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "straight", "horizontal":
		return Straight, nil
	case "bouncing", "diagonal":
		return Bouncing, nil
	}
	return Straight, fmt.Errorf("unknown projectile motion %q", s)
}

// CharacterSpec is the fixed initial state of a character.
type CharacterSpec struct {
	Sprite         string
	Health         int
	Position       geom.Vec2
	Velocity       geom.Vec2
	Flipped        bool
	WalkSpeed      float64
	MaxProjectiles int

	ProjectileColor    string
	ProjectileMotion   MotionStyle
	ProjectileMaxSpeed float64
	ShotSpeed          float64 // horizontal speed of a new projectile
	ShotRise           float64 // upward speed of a new bouncing projectile
}

func (s CharacterSpec) validate() error {
	switch {
	case s.Sprite == "":
		return fmt.Errorf("%w: sprite is required", ErrInvalidCharacter)
	case s.Health <= 0:
		return fmt.Errorf("%w: health must be positive, got %d", ErrInvalidCharacter, s.Health)
	case s.MaxProjectiles <= 0:
		return fmt.Errorf("%w: max projectiles must be positive, got %d", ErrInvalidCharacter, s.MaxProjectiles)
	case s.ProjectileMaxSpeed <= 0:
		return fmt.Errorf("%w: projectile max speed must be positive, got %v", ErrInvalidCharacter, s.ProjectileMaxSpeed)
	case s.ShotSpeed <= 0:
		return fmt.Errorf("%w: shot speed must be positive, got %v", ErrInvalidCharacter, s.ShotSpeed)
	case s.ShotRise < 0:
		return fmt.Errorf("%w: shot rise must not be negative, got %v", ErrInvalidCharacter, s.ShotRise)
	case s.WalkSpeed < 0:
		return fmt.Errorf("%w: walk speed must not be negative, got %v", ErrInvalidCharacter, s.WalkSpeed)
	case s.ProjectileMotion != Straight && s.ProjectileMotion != Bouncing:
		return fmt.Errorf("%w: unknown projectile motion %d", ErrInvalidCharacter, int(s.ProjectileMotion))
	}
	return nil
}

// Character is one of the two combatants.
type Character struct {
	ID      CharacterID
	Sprite  string
	Pos     geom.Vec2
	Vel     geom.Vec2
	Flipped bool // true when facing right
	Health  int
	Size    geom.Size // zero until the sprite has loaded

	WalkSpeed      float64
	Projectiles    []*Projectile // spawn order
	MaxProjectiles int

	ProjectileColor    string
	ProjectileMotion   MotionStyle
	ProjectileMaxSpeed float64
	ShotSpeed          float64
	ShotRise           float64
}

func NewCharacter(id CharacterID, spec CharacterSpec) (*Character, error) {
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return &Character{
		ID:                 id,
		Sprite:             spec.Sprite,
		Pos:                spec.Position,
		Vel:                spec.Velocity,
		Flipped:            spec.Flipped,
		Health:             spec.Health,
		WalkSpeed:          spec.WalkSpeed,
		Projectiles:        make([]*Projectile, 0, spec.MaxProjectiles),
		MaxProjectiles:     spec.MaxProjectiles,
		ProjectileColor:    spec.ProjectileColor,
		ProjectileMotion:   spec.ProjectileMotion,
		ProjectileMaxSpeed: spec.ProjectileMaxSpeed,
		ShotSpeed:          spec.ShotSpeed,
		ShotRise:           spec.ShotRise,
	}, nil
}

// Ready reports whether the sprite size is known. A character that is not
// ready is neither moved, clamped nor hit.
func (c *Character) Ready() bool {
	return c.Size.Known()
}

func (c *Character) SetSpriteSize(size geom.Size) {
	c.Size = size
}

func (c *Character) Rect() geom.Rect {
	return geom.RectAt(c.Pos, c.Size)
}

func (c *Character) Integrate() {
	c.Pos.X += c.Vel.X
	c.Pos.Y += c.Vel.Y
}

// ClampTo keeps the whole sprite inside bounds, one axis at a time.
func (c *Character) ClampTo(bounds geom.Size) {
	c.Pos.X = geom.Clamp(c.Pos.X, 0, bounds.W-c.Size.W)
	c.Pos.Y = geom.Clamp(c.Pos.Y, 0, bounds.H-c.Size.H)
}

// Shoot spawns a projectile at the leading edge of the sprite. It returns
// false when the character is at its projectile cap or not ready.
func (c *Character) Shoot() bool {
	if !c.Ready() || len(c.Projectiles) >= c.MaxProjectiles {
		return false
	}

	p := &Projectile{
		Pos:    geom.Vec2{X: c.Pos.X, Y: c.Pos.Y + c.Size.H/2},
		Vel:    geom.Vec2{X: -c.ShotSpeed},
		Radius: ProjectileRadius,
		Color:  c.ProjectileColor,
	}
	if c.Flipped {
		p.Pos.X += c.Size.W
		p.Vel.X = c.ShotSpeed
	}
	if c.ProjectileMotion == Bouncing {
		p.Vel.Y = -c.ShotRise
	}

	c.Projectiles = append(c.Projectiles, p)
	return true
}

// filterProjectiles drops collided, off-screen and over-speed projectiles.
func (c *Character) filterProjectiles(bounds geom.Size) {
	live := c.Projectiles[:0]
	for _, p := range c.Projectiles {
		if p.alive(bounds, c.ProjectileMaxSpeed) {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(c.Projectiles); i++ {
		c.Projectiles[i] = nil
	}
	c.Projectiles = live
}
