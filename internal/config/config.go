package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gduel/internal/geom"
	"gduel/internal/sim"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	FPS      int       `yaml:"fps"`
	Canvas   SizeDef   `yaml:"canvas"` // zero fills the terminal
	Cell     SizeDef   `yaml:"cell"`   // logical pixels per terminal cell
	Sound    bool      `yaml:"sound"`
	Sprites  string    `yaml:"sprites"` // directory overriding the built-in art
	Player   Character `yaml:"player"`
	Opponent Character `yaml:"opponent"`
}

type SizeDef struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Vec2Def struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Character struct {
	Sprite         string        `yaml:"sprite"`
	Health         int           `yaml:"health"`
	Position       Vec2Def       `yaml:"position"`
	Velocity       Vec2Def       `yaml:"velocity"`
	Flipped        bool          `yaml:"flipped"`
	WalkSpeed      float64       `yaml:"walk_speed"`
	MaxProjectiles int           `yaml:"max_projectiles"`
	Projectile     ProjectileDef `yaml:"projectile"`
}

type ProjectileDef struct {
	Color    string  `yaml:"color"`
	Motion   string  `yaml:"motion"`
	MaxSpeed float64 `yaml:"max_speed"`
	Speed    float64 `yaml:"speed"`
	Rise     float64 `yaml:"rise"`
}

// Default returns the stock duel: player on the left firing straight,
// opponent patrolling on the right firing bouncing shots.
func Default() Config {
	return Config{
		FPS:   60,
		Cell:  SizeDef{Width: 8, Height: 16},
		Sound: true,
		Player: Character{
			Sprite:         "player",
			Health:         50,
			Position:       Vec2Def{X: 100, Y: 50},
			Flipped:        true,
			WalkSpeed:      2,
			MaxProjectiles: 10,
			Projectile: ProjectileDef{
				Color:    "green",
				Motion:   "straight",
				MaxSpeed: 4,
				Speed:    2,
				Rise:     1,
			},
		},
		Opponent: Character{
			Sprite:         "opponent",
			Health:         50,
			Position:       Vec2Def{X: 600, Y: 50},
			Velocity:       Vec2Def{X: -2, Y: 2},
			Flipped:        true,
			MaxProjectiles: 10,
			Projectile: ProjectileDef{
				Color:    "gray",
				Motion:   "bouncing",
				MaxSpeed: 4,
				Speed:    2,
				Rise:     1,
			},
		},
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("%w: fps must be in 1..240, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return fmt.Errorf("%w: cell size must be positive", ErrInvalidConfig)
	}
	if c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		return fmt.Errorf("%w: canvas size must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Player.build(sim.Player); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Opponent.build(sim.Opponent); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// CanvasSize is the fixed playfield size, or the zero Size when the
// playfield should follow the terminal.
func (c Config) CanvasSize() geom.Size {
	return geom.Size{W: c.Canvas.Width, H: c.Canvas.Height}
}

func (c Config) CellSize() geom.Size {
	return geom.Size{W: c.Cell.Width, H: c.Cell.Height}
}

// Spec converts the YAML block into the simulation's character spec.
func (ch Character) Spec() (sim.CharacterSpec, error) {
	motion, err := sim.ParseMotionStyle(ch.Projectile.Motion)
	if err != nil {
		return sim.CharacterSpec{}, err
	}
	return sim.CharacterSpec{
		Sprite:             ch.Sprite,
		Health:             ch.Health,
		Position:           geom.Vec2{X: ch.Position.X, Y: ch.Position.Y},
		Velocity:           geom.Vec2{X: ch.Velocity.X, Y: ch.Velocity.Y},
		Flipped:            ch.Flipped,
		WalkSpeed:          ch.WalkSpeed,
		MaxProjectiles:     ch.MaxProjectiles,
		ProjectileColor:    ch.Projectile.Color,
		ProjectileMotion:   motion,
		ProjectileMaxSpeed: ch.Projectile.MaxSpeed,
		ShotSpeed:          ch.Projectile.Speed,
		ShotRise:           ch.Projectile.Rise,
	}, nil
}

func (ch Character) build(id sim.CharacterID) (*sim.Character, error) {
	spec, err := ch.Spec()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return sim.NewCharacter(id, spec)
}

// NewState builds the initial game for the given playfield.
func (c Config) NewState(bounds geom.Size) (*sim.State, error) {
	player, err := c.Player.build(sim.Player)
	if err != nil {
		return nil, err
	}
	opponent, err := c.Opponent.build(sim.Opponent)
	if err != nil {
		return nil, err
	}
	return sim.NewState(bounds, player, opponent)
}
