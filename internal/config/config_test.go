package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gduel/internal/geom"
	"gduel/internal/sim"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "duel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, geom.Size{}, cfg.CanvasSize())
	assert.Equal(t, geom.Size{W: 8, H: 16}, cfg.CellSize())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
fps: 30
canvas:
  width: 640
  height: 320
player:
  health: 30
  projectile:
    color: yellow
opponent:
  projectile:
    motion: straight
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, geom.Size{W: 640, H: 320}, cfg.CanvasSize())
	assert.Equal(t, 30, cfg.Player.Health)
	assert.Equal(t, "yellow", cfg.Player.Projectile.Color)
	assert.Equal(t, 10, cfg.Player.MaxProjectiles, "untouched keys keep defaults")
	assert.Equal(t, "straight", cfg.Opponent.Projectile.Motion)
	assert.Equal(t, "gray", cfg.Opponent.Projectile.Color)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero fps", "fps: 0"},
		{"bad cell", "cell: {width: 0, height: 16}"},
		{"negative canvas", "canvas: {width: -1}"},
		{"bad motion", "opponent: {projectile: {motion: zigzag}}"},
		{"no projectiles", "player: {max_projectiles: 0}"},
		{"no health", "opponent: {health: 0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "fps: [1, 2"))
	assert.Error(t, err)
}

func TestNewStateFromDefaults(t *testing.T) {
	s, err := Default().NewState(geom.Size{W: 800, H: 400})
	require.NoError(t, err)

	assert.Equal(t, sim.Playing, s.Phase)
	assert.Equal(t, geom.Vec2{X: 100, Y: 50}, s.Player.Pos)
	assert.Equal(t, geom.Vec2{X: 600, Y: 50}, s.Opponent.Pos)
	assert.Equal(t, geom.Vec2{X: -2, Y: 2}, s.Opponent.Vel)
	assert.Equal(t, sim.Straight, s.Player.ProjectileMotion)
	assert.Equal(t, sim.Bouncing, s.Opponent.ProjectileMotion)
	assert.Equal(t, 50, s.Player.Health)
	assert.False(t, s.Player.Ready(), "sprites load later")
}
