package sim

import (
	"math"

	"gduel/internal/geom"
)

// Projectile is a circular shot owned by one character.
type Projectile struct {
	Pos      geom.Vec2 // centre
	Vel      geom.Vec2
	Radius   float64
	Color    string
	Collided bool // set once, never cleared
}

func (p *Projectile) Rect() geom.Rect {
	return geom.RectAround(p.Pos, p.Radius)
}

func (p *Projectile) Integrate() {
	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y
}

// Bounce reverses and doubles a velocity component when the matching edge
// of the projectile sits inside the margin band of a playfield wall.
func (p *Projectile) Bounce(bounds geom.Size) {
	r := p.Rect()

	if r.Top > 0 && r.Top < p.Radius {
		p.Vel.Y = -2 * p.Vel.Y
	}
	if r.Left > 0 && r.Left < p.Radius {
		p.Vel.X = -2 * p.Vel.X
	}
	if r.Right < bounds.W && r.Right > bounds.W-p.Radius {
		p.Vel.X = -2 * p.Vel.X
	}
	if r.Bottom < bounds.H && r.Bottom > bounds.H-p.Radius {
		p.Vel.Y = -2 * p.Vel.Y
	}
}

func (p *Projectile) alive(bounds geom.Size, maxSpeed float64) bool {
	return p.Pos.X > 0 &&
		p.Pos.X < bounds.W &&
		!p.Collided &&
		math.Abs(p.Vel.X) <= maxSpeed &&
		math.Abs(p.Vel.Y) < maxSpeed
}
