// Package geom holds the axis-aligned geometry shared by every collision
// test in the game.
package geom

type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair. The zero Size means "not known yet".
type Size struct {
	W, H float64
}

func (s Size) Known() bool {
	return s.W > 0 && s.H > 0
}

// Rect is an axis-aligned bounding box in logical pixels.
type Rect struct {
	Left, Right, Top, Bottom float64
}

// RectAt returns the box whose top-left corner is pos.
func RectAt(pos Vec2, size Size) Rect {
	return Rect{
		Left:   pos.X,
		Right:  pos.X + size.W,
		Top:    pos.Y,
		Bottom: pos.Y + size.H,
	}
}

// RectAround returns the box enclosing a circle.
func RectAround(center Vec2, radius float64) Rect {
	return Rect{
		Left:   center.X - radius,
		Right:  center.X + radius,
		Top:    center.Y - radius,
		Bottom: center.Y + radius,
	}
}

// Overlaps reports whether a and b intersect. Rects that only share an
// edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.Right > b.Left &&
		a.Left < b.Right &&
		a.Bottom > b.Top &&
		a.Top < b.Bottom
}

// Clamp restricts v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
