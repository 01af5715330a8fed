// Package term draws the duel on a tcell screen. One terminal cell covers
// a fixed block of logical pixels; the last row is the health bar.
package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"gduel/internal/geom"
	"gduel/internal/sim"
	"gduel/internal/sprite"
)

const (
	hudRows        = 1
	projectileRune = '●'
	helpText       = "arrows/wasd move  space fire  q quit"
)

var background = tcell.NewHexColor(0xEBF3E8)

var mirrored = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
}

type Renderer struct {
	screen  tcell.Screen
	cell    geom.Size
	canvas  geom.Size
	sprites map[sim.CharacterID]*sprite.Sprite
	health  map[sim.CharacterID]int
	styles  map[sim.CharacterID]tcell.Style
}

// New returns a renderer drawing cell-sized blocks of the playfield. A zero
// canvas makes the playfield follow the terminal size.
func New(screen tcell.Screen, cell, canvas geom.Size) *Renderer {
	base := tcell.StyleDefault.Background(background)
	return &Renderer{
		screen:  screen,
		cell:    cell,
		canvas:  canvas,
		sprites: make(map[sim.CharacterID]*sprite.Sprite),
		health:  make(map[sim.CharacterID]int),
		styles: map[sim.CharacterID]tcell.Style{
			sim.Player:   base.Foreground(tcell.ColorBlue).Bold(true),
			sim.Opponent: base.Foreground(tcell.ColorDimGray).Bold(true),
		},
	}
}

// AttachSprite remembers the art for a character and returns its size in
// logical pixels.
func (r *Renderer) AttachSprite(id sim.CharacterID, s *sprite.Sprite) geom.Size {
	r.sprites[id] = s
	return geom.Size{
		W: float64(s.Width()) * r.cell.W,
		H: float64(s.Height()) * r.cell.H,
	}
}

// Bounds is the playfield size in logical pixels.
func (r *Renderer) Bounds() geom.Size {
	if r.canvas.Known() {
		return r.canvas
	}
	w, h := r.screen.Size()
	rows := h - hudRows
	if rows < 1 {
		rows = 1
	}
	if w < 1 {
		w = 1
	}
	return geom.Size{W: float64(w) * r.cell.W, H: float64(rows) * r.cell.H}
}

func (r *Renderer) SetHealth(id sim.CharacterID, health int) {
	r.health[id] = health
}

func (r *Renderer) Render(s *sim.State) {
	r.screen.Clear()
	r.drawBackground(s.Bounds)
	r.drawCharacter(s.Player)
	r.drawCharacter(s.Opponent)
	r.drawProjectiles(s.Player)
	r.drawProjectiles(s.Opponent)
	r.drawHUD()
	r.screen.Show()
}

// ShowOverlay covers the whole screen with the final result.
func (r *Renderer) ShowOverlay(phase sim.Phase) {
	fill, title := tcell.ColorRed, "Game Over"
	if phase == sim.Victory {
		fill, title = tcell.ColorBlue, "Victory"
	}

	w, h := r.screen.Size()
	style := tcell.StyleDefault.Background(fill).Foreground(tcell.ColorWhite)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	r.drawCentered(h/2-1, title, style.Bold(true))
	r.drawCentered(h/2+1, "press q to quit", style)
	r.screen.Show()
}

func (r *Renderer) toCell(p geom.Vec2) (int, int) {
	return int(math.Floor(p.X / r.cell.W)), int(math.Floor(p.Y / r.cell.H))
}

func (r *Renderer) drawBackground(bounds geom.Size) {
	cols := int(math.Ceil(bounds.W / r.cell.W))
	rows := int(math.Ceil(bounds.H / r.cell.H))
	w, h := r.screen.Size()
	style := tcell.StyleDefault.Background(background)
	for y := 0; y < rows && y < h-hudRows; y++ {
		for x := 0; x < cols && x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawCharacter draws the sprite art, mirrored when the character faces
// right. Spaces in the art are transparent.
func (r *Renderer) drawCharacter(c *sim.Character) {
	art, ok := r.sprites[c.ID]
	if !ok || !c.Ready() {
		return
	}
	x0, y0 := r.toCell(c.Pos)
	style := r.styles[c.ID]

	for dy, line := range art.Lines {
		runes := []rune(line)
		if c.Flipped {
			runes = mirror(runes, art.Width())
		}
		for dx, ch := range runes {
			if ch == ' ' {
				continue
			}
			r.screen.SetContent(x0+dx, y0+dy, ch, nil, style)
		}
	}
}

func (r *Renderer) drawProjectiles(c *sim.Character) {
	for _, p := range c.Projectiles {
		if p.Collided {
			continue
		}
		x, y := r.toCell(p.Pos)
		style := tcell.StyleDefault.Background(background).Foreground(tcell.GetColor(p.Color))
		r.screen.SetContent(x, y, projectileRune, nil, style)
	}
}

func (r *Renderer) drawHUD() {
	w, h := r.screen.Size()
	y := h - 1
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	left := fmt.Sprintf("Player: %d", r.health[sim.Player])
	right := fmt.Sprintf("Opponent: %d", r.health[sim.Opponent])
	r.drawText(0, y, left, style.Foreground(tcell.ColorBlue))
	r.drawText(w-len(right), y, right, style.Foreground(tcell.ColorDimGray))
	if len(left)+len(helpText)+len(right)+4 <= w {
		r.drawCentered(y, helpText, style.Dim(true))
	}
}

func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText((w-len([]rune(text)))/2, y, text, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}

// mirror flips a line of art horizontally inside a box of the given width.
func mirror(runes []rune, width int) []rune {
	out := make([]rune, width)
	for i := range out {
		out[i] = ' '
	}
	for i, ch := range runes {
		if m, ok := mirrored[ch]; ok {
			ch = m
		}
		out[width-1-i] = ch
	}
	return out
}
