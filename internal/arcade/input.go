package arcade

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"gduel/internal/sim"
)

// keyTimeout is how long a direction counts as held after its last press.
// Terminals report key presses and auto-repeats but never releases.
const keyTimeout = 150 * time.Millisecond

var opposite = map[sim.Action]sim.Action{
	sim.MoveLeft:  sim.MoveRight,
	sim.MoveRight: sim.MoveLeft,
	sim.MoveUp:    sim.MoveDown,
	sim.MoveDown:  sim.MoveUp,
}

// Input turns raw key presses into player intents.
type Input struct {
	timeout time.Duration
	held    map[sim.Action]time.Time
}

func NewInput(timeout time.Duration) *Input {
	if timeout <= 0 {
		timeout = keyTimeout
	}
	return &Input{
		timeout: timeout,
		held:    make(map[sim.Action]time.Time),
	}
}

// actionFor maps arrows, wasd and hjkl to directions and space or f to fire.
func actionFor(ev *tcell.EventKey) (sim.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return sim.MoveLeft, true
	case tcell.KeyRight:
		return sim.MoveRight, true
	case tcell.KeyUp:
		return sim.MoveUp, true
	case tcell.KeyDown:
		return sim.MoveDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			return sim.MoveLeft, true
		case 'd', 'l':
			return sim.MoveRight, true
		case 'w', 'k':
			return sim.MoveUp, true
		case 's', 'j':
			return sim.MoveDown, true
		case ' ', 'f':
			return sim.Fire, true
		}
	}
	return 0, false
}

// Press records a key press. A direction yields a start intent only when
// it was not already held; fire yields an intent on every press.
func (in *Input) Press(ev *tcell.EventKey, now time.Time) []sim.Intent {
	action, ok := actionFor(ev)
	if !ok {
		return nil
	}
	if action == sim.Fire {
		return []sim.Intent{{Action: sim.Fire, Active: true}}
	}

	// the new direction owns the axis, so the old one must not stop it later
	delete(in.held, opposite[action])

	_, wasHeld := in.held[action]
	in.held[action] = now
	if wasHeld {
		return nil
	}
	return []sim.Intent{{Action: action, Active: true}}
}

// Expire releases directions that have not been pressed within the timeout.
func (in *Input) Expire(now time.Time) []sim.Intent {
	var out []sim.Intent
	for _, action := range []sim.Action{sim.MoveLeft, sim.MoveRight, sim.MoveUp, sim.MoveDown} {
		last, ok := in.held[action]
		if !ok || now.Sub(last) < in.timeout {
			continue
		}
		delete(in.held, action)
		out = append(out, sim.Intent{Action: action})
	}
	return out
}

// Held reports whether a direction is currently held.
func (in *Input) Held(action sim.Action) bool {
	_, ok := in.held[action]
	return ok
}
