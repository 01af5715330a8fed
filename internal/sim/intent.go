package sim

type Action int

const (
	MoveLeft Action = iota
	MoveRight
	MoveUp
	MoveDown
	Fire
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case Fire:
		return "fire"
	}
	return "unknown"
}

// Intent is a player command. Movement intents start (Active) and stop;
// Fire only has meaning when Active.
type Intent struct {
	Action Action
	Active bool
}

// Apply feeds a player intent into the state. Intents arriving after the
// match has ended are ignored.
func (s *State) Apply(in Intent) {
	if s.Phase.Terminal() {
		return
	}
	p := s.Player

	switch in.Action {
	case MoveLeft, MoveRight:
		if !in.Active {
			p.Vel.X = 0
			return
		}
		p.Flipped = in.Action == MoveRight
		p.Vel.X = p.WalkSpeed
		if in.Action == MoveLeft {
			p.Vel.X = -p.WalkSpeed
		}
	case MoveUp, MoveDown:
		if !in.Active {
			p.Vel.Y = 0
			return
		}
		p.Vel.Y = p.WalkSpeed
		if in.Action == MoveUp {
			p.Vel.Y = -p.WalkSpeed
		}
	case Fire:
		if in.Active {
			p.Shoot()
		}
	}
}
