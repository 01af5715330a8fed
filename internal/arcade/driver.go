// Package arcade drives the duel: it owns the game state, ticks the
// simulation once per frame and hands the results to the presenter.
package arcade

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"gduel/internal/geom"
	"gduel/internal/sim"
	"gduel/internal/sprite"
)

//go:generate go tool mockgen -destination=./mocks/driver_mock.go -package=mocks . Presenter,Sound,SpriteLoader

// Presenter draws the game. None of its calls feed back into the
// simulation except AttachSprite, which reports the sprite's size in
// logical pixels.
type Presenter interface {
	AttachSprite(id sim.CharacterID, s *sprite.Sprite) geom.Size
	Bounds() geom.Size
	Render(s *sim.State)
	SetHealth(id sim.CharacterID, health int)
	ShowOverlay(phase sim.Phase)
}

type Sound interface {
	PlayHit(target sim.CharacterID)
}

type SpriteLoader interface {
	Load(ctx context.Context, id string) (*sprite.Sprite, error)
}

// EventSource delivers terminal events until quit is closed.
type EventSource interface {
	ChannelEvents(ch chan<- tcell.Event, quit <-chan struct{})
}

type Options struct {
	FPS        int
	KeyTimeout time.Duration
	Logger     *slog.Logger
}

type spriteLoad struct {
	id     sim.CharacterID
	sprite *sprite.Sprite
	err    error
}

type Driver struct {
	state   *sim.State
	view    Presenter
	sound   Sound
	sprites SpriteLoader
	input   *Input
	frame   time.Duration
	log     *slog.Logger
	loaded  chan spriteLoad
}

func NewDriver(state *sim.State, view Presenter, sound Sound, sprites SpriteLoader, opts Options) *Driver {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Driver{
		state:   state,
		view:    view,
		sound:   sound,
		sprites: sprites,
		input:   NewInput(opts.KeyTimeout),
		frame:   time.Second / time.Duration(fps),
		log:     log.With("match", uuid.NewString()),
		loaded:  make(chan spriteLoad, 2),
	}
}

// State exposes the game for inspection once Run has returned.
func (d *Driver) State() *sim.State {
	return d.state
}

// Run plays until the user quits or ctx is cancelled. The match ending
// does not stop Run; the final screen stays up until the user quits.
func (d *Driver) Run(ctx context.Context, src EventSource) error {
	g, ctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 10)
	quit := make(chan struct{})
	g.Go(func() error {
		src.ChannelEvents(events, quit)
		return nil
	})

	for _, c := range []*sim.Character{d.state.Player, d.state.Opponent} {
		id, name := c.ID, c.Sprite
		g.Go(func() error {
			s, err := d.sprites.Load(ctx, name)
			d.loaded <- spriteLoad{id: id, sprite: s, err: err}
			return nil
		})
	}

	g.Go(func() error {
		defer close(quit)
		return d.loop(ctx, events)
	})

	return g.Wait()
}

func (d *Driver) loop(ctx context.Context, events <-chan tcell.Event) error {
	d.log.Info("match started", "bounds", d.state.Bounds, "frame", d.frame)
	d.view.SetHealth(sim.Player, d.state.Player.Health)
	d.view.SetHealth(sim.Opponent, d.state.Opponent.Health)

	ticker := time.NewTicker(d.frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || d.HandleEvent(ev, time.Now()) {
				d.log.Info("quit", "phase", d.state.Phase, "frame", d.state.Frame)
				return nil
			}
		case l := <-d.loaded:
			d.attach(l)
		case now := <-ticker.C:
			d.Frame(now)
		}
	}
}

func (d *Driver) attach(l spriteLoad) {
	if l.err != nil {
		d.log.Error("sprite failed to load", "character", l.id, "err", l.err)
		return
	}
	size := d.view.AttachSprite(l.id, l.sprite)
	d.state.Character(l.id).SetSpriteSize(size)
	d.log.Info("sprite loaded", "character", l.id, "sprite", l.sprite.ID, "size", size)
}

// HandleEvent applies one terminal event and reports whether the user
// asked to quit.
func (d *Driver) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true
		}
		for _, in := range d.input.Press(ev, now) {
			d.state.Apply(in)
		}
	case *tcell.EventResize:
		d.state.SetBounds(d.view.Bounds())
		d.log.Debug("resized", "bounds", d.state.Bounds)
		if d.state.Phase.Terminal() {
			d.view.ShowOverlay(d.state.Phase)
		}
	}
	return false
}

// Frame runs one simulation step and draws its result. After the match
// has ended it does nothing.
func (d *Driver) Frame(now time.Time) {
	if d.state.Phase.Terminal() {
		return
	}
	for _, in := range d.input.Expire(now) {
		d.state.Apply(in)
	}

	res := d.state.Step()
	for _, h := range res.Hits {
		d.log.Debug("hit", "shooter", h.Shooter, "target", h.Target, "health", h.Health)
		d.view.SetHealth(h.Target, h.Health)
		d.sound.PlayHit(h.Target)
	}

	if res.Ended {
		d.log.Info("match over", "phase", res.Phase, "frame", d.state.Frame,
			"player", d.state.Player.Health, "opponent", d.state.Opponent.Health)
		d.view.ShowOverlay(res.Phase)
		return
	}
	d.view.Render(d.state)
}
