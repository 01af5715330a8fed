package arcade

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gduel/internal/arcade/mocks"
	"gduel/internal/config"
	"gduel/internal/geom"
	"gduel/internal/sim"
	"gduel/internal/sprite"
)

var (
	testBounds = geom.Size{W: 800, H: 400}
	spriteSize = geom.Size{W: 32, H: 48}
)

type fixture struct {
	state   *sim.State
	view    *mocks.MockPresenter
	sound   *mocks.MockSound
	sprites *mocks.MockSpriteLoader
	driver  *Driver
}

func newFixture(t *testing.T, ready bool) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	state, err := config.Default().NewState(testBounds)
	require.NoError(t, err)
	if ready {
		state.Player.SetSpriteSize(spriteSize)
		state.Opponent.SetSpriteSize(spriteSize)
	}

	f := &fixture{
		state:   state,
		view:    mocks.NewMockPresenter(ctrl),
		sound:   mocks.NewMockSound(ctrl),
		sprites: mocks.NewMockSpriteLoader(ctrl),
	}
	f.driver = NewDriver(state, f.view, f.sound, f.sprites, Options{
		FPS:    60,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return f
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestFrameRendersWhilePlaying(t *testing.T) {
	f := newFixture(t, true)
	f.view.EXPECT().Render(f.state).Times(3)

	now := time.Now()
	for i := 0; i < 3; i++ {
		f.driver.Frame(now)
	}
	assert.Equal(t, uint64(3), f.state.Frame)
}

func TestFrameShowsOverlayOnce(t *testing.T) {
	f := newFixture(t, true)
	f.state.Opponent.Health = sim.HitDamage
	f.state.Opponent.Pos = geom.Vec2{X: 600, Y: 200}
	f.state.Opponent.Vel = geom.Vec2{}
	f.state.Player.Projectiles = append(f.state.Player.Projectiles, &sim.Projectile{
		Pos:    geom.Vec2{X: 610, Y: 224},
		Vel:    geom.Vec2{X: 2},
		Radius: sim.ProjectileRadius,
	})

	gomock.InOrder(
		f.view.EXPECT().SetHealth(sim.Opponent, 0),
		f.view.EXPECT().ShowOverlay(sim.Victory),
	)
	f.sound.EXPECT().PlayHit(sim.Opponent)

	now := time.Now()
	f.driver.Frame(now)
	// later frames must neither render nor notify again
	f.driver.Frame(now.Add(time.Second))
	f.driver.Frame(now.Add(2 * time.Second))

	assert.Equal(t, sim.Victory, f.state.Phase)
}

func TestHandleEventAppliesIntents(t *testing.T) {
	f := newFixture(t, true)

	now := time.Now()
	assert.False(t, f.driver.HandleEvent(key(tcell.KeyLeft, 0), now))
	assert.Equal(t, -2.0, f.state.Player.Vel.X)
	assert.False(t, f.state.Player.Flipped)

	assert.False(t, f.driver.HandleEvent(key(tcell.KeyRune, ' '), now))
	require.Len(t, f.state.Player.Projectiles, 1)
	assert.Less(t, f.state.Player.Projectiles[0].Vel.X, 0.0)

	// no key repeat arrives, so the direction is released on the next frame
	f.view.EXPECT().Render(f.state)
	f.driver.Frame(now.Add(keyTimeout))
	assert.Zero(t, f.state.Player.Vel.X)
}

func TestHandleEventQuitKeys(t *testing.T) {
	f := newFixture(t, true)
	now := time.Now()

	assert.True(t, f.driver.HandleEvent(key(tcell.KeyEscape, 0), now))
	assert.True(t, f.driver.HandleEvent(key(tcell.KeyCtrlC, 0), now))
	assert.True(t, f.driver.HandleEvent(key(tcell.KeyRune, 'q'), now))
	assert.False(t, f.driver.HandleEvent(key(tcell.KeyRune, 'x'), now))
}

func TestHandleEventResize(t *testing.T) {
	f := newFixture(t, true)
	small := geom.Size{W: 400, H: 200}

	f.view.EXPECT().Bounds().Return(small)
	f.driver.HandleEvent(tcell.NewEventResize(50, 14), time.Now())
	assert.Equal(t, small, f.state.Bounds)

	f.state.Phase = sim.GameOver
	f.view.EXPECT().Bounds().Return(testBounds)
	f.view.EXPECT().ShowOverlay(sim.GameOver)
	f.driver.HandleEvent(tcell.NewEventResize(100, 26), time.Now())
}

func TestAttachSprite(t *testing.T) {
	f := newFixture(t, false)
	s := &sprite.Sprite{ID: "player", Lines: []string{"ab", "cd", "ef"}}

	f.view.EXPECT().AttachSprite(sim.Player, s).Return(geom.Size{W: 16, H: 48})
	f.driver.attach(spriteLoad{id: sim.Player, sprite: s})
	assert.True(t, f.state.Player.Ready())
	assert.Equal(t, geom.Size{W: 16, H: 48}, f.state.Player.Size)

	f.driver.attach(spriteLoad{id: sim.Opponent, err: sprite.ErrSpriteNotFound})
	assert.False(t, f.state.Opponent.Ready())
}

func TestUnreadyOpponentStaysPut(t *testing.T) {
	f := newFixture(t, false)
	f.state.Player.SetSpriteSize(spriteSize)
	f.view.EXPECT().Render(f.state).Times(5)

	for i := 0; i < 5; i++ {
		f.driver.Frame(time.Now())
	}
	assert.Equal(t, geom.Vec2{X: 600, Y: 50}, f.state.Opponent.Pos)
}

func TestRunQuitsOnKey(t *testing.T) {
	f := newFixture(t, false)

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(100, 26)

	playerArt := &sprite.Sprite{ID: "player", Lines: []string{"abcd", "efgh", "ijkl"}}
	f.sprites.EXPECT().Load(gomock.Any(), "player").Return(playerArt, nil)
	f.sprites.EXPECT().Load(gomock.Any(), "opponent").Return(nil, errors.New("boom"))

	f.view.EXPECT().AttachSprite(sim.Player, playerArt).Return(spriteSize).MaxTimes(1)
	f.view.EXPECT().SetHealth(gomock.Any(), 50).Times(2)
	f.view.EXPECT().Bounds().Return(testBounds).AnyTimes()
	f.view.EXPECT().Render(gomock.Any()).AnyTimes()

	done := make(chan error, 1)
	go func() {
		done <- f.driver.Run(context.Background(), screen)
	}()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop on q")
	}
	assert.False(t, f.state.Opponent.Ready())
}

func TestRunStopsOnCancel(t *testing.T) {
	f := newFixture(t, true)

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	f.sprites.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, sprite.ErrSpriteNotFound).Times(2)
	f.view.EXPECT().SetHealth(gomock.Any(), gomock.Any()).AnyTimes()
	f.view.EXPECT().Bounds().Return(testBounds).AnyTimes()
	f.view.EXPECT().Render(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := f.driver.Run(ctx, screen)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
