package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"gduel/internal/arcade"
	"gduel/internal/audio"
	"gduel/internal/config"
	"gduel/internal/sprite"
	"gduel/internal/term"
)

func main() {
	var cfgPath, logPath string
	var mute bool
	var fps int
	flag.StringVar(&cfgPath, "config", "", "YAML config file (built-in duel when empty)")
	flag.StringVar(&logPath, "log", "", "write a debug log to this file")
	flag.BoolVar(&mute, "mute", false, "disable sound")
	flag.IntVar(&fps, "fps", 0, "override the configured frame rate")
	flag.Parse()

	if err := run(cfgPath, logPath, mute, fps); err != nil {
		fmt.Fprintln(os.Stderr, "gduel:", err)
		os.Exit(1)
	}
}

func run(cfgPath, logPath string, mute bool, fps int) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}
	if fps > 0 {
		cfg.FPS = fps
	}
	if mute {
		cfg.Sound = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := openLog(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	sprites := sprite.Builtin()
	if cfg.Sprites != "" {
		sprites = sprite.Dir(cfg.Sprites)
	}

	// Initialize screen
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()

	view := term.New(screen, cfg.CellSize(), cfg.CanvasSize())
	state, err := cfg.NewState(view.Bounds())
	if err != nil {
		return err
	}

	sound := audio.New(cfg.Sound, log)
	defer sound.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := arcade.NewDriver(state, view, sound, sprites, arcade.Options{
		FPS:    cfg.FPS,
		Logger: log,
	})
	if err := driver.Run(ctx, screen); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// openLog logs to path, or nowhere when path is empty; the terminal
// belongs to the game.
func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return log, func() { f.Close() }, nil
}
