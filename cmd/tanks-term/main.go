package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Garsondee/Tank-Arena/internal/audio"
	"github.com/Garsondee/Tank-Arena/internal/config"
	"github.com/Garsondee/Tank-Arena/internal/game"
	"github.com/Garsondee/Tank-Arena/internal/logging"
	"github.com/Garsondee/Tank-Arena/internal/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(os.Args[1:], tcell.NewScreen); err != nil {
		fmt.Fprintln(os.Stderr, "tanks-term:", err)
		os.Exit(1)
	}
}

// run plays one terminal match. Every resource it opens is released before
// it returns, so the caller may exit right after.
func run(args []string, newScreen func() (tcell.Screen, error)) error {
	fs := flag.NewFlagSet("tanks-term", flag.ContinueOnError)
	var cfgPath string
	var seed int64
	var logFile string
	var mute bool

	fs.StringVar(&cfgPath, "config", "", "config file (json, yaml or toml)")
	fs.Int64Var(&seed, "seed", 0, "match RNG seed (0 uses the config, then the clock)")
	fs.StringVar(&logFile, "log-file", "", "log file (the terminal is busy drawing the arena)")
	fs.BoolVar(&mute, "mute", false, "disable sound")
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		settings.Seed = seed
	}
	if logFile != "" {
		settings.LogFile = logFile
	}
	if settings.LogFile == "" {
		settings.LogFile = "tanks-term.log"
	}

	logger, closeLog, err := logging.Setup(logging.Options{Level: settings.LogLevel, File: settings.LogFile})
	if err != nil {
		return err
	}
	defer closeLog()

	opts := []game.Option{
		game.WithLogger(logger),
		game.WithSink(logging.NewEventLogger(logger)),
	}
	if settings.Seed != 0 {
		opts = append(opts, game.WithSeed(settings.Seed))
	}
	pointer := &game.Pointer{}
	arena, err := game.NewMatch(settings.Game, pointer, opts...)
	if err != nil {
		return err
	}
	if settings.Autopilot > 0 {
		if p, ok := arena.Player(); ok {
			p.SetPolicy(game.NewHunterPolicy(settings.Autopilot))
		}
	}

	if settings.Sound && !mute {
		sound := audio.NewPlayer(arena.PlayerID(), logger)
		if err := sound.Init(); err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, playing silent")
		} else {
			defer sound.Close()
			arena.AddSink(sound)
		}
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	frame := time.Second / time.Duration(settings.FrameRate)
	app := terminal.NewApp(screen, game.NewDriver(arena), pointer, frame, logger)
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("terminal stopped")
		return err
	}
	return nil
}
