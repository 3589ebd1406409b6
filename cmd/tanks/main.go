package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Garsondee/Tank-Arena/internal/config"
	"github.com/Garsondee/Tank-Arena/internal/display"
	"github.com/Garsondee/Tank-Arena/internal/game"
	"github.com/Garsondee/Tank-Arena/internal/logging"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "tanks:", err)
		os.Exit(1)
	}
}

// setup loads the settings, applies flag overrides and builds the match.
// The returned close function releases the log file.
func setup(args []string) (*display.Game, func() error, error) {
	fs := flag.NewFlagSet("tanks", flag.ContinueOnError)
	var cfgPath string
	var seed int64
	var logLevel string
	var autopilot float64

	fs.StringVar(&cfgPath, "config", "", "config file (json, yaml or toml)")
	fs.Int64Var(&seed, "seed", 0, "match RNG seed (0 uses the config, then the clock)")
	fs.StringVar(&logLevel, "log-level", "", "log level override")
	fs.Float64Var(&autopilot, "autopilot", 0, "let the hunter autopilot drive, holding at this distance")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	settings, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if seed != 0 {
		settings.Seed = seed
	}
	if logLevel != "" {
		settings.LogLevel = logLevel
	}
	if autopilot > 0 {
		settings.Autopilot = autopilot
	}

	logger, closeLog, err := logging.Setup(logging.Options{
		Level:   settings.LogLevel,
		Console: os.Stderr,
		File:    settings.LogFile,
	})
	if err != nil {
		return nil, nil, err
	}

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
		closeLog()
		return nil, nil, err
	}
	if settings.Autopilot > 0 {
		if p, ok := arena.Player(); ok {
			p.SetPolicy(game.NewHunterPolicy(settings.Autopilot))
		}
	}

	g := display.New(game.NewDriver(arena), pointer, display.Options{
		Autopilot: settings.Autopilot > 0,
		Log:       logger,
	})
	return g, closeLog, nil
}

func run(args []string) error {
	g, closeLog, err := setup(args)
	if err != nil {
		return err
	}
	defer closeLog()

	ebiten.SetWindowTitle("Tank Arena")
	ebiten.SetWindowSize(g.WindowSize())
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
