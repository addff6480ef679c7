package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/fcarvajalbrown/Cacaroids/internal/config"
	"github.com/fcarvajalbrown/Cacaroids/internal/draw"
	"github.com/fcarvajalbrown/Cacaroids/internal/logging"
	"github.com/fcarvajalbrown/Cacaroids/internal/loop"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default $"+config.ConfigPathEnv+")")
	frontend := flag.String("frontend", "", "override game.frontend: tcell or ansi")
	flag.Parse()

	if err := run(*configPath, *frontend); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, frontendName string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if frontendName != "" {
		cfg.Game.Frontend = frontendName
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, closer, err := logging.Open(cfg.Log, "game")
	if err != nil {
		return err
	}
	defer closer.Close()

	cols, rows, err := draw.DefaultTermSizeFunc()
	if err != nil {
		logger.Warn("terminal size unknown, using configured window", "err", err)
	}
	game, err := loop.New(cfg.SettingsFor(cols, rows), cfg.Game.NewRand(0), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fe, restore, err := newFrontend(cfg)
	if err != nil {
		return err
	}
	defer restore()

	logger.Info("game started", "frontend", cfg.Game.Frontend, "seed", cfg.Game.Seed)
	err = loop.Run(ctx, game, fe, loop.Options{})
	logger.Info("game ended", "score", game.Score(), "state", game.State())
	return err
}

// newFrontend creates the configured frontend and returns a function that
// gives the terminal back.
func newFrontend(cfg config.Config) (loop.Frontend, func(), error) {
	maxCols, maxRows := cfg.Window.RenderLimit()

	if cfg.Game.Frontend == config.FrontendTcell {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, nil, fmt.Errorf("create screen: %w", err)
		}
		return loop.NewTcellFrontend(screen, cfg.Window.Title, maxCols, maxRows), func() {}, nil
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to enable raw mode: %w", err)
	}
	restore := func() {
		_ = term.Restore(fd, oldState)
	}

	reader := bufio.NewReader(os.Stdin)
	fe := loop.NewANSIFrontend(reader, os.Stdout, loop.ANSIOptions{
		Title:   cfg.Window.Title,
		MaxCols: maxCols,
		MaxRows: maxRows,
	})
	return fe, restore, nil
}
