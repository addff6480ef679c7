package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	wishlogging "github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fcarvajalbrown/Cacaroids/internal/config"
	"github.com/fcarvajalbrown/Cacaroids/internal/logging"
	"github.com/fcarvajalbrown/Cacaroids/internal/loop"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Log, os.Stderr, "ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("Failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config", "host", cfg.SSH.Host, "port", cfg.SSH.Port, "hostKeyPath", cfg.SSH.HostKey, "workingDir", workingDir)

	if err := serve(cfg, logger); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

func serve(cfg config.Config, logger *log.Logger) error {
	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSH.Host, cfg.SSH.Port)),
		wish.WithMiddleware(
			gameMiddleware(cfg, logger),
			activeterm.Middleware(),
			wishlogging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if cfg.SSH.HostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSH.HostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting SSH server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// gameMiddleware runs an independent game for every SSH session.
func gameMiddleware(cfg config.Config, logger *log.Logger) wish.Middleware {
	maxCols, maxRows := cfg.Window.RenderLimit()

	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			id := uuid.New()
			sessLogger := logger.With("session", id.String(), "user", sess.User())
			sessLogger.Info("New game session", "terminal", pty.Term,
				"size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			// Each session gets its own random stream even with a fixed seed.
			rng := cfg.Game.NewRand(xxhash.Sum64String(id.String()))
			game, err := loop.New(cfg.SettingsFor(pty.Window.Width, pty.Window.Height), rng, sessLogger)
			if err != nil {
				sessLogger.Error("Cannot start game", "err", err)
				fmt.Fprintf(sess, "Cannot start a game on this terminal: %v\n", err)
				return
			}

			fe := loop.NewANSIFrontend(bufio.NewReader(sess), sess, loop.ANSIOptions{
				Title:        cfg.Window.Title,
				TermSizeFunc: sizeTracker.getSize,
				MaxCols:      maxCols,
				MaxRows:      maxRows,
				Renderer:     sessionRenderer(sess, pty.Term),
			})

			start := time.Now()
			if err := loop.Run(sess.Context(), game, fe, loop.Options{}); err != nil {
				sessLogger.Error("Game error", "err", err)
			}

			sessLogger.Info("Session ended", "score", game.Score(), "state", game.State(),
				"duration", time.Since(start).Round(time.Second))
			next(sess)
		}
	}
}
