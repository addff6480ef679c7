package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/fcarvajalbrown/Cacaroids/internal/draw"
	"github.com/fcarvajalbrown/Cacaroids/internal/input"
	"github.com/fcarvajalbrown/Cacaroids/internal/loop/config"
	"github.com/fcarvajalbrown/Cacaroids/internal/object"
)

// Frontend is the terminal a game is played on: it supplies input and a
// sink for each frame.
type Frontend interface {
	// Open prepares the terminal for drawing.
	Open() error
	// Poll returns the input gathered since the previous frame.
	Poll(now time.Time) input.Input
	// Begin starts a frame and returns the sink to draw it into.
	Begin() (draw.Sink, error)
	// End presents the frame.
	End() error
	// Close restores the terminal.
	Close() error
}

// Clock is the time source of the frame loop.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time                         { return time.Now() }
func (wallClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Options configures Run. Zero values use the defaults.
type Options struct {
	Clock     Clock
	FrameTime time.Duration // Target frame duration
	MaxDelta  time.Duration // Cap on a single simulation step
}

// Run drives game on fe with the Input → Update → Draw cycle until the player
// quits or ctx is cancelled.
func Run(ctx context.Context, game *Game, fe Frontend, opts Options) (err error) {
	clock := opts.Clock
	if clock == nil {
		clock = wallClock{}
	}
	frameTime := opts.FrameTime
	if frameTime <= 0 {
		frameTime = config.ClientTargetFrameTime
	}
	maxDelta := opts.MaxDelta
	if maxDelta <= 0 {
		maxDelta = config.MaxFrameDelta
	}

	if err := fe.Open(); err != nil {
		return fmt.Errorf("open frontend: %w", err)
	}
	defer func() {
		if cerr := fe.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close frontend: %w", cerr)
		}
	}()

	lastTime := clock.Now()

	for {
		if ctx.Err() != nil {
			return nil
		}

		frameStart := clock.Now()
		delta := min(frameStart.Sub(lastTime), maxDelta)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := fe.Poll(frameStart)
		if in.Quit {
			return nil
		}

		// ===== UPDATE PHASE =====
		sink, err := fe.Begin()
		if err != nil {
			return fmt.Errorf("begin frame: %w", err)
		}
		w, h := sink.Viewport()
		if err := game.Update(delta, in, object.Screen{Width: w, Height: h}); err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		game.Draw(sink)
		if err := fe.End(); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := clock.Now().Sub(frameStart)
		if elapsed < frameTime {
			select {
			case <-ctx.Done():
				return nil
			case <-clock.After(frameTime - elapsed):
			}
		}
	}
}
