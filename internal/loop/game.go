// Package loop owns the game state and drives it one frame at a time.
package loop

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fcarvajalbrown/Cacaroids/internal/input"
	"github.com/fcarvajalbrown/Cacaroids/internal/loop/config"
	"github.com/fcarvajalbrown/Cacaroids/internal/object"
)

// Settings are the per-game knobs that bootstrap configuration may override.
type Settings struct {
	Arena            object.Screen // Initial arena, used until the first Update
	StartX, StartY   float64       // Player reference point
	InitialAsteroids int
	SafeRadius       float64
}

// DefaultSettings returns the stock 1280x720 game.
func DefaultSettings() Settings {
	return Settings{
		Arena:            object.Screen{Width: config.ArenaWidth, Height: config.ArenaHeight},
		StartX:           config.PlayerStartX,
		StartY:           config.PlayerStartY,
		InitialAsteroids: config.InitialAsteroids,
		SafeRadius:       config.SafeRadius,
	}
}

// Game owns every entity, the score and the state machine.
type Game struct {
	settings Settings
	rng      object.Rand
	logger   *log.Logger

	view      object.Screen
	player    *object.Player
	bullets   []*object.Bullet
	asteroids []*object.Asteroid
	staged    []*object.Asteroid // Children spawned during the bullet pass
	score     int
	state     GameState
}

// New creates a game in the Playing state with the opening wave placed.
// A nil logger discards output.
func New(settings Settings, rng object.Rand, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		settings: settings,
		rng:      rng,
		logger:   logger,
		view:     settings.Arena,
		player:   object.NewPlayer(settings.StartX, settings.StartY),
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// State returns the current game phase.
func (g *Game) State() GameState { return g.state }

// Score returns the running score.
func (g *Game) Score() int { return g.score }

// Player returns the ship.
func (g *Game) Player() *object.Player { return g.player }

// Bullets returns the live bullet collection. Callers must not modify it.
func (g *Game) Bullets() []*object.Bullet { return g.bullets }

// Asteroids returns the live asteroid collection. Callers must not modify it.
func (g *Game) Asteroids() []*object.Asteroid { return g.asteroids }

// Restart clears bullets and score, places a fresh wave and puts the ship
// back at the reference point.
func (g *Game) Restart() error {
	if err := g.reset(); err != nil {
		return err
	}
	g.logger.Debug("game restarted", "asteroids", len(g.asteroids))
	return nil
}

func (g *Game) reset() error {
	// the wave clears the point the ship actually respawns on
	x, y := g.settings.StartX, g.settings.StartY
	g.view.WrapPosition(&x, &y)

	asteroids, err := object.PlaceAsteroids(
		g.settings.InitialAsteroids,
		x, y,
		g.settings.SafeRadius,
		g.view, g.rng,
	)
	if err != nil {
		return fmt.Errorf("place initial wave: %w", err)
	}

	clear(g.bullets)
	g.bullets = g.bullets[:0]
	g.asteroids = asteroids
	g.score = 0

	g.player.Reset(x, y)

	g.state = GameStatePlaying
	return nil
}

// Update advances the game by dt. view is the arena size for this frame;
// an empty view keeps the previous one.
func (g *Game) Update(dt time.Duration, in input.Input, view object.Screen) error {
	if view.Width > 0 && view.Height > 0 {
		g.view = view
	}

	if g.state != GameStatePlaying {
		if in.Restart {
			return g.Restart()
		}
		return nil
	}

	ctx := object.UpdateContext{
		Delta:  dt,
		Input:  in,
		Screen: g.view,
	}

	if mx, my, fired := g.player.Update(ctx); fired {
		dx, dy := g.player.Facing()
		g.bullets = append(g.bullets, object.NewBullet(mx, my, dx, dy))
	}

	for _, b := range g.bullets {
		b.Update(ctx)
	}
	for _, a := range g.asteroids {
		a.Update(ctx)
	}

	g.resolveBulletHits()

	if g.resolvePlayerHit() {
		g.state = GameStateGameOver
		g.logger.Debug("ship destroyed", "score", g.score)
		return nil
	}

	g.bullets = object.Prune(g.bullets)
	g.asteroids = object.Prune(g.asteroids)

	if len(g.asteroids) == 0 {
		g.state = GameStateVictory
		g.logger.Debug("arena cleared", "score", g.score)
	}
	return nil
}
