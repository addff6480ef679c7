package object

import (
	"errors"
	"fmt"

	"github.com/fcarvajalbrown/Cacaroids/internal/physics"
)

// MaxSpawnAttempts bounds the rejection sampling for one asteroid so a
// clearance that cannot be met fails instead of stalling the frame.
const MaxSpawnAttempts = 10_000

var (
	// ErrSpawnExhausted is returned when no sampled position cleared the
	// avoid point within MaxSpawnAttempts draws.
	ErrSpawnExhausted = errors.New("spawn: no position clear of the avoid point")
	// ErrEmptyArena is returned when the arena has no area to spawn into.
	ErrEmptyArena = errors.New("spawn: arena has no area")
)

// PlaceAsteroids creates count big asteroids at uniformly random positions
// in screen whose distance from (avoidX, avoidY) exceeds clearance.
func PlaceAsteroids(count int, avoidX, avoidY, clearance float64, screen Screen, rng Rand) ([]*Asteroid, error) {
	if screen.Width <= 0 || screen.Height <= 0 {
		return nil, ErrEmptyArena
	}

	asteroids := make([]*Asteroid, 0, count)
	for i := 0; i < count; i++ {
		x, y, err := sampleClear(avoidX, avoidY, clearance, screen, rng)
		if err != nil {
			return nil, fmt.Errorf("asteroid %d of %d: %w", i+1, count, err)
		}
		asteroids = append(asteroids, NewAsteroid(x, y, AsteroidBig, rng))
	}
	return asteroids, nil
}

// sampleClear draws random positions until one lies farther than clearance
// from the avoid point.
func sampleClear(avoidX, avoidY, clearance float64, screen Screen, rng Rand) (float64, float64, error) {
	for attempt := 0; attempt < MaxSpawnAttempts; attempt++ {
		x := rng.Float64() * screen.Width
		y := rng.Float64() * screen.Height
		if physics.Distance(x, y, avoidX, avoidY) > clearance {
			return x, y, nil
		}
	}
	return 0, 0, ErrSpawnExhausted
}
