package object

import (
	"math"

	"github.com/fcarvajalbrown/Cacaroids/internal/draw"
)

// AsteroidMaxRotationSpeed bounds the spin of a new asteroid to
// [-AsteroidMaxRotationSpeed, AsteroidMaxRotationSpeed) radians per second.
const AsteroidMaxRotationSpeed = 2.0

// asteroidChildren is how many pieces a destroyed asteroid breaks into.
const asteroidChildren = 2

// Asteroid is a destructible space rock.
type Asteroid struct {
	X, Y          float64      // Position (center)
	VX, VY        float64      // Velocity
	Rotation      float64      // Current rotation angle
	RotationSpeed float64      // Rotation speed (radians/sec)
	Size          AsteroidSize // Size category
	Destroyed     bool         // Mark for removal and splitting
}

// NewAsteroid creates an asteroid at position (x,y) with the given size,
// a random heading, a random rotation and a random spin.
func NewAsteroid(x, y float64, size AsteroidSize, rng Rand) *Asteroid {
	heading := rng.Float64() * 2 * math.Pi
	rotSpeed := (rng.Float64()*2 - 1) * AsteroidMaxRotationSpeed
	speed := size.Speed()

	return &Asteroid{
		X:             x,
		Y:             y,
		VX:            math.Cos(heading) * speed,
		VY:            math.Sin(heading) * speed,
		Rotation:      rng.Float64() * 2 * math.Pi,
		RotationSpeed: rotSpeed,
		Size:          size,
	}
}

// Update spins and moves the asteroid.
func (a *Asteroid) Update(ctx UpdateContext) {
	a.Rotation += a.RotationSpeed * ctx.Delta.Seconds()
	ctx.Screen.Move(&a.X, &a.Y, a.VX, a.VY, ctx.Delta)
}

// Split returns the pieces the asteroid breaks into when shot: two fresh
// asteroids of the next size at its position, or none for the smallest size.
func (a *Asteroid) Split(rng Rand) []*Asteroid {
	child, ok := a.Size.Child()
	if !ok {
		return nil
	}
	children := make([]*Asteroid, 0, asteroidChildren)
	for i := 0; i < asteroidChildren; i++ {
		children = append(children, NewAsteroid(a.X, a.Y, child, rng))
	}
	return children
}

// Draw renders the asteroid.
func (a *Asteroid) Draw(ctx DrawContext) {
	ctx.Sink.Sprite(draw.Sprite{
		Kind:     a.Size.Sprite(),
		X:        a.X,
		Y:        a.Y,
		Rotation: a.Rotation,
		Size:     a.Size.DrawSize(),
	})
}

// MarkDestroyed marks the asteroid for removal (implements Destructible).
func (a *Asteroid) MarkDestroyed() {
	a.Destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction (implements Destructible).
func (a *Asteroid) IsDestroyed() bool {
	return a.Destroyed
}

// GetPosition returns the asteroid's center position.
func (a *Asteroid) GetPosition() (float64, float64) {
	return a.X, a.Y
}

// GetRadius returns the asteroid's collision radius.
func (a *Asteroid) GetRadius() float64 {
	return a.Size.Radius()
}
