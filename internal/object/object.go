// Package object holds the entities of the arena and the rules they follow
// on their own: movement, wrapping, firing, splitting and spawn placement.
package object

import (
	"time"

	"github.com/fcarvajalbrown/Cacaroids/internal/draw"
	"github.com/fcarvajalbrown/Cacaroids/internal/input"
	"github.com/fcarvajalbrown/Cacaroids/internal/physics"
)

// Rand is the random source entities draw from when they are created.
// *rand.Rand satisfies it; tests seed one for determinism.
type Rand interface {
	Float64() float64
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta  time.Duration
	Input  Input
	Screen Screen
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Sink draw.Sink
}

// Screen is the live size of the toroidal arena in logical units.
type Screen struct {
	Width  float64
	Height float64
}

// Center returns the middle of the arena.
func (s Screen) Center() (float64, float64) {
	return s.Width / 2, s.Height / 2
}

// WrapPosition wraps x and y coordinates around screen boundaries (Asteroids-style).
func (s Screen) WrapPosition(x, y *float64) {
	*x = physics.Wrap(*x, s.Width)
	*y = physics.Wrap(*y, s.Height)
}

// Move integrates a position over dt and wraps it onto the arena.
func (s Screen) Move(x, y *float64, vx, vy float64, dt time.Duration) {
	physics.Integrate(x, y, vx, vy, dt.Seconds(), s.Width, s.Height)
}

// Contains reports whether (x, y) lies in [0, Width) x [0, Height).
func (s Screen) Contains(x, y float64) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// Collider is anything with a collision circle.
type Collider interface {
	GetPosition() (float64, float64)
	GetRadius() float64
}

// Collides applies the overlap predicate to two colliders.
func Collides(a, b Collider) bool {
	ax, ay := a.GetPosition()
	bx, by := b.GetPosition()
	return physics.CirclesOverlap(ax, ay, a.GetRadius(), bx, by, b.GetRadius())
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the end of the frame.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Prune removes destroyed objects in place, keeping the order of the rest.
func Prune[T Destructible](objects []T) []T {
	kept := objects[:0] // reuse backing array
	for _, obj := range objects {
		if !obj.IsDestroyed() {
			kept = append(kept, obj)
		}
	}
	clear(objects[len(kept):])
	return kept
}
