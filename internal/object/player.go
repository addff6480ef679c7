package object

import (
	"github.com/fcarvajalbrown/Cacaroids/internal/draw"
	"github.com/fcarvajalbrown/Cacaroids/internal/physics"
)

// Ship tuning.
const (
	PlayerTurnRate     = 3.0   // Radians per second
	PlayerThrust       = 400.0 // Acceleration units per second²
	PlayerDrag         = 0.02  // Fraction of speed lost per reference frame
	PlayerMaxSpeed     = 400.0 // Max speed cap
	PlayerReloadTime   = 0.25  // Seconds between shots
	PlayerMuzzleOffset = 32.0  // Bullets spawn this far ahead of the ship
	PlayerRadius       = 24.0
	PlayerDrawSize     = 64.0

	dragReferenceFPS = 60.0
)

// Player is the player-controlled spaceship. It is created once and reset in
// place when a new game starts.
type Player struct {
	X, Y     float64 // Position (center of ship)
	VX, VY   float64 // Velocity (momentum)
	Rotation float64 // Radians, 0 = pointing up, increases clockwise
	Alive    bool

	fireCooldown float64 // Time until next shot allowed
}

// NewPlayer creates a new spaceship at the given position.
func NewPlayer(x, y float64) *Player {
	p := &Player{}
	p.Reset(x, y)
	return p
}

// Reset puts the ship back at (x,y), at rest, pointing up and alive.
func (p *Player) Reset(x, y float64) {
	p.X, p.Y = x, y
	p.VX, p.VY = 0, 0
	p.Rotation = 0
	p.Alive = true
}

// Facing returns the unit vector the nose points along.
func (p *Player) Facing() (float64, float64) {
	return physics.Heading(p.Rotation)
}

// Cooldown returns the seconds left before the next shot is allowed.
func (p *Player) Cooldown() float64 {
	return p.fireCooldown
}

// Update handles rotation, thrust, momentum physics, and shooting.
// When the player fires, it returns the muzzle position the bullet spawns at.
func (p *Player) Update(ctx UpdateContext) (muzzleX, muzzleY float64, fired bool) {
	dt := ctx.Delta.Seconds()

	if ctx.Input.TurnLeft {
		p.Rotation -= PlayerTurnRate * dt
	}
	if ctx.Input.TurnRight {
		p.Rotation += PlayerTurnRate * dt
	}

	if ctx.Input.Thrust {
		dx, dy := p.Facing()
		p.VX += dx * PlayerThrust * dt
		p.VY += dy * PlayerThrust * dt
	}

	// Drag, normalized to the reference frame rate
	dragFactor := max(0, 1-min(PlayerDrag, 1)*dt*dragReferenceFPS)
	p.VX *= dragFactor
	p.VY *= dragFactor

	physics.ClampLength(&p.VX, &p.VY, PlayerMaxSpeed)

	ctx.Screen.Move(&p.X, &p.Y, p.VX, p.VY, ctx.Delta)

	// Shooting
	p.fireCooldown -= dt
	if ctx.Input.Fire && p.fireCooldown <= 0 {
		p.fireCooldown = PlayerReloadTime
		dx, dy := p.Facing()
		return p.X + dx*PlayerMuzzleOffset, p.Y + dy*PlayerMuzzleOffset, true
	}

	return 0, 0, false
}

// Draw renders the spaceship.
func (p *Player) Draw(ctx DrawContext) {
	ctx.Sink.Sprite(draw.Sprite{
		Kind:     draw.SpriteShip,
		X:        p.X,
		Y:        p.Y,
		Rotation: p.Rotation,
		Size:     PlayerDrawSize,
	})
}

// MarkDestroyed kills the ship.
func (p *Player) MarkDestroyed() {
	p.Alive = false
}

// IsDestroyed reports whether the ship is dead.
func (p *Player) IsDestroyed() bool {
	return !p.Alive
}

// GetPosition returns the ship's center position.
func (p *Player) GetPosition() (float64, float64) {
	return p.X, p.Y
}

// GetRadius returns the ship's collision radius.
func (p *Player) GetRadius() float64 {
	return PlayerRadius
}
