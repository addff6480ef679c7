package object

import (
	"github.com/fcarvajalbrown/Cacaroids/internal/draw"
)

// Bullet tuning.
const (
	BulletSpeed    = 600.0 // Muzzle speed
	BulletLifetime = 1.5   // Seconds before the bullet fizzles
	BulletRadius   = 4.0
	BulletDrawSize = 8.0
)

// Bullet is a shot fired by the player. It wraps around the arena and dies
// only when it hits an asteroid or its lifetime runs out.
type Bullet struct {
	X, Y      float64 // Position
	VX, VY    float64 // Velocity
	Lifetime  float64 // Seconds remaining before removal
	destroyed bool
}

// NewBullet creates a bullet at (x,y) travelling along the unit direction (dx,dy).
func NewBullet(x, y, dx, dy float64) *Bullet {
	return &Bullet{
		X:        x,
		Y:        y,
		VX:       dx * BulletSpeed,
		VY:       dy * BulletSpeed,
		Lifetime: BulletLifetime,
	}
}

// Update burns lifetime and moves the bullet. An expired bullet does not move.
func (b *Bullet) Update(ctx UpdateContext) {
	b.Lifetime -= ctx.Delta.Seconds()
	if b.Lifetime <= 0 {
		b.destroyed = true
		return
	}
	ctx.Screen.Move(&b.X, &b.Y, b.VX, b.VY, ctx.Delta)
}

// Draw renders the bullet.
func (b *Bullet) Draw(ctx DrawContext) {
	ctx.Sink.Sprite(draw.Sprite{
		Kind: draw.SpriteBullet,
		X:    b.X,
		Y:    b.Y,
		Size: BulletDrawSize,
	})
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}

// GetPosition returns the bullet's position.
func (b *Bullet) GetPosition() (float64, float64) {
	return b.X, b.Y
}

// GetRadius returns the bullet's collision radius.
func (b *Bullet) GetRadius() float64 {
	return BulletRadius
}
