package draw

import "math"

// asteroidJag is the radius profile of an asteroid outline, as a fraction of
// its half size. The rock image is stretched to Sprite.Size like a texture.
var asteroidJag = [...]float64{1.0, 0.82, 0.95, 0.74, 0.9, 1.0, 0.8, 0.93, 0.77, 0.88}

// Ship wing angle from the nose and wing length as a fraction of the nose.
const (
	shipWingAngle = 2.5 // ~143 degrees
	shipWingScale = 0.7
)

// DrawSprite rasterises a sprite onto the canvas.
func (c *Canvas) DrawSprite(s Sprite) {
	switch s.Kind {
	case SpriteShip:
		c.DrawPolygon(c.shipOutline(s), true)
	case SpriteBullet:
		c.drawBullet(s)
	case SpriteAsteroidBig, SpriteAsteroidMedium, SpriteAsteroidSmall:
		c.DrawPolygon(c.asteroidOutline(s), false)
	}
}

// shipOutline returns the ship triangle with the nose along the facing direction.
func (c *Canvas) shipOutline(s Sprite) []Point {
	half := s.Size / 2
	nose := s.Rotation - math.Pi/2

	points := c.BorrowPoints(3)
	points[0] = Point{X: s.X + math.Cos(nose)*half, Y: s.Y + math.Sin(nose)*half}
	points[1] = Point{
		X: s.X + math.Cos(nose+shipWingAngle)*half*shipWingScale,
		Y: s.Y + math.Sin(nose+shipWingAngle)*half*shipWingScale,
	}
	points[2] = Point{
		X: s.X + math.Cos(nose-shipWingAngle)*half*shipWingScale,
		Y: s.Y + math.Sin(nose-shipWingAngle)*half*shipWingScale,
	}
	return points
}

// asteroidOutline returns the rotated irregular polygon for a rock.
func (c *Canvas) asteroidOutline(s Sprite) []Point {
	half := s.Size / 2
	n := len(asteroidJag)

	points := c.BorrowPoints(n)
	for i, jag := range asteroidJag {
		angle := s.Rotation + float64(i)*2*math.Pi/float64(n)
		points[i] = Point{
			X: s.X + math.Cos(angle)*half*jag,
			Y: s.Y + math.Sin(angle)*half*jag,
		}
	}
	return points
}

// drawBullet plots the bullet as a filled square of its draw size, at least
// one sub-pixel, sampling every half pixel.
func (c *Canvas) drawBullet(s Sprite) {
	half := s.Size / 2
	step := 0.5 / math.Max(c.scaleX, c.scaleY)
	for y := s.Y - half; y < s.Y+half; y += step {
		for x := s.X - half; x < s.X+half; x += step {
			c.SetFloat(x, y)
		}
	}
	c.SetFloat(s.X, s.Y)
}
