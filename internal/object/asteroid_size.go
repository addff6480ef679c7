package object

import "github.com/fcarvajalbrown/Cacaroids/internal/draw"

// AsteroidSize represents the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidBig AsteroidSize = iota
	AsteroidMedium
	AsteroidSmall
)

// asteroidTier holds the constants shared by every asteroid of one size.
// Collision radius and draw size are tuned separately.
type asteroidTier struct {
	name     string
	radius   float64
	drawSize float64
	speed    float64
	score    int
	child    AsteroidSize
	splits   bool
	sprite   draw.SpriteKind
}

var asteroidTiers = [...]asteroidTier{
	AsteroidBig: {
		name: "big", radius: 56, drawSize: 128, speed: 60, score: 20,
		child: AsteroidMedium, splits: true, sprite: draw.SpriteAsteroidBig,
	},
	AsteroidMedium: {
		name: "medium", radius: 32, drawSize: 64, speed: 100, score: 50,
		child: AsteroidSmall, splits: true, sprite: draw.SpriteAsteroidMedium,
	},
	AsteroidSmall: {
		name: "small", radius: 16, drawSize: 32, speed: 160, score: 100,
		sprite: draw.SpriteAsteroidSmall,
	},
}

func (s AsteroidSize) tier() asteroidTier {
	if s < 0 || int(s) >= len(asteroidTiers) {
		return asteroidTier{name: "unknown"}
	}
	return asteroidTiers[s]
}

// Radius returns the collision radius.
func (s AsteroidSize) Radius() float64 { return s.tier().radius }

// DrawSize returns the edge of the square the sprite is stretched to.
func (s AsteroidSize) DrawSize() float64 { return s.tier().drawSize }

// Speed returns the drift speed magnitude.
func (s AsteroidSize) Speed() float64 { return s.tier().speed }

// Score returns the points awarded for destroying an asteroid of this size.
func (s AsteroidSize) Score() int { return s.tier().score }

// Child returns the size the asteroid splits into. ok is false for the
// smallest size, which does not split.
func (s AsteroidSize) Child() (child AsteroidSize, ok bool) {
	t := s.tier()
	return t.child, t.splits
}

// Sprite returns the image used for this size.
func (s AsteroidSize) Sprite() draw.SpriteKind { return s.tier().sprite }

func (s AsteroidSize) String() string { return s.tier().name }
