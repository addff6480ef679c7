// Package physics provides collision detection, distance utilities and the
// kinematic step shared by every moving entity.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// CirclesOverlap checks if two circles overlap.
// Circles that exactly touch do not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}

// Wrap maps v onto the half-open range [0, limit).
// A non-positive limit leaves v untouched.
func Wrap(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	v = math.Mod(v, limit)
	if v < 0 {
		v += limit
	}
	// -tiny + limit rounds up to limit
	if v >= limit {
		v = 0
	}
	return v
}

// Integrate advances a position by velocity*dt and wraps each axis
// independently onto a width x height torus.
func Integrate(x, y *float64, vx, vy, dt, width, height float64) {
	*x = Wrap(*x+vx*dt, width)
	*y = Wrap(*y+vy*dt, height)
}

// Heading returns the unit vector for a sprite rotation where rotation 0
// points up the screen.
func Heading(rotation float64) (float64, float64) {
	angle := rotation - math.Pi/2
	return math.Cos(angle), math.Sin(angle)
}

// ClampLength scales (x, y) down to max length, preserving direction.
func ClampLength(x, y *float64, max float64) {
	length := math.Sqrt(*x**x + *y**y)
	if length > max && length > 0 {
		scale := max / length
		*x *= scale
		*y *= scale
	}
}
