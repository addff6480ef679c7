package loop

import "github.com/fcarvajalbrown/Cacaroids/internal/object"

// resolveBulletHits tests every live bullet against every live asteroid.
// Each bullet destroys at most one asteroid and each asteroid credits at most
// one bullet. Children are staged and merged after the scan.
func (g *Game) resolveBulletHits() {
	staged := g.staged[:0]

	for _, b := range g.bullets {
		if b.IsDestroyed() {
			continue
		}
		for _, a := range g.asteroids {
			if a.IsDestroyed() || !object.Collides(b, a) {
				continue
			}
			b.MarkDestroyed()
			a.MarkDestroyed()
			g.score += a.Size.Score()
			staged = append(staged, a.Split(g.rng)...)
			break
		}
	}

	g.asteroids = append(g.asteroids, staged...)
	clear(staged)
	g.staged = staged[:0]
}

// resolvePlayerHit kills the ship if it overlaps any live asteroid and
// reports whether it did.
func (g *Game) resolvePlayerHit() bool {
	if g.player.IsDestroyed() {
		return false
	}
	for _, a := range g.asteroids {
		if a.IsDestroyed() {
			continue
		}
		if object.Collides(g.player, a) {
			g.player.MarkDestroyed()
			return true
		}
	}
	return false
}
