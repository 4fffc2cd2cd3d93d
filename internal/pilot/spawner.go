package pilot

import (
	"math/rand"

	"github.com/vovakirdan/pixel-pilot/internal/core"
)

// Spawner generates asteroids and star fields from a seeded RNG.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// SpawnAsteroid creates an asteroid that travels from a random point just
// outside one edge of the arena to a random point just outside the opposite
// edge. hits is the lifetime hit counter; every hit makes new asteroids
// slightly faster.
func (s *Spawner) SpawnAsteroid(hits int) Asteroid {
	size := s.rng.Intn(AsteroidSizeRange) + AsteroidSizeMin
	d := float64(size)
	heading := float64(s.rng.Intn(360))
	spin := s.rng.Float64()*AsteroidAngularVelRange - AsteroidAngularVelMin

	var pos, target core.Vec
	if s.rng.Intn(2) == 0 {
		// Top or bottom edge
		pos.X = float64(s.rng.Intn(ArenaWidth+size) - size)
		target.X = float64(s.rng.Intn(ArenaWidth+size) - size)
		if s.rng.Intn(2) == 0 {
			pos.Y, target.Y = -d, ArenaHeight
		} else {
			pos.Y, target.Y = ArenaHeight, -d
		}
	} else {
		// Left or right edge
		pos.Y = float64(s.rng.Intn(ArenaHeight+size) - size)
		target.Y = float64(s.rng.Intn(ArenaHeight+size) - size)
		if s.rng.Intn(2) == 0 {
			pos.X, target.X = -d, ArenaWidth
		} else {
			pos.X, target.X = ArenaWidth, -d
		}
	}

	speed := s.rng.Float64()*AsteroidVelRange + AsteroidVelMin + float64(hits)*AsteroidVelHitsMult

	// Spawn and target are on opposite edges so the direction is never the zero
	// vector; Vec.Angle still resolves that case to 0.
	theta := target.Sub(pos).Angle()

	return Asteroid{
		PhysicsObject: PhysicsObject{
			Pos:     pos,
			Heading: heading,
			Vel:     core.FromAngle(theta, speed),
			Spin:    spin,
		},
		Diameter: d,
		Variant:  s.rng.Intn(AsteroidVariants),
	}
}

// Stars generates a new randomized star field.
func (s *Spawner) Stars() []Star {
	n := s.rng.Intn(StarNumRange) + StarNumMin
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:       s.rng.Intn(ArenaWidth),
			Y:       s.rng.Intn(ArenaHeight),
			Variant: s.rng.Intn(StarVariants),
			Size:    s.rng.Intn(StarSizeRange) + StarSizeMin,
		}
	}
	return stars
}
