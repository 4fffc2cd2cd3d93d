package pilot

import "math"

// Snapshot contains the complete game state for determinism testing.
// Entities are flattened into primitive slices.
type Snapshot struct {
	Tick  uint64
	Phase int

	Lives        int
	Score        int
	TargetsHit   int
	NextLifeGain int
	NextAsteroid int

	Invincibility float64
	Cooldown      float64
	SinceLastHit  float64

	// Ship: X, Y, Heading, VX, VY, Spin
	ShipData []float64

	// Each asteroid is 8 values: X, Y, Heading, VX, VY, Spin, Diameter, Variant
	AsteroidCount int
	AsteroidData  []float64

	// Each projectile is 6 values: X, Y, Heading, VX, VY, Spin
	ProjectileCount int
	ProjectileData  []float64

	// Each star is 4 ints: X, Y, Size, Variant
	StarCount int
	StarData  []int
}

func physicsData(p PhysicsObject) []float64 {
	return []float64{p.Pos.X, p.Pos.Y, p.Heading, p.Vel.X, p.Vel.Y, p.Spin}
}

// Snapshot returns the current game state as a Snapshot.
func (g *GameState) Snapshot() Snapshot {
	asteroidData := make([]float64, 0, len(g.asteroids)*8)
	for _, a := range g.asteroids {
		asteroidData = append(asteroidData, physicsData(a.PhysicsObject)...)
		asteroidData = append(asteroidData, a.Diameter, float64(a.Variant))
	}

	projectileData := make([]float64, 0, len(g.projectiles)*6)
	for _, p := range g.projectiles {
		projectileData = append(projectileData, physicsData(p.PhysicsObject)...)
	}

	starData := make([]int, 0, len(g.stars)*4)
	for _, s := range g.stars {
		starData = append(starData, s.X, s.Y, s.Size, s.Variant)
	}

	return Snapshot{
		Lives:        g.numLives,
		Score:        g.score,
		TargetsHit:   g.targetsHit,
		NextLifeGain: g.nextLifeGain,
		NextAsteroid: g.nextAsteroid,

		Invincibility: g.invincibilityTimer,
		Cooldown:      g.cooldownTimer,
		SinceLastHit:  g.timeSinceLastHit,

		ShipData: physicsData(g.ship.PhysicsObject),

		AsteroidCount:   len(g.asteroids),
		AsteroidData:    asteroidData,
		ProjectileCount: len(g.projectiles),
		ProjectileData:  projectileData,
		StarCount:       len(g.stars),
		StarData:        starData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TargetsHit)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextLifeGain) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextAsteroid) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Invincibility)
	h = h*31 + math.Float64bits(snap.Cooldown)
	h = h*31 + math.Float64bits(snap.SinceLastHit)
	h = h*31 + uint64(snap.AsteroidCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StarCount)       //#nosec G115 -- hash computation

	for _, v := range snap.ShipData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.AsteroidData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.StarData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
