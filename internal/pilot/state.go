package pilot

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-pilot/internal/core"
)

// GameState is the authoritative simulation state for one game.
// It is not safe for concurrent use; the session drives it from a single
// goroutine.
type GameState struct {
	// Entities
	ship        Ship
	asteroids   []Asteroid
	projectiles []Projectile
	stars       []Star

	// Economy
	numLives     int
	score        int
	targetsHit   int
	nextLifeGain int
	nextAsteroid int

	// Timers (seconds, expired when <= 0)
	invincibilityTimer float64
	cooldownTimer      float64
	timeSinceLastHit   float64

	thrusting bool

	spawner *Spawner
	logger  *log.Logger
}

// NewGameState creates a game drawing all randomness from rng and resets it.
// A nil logger discards output.
func NewGameState(rng *rand.Rand, logger *log.Logger) *GameState {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &GameState{
		spawner: NewSpawner(rng),
		logger:  logger,
	}
	g.Reset()
	return g
}

// Reset restores every value to its start-of-game state, spawns the first
// asteroid and generates a new star field.
func (g *GameState) Reset() {
	g.numLives = InitialLives
	g.nextLifeGain = InitialNextLife
	g.nextAsteroid = InitialNextAsteroid
	g.score = 0
	g.targetsHit = 0
	g.invincibilityTimer = 0
	g.cooldownTimer = 0
	g.timeSinceLastHit = 0
	g.thrusting = false

	g.projectiles = nil
	g.asteroids = []Asteroid{g.spawner.SpawnAsteroid(0)}
	g.ship = NewShip()
	g.stars = g.spawner.Stars()
}

// Update advances the simulation by dt seconds using the given input.
// It is a no-op once the game is over.
func (g *GameState) Update(dt float64, in core.InputSnapshot) {
	if g.GameOver() {
		return
	}
	dt = g.sanitizeDelta(dt)

	g.invincibilityTimer -= dt
	g.cooldownTimer -= dt
	g.timeSinceLastHit += dt

	g.steer(dt, in)
	g.ship.Update(dt)
	shipBox := g.ship.HitBox()

	if in.Fire && g.cooldownTimer <= 0 && !g.Invincible() {
		g.cooldownTimer = CooldownTime
		g.fire()
	}

	resetShip := g.ship.OutOfBounds()

	g.projectiles = UpdateProjectiles(g.projectiles, dt)

	// Index loop: a milestone asteroid appended below is integrated and
	// resolved in this same tick.
	for i := 0; i < len(g.asteroids); i++ {
		g.asteroids[i].Update(dt)

		hit, j := ResolveAsteroid(g.asteroids[i], shipBox, !g.Invincible(), g.projectiles)
		switch hit {
		case HitExited:
			g.asteroids[i] = g.spawner.SpawnAsteroid(g.targetsHit)
		case HitShip:
			g.asteroids[i] = g.spawner.SpawnAsteroid(g.targetsHit)
			resetShip = true
		case HitProjectile:
			g.asteroids[i] = g.spawner.SpawnAsteroid(g.targetsHit)
			g.projectiles = swapRemove(g.projectiles, j)
			g.registerHit()
		}
	}

	if resetShip {
		g.ship = NewShip()
		if !g.Invincible() {
			g.numLives--
			g.invincibilityTimer = InvincibilityTime
			g.logger.Debug("life lost", "lives", g.numLives, "score", g.score)
		}
	}
}

// steer applies the resolved directional intent to the ship.
func (g *GameState) steer(dt float64, in core.InputSnapshot) {
	s := in.Steering()
	r := core.Radians(g.ship.Heading + 90)
	cos, sin := math.Cos(r), math.Sin(r)

	accel := LinearAcceleration * dt
	if s.Forward != 0 {
		f := float64(s.Forward) * accel
		g.ship.Vel = g.ship.Vel.Add(core.Vec{X: -cos * f, Y: -sin * f})
	}
	if s.Strafe != 0 {
		f := float64(s.Strafe) * accel
		g.ship.Vel = g.ship.Vel.Add(core.Vec{X: sin * f, Y: -cos * f})
	}
	g.ship.Spin = float64(s.Turn) * RotationalVelocity
	g.thrusting = in.ThrustForward
}

// fire spawns a projectile from each of the ship's twin guns.
func (g *GameState) fire() {
	r := core.Radians(g.ship.Heading + 90)
	cos, sin := math.Cos(r), math.Sin(r)

	vel := core.Vec{X: -cos * MuzzleVelocity, Y: -sin * MuzzleVelocity}.Add(g.ship.Vel)
	base := g.ship.Pos.Add(core.Vec{
		X: (ShipWidth-ProjectileWidth)/2 - cos*MuzzleForward,
		Y: (ShipHeight-ProjectileHeight)/2 - sin*MuzzleForward,
	})

	guns := [2]core.Vec{
		base.Add(core.Vec{X: -sin * MuzzleSide, Y: cos * MuzzleSide}), // left
		base.Add(core.Vec{X: sin * MuzzleSide, Y: -cos * MuzzleSide}), // right
	}
	for _, pos := range guns {
		g.projectiles = append(g.projectiles, Projectile{PhysicsObject{
			Pos:     pos,
			Heading: g.ship.Heading,
			Vel:     vel,
		}})
	}
}

// registerHit updates the hit counter, score, lives and asteroid count after
// a projectile destroys an asteroid.
func (g *GameState) registerHit() {
	g.targetsHit++
	g.score += HitScore(g.timeSinceLastHit)
	g.timeSinceLastHit = 0

	if g.score >= g.nextLifeGain {
		g.numLives++
		g.nextLifeGain *= 2
		g.logger.Debug("life gained", "lives", g.numLives, "next", g.nextLifeGain)
	}

	if g.targetsHit > g.nextAsteroid {
		g.nextAsteroid += AsteroidMilestoneBase + len(g.asteroids)*AsteroidMilestonePerRock
		g.asteroids = append(g.asteroids, g.spawner.SpawnAsteroid(g.targetsHit))
		g.logger.Debug("asteroid added", "count", len(g.asteroids), "next", g.nextAsteroid)
	}
}

// HitScore returns the points for a hit landed sinceLast seconds after the
// previous one: a flat amount plus a bonus that decays to zero over the
// combo window.
func HitScore(sinceLast float64) int {
	pts := HitPoints
	if sinceLast < ComboWindow {
		pts += int(math.Max(0, ComboBonusMax-sinceLast*ComboDecay))
	}
	return pts
}

// sanitizeDelta clamps negative and non-finite deltas to zero.
func (g *GameState) sanitizeDelta(dt float64) float64 {
	if dt >= 0 && !math.IsInf(dt, 1) {
		return dt
	}
	g.logger.Warn("invalid tick delta clamped to zero", "dt", dt)
	return 0
}

// GameOver reports whether all lives are spent.
func (g *GameState) GameOver() bool {
	return g.numLives <= 0
}

// Invincible reports whether the post-hit grace period is active.
func (g *GameState) Invincible() bool {
	return g.invincibilityTimer > 0
}

// Lives returns the remaining lives.
func (g *GameState) Lives() int {
	return g.numLives
}

// Score returns the current score.
func (g *GameState) Score() int {
	return g.score
}

// TargetsHit returns the lifetime number of asteroids shot.
func (g *GameState) TargetsHit() int {
	return g.targetsHit
}

// AsteroidCount returns the number of live asteroids.
func (g *GameState) AsteroidCount() int {
	return len(g.asteroids)
}
