package pilot

import "github.com/vovakirdan/pixel-pilot/internal/core"

// Ship is the player's fighter. A fresh one is created for every life.
type Ship struct {
	PhysicsObject
}

// NewShip returns a motionless ship centered in the arena, nose up.
func NewShip() Ship {
	return Ship{PhysicsObject{
		Pos: core.Vec{
			X: (ArenaWidth - ShipWidth) / 2,
			Y: (ArenaHeight - ShipHeight) / 2,
		},
	}}
}

// HitBox returns the ship's axis-aligned hitbox. Rotation is ignored.
func (s Ship) HitBox() core.Box {
	return core.Box{X: s.Pos.X, Y: s.Pos.Y, W: ShipWidth, H: ShipHeight}
}

// Center returns the center of the ship's bounding box.
func (s Ship) Center() core.Vec {
	return s.Pos.Add(core.Vec{X: ShipWidth / 2.0, Y: ShipHeight / 2.0})
}

// OutOfBounds reports whether the ship has fully left the arena.
func (s Ship) OutOfBounds() bool {
	return leftArena(s.Pos, ShipWidth, ShipHeight)
}

// Asteroid is a spinning rock crossing the arena in a straight line.
type Asteroid struct {
	PhysicsObject
	Diameter float64
	Variant  int // Visual variant in [0, AsteroidVariants)
}

// HitCircle returns the circle inscribed in the asteroid's bounding square.
func (a Asteroid) HitCircle() core.Circle {
	r := a.Diameter / 2
	return core.Circle{Center: a.Pos.Add(core.Vec{X: r, Y: r}), Radius: r}
}

// OutOfBounds reports whether the asteroid has fully left the arena.
func (a Asteroid) OutOfBounds() bool {
	return leftArena(a.Pos, a.Diameter, a.Diameter)
}

// Projectile is a single shot. It lives until it leaves the arena or hits an asteroid.
type Projectile struct {
	PhysicsObject
}

// HitPoint returns the geometric center of the projectile.
func (p Projectile) HitPoint() core.Vec {
	return p.Pos.Add(core.Vec{X: ProjectileWidth / 2.0, Y: ProjectileHeight / 2.0})
}

// OutOfBounds reports whether the projectile has fully left the arena.
func (p Projectile) OutOfBounds() bool {
	return leftArena(p.Pos, ProjectileWidth, ProjectileHeight)
}

// Star is a decorative background point, fixed for a whole game.
type Star struct {
	X, Y    int
	Size    int // In [StarSizeMin, StarSizeMin+StarSizeRange)
	Variant int // In [0, StarVariants)
}
