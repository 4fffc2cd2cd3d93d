package pilot

import "github.com/vovakirdan/pixel-pilot/internal/core"

// Hit is the outcome of resolving one asteroid for the current tick.
type Hit int

const (
	HitNone       Hit = iota
	HitExited         // Asteroid left the arena
	HitShip           // Asteroid struck a vulnerable ship
	HitProjectile     // Asteroid was shot
)

// String returns a human-readable name for the outcome.
func (h Hit) String() string {
	switch h {
	case HitNone:
		return "None"
	case HitExited:
		return "Exited"
	case HitShip:
		return "Ship"
	case HitProjectile:
		return "Projectile"
	default:
		return "Unknown"
	}
}

// ResolveAsteroid applies the collision rules to a single asteroid, first
// match wins:
//  1. the asteroid has fully left the arena,
//  2. the ship is vulnerable and its hitbox overlaps the asteroid circle,
//  3. the asteroid circle contains the center of a projectile.
//
// For HitProjectile the index of the first matching projectile is returned;
// otherwise the index is -1. Nothing is mutated.
func ResolveAsteroid(a Asteroid, ship core.Box, shipVulnerable bool, projectiles []Projectile) (Hit, int) {
	if a.OutOfBounds() {
		return HitExited, -1
	}

	circle := a.HitCircle()
	if shipVulnerable && circle.IntersectsBox(ship) {
		return HitShip, -1
	}

	for j := range projectiles {
		if circle.Contains(projectiles[j].HitPoint()) {
			return HitProjectile, j
		}
	}
	return HitNone, -1
}

// UpdateProjectiles integrates every projectile over dt and drops the ones
// that left the arena. The slice is walked from the end so that the element
// swapped into a freed slot has already been processed this tick.
func UpdateProjectiles(projectiles []Projectile, dt float64) []Projectile {
	for i := len(projectiles) - 1; i >= 0; i-- {
		projectiles[i].Update(dt)
		if projectiles[i].OutOfBounds() {
			projectiles = swapRemove(projectiles, i)
		}
	}
	return projectiles
}

// swapRemove deletes s[i] by moving the last element into its place.
// Order of the remaining elements is not preserved.
func swapRemove[T any](s []T, i int) []T {
	last := len(s) - 1
	s[i] = s[last]
	var zero T
	s[last] = zero
	return s[:last]
}
