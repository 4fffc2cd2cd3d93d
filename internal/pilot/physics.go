// Package pilot implements the Pixel Pilot simulation: a ship dodging and
// shooting asteroids that cross a fixed arena from edge to edge.
// The package is engine-neutral; the platform feeds it wall-clock deltas and
// input snapshots and draws the resulting View.
package pilot

import "github.com/vovakirdan/pixel-pilot/internal/core"

// PhysicsObject is the kinematic state shared by every moving entity.
type PhysicsObject struct {
	Pos     core.Vec // Top-left corner of the entity's bounding box
	Heading float64  // Degrees in [0, 360), 0 = nose up, clockwise positive
	Vel     core.Vec // Linear velocity
	Spin    float64  // Angular velocity
}

// Update integrates position and heading over dt seconds.
// dt is frame-rate independent wall-clock time and must be >= 0.
func (p *PhysicsObject) Update(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Heading = core.WrapDegrees(p.Heading + p.Spin*dt)
}

// leftArena reports whether a w×h box at pos is entirely outside the arena.
func leftArena(pos core.Vec, w, h float64) bool {
	return pos.X > ArenaWidth || pos.X < -w ||
		pos.Y > ArenaHeight || pos.Y < -h
}
