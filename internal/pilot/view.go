package pilot

import (
	"slices"

	"github.com/vovakirdan/pixel-pilot/internal/core"
)

// ShipView is the ship as the renderer sees it.
type ShipView struct {
	Center  core.Vec // Center of the bounding box
	Heading float64
	Thrust  bool // Forward intent held
	Firing  bool // Muzzle flash right after a shot
	Shield  bool // Invincibility overlay visible this frame
}

// View is a read-only copy of everything the renderer needs for one frame.
// Mutating it has no effect on the simulation.
type View struct {
	Phase       Phase
	Score       int
	Lives       int
	Ship        ShipView
	Asteroids   []Asteroid
	Projectiles []Projectile
	Stars       []Star
}

// View returns a copy of the renderable state. Phase is left as Playing;
// the session fills it in.
func (g *GameState) View() View {
	return View{
		Score: g.score,
		Lives: g.numLives,
		Ship: ShipView{
			Center:  g.ship.Center(),
			Heading: g.ship.Heading,
			Thrust:  g.thrusting,
			Firing:  g.firing(),
			Shield:  g.shieldVisible(),
		},
		Asteroids:   slices.Clone(g.asteroids),
		Projectiles: slices.Clone(g.projectiles),
		Stars:       slices.Clone(g.stars),
	}
}

func (g *GameState) firing() bool {
	return CooldownTime-g.cooldownTimer < FiringTime && !g.Invincible()
}

// shieldVisible is solid while more than BlinkThreshold seconds of
// invincibility remain, then blinks with BlinkPeriod.
func (g *GameState) shieldVisible() bool {
	t := g.invincibilityTimer
	if t <= 0 {
		return false
	}
	return t > BlinkThreshold || int(t/BlinkPeriod)%2 == 0
}
