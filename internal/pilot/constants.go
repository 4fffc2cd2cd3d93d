package pilot

// Units: times in seconds, sizes in arena pixels, velocities in pixels/second,
// accelerations in pixels/second², angles in degrees, angular velocities in
// degrees/second.

// Arena
const (
	ArenaWidth  = 1000
	ArenaHeight = 750
	TargetFPS   = 60
)

// Ship
const (
	ShipWidth          = 38
	ShipHeight         = 48
	LinearAcceleration = 300.0
	RotationalVelocity = 270.0
)

// Projectiles
const (
	ProjectileWidth  = 6
	ProjectileHeight = 12
	MuzzleVelocity   = 1000.0
	MuzzleForward    = 10.0 // Base point distance ahead of the ship center
	MuzzleSide       = 10.0 // Gun distance to each side of the base point
)

// Asteroids
const (
	AsteroidSizeMin          = 25
	AsteroidSizeRange        = 30
	AsteroidVelMin           = 50.0
	AsteroidVelRange         = 50.0
	AsteroidVelHitsMult      = 0.025
	AsteroidAngularVelMin    = 60.0
	AsteroidAngularVelRange  = 180.0
	AsteroidVariants         = 3
	AsteroidMilestoneBase    = 15 // Added to the milestone each time one is crossed
	AsteroidMilestonePerRock = 2  // Added per live asteroid when a milestone is crossed
)

// Stars
const (
	StarNumMin    = 150
	StarNumRange  = 250
	StarSizeMin   = 1
	StarSizeRange = 5
	StarVariants  = 4
)

// Gameplay
const (
	InitialLives        = 3
	InitialNextLife     = 200 // First bonus life at 200 points
	InitialNextAsteroid = 15  // Second target after destroying more than 15
	InvincibilityTime   = 3.0
	CooldownTime        = 0.35
	FiringTime          = 0.05 // Firing flash shown after a shot
	HitPoints           = 10
	ComboWindow         = 3.0 // Hits faster than this earn a speed bonus
	ComboBonusMax       = 6.0
	ComboDecay          = 2.0 // Bonus lost per second since the previous hit
	BlinkThreshold      = 1.0 // Shield blinks during the last second
	BlinkPeriod         = 0.2
)
