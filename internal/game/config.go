package game

// Game configuration constants.
// All tunable simulation parameters are centralized here for easy adjustment.

// Play field (logical units, a classic 1024x768 screen).
const (
	FieldWidth  = 1024.0
	FieldHeight = 768.0
)

// Simulation clock
const (
	TickRate    = 60
	TickSeconds = 1.0 / float64(TickRate)
)

// Launch zone
const (
	LaunchZoneHeight = 150.0 // Bottom strip where drags start
	LaunchHeight     = 130.0 // Projectiles leave from FieldHeight - LaunchHeight
)

// Target
const (
	BaseTargetRadius = 80.0
	RespawnMargin    = 100.0 // Respawn positions stay this far from the edges
	SpawnSpeedMax    = 4.0   // Initial velocity range per axis (units/tick)
	RespawnSpeedMax  = 5.0   // Post-hit velocity range per axis (units/tick)
)

// Evasion
const (
	EvadeRange = 150.0 // Projectiles closer than this trigger a dodge
	EvadeStep  = 0.02  // Fraction of the separation vector applied per threat
)

// Power-up
const (
	PowerUpRadius      = 100.0
	BoostDuration      = 10.0 // Seconds the effect lasts once collected
	BoostSpeedScale    = 1.5
	PowerUpSpawnMin    = 15.0 // Reschedule range after a miss (and first spawn)
	PowerUpSpawnMax    = 30.0
	PowerUpCooldownMin = 20.0 // Reschedule range after a collect
	PowerUpCooldownMax = 40.0
)

// Homing
const (
	TurnRate      = 0.3 // Velocity blend fraction per tick
	BoostTurnRate = 0.5
)

// Scoring
const (
	ScoreHit      = 1
	ScoreBoostHit = 3
)

// Cosmetics
const (
	TrailLength = 12 // Trailing positions kept per projectile
)
