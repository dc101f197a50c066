package game

import (
	"math/rand"
)

// PowerUp drifts across the field waiting to be shot. At most one exists at
// a time; shooting it grants the boost effect (universal homing, faster
// turning, x1.5 speed, triple points) for BoostDuration seconds.
type PowerUp struct {
	X, Y   float64
	VX     float64 // Horizontal drift only, biased toward field center
	Radius float64
}

// NewPowerUp spawns a power-up just outside a uniformly chosen field edge,
// drifting toward the horizontal center.
func NewPowerUp(rng *rand.Rand) *PowerUp {
	var x, y float64
	switch rng.Intn(4) {
	case 0: // Left
		x, y = -PowerUpRadius, uniform(rng, 0, FieldHeight)
	case 1: // Right
		x, y = FieldWidth+PowerUpRadius, uniform(rng, 0, FieldHeight)
	case 2: // Top
		x, y = uniform(rng, 0, FieldWidth), -PowerUpRadius
	default: // Bottom
		x, y = uniform(rng, 0, FieldWidth), FieldHeight+PowerUpRadius
	}

	return &PowerUp{
		X:      x,
		Y:      y,
		VX:     (FieldWidth/2 - x) / 100,
		Radius: PowerUpRadius,
	}
}

// Move integrates one tick of horizontal drift.
func (u *PowerUp) Move() {
	u.X += u.VX
}

// Gone reports whether the power-up left the expanded off-screen margin
// (twice its own radius beyond the field) and should be discarded.
// Only the horizontal axis is checked; vertical drift does not exist.
func (u *PowerUp) Gone() bool {
	return u.X < -u.Radius*2 || u.X > FieldWidth+u.Radius*2
}
