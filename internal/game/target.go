package game

import (
	"math/rand"
)

// Target is the moving target. One instance lives for the whole session; a
// scoring hit repositions it instead of reallocating.
type Target struct {
	X, Y     float64
	VX, VY   float64
	Radius   float64 // Fixed at creation from the archetype
	Pattern  Pattern
	Scale    float64 // Archetype speed multiplier
	Straight bool    // Homing only locks on while this holds
}

// NewTarget creates the session target from the selected archetype. It starts
// centered in the upper third of the field with a randomized velocity.
func NewTarget(arch Archetype, rng *rand.Rand) *Target {
	t := &Target{
		X:        FieldWidth / 2,
		Y:        FieldHeight / 3,
		VX:       uniform(rng, -SpawnSpeedMax, SpawnSpeedMax) * arch.SpeedScale,
		VY:       uniform(rng, -SpawnSpeedMax, SpawnSpeedMax) * arch.SpeedScale,
		Radius:   arch.Radius,
		Pattern:  arch.Pattern,
		Scale:    arch.SpeedScale,
		Straight: true,
	}
	t.applyPattern()
	return t
}

// Respawn moves the target to a fresh random interior position with a new
// randomized velocity, keeping radius and pattern.
func (t *Target) Respawn(rng *rand.Rand) {
	t.X = uniform(rng, RespawnMargin, FieldWidth-RespawnMargin)
	t.Y = uniform(rng, RespawnMargin, FieldHeight-RespawnMargin)
	t.VX = uniform(rng, -RespawnSpeedMax, RespawnSpeedMax) * t.Scale
	t.VY = uniform(rng, -RespawnSpeedMax, RespawnSpeedMax) * t.Scale
	t.Straight = true
	t.applyPattern()
}

// applyPattern locks axis-bound archetypes to their axis.
func (t *Target) applyPattern() {
	switch t.Pattern {
	case PatternHorizontal:
		t.VY = 0
	case PatternVertical:
		t.VX = 0
	}
}

// Evade nudges the target away from every active projectile within
// EvadeRange by a fraction of the separation vector. Multiple threats
// accumulate independently in the same tick.
func (t *Target) Evade(projectiles []*Projectile) {
	if t.Pattern != PatternEvade {
		return
	}
	for _, p := range projectiles {
		if !p.Active {
			continue
		}
		dx := t.X - p.X
		dy := t.Y - p.Y
		if dx*dx+dy*dy < EvadeRange*EvadeRange {
			t.X += dx * EvadeStep
			t.Y += dy * EvadeStep
		}
	}
}

// Move integrates one tick of motion and reflects off the field walls.
// Reflection negates the crossing axis exactly and clamps position so the
// bounding circle stays inside the field.
func (t *Target) Move() {
	t.X += t.VX
	t.Y += t.VY

	if t.X-t.Radius < 0 || t.X+t.Radius > FieldWidth {
		t.VX = -t.VX
		t.X = clamp(t.X, t.Radius, FieldWidth-t.Radius)
	}
	if t.Y-t.Radius < 0 || t.Y+t.Radius > FieldHeight {
		t.VY = -t.VY
		t.Y = clamp(t.Y, t.Radius, FieldHeight-t.Radius)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
