package game

import (
	"math"
)

// TrailPoint is a past projectile position kept for the cosmetic trail.
type TrailPoint struct {
	X, Y float64
}

// Projectile is one shot in flight. It is created by the fire action and
// deactivated on leaving the field or on any collision; deactivated
// projectiles are compacted out at the start of the next tick.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Weapon int  // Owning weapon id
	Homing bool // Copied from the weapon at creation, immutable
	Active bool
	Trail  []TrailPoint // Cosmetic, bounded by TrailLength
}

// NewProjectile creates an active projectile for the given weapon, already
// moving with the supplied velocity.
func NewProjectile(x, y, vx, vy float64, weapon int) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Weapon: weapon,
		Homing: Weapons[weapon].Homing,
		Active: true,
	}
}

// HitRadius returns the projectile's hit diameter from its owning weapon.
func (p *Projectile) HitRadius() float64 {
	return Weapons[p.Weapon].HitRadius
}

// SteerToward blends the projectile velocity toward the direction of
// (tx, ty) at the given speed by the turn-rate fraction. The blend converges
// exponentially, so homing shots curve instead of snapping onto the line.
// A zero-distance target leaves the velocity untouched.
func (p *Projectile) SteerToward(tx, ty, speed, turnRate float64) {
	dx := tx - p.X
	dy := ty - p.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return
	}

	wantVX := dx / dist * speed
	wantVY := dy / dist * speed
	p.VX += (wantVX - p.VX) * turnRate
	p.VY += (wantVY - p.VY) * turnRate
}

// Move integrates one tick of motion and records the trail point.
func (p *Projectile) Move() {
	p.Trail = append(p.Trail, TrailPoint{X: p.X, Y: p.Y})
	if len(p.Trail) > TrailLength {
		p.Trail = p.Trail[1:]
	}
	p.X += p.VX
	p.Y += p.VY
}

// InBounds reports whether the projectile is still inside the play field.
func (p *Projectile) InBounds() bool {
	return p.X >= 0 && p.X <= FieldWidth && p.Y >= 0 && p.Y <= FieldHeight
}
