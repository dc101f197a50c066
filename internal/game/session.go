// Package game implements the target-range simulation: weapons, the moving
// target, projectiles, the power-up lifecycle, and the session state machine.
// It is renderer-agnostic; frontends feed it pointer/key intent in logical
// field coordinates and read state back for drawing.
package game

import (
	"math/rand"

	"targetrange/internal/physics"
)

// Mode is the screen the session is showing.
type Mode int

const (
	ModeSelecting Mode = iota // Archetype selection grid
	ModePlaying               // Active play; no path back to selection
)

// Sound is the session's audio collaborator. Implementations must never
// block or fail in a way that reaches the simulation; a no-op implementation
// is a valid one.
type Sound interface {
	Fire(weapon int)
	Hit(weapon int)
	PowerUpCollected()
	PowerUpExpired()
	StartMusic(archetype int)
}

// NullSound is the silent Sound implementation.
type NullSound struct{}

func (NullSound) Fire(int)          {}
func (NullSound) Hit(int)           {}
func (NullSound) PowerUpCollected() {}
func (NullSound) PowerUpExpired()   {}
func (NullSound) StartMusic(int)    {}

// Session owns all simulation state for one play session. It is not safe
// for concurrent use; exactly one goroutine drives it.
type Session struct {
	Mode    Mode
	Running bool

	Score     int
	Weapon    int // Current weapon id
	Archetype int // Selected archetype id, -1 until chosen

	Target      *Target
	Projectiles []*Projectile
	PowerUp     *PowerUp

	// Boost effect window and spawn schedule, in clock seconds.
	BoostActive   bool
	BoostUntil    float64
	NextPowerUpAt float64

	// Clock is simulation time in seconds, advanced by TickSeconds per tick.
	Clock float64

	// Aiming intent, in logical field coordinates.
	Aiming     bool
	AimX, AimY float64
	WeaponX    float64 // Launcher follows the pointer horizontally

	rng   *rand.Rand
	sound Sound
}

// NewSession creates a session on the selection screen. sound may be nil
// for silence.
func NewSession(rng *rand.Rand, sound Sound) *Session {
	if sound == nil {
		sound = NullSound{}
	}
	s := &Session{
		Mode:      ModeSelecting,
		Running:   true,
		Archetype: -1,
		WeaponX:   FieldWidth / 2,
		rng:       rng,
		sound:     sound,
	}
	s.NextPowerUpAt = s.Clock + uniform(rng, PowerUpSpawnMin, PowerUpSpawnMax)
	return s
}

// Quit ends the session after the current tick.
func (s *Session) Quit() {
	s.Running = false
}

// CycleWeapon advances to the next weapon, wrapping at the end of the table.
func (s *Session) CycleWeapon() {
	s.Weapon = (s.Weapon + 1) % len(Weapons)
}

// SelectArchetype fixes the target archetype and starts play. It is the only
// transition out of the selection screen and cannot be undone.
func (s *Session) SelectArchetype(id int) {
	if s.Mode != ModeSelecting || id < 0 || id >= len(Archetypes) {
		return
	}
	s.Archetype = id
	s.Target = NewTarget(Archetypes[id], s.rng)
	s.Mode = ModePlaying
	s.sound.StartMusic(id)
}

// PointerDown handles a pointer press at logical coordinates. On the
// selection screen it hit-tests the archetype grid; during play it starts an
// aim drag when the press lands in the launch zone.
func (s *Session) PointerDown(x, y float64) {
	switch s.Mode {
	case ModeSelecting:
		if id := ArchetypeAt(x, y); id >= 0 {
			s.SelectArchetype(id)
		}
	case ModePlaying:
		if y > FieldHeight-LaunchZoneHeight {
			s.Aiming = true
			s.AimX, s.AimY = x, y
			s.WeaponX = x
		}
	}
}

// PointerMove tracks the pointer. The launcher follows the pointer
// horizontally whether or not a drag is in progress.
func (s *Session) PointerMove(x, y float64) {
	if s.Mode != ModePlaying {
		return
	}
	s.WeaponX = x
	if s.Aiming {
		s.AimX, s.AimY = x, y
	}
}

// PointerUp releases an aim drag and fires toward the last aim point.
func (s *Session) PointerUp(x, y float64) {
	if s.Mode != ModePlaying || !s.Aiming {
		return
	}
	s.AimX, s.AimY = x, y
	s.Aiming = false
	s.fire(s.AimX, s.AimY)
}

// fire launches a projectile from the launcher toward (tx, ty). A drag that
// ends exactly on the launch point aims nowhere and is dropped.
func (s *Session) fire(tx, ty float64) {
	startX := s.WeaponX
	startY := FieldHeight - LaunchHeight

	dx := tx - startX
	dy := ty - startY
	dist := physics.Distance(startX, startY, tx, ty)
	if dist == 0 {
		return
	}

	speed := Weapons[s.Weapon].Speed
	p := NewProjectile(startX, startY, dx/dist*speed, dy/dist*speed, s.Weapon)
	s.Projectiles = append(s.Projectiles, p)
	s.sound.Fire(s.Weapon)
}

// BoostRemaining returns the seconds left in the boost window, or 0.
func (s *Session) BoostRemaining() float64 {
	if !s.BoostActive {
		return 0
	}
	return s.BoostUntil - s.Clock
}

// Advance runs exactly one fixed simulation step. Callers gate it on
// ModePlaying; it is a no-op on the selection screen.
func (s *Session) Advance() {
	if s.Mode != ModePlaying {
		return
	}

	s.Clock += TickSeconds

	if s.BoostActive && s.Clock >= s.BoostUntil {
		s.BoostActive = false
		s.sound.PowerUpExpired()
	}
	if s.PowerUp == nil && s.Clock > s.NextPowerUpAt {
		s.PowerUp = NewPowerUp(s.rng)
	}

	s.advancePowerUp()
	s.advanceTarget()
	s.advanceProjectiles()
}

// advancePowerUp drifts the power-up and discards it once it leaves the
// off-screen margin, rescheduling the next spawn.
func (s *Session) advancePowerUp() {
	if s.PowerUp == nil {
		return
	}
	s.PowerUp.Move()
	if s.PowerUp.Gone() {
		s.PowerUp = nil
		s.NextPowerUpAt = s.Clock + uniform(s.rng, PowerUpSpawnMin, PowerUpSpawnMax)
	}
}

// advanceTarget applies the evasion pattern, then integrates and reflects.
func (s *Session) advanceTarget() {
	if s.Target == nil {
		return
	}
	s.Target.Evade(s.Projectiles)
	s.Target.Move()
}

// advanceProjectiles compacts out last tick's deactivated projectiles, then
// steers, moves, and collision-tests each survivor. A projectile resolves at
// most one event per tick: the first of bounds exit, power-up hit, or target
// hit deactivates it and short-circuits the rest.
func (s *Session) advanceProjectiles() {
	kept := s.Projectiles[:0] // reuse backing array
	for _, p := range s.Projectiles {
		if p.Active {
			kept = append(kept, p)
		}
	}
	s.Projectiles = kept

	for _, p := range s.Projectiles {
		s.steer(p)
		p.Move()

		if !p.InBounds() {
			p.Active = false
			continue
		}
		if s.collidePowerUp(p) {
			continue
		}
		s.collideTarget(p)
	}
}

// steer applies homing toward the target. It covers projectiles whose weapon
// homes and, while the boost is active, every projectile.
func (s *Session) steer(p *Projectile) {
	if s.Target == nil || !s.Target.Straight {
		return
	}
	if !p.Homing && !s.BoostActive {
		return
	}

	speed := Weapons[p.Weapon].Speed
	turnRate := TurnRate
	if s.BoostActive {
		speed *= BoostSpeedScale
		turnRate = BoostTurnRate
	}
	p.SteerToward(s.Target.X, s.Target.Y, speed, turnRate)
}

// collidePowerUp resolves a projectile hitting the power-up: the projectile
// dies, the boost window opens, and the next spawn goes on the long cooldown.
func (s *Session) collidePowerUp(p *Projectile) bool {
	u := s.PowerUp
	if u == nil {
		return false
	}
	if !physics.CirclesOverlap(p.X, p.Y, p.HitRadius()/2, u.X, u.Y, u.Radius/2) {
		return false
	}

	p.Active = false
	s.PowerUp = nil
	s.BoostActive = true
	s.BoostUntil = s.Clock + BoostDuration
	s.NextPowerUpAt = s.Clock + uniform(s.rng, PowerUpCooldownMin, PowerUpCooldownMax)
	s.sound.PowerUpCollected()
	return true
}

// collideTarget resolves a projectile hitting the target: the projectile
// dies, points are awarded, and the target respawns elsewhere. The target
// counts its full radius against half the projectile's; an exact boundary
// touch does not score.
func (s *Session) collideTarget(p *Projectile) {
	t := s.Target
	if t == nil {
		return
	}
	if !physics.CirclesOverlap(p.X, p.Y, p.HitRadius()/2, t.X, t.Y, t.Radius) {
		return
	}

	p.Active = false
	if s.BoostActive {
		s.Score += ScoreBoostHit
	} else {
		s.Score += ScoreHit
	}
	t.Respawn(s.rng)
	s.sound.Hit(p.Weapon)
}
