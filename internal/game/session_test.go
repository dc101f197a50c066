package game

import (
	"math"
	"math/rand"
	"testing"
)

// soundRecorder records Sound calls for assertions.
type soundRecorder struct {
	fires     []int
	hits      []int
	collected int
	expired   int
	music     []int
}

func (r *soundRecorder) Fire(w int)        { r.fires = append(r.fires, w) }
func (r *soundRecorder) Hit(w int)         { r.hits = append(r.hits, w) }
func (r *soundRecorder) PowerUpCollected() { r.collected++ }
func (r *soundRecorder) PowerUpExpired()   { r.expired++ }
func (r *soundRecorder) StartMusic(a int)  { r.music = append(r.music, a) }

func newPlayingSession(t *testing.T, archetype int) *Session {
	t.Helper()
	s := NewSession(rand.New(rand.NewSource(1)), nil)
	s.SelectArchetype(archetype)
	if s.Mode != ModePlaying {
		t.Fatalf("expected playing mode after selection, got %v", s.Mode)
	}
	return s
}

// pinTarget parks the target at a fixed position so tests are deterministic.
func pinTarget(s *Session, x, y float64) {
	s.Target.X = x
	s.Target.Y = y
	s.Target.VX = 0
	s.Target.VY = 0
}

func TestSelectionTransition(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(1)), nil)
	if s.Mode != ModeSelecting {
		t.Fatalf("new session should start selecting, got %v", s.Mode)
	}
	if s.Archetype != -1 {
		t.Fatalf("no archetype should be selected yet, got %d", s.Archetype)
	}

	// A press outside every grid cell changes nothing.
	s.PointerDown(5, 5)
	if s.Mode != ModeSelecting || s.Target != nil {
		t.Fatal("press outside the grid must not start play")
	}

	// A press inside a cell selects that archetype and starts play.
	x, y, w, h := ArchetypeCell(5)
	s.PointerDown(x+w/2, y+h/2)
	if s.Mode != ModePlaying {
		t.Fatal("press inside a cell should start play")
	}
	if s.Archetype != 5 {
		t.Fatalf("expected archetype 5, got %d", s.Archetype)
	}
	if s.Target == nil || s.Target.Radius != Archetypes[5].Radius {
		t.Fatal("target should be created from the selected archetype")
	}

	// The selection is immutable for the rest of the session.
	s.SelectArchetype(2)
	if s.Archetype != 5 {
		t.Fatal("selection must not change once play started")
	}
}

func TestSelectionStartsMusic(t *testing.T) {
	rec := &soundRecorder{}
	s := NewSession(rand.New(rand.NewSource(1)), rec)
	s.SelectArchetype(3)
	if len(rec.music) != 1 || rec.music[0] != 3 {
		t.Fatalf("expected music for archetype 3, got %v", rec.music)
	}
}

func TestCycleWeaponWraps(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(1)), nil)
	for want := 1; want < len(Weapons); want++ {
		s.CycleWeapon()
		if s.Weapon != want {
			t.Fatalf("after %d cycles expected weapon %d, got %d", want, want, s.Weapon)
		}
	}
	s.CycleWeapon()
	if s.Weapon != 0 {
		t.Fatalf("cycling past the last weapon should wrap to 0, got %d", s.Weapon)
	}
}

func TestFireFromLaunchZone(t *testing.T) {
	rec := &soundRecorder{}
	s := NewSession(rand.New(rand.NewSource(1)), rec)
	s.SelectArchetype(0)

	// Press above the launch zone: no drag starts, release fires nothing.
	s.PointerDown(512, FieldHeight-LaunchZoneHeight-10)
	if s.Aiming {
		t.Fatal("press above the launch zone must not start aiming")
	}
	s.PointerUp(512, 300)
	if len(s.Projectiles) != 0 {
		t.Fatal("no projectile without an aim drag")
	}

	// Press inside the zone, drag, release: one projectile toward the aim.
	s.PointerDown(400, FieldHeight-20)
	if !s.Aiming || s.WeaponX != 400 {
		t.Fatalf("drag should start with the launcher at the press x, got aiming=%v x=%v", s.Aiming, s.WeaponX)
	}
	s.PointerUp(400, 138)
	if len(s.Projectiles) != 1 {
		t.Fatalf("expected one projectile, got %d", len(s.Projectiles))
	}

	p := s.Projectiles[0]
	if p.X != 400 || p.Y != FieldHeight-LaunchHeight {
		t.Fatalf("projectile should launch from (400, %v), got (%v, %v)", FieldHeight-LaunchHeight, p.X, p.Y)
	}
	// Straight up at the weapon's speed.
	if p.VX != 0 || p.VY != -Weapons[0].Speed {
		t.Fatalf("expected velocity (0, %v), got (%v, %v)", -Weapons[0].Speed, p.VX, p.VY)
	}
	if len(rec.fires) != 1 || rec.fires[0] != 0 {
		t.Fatalf("expected fire sound for weapon 0, got %v", rec.fires)
	}
}

func TestFireAtLaunchPointIsDropped(t *testing.T) {
	s := newPlayingSession(t, 0)
	s.PointerDown(512, FieldHeight-LaunchHeight)
	s.PointerUp(512, FieldHeight-LaunchHeight)
	if len(s.Projectiles) != 0 {
		t.Fatal("a zero-length aim vector must not launch anything")
	}
}

func TestScoringStrictBoundary(t *testing.T) {
	s := newPlayingSession(t, 0)
	pinTarget(s, 500, 300)
	radiusSum := s.Target.Radius + Weapons[0].HitRadius/2 // 80 + 20

	// Exactly on the boundary: no score.
	p := NewProjectile(500, 300+radiusSum, 0, 0, 0)
	s.Projectiles = append(s.Projectiles, p)
	s.advanceProjectiles()
	if s.Score != 0 {
		t.Fatalf("boundary contact must not score, got %d", s.Score)
	}
	if !p.Active {
		t.Fatal("projectile should survive a boundary touch")
	}

	// One unit inside: scores a single point.
	p.Y = 300 + radiusSum - 1
	s.advanceProjectiles()
	if s.Score != 1 {
		t.Fatalf("expected 1 point, got %d", s.Score)
	}
	if p.Active {
		t.Fatal("scoring projectile must deactivate")
	}
}

func TestBoostTriplesScore(t *testing.T) {
	rec := &soundRecorder{}
	s := NewSession(rand.New(rand.NewSource(1)), rec)
	s.SelectArchetype(0)
	pinTarget(s, 500, 300)

	s.BoostActive = true
	s.BoostUntil = s.Clock + 5

	p := NewProjectile(500, 360, 0, 0, 0)
	s.Projectiles = append(s.Projectiles, p)
	s.advanceProjectiles()

	if s.Score != ScoreBoostHit {
		t.Fatalf("expected %d points during boost, got %d", ScoreBoostHit, s.Score)
	}
	if len(rec.hits) != 1 {
		t.Fatalf("expected one hit sound, got %v", rec.hits)
	}
}

func TestHitRespawnsTarget(t *testing.T) {
	s := newPlayingSession(t, 0)
	pinTarget(s, 500, 300)

	p := NewProjectile(500, 360, 0, 0, 0)
	s.Projectiles = append(s.Projectiles, p)
	s.advanceProjectiles()

	tg := s.Target
	if tg.X == 500 && tg.Y == 300 {
		t.Fatal("target should move on a scoring hit")
	}
	if tg.X < RespawnMargin || tg.X > FieldWidth-RespawnMargin ||
		tg.Y < RespawnMargin || tg.Y > FieldHeight-RespawnMargin {
		t.Fatalf("respawn position (%v, %v) outside the interior", tg.X, tg.Y)
	}
	if tg.Radius != Archetypes[0].Radius {
		t.Fatal("respawn must preserve the archetype radius")
	}
	if !tg.Straight {
		t.Fatal("respawned target keeps the straight flag")
	}
}

func TestOutOfBoundsShortCircuitsScoring(t *testing.T) {
	s := newPlayingSession(t, 0)
	pinTarget(s, 950, 300)

	// One step puts the projectile past the right edge while also overlapping
	// the target; leaving the field must win.
	p := NewProjectile(1022, 300, 10, 0, 0)
	s.Projectiles = append(s.Projectiles, p)
	s.advanceProjectiles()

	if p.Active {
		t.Fatal("out-of-bounds projectile must deactivate")
	}
	if s.Score != 0 {
		t.Fatalf("out-of-bounds exit must not score, got %d", s.Score)
	}
}

func TestPowerUpCollectSkipsTargetSameTick(t *testing.T) {
	rec := &soundRecorder{}
	s := NewSession(rand.New(rand.NewSource(1)), rec)
	s.SelectArchetype(0)
	pinTarget(s, 500, 280)
	s.PowerUp = &PowerUp{X: 500, Y: 200, Radius: PowerUpRadius}

	// Overlapping both the power-up and the target: the power-up resolves
	// first and the projectile is spent.
	p := NewProjectile(500, 240, 0, 0, 0)
	s.Projectiles = append(s.Projectiles, p)
	s.advanceProjectiles()

	if s.PowerUp != nil {
		t.Fatal("power-up should be consumed")
	}
	if !s.BoostActive {
		t.Fatal("boost should activate on collection")
	}
	if s.BoostUntil != s.Clock+BoostDuration {
		t.Fatalf("boost window should last %v seconds, got %v", BoostDuration, s.BoostUntil-s.Clock)
	}
	if s.Score != 0 {
		t.Fatalf("the same projectile must not also score, got %d", s.Score)
	}
	if s.NextPowerUpAt < s.Clock+PowerUpCooldownMin || s.NextPowerUpAt >= s.Clock+PowerUpCooldownMax {
		t.Fatalf("collect must reschedule within [%v, %v), got +%v",
			PowerUpCooldownMin, PowerUpCooldownMax, s.NextPowerUpAt-s.Clock)
	}
	if rec.collected != 1 {
		t.Fatalf("expected one collect sound, got %d", rec.collected)
	}
}

func TestPowerUpCollisionHalvesBothRadii(t *testing.T) {
	s := newPlayingSession(t, 0)
	pinTarget(s, 100, 100) // Out of the way
	s.PowerUp = &PowerUp{X: 500, Y: 200, Radius: PowerUpRadius}
	limit := PowerUpRadius/2 + Weapons[0].HitRadius/2 // 50 + 20

	p := NewProjectile(500, 200+limit, 0, 0, 0)
	s.Projectiles = append(s.Projectiles, p)
	s.advanceProjectiles()
	if s.PowerUp == nil {
		t.Fatal("boundary contact must not collect the power-up")
	}

	p.Y = 200 + limit - 1
	s.advanceProjectiles()
	if s.PowerUp != nil {
		t.Fatal("inside the combined half-radii the power-up must be collected")
	}
}

func TestBoostWindowHalfOpen(t *testing.T) {
	rec := &soundRecorder{}
	s := NewSession(rand.New(rand.NewSource(1)), rec)
	s.SelectArchetype(0)

	s.BoostActive = true
	s.BoostUntil = s.Clock + 3*TickSeconds

	s.Advance()
	s.Advance()
	if !s.BoostActive {
		t.Fatal("boost must hold strictly before expiry")
	}
	s.Advance() // Clock reaches BoostUntil exactly
	if s.BoostActive {
		t.Fatal("boost must be off at the expiry instant")
	}
	if rec.expired != 1 {
		t.Fatalf("expected one expiry sound, got %d", rec.expired)
	}
}

func TestPowerUpDriftOffscreenReschedules(t *testing.T) {
	s := newPlayingSession(t, 0)
	s.PowerUp = &PowerUp{
		X:      -100,
		Y:      400,
		VX:     (FieldWidth/2 - (-100)) / 100, // 6.12 units/tick
		Radius: PowerUpRadius,
	}

	for i := 0; i < 400 && s.PowerUp != nil; i++ {
		s.Advance()
	}
	if s.PowerUp != nil {
		t.Fatal("power-up should drift past the margin and despawn")
	}
	if s.NextPowerUpAt <= s.Clock {
		t.Fatalf("respawn must be scheduled strictly later than removal, got %v at clock %v",
			s.NextPowerUpAt, s.Clock)
	}
	if s.NextPowerUpAt < s.Clock+PowerUpSpawnMin-TickSeconds {
		t.Fatalf("miss reschedule should use the [%v, %v) range, got +%v",
			PowerUpSpawnMin, PowerUpSpawnMax, s.NextPowerUpAt-s.Clock)
	}
}

func TestPowerUpSpawnsWhenDue(t *testing.T) {
	s := newPlayingSession(t, 0)
	if s.PowerUp != nil {
		t.Fatal("no power-up before the scheduled time")
	}
	s.NextPowerUpAt = s.Clock // Due immediately
	s.Advance()
	if s.PowerUp == nil {
		t.Fatal("power-up should spawn once the schedule elapses")
	}
}

func TestHomingScenario(t *testing.T) {
	s := newPlayingSession(t, 0)
	pinTarget(s, 512, 300)

	s.Weapon = 10 // Guided missile
	s.PointerDown(512, 700)
	s.PointerUp(650, 300) // Aim well off the target line

	if len(s.Projectiles) != 1 {
		t.Fatalf("expected one projectile, got %d", len(s.Projectiles))
	}
	p := s.Projectiles[0]
	if !p.Homing {
		t.Fatal("weapon 10 fires homing projectiles")
	}

	for i := 0; i < 20; i++ {
		s.Advance()
	}
	if !p.Active {
		t.Fatal("projectile should still be in flight")
	}

	// Velocity should be within 1 degree of the line to the target.
	dx := s.Target.X - p.X
	dy := s.Target.Y - p.Y
	dot := p.VX*dx + p.VY*dy
	cos := dot / (math.Hypot(p.VX, p.VY) * math.Hypot(dx, dy))
	angle := math.Acos(math.Min(1, math.Max(-1, cos)))
	if angle >= math.Pi/180 {
		t.Fatalf("angular error %.3f° after 20 ticks, want < 1°", angle*180/math.Pi)
	}
}

func TestBoostGrantsUniversalHoming(t *testing.T) {
	s := newPlayingSession(t, 0)
	pinTarget(s, 512, 300)

	// A plain ballistic shot moving parallel to the target line.
	p := NewProjectile(400, 500, 0, -10, 0)
	s.Projectiles = append(s.Projectiles, p)

	s.Advance()
	if p.VX != 0 {
		t.Fatal("without boost a non-homing projectile flies straight")
	}

	s.BoostActive = true
	s.BoostUntil = s.Clock + 5
	s.Advance()
	if p.VX == 0 {
		t.Fatal("with boost every projectile steers toward the target")
	}
}

func TestNoSteeringWhenTargetNotStraight(t *testing.T) {
	s := newPlayingSession(t, 0)
	pinTarget(s, 512, 300)
	s.Target.Straight = false

	p := NewProjectile(400, 500, 0, -10, 10) // Homing weapon
	s.Projectiles = append(s.Projectiles, p)
	s.Advance()
	if p.VX != 0 {
		t.Fatal("homing must not engage while the target is not straight")
	}
}

func TestDeactivatedCompactedNextTick(t *testing.T) {
	s := newPlayingSession(t, 0)
	pinTarget(s, 100, 100)

	p := NewProjectile(500, 10, 0, -20, 0) // Exits the top edge this tick
	s.Projectiles = append(s.Projectiles, p)

	s.advanceProjectiles()
	if p.Active {
		t.Fatal("projectile should deactivate on exit")
	}
	if len(s.Projectiles) != 1 {
		t.Fatal("deactivated projectiles stay listed until the next tick")
	}

	s.advanceProjectiles()
	if len(s.Projectiles) != 0 {
		t.Fatal("compaction should remove it at the start of the next tick")
	}
}

func TestAdvanceOnlyWhilePlaying(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(1)), nil)
	s.Advance()
	if s.Clock != 0 {
		t.Fatal("the clock must not run on the selection screen")
	}
}

func TestQuit(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(1)), nil)
	if !s.Running {
		t.Fatal("new session should be running")
	}
	s.Quit()
	if s.Running {
		t.Fatal("quit should stop the session")
	}
}
