package game

// WeaponSpec describes one weapon in the arsenal. Weapons differ only by
// parameter, never by code path: homing is a flag, the rest are numbers.
type WeaponSpec struct {
	Name      string
	Ammo      string  // Display label for the projectile type
	Speed     float64 // Projectile speed in units/tick
	HitRadius float64 // Projectile hit diameter; collisions use half of it
	Homing    bool
}

// Weapons is the fixed arsenal, indexed by weapon id. The id is stable and
// also selects fire/hit sounds and visuals in the presentation layer.
var Weapons = [...]WeaponSpec{
	{Name: "Slingshot", Ammo: "Vegetables", Speed: 15, HitRadius: 40},
	{Name: "Bottle Rockets", Ammo: "Rockets", Speed: 20, HitRadius: 40},
	{Name: "Catapult", Ammo: "Boulders", Speed: 12, HitRadius: 40},
	{Name: "Tomato BB Gun", Ammo: "Tomatoes", Speed: 25, HitRadius: 40},
	{Name: "Poison Bow", Ammo: "Poison Arrows", Speed: 18, HitRadius: 40},
	{Name: "Marshmallow Crossbow", Ammo: "Flaming Marshmallows", Speed: 16, HitRadius: 40},
	{Name: "Darts", Ammo: "Darts", Speed: 22, HitRadius: 40},
	{Name: "Throwing Stars", Ammo: "Shuriken", Speed: 24, HitRadius: 40},
	{Name: "Potato Cannon", Ammo: "Potatoes", Speed: 17, HitRadius: 40},
	{Name: "Frog Cannon", Ammo: "Gay Frogs", Speed: 17, HitRadius: 40},
	{Name: "Trans Missile", Ammo: "Guided Missile", Speed: 10, HitRadius: 40, Homing: true},
	{Name: "Pride Parade", Ammo: "Rainbow Seeker", Speed: 14, HitRadius: 40, Homing: true},
}
