package systems

import (
	"errors"
	"testing"

	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestActor(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := newTestECS()
	actor, err := factory.CreateActor(e, cfg.GunRifle, cfg.GunCannon)
	if err != nil {
		t.Fatalf("CreateActor: %v", err)
	}
	return e, actor
}

func runTicks(e *ecs.ECS, n int) {
	clock := GetOrCreateClock(e)
	for i := 0; i < n; i++ {
		clock.Tick++
		clock.Delta = tick * TimeScale(clock)
		UpdateWeapons(e)
	}
}

func setFire(e *ecs.ECS, held bool) {
	setAction(e, cfg.ActionFire, held)
}

func weaponOf(actor *donburi.Entry, gun cfg.GunType) *donburi.Entry {
	return components.Loadout.Get(actor).Guns[gun]
}

func drawGun(t *testing.T, e *ecs.ECS, actor *donburi.Entry, gun cfg.GunType) *donburi.Entry {
	t.Helper()
	if err := EquipGun(e, actor, gun); err != nil {
		t.Fatalf("EquipGun(%s): %v", gun, err)
	}
	runTicks(e, 40)
	entry := weaponOf(actor, gun)
	if phase := components.Weapon.Get(entry).Phase; phase != components.Drawn {
		t.Fatalf("%s phase = %v after raising, want Drawn", gun, phase)
	}
	return entry
}

func TestEquipRaisesWeapon(t *testing.T) {
	e, actor := newTestActor(t)

	if err := EquipGun(e, actor, cfg.GunRifle); err != nil {
		t.Fatal(err)
	}
	lo := components.Loadout.Get(actor)
	if lo.Current != cfg.GunRifle {
		t.Fatalf("current = %s, want Rifle", lo.Current)
	}

	rifle := weaponOf(actor, cfg.GunRifle)
	runTicks(e, 1)
	drop := components.Pose.Get(rifle).HolsterDrop
	if drop <= 0 || drop >= cfg.Pose.HolsterDrop {
		t.Errorf("drop after one tick = %v, want between 0 and %v", drop, cfg.Pose.HolsterDrop)
	}
	if components.Weapon.Get(rifle).Phase != components.Raising {
		t.Errorf("phase = %v, want Raising", components.Weapon.Get(rifle).Phase)
	}

	runTicks(e, 40)
	if components.Weapon.Get(rifle).Phase != components.Drawn {
		t.Errorf("phase = %v, want Drawn", components.Weapon.Get(rifle).Phase)
	}
	if components.Pose.Get(rifle).HolsterDrop != 0 {
		t.Errorf("drop = %v, want 0", components.Pose.Get(rifle).HolsterDrop)
	}
	if components.Weapon.Get(weaponOf(actor, cfg.GunCannon)).Phase != components.Holstered {
		t.Error("cannon left holster")
	}
}

func TestSwitchLowersBeforeRaising(t *testing.T) {
	e, actor := newTestActor(t)
	rifle := drawGun(t, e, actor, cfg.GunRifle)
	cannon := weaponOf(actor, cfg.GunCannon)

	if err := EquipGun(e, actor, cfg.GunCannon); err != nil {
		t.Fatal(err)
	}
	if components.Weapon.Get(rifle).Phase != components.Lowering {
		t.Fatalf("rifle phase = %v, want Lowering", components.Weapon.Get(rifle).Phase)
	}

	// Firing is blocked while the rifle goes down.
	setFire(e, true)
	runTicks(e, 5)
	if n := components.FireControl.Get(rifle).ShotsFired; n != 0 {
		t.Errorf("lowering rifle fired %d shots", n)
	}
	setFire(e, false)

	runTicks(e, 30)
	lo := components.Loadout.Get(actor)
	if lo.Current != cfg.GunCannon || lo.Pending != cfg.GunNone {
		t.Errorf("loadout = current %s pending %s, want Cannon/None", lo.Current, lo.Pending)
	}
	if components.Weapon.Get(rifle).Phase != components.Holstered {
		t.Errorf("rifle phase = %v, want Holstered", components.Weapon.Get(rifle).Phase)
	}
	if components.Weapon.Get(cannon).Phase == components.Holstered {
		t.Error("cannon not raised")
	}
}

func TestEquipErrorsAndHolster(t *testing.T) {
	e, actor := newTestActor(t)

	if err := EquipGun(e, actor, cfg.GunType(9)); !errors.Is(err, ErrGunNotInLoadout) {
		t.Errorf("err = %v, want ErrGunNotInLoadout", err)
	}

	drawGun(t, e, actor, cfg.GunRifle)
	if err := EquipGun(e, actor, cfg.GunRifle); err != nil {
		t.Errorf("re-equip drawn gun: %v", err)
	}
	if components.Weapon.Get(weaponOf(actor, cfg.GunRifle)).Phase != components.Drawn {
		t.Error("re-equipping the drawn gun lowered it")
	}

	if err := EquipGun(e, actor, cfg.GunNone); err != nil {
		t.Fatal(err)
	}
	runTicks(e, 40)
	if gun := CurrentGun(e, actor); gun != nil {
		t.Errorf("current gun = %s after holstering", gun.Type())
	}
}

func TestReequipWhileLowering(t *testing.T) {
	e, actor := newTestActor(t)
	rifle := drawGun(t, e, actor, cfg.GunRifle)

	if err := EquipGun(e, actor, cfg.GunCannon); err != nil {
		t.Fatal(err)
	}
	runTicks(e, 3)
	if err := EquipGun(e, actor, cfg.GunRifle); err != nil {
		t.Fatal(err)
	}
	runTicks(e, 30)

	lo := components.Loadout.Get(actor)
	if lo.Current != cfg.GunRifle {
		t.Errorf("current = %s, want Rifle", lo.Current)
	}
	if components.Weapon.Get(rifle).Phase == components.Holstered {
		t.Error("rifle not raised again")
	}
}

func TestRifleReloadCycle(t *testing.T) {
	e, actor := newTestActor(t)
	rifle := drawGun(t, e, actor, cfg.GunRifle)
	fc := components.FireControl.Get(rifle)
	GetOrCreateAudio(e).PendingSFX = nil

	setFire(e, true)
	runTicks(e, 1)
	if fc.ShotsFired != 1 || !fc.ReloadLocked {
		t.Fatalf("after shot: %+v", *fc)
	}
	events := DrainFireEvents(rifle)
	if len(events) != 1 || events[0].Gun != cfg.GunRifle {
		t.Errorf("fire events = %+v", events)
	}
	if len(DrainShots(rifle)) != 0 {
		t.Error("rifle requested a projectile")
	}

	setFire(e, false)
	runTicks(e, 20)
	if blend := components.Pose.Get(rifle).SupportBlend; blend < 0.5 {
		t.Errorf("support blend mid reload = %v", blend)
	}

	setFire(e, true)
	runTicks(e, 1)
	if fc.ShotsFired != 1 {
		t.Error("fired during reload")
	}
	setFire(e, false)

	runTicks(e, 70)
	if fc.ReloadLocked {
		t.Fatal("reload never completed")
	}

	var fire, bolts int
	for _, req := range GetOrCreateAudio(e).PendingSFX {
		switch {
		case req.Sound == cfg.SoundRifleFire && !req.Restart:
			fire++
		case req.Restart && (req.Sound == cfg.SoundBoltUp || req.Sound == cfg.SoundBoltBack ||
			req.Sound == cfg.SoundBoltForward || req.Sound == cfg.SoundBoltDown):
			bolts++
		}
	}
	if fire != 1 || bolts != 4 {
		t.Errorf("queued %d fire and %d bolt sounds, want 1 and 4", fire, bolts)
	}

	setFire(e, true)
	runTicks(e, 1)
	if fc.ShotsFired != 2 {
		t.Error("press after reload did not fire")
	}
}

func TestCannonLaunchesProjectile(t *testing.T) {
	e, actor := newTestActor(t)
	cannon := drawGun(t, e, actor, cfg.GunCannon)

	setFire(e, true)
	runTicks(e, 1)
	shots := DrainShots(cannon)
	if len(shots) != 1 {
		t.Fatalf("shots = %d, want 1", len(shots))
	}
	want := mgl64.Vec3{0, 0, cfg.Weapons[cfg.GunCannon].ProjectileSpeed}
	if !shots[0].Velocity.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("velocity = %v, want %v", shots[0].Velocity, want)
	}
	if components.FireControl.Get(cannon).ReloadLocked {
		t.Error("cannon locked after firing")
	}

	// Airborne cannon stays in cooldown until it lands.
	components.Actor.Get(actor).OnGround = false
	setFire(e, false)
	runTicks(e, 1)
	setFire(e, true)
	runTicks(e, 5)
	if n := components.FireControl.Get(cannon).ShotsFired; n != 1 {
		t.Errorf("airborne shots = %d", n-1)
	}
	components.Actor.Get(actor).OnGround = true
	runTicks(e, 1)
	if n := components.FireControl.Get(cannon).ShotsFired; n != 2 {
		t.Errorf("shots after landing = %d, want 2", n)
	}
}

func TestPausedWeaponDoesNotFire(t *testing.T) {
	e, actor := newTestActor(t)
	rifle := drawGun(t, e, actor, cfg.GunRifle)

	GetOrCreateClock(e).Paused = true
	setFire(e, true)
	runTicks(e, 10)
	if n := components.FireControl.Get(rifle).ShotsFired; n != 0 {
		t.Errorf("paused rifle fired %d shots", n)
	}
}

func TestWeaponOfRemovedActorIsSkipped(t *testing.T) {
	e, actor := newTestActor(t)
	cannon := drawGun(t, e, actor, cfg.GunCannon)

	e.World.Remove(actor.Entity())
	setFire(e, true)
	runTicks(e, 3)
	if n := components.FireControl.Get(cannon).ShotsFired; n != 0 {
		t.Errorf("ownerless cannon fired %d shots", n)
	}
}
