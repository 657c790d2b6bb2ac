package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/viewmodel/animation"
	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrGunNotInLoadout is returned when equipping a gun the actor does not carry.
var ErrGunNotInLoadout = errors.New("gun not in loadout")

// Gun is a weapon in an actor's hands.
type Gun interface {
	Type() cfg.GunType
	Entry() *donburi.Entry
	Tick(dt float64)
	OnEquip()
	OnUnequip()
}

// weaponHandle is the shared part of every gun: the ECS it lives in and
// its entry.
type weaponHandle struct {
	ecs   *ecs.ECS
	entry *donburi.Entry
}

func (h weaponHandle) Entry() *donburi.Entry { return h.entry }

func (h weaponHandle) Type() cfg.GunType {
	return components.Weapon.Get(h.entry).Type
}

// Rifle fires once per press and locks until its reload completes.
type Rifle struct{ weaponHandle }

func (r *Rifle) Tick(dt float64) { r.tick(dt, nil) }

// Cannon re-arms on landing and launches a projectile per shot.
type Cannon struct{ weaponHandle }

func (c *Cannon) Tick(dt float64) { c.tick(dt, c.launch) }

func (c *Cannon) launch() {
	w := components.Weapon.Get(c.entry)
	actor := components.Actor.Get(w.Owner)
	rig := components.Rig.Get(c.entry)
	fc := components.FireControl.Get(c.entry)

	dir := actor.CrosshairDir
	if dir.Len() == 0 {
		dir = rig.Center.Forward()
	}
	fc.PendingShots = append(fc.PendingShots, components.ShotRequest{
		Origin:   actor.CameraPosition,
		Muzzle:   actor.CameraPosition.Add(rig.Barrel.WorldPosition()),
		Velocity: dir.Normalize().Mul(w.Profile.ProjectileSpeed),
	})
}

// NewGun wraps a weapon entry in the Gun matching its type.
func NewGun(ecs *ecs.ECS, entry *donburi.Entry) Gun {
	h := weaponHandle{ecs: ecs, entry: entry}
	switch components.Weapon.Get(entry).Type {
	case cfg.GunRifle:
		return &Rifle{h}
	case cfg.GunCannon:
		return &Cannon{h}
	}
	return nil
}

// UpdateWeapons ticks every weapon that is not holstered and still has
// its owner. Must run AFTER UpdateActorMotion and BEFORE UpdateAudio.
func UpdateWeapons(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)

	var active []Gun
	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		w := components.Weapon.Get(entry)
		if !w.Active() || !w.Owner.Valid() {
			return
		}
		if gun := NewGun(ecs, entry); gun != nil {
			active = append(active, gun)
		}
	})

	for _, gun := range active {
		gun.Tick(clock.Delta)
	}
}

// tick runs one frame of the weapon core in its fixed stage order.
// onFire runs after a shot has been accepted.
func (h weaponHandle) tick(dt float64, onFire func()) {
	w := components.Weapon.Get(h.entry)
	actor := components.Actor.Get(w.Owner)
	anim := h.animator()
	clock := GetOrCreateClock(h.ecs)
	input := getOrCreateInput(h.ecs)

	h.stepAnimator(anim, dt)

	sample := SampleKinematics(components.Kinematics.Get(h.entry), actor, dt)

	pose := components.Pose.Get(h.entry)
	pose.SupportBlend = StepSupportBlend(pose.SupportBlend, anim, dt)

	fc := components.FireControl.Get(h.entry)
	fired := StepFireControl(fc, anim, FireInputs{
		Held:      GetAction(input, cfg.ActionFire).Pressed,
		TimeScale: TimeScale(clock),
		Grounded:  sample.Grounded,
		Blocked:   w.Phase == components.Lowering,
	})
	if fired {
		fc.PendingEvents = append(fc.PendingEvents, components.FireEvent{Gun: w.Type, Tick: clock.Tick})
		PlaySFX(h.ecs, w.Profile.FireSound)
		if onFire != nil {
			onFire()
		}
	}

	sway := components.Sway.Get(h.entry)
	StepSway(sway, sample, SideGrip(actor, anim), w.Profile.Breathing)

	h.stepHolster(w, pose, dt)
	if !w.Active() {
		return
	}

	pose.Pose = ComposePose(sway, sample.CameraRoll, w.Profile.CrouchReloadMod)
	ApplyPose(components.Rig.Get(h.entry), pose.Pose, pose.SupportBlend, pose.HolsterDrop)
}

func (h weaponHandle) animator() animation.Animator {
	if !h.entry.HasComponent(components.Animator) {
		return nil
	}
	return components.Animator.Get(h.entry).Animator
}

// OnEquip resets the weapon and starts raising it.
func (h weaponHandle) OnEquip() {
	w := components.Weapon.Get(h.entry)

	components.Sway.Get(h.entry).Reset()
	*components.Kinematics.Get(h.entry) = components.KinematicsData{}
	components.FireControl.Get(h.entry).Reset()
	components.Pose.SetValue(h.entry, components.PoseData{HolsterDrop: cfg.Pose.HolsterDrop})

	if anim := h.animator(); anim != nil {
		anim.SetBool(cfg.FlagUnequip, false)
		anim.SetBool(cfg.FlagReload, false)
		anim.Play(cfg.ClipEmpty)
		anim.Play(cfg.ClipEquip)
	}

	w.Phase = components.Raising
	w.Tween = gween.New(float32(cfg.Pose.HolsterDrop), 0, float32(cfg.Pose.EquipDuration), ease.OutCubic)
	RestartSFX(h.ecs, cfg.SoundEquip)
}

// OnUnequip starts lowering the weapon. Firing is blocked until it is
// raised again.
func (h weaponHandle) OnUnequip() {
	w := components.Weapon.Get(h.entry)
	if w.Phase == components.Holstered || w.Phase == components.Lowering {
		return
	}

	if anim := h.animator(); anim != nil {
		anim.SetBool(cfg.FlagUnequip, true)
		anim.Play(cfg.ClipUnequip)
	}

	from := components.Pose.Get(h.entry).HolsterDrop
	w.Phase = components.Lowering
	w.Tween = gween.New(float32(from), float32(cfg.Pose.HolsterDrop), float32(cfg.Pose.UnequipDuration), ease.InCubic)
}

func (h weaponHandle) stepHolster(w *components.WeaponData, pose *components.PoseData, dt float64) {
	if w.Tween == nil || dt <= 0 {
		return
	}
	v, done := w.Tween.Update(float32(dt))
	pose.HolsterDrop = float64(v)
	if !done {
		return
	}

	w.Tween = nil
	switch w.Phase {
	case components.Raising:
		w.Phase = components.Drawn
		pose.HolsterDrop = 0
	case components.Lowering:
		h.finishUnequip(w)
	}
}

func (h weaponHandle) finishUnequip(w *components.WeaponData) {
	components.Sway.Get(h.entry).Reset()
	components.FireControl.Get(h.entry).Reset()
	components.Pose.Get(h.entry).SupportBlend = 0

	if anim := h.animator(); anim != nil {
		anim.SetBool(cfg.FlagUnequip, false)
	}
	w.Phase = components.Holstered

	if w.Owner != nil && w.Owner.HasComponent(components.Loadout) {
		raisePending(h.ecs, components.Loadout.Get(w.Owner))
	}
}

// EquipGun switches the actor to gun. The current gun is lowered first and
// the new one raised once it is away. cfg.GunNone holsters.
func EquipGun(ecs *ecs.ECS, actor *donburi.Entry, gun cfg.GunType) error {
	lo := components.Loadout.Get(actor)
	if gun != cfg.GunNone {
		if _, ok := lo.Guns[gun]; !ok {
			return fmt.Errorf("equip %s: %w", gun, ErrGunNotInLoadout)
		}
	}
	lo.Selected = gun

	entry, ok := lo.Guns[lo.Current]
	if !ok {
		lo.Pending = gun
		raisePending(ecs, lo)
		return nil
	}

	w := components.Weapon.Get(entry)
	if gun == lo.Current && w.Phase != components.Lowering {
		return nil
	}
	lo.Pending = gun
	NewGun(ecs, entry).OnUnequip()
	return nil
}

func raisePending(ecs *ecs.ECS, lo *components.LoadoutData) {
	lo.Current = lo.Pending
	lo.Pending = cfg.GunNone

	entry, ok := lo.Guns[lo.Current]
	if !ok {
		lo.Current = cfg.GunNone
		return
	}
	if gun := NewGun(ecs, entry); gun != nil {
		gun.OnEquip()
	}
}

// CurrentGun returns the gun the actor holds, or nil when holstered.
func CurrentGun(ecs *ecs.ECS, actor *donburi.Entry) Gun {
	lo := components.Loadout.Get(actor)
	entry, ok := lo.Guns[lo.Current]
	if !ok {
		return nil
	}
	return NewGun(ecs, entry)
}

// DrainFireEvents returns and clears the fire events of a weapon entry.
func DrainFireEvents(entry *donburi.Entry) []components.FireEvent {
	fc := components.FireControl.Get(entry)
	out := append([]components.FireEvent(nil), fc.PendingEvents...)
	fc.PendingEvents = fc.PendingEvents[:0]
	return out
}

// DrainShots returns and clears the projectile requests of a weapon entry.
func DrainShots(entry *donburi.Entry) []components.ShotRequest {
	fc := components.FireControl.Get(entry)
	out := append([]components.ShotRequest(nil), fc.PendingShots...)
	fc.PendingShots = fc.PendingShots[:0]
	return out
}
