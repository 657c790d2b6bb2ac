package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/viewmodel/animation"
	"github.com/automoto/viewmodel/archetypes"
	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrInvalidRig is wrapped by every rig validation failure.
var ErrInvalidRig = errors.New("invalid weapon rig")

// BuildRig creates the transforms of a rig layout. Parts and hands are
// children of a shared root; their current pose becomes the rest pose.
func BuildRig(layout cfg.RigLayout) (*components.RigData, error) {
	root := gamemath.NewTransform("root", nil, layout.Root)
	rig := &components.RigData{}

	byName := make(map[string]*gamemath.Transform, len(layout.Parts))
	for _, p := range layout.Parts {
		t := gamemath.NewTransform(p.Name, root, p.Offset)
		byName[p.Name] = t
		rig.Parts = append(rig.Parts, components.NewRigPart(t))
	}
	rig.Barrel = byName[layout.Barrel]
	rig.Center = byName[layout.Center]
	rig.Stock = byName[layout.Stock]
	rig.DominantHand = components.NewRigPart(gamemath.NewTransform("dominant_hand", root, layout.DominantHand))
	rig.SupportHand = components.NewRigPart(gamemath.NewTransform("support_hand", root, layout.SupportHand))

	if err := ValidateRig(rig); err != nil {
		return nil, err
	}
	return rig, nil
}

// ValidateRig checks that every pivot and hand is present and the rig has parts.
func ValidateRig(rig *components.RigData) error {
	if rig == nil {
		return fmt.Errorf("%w: nil rig", ErrInvalidRig)
	}
	switch {
	case rig.Barrel == nil:
		return fmt.Errorf("%w: missing barrel pivot", ErrInvalidRig)
	case rig.Center == nil:
		return fmt.Errorf("%w: missing center pivot", ErrInvalidRig)
	case rig.Stock == nil:
		return fmt.Errorf("%w: missing stock pivot", ErrInvalidRig)
	case len(rig.Parts) == 0:
		return fmt.Errorf("%w: no parts", ErrInvalidRig)
	case rig.DominantHand.Transform == nil:
		return fmt.Errorf("%w: missing dominant hand", ErrInvalidRig)
	case rig.SupportHand.Transform == nil:
		return fmt.Errorf("%w: missing support hand", ErrInvalidRig)
	}
	for i, p := range rig.Parts {
		if p.Transform == nil {
			return fmt.Errorf("%w: part %d is nil", ErrInvalidRig, i)
		}
	}
	return nil
}

// NewAnimator builds a clip timeline from cfg.Animation.
func NewAnimator() (*animation.Timeline, error) {
	tl, err := animation.NewTimeline(cfg.LayerCount, cfg.Animation.Clips, cfg.ClipIdle, cfg.ClipEmpty)
	if err != nil {
		return nil, fmt.Errorf("failed to build weapon animator: %w", err)
	}
	for param, clip := range cfg.Animation.Triggers {
		tl.BindTrigger(param, clip)
	}
	return tl, nil
}

// CreateWeapon spawns a holstered weapon owned by actor and adds it to
// the actor's loadout. anim may be nil; actor may not.
func CreateWeapon(ecs *ecs.ECS, actor *donburi.Entry, gun cfg.GunType, rig *components.RigData, anim animation.Animator) (*donburi.Entry, error) {
	if actor == nil || !actor.Valid() || !actor.HasComponent(components.Actor) {
		return nil, fmt.Errorf("create %s: %w: no owning actor", gun, ErrInvalidRig)
	}
	profile, ok := cfg.Weapons[gun]
	if !ok {
		return nil, fmt.Errorf("unknown gun type %d", gun)
	}
	if err := ValidateRig(rig); err != nil {
		return nil, fmt.Errorf("create %s: %w", gun, err)
	}

	weapon := archetypes.Weapon.Spawn(ecs)
	components.Weapon.SetValue(weapon, components.WeaponData{
		Type:    gun,
		Profile: profile,
		Owner:   actor,
		Phase:   components.Holstered,
	})
	components.Rig.SetValue(weapon, *rig)
	components.FireControl.SetValue(weapon, components.FireControlData{
		State:         components.FireReady,
		Policy:        profile.Policy,
		ReloadCapable: profile.ReloadLock,
	})
	components.Animator.SetValue(weapon, components.AnimatorData{Animator: anim})

	if actor.HasComponent(components.Loadout) {
		lo := components.Loadout.Get(actor)
		if lo.Guns == nil {
			lo.Guns = make(map[cfg.GunType]*donburi.Entry)
		}
		lo.Guns[gun] = weapon
	}
	return weapon, nil
}

// CreateDefaultWeapon builds the configured rig and animator for gun.
func CreateDefaultWeapon(ecs *ecs.ECS, actor *donburi.Entry, gun cfg.GunType) (*donburi.Entry, error) {
	layout, ok := cfg.Rigs[gun]
	if !ok {
		return nil, fmt.Errorf("create %s: %w: no layout", gun, ErrInvalidRig)
	}
	rig, err := BuildRig(layout)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", gun, err)
	}
	anim, err := NewAnimator()
	if err != nil {
		return nil, err
	}
	return CreateWeapon(ecs, actor, gun, rig, anim)
}

// DestroyWeapon removes a weapon and drops it from its owner's loadout.
func DestroyWeapon(ecs *ecs.ECS, weapon *donburi.Entry) {
	if !weapon.Valid() {
		return
	}
	w := components.Weapon.Get(weapon)
	if w.Owner != nil && w.Owner.Valid() && w.Owner.HasComponent(components.Loadout) {
		lo := components.Loadout.Get(w.Owner)
		if lo.Guns[w.Type] == weapon {
			delete(lo.Guns, w.Type)
		}
		if lo.Current == w.Type {
			lo.Current = cfg.GunNone
		}
		if lo.Pending == w.Type {
			lo.Pending = cfg.GunNone
		}
	}
	ecs.World.Remove(weapon.Entity())
}
