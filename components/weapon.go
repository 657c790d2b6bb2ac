package components

import (
	cfg "github.com/automoto/viewmodel/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HolsterPhase tracks the equip/unequip lifecycle of a weapon.
type HolsterPhase int

const (
	Holstered HolsterPhase = iota
	Raising
	Drawn
	Lowering
)

// WeaponData identifies a weapon entity and its lifecycle state.
type WeaponData struct {
	Type    cfg.GunType
	Profile cfg.WeaponProfile
	Owner   *donburi.Entry // actor holding the weapon
	Phase   HolsterPhase
	Tween   *gween.Tween // active raise/lower tween, nil when settled
}

// Active reports whether the weapon is ticked this frame.
func (w *WeaponData) Active() bool {
	return w.Phase != Holstered
}

var Weapon = donburi.NewComponentType[WeaponData]()

// LoadoutData lives on the actor and tracks which weapon is in hand.
type LoadoutData struct {
	Guns     map[cfg.GunType]*donburi.Entry
	Current  cfg.GunType
	Pending  cfg.GunType // gun to raise once the current one is lowered
	Selected cfg.GunType // last gun asked for, saved between runs
}

var Loadout = donburi.NewComponentType[LoadoutData]()
