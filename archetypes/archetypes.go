package archetypes

import (
	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Actor = newArchetype(
		tags.Actor,
		components.Actor,
		components.Loadout,
	)
	Weapon = newArchetype(
		tags.Weapon,
		components.Weapon,
		components.Kinematics,
		components.Sway,
		components.Pose,
		components.Rig,
		components.FireControl,
		components.Animator,
		components.MuzzleFlash,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(all, cs...)...,
	))
	return e
}
