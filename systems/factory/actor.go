package factory

import (
	"github.com/automoto/viewmodel/archetypes"
	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateActor spawns a grounded actor carrying the given guns, all
// holstered. If the world has an arena the actor gets a body at its spawn.
func CreateActor(ecs *ecs.ECS, guns ...cfg.GunType) (*donburi.Entry, error) {
	var actor *donburi.Entry
	if _, ok := components.Arena.First(ecs.World); ok {
		actor = archetypes.Actor.Spawn(ecs, components.Body)
	} else {
		actor = archetypes.Actor.Spawn(ecs)
	}
	components.Actor.SetValue(actor, components.ActorData{
		OnGround:       true,
		JumpKitEnabled: true,
		CrosshairDir:   gamemath.AxisForward,
	})
	components.Loadout.SetValue(actor, components.LoadoutData{
		Guns: make(map[cfg.GunType]*donburi.Entry, len(guns)),
	})
	attachBody(ecs, actor)

	for _, gun := range guns {
		if _, err := CreateDefaultWeapon(ecs, actor, gun); err != nil {
			for _, w := range components.Loadout.Get(actor).Guns {
				DestroyWeapon(ecs, w)
			}
			ecs.World.Remove(actor.Entity())
			return nil, err
		}
	}
	return actor, nil
}

// CreateProjectile spawns a flying shot from a shot request.
func CreateProjectile(ecs *ecs.ECS, shot components.ShotRequest) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)
	components.Projectile.SetValue(p, components.ProjectileData{
		Position: shot.Muzzle,
		Velocity: shot.Velocity,
		Life:     cfg.Sandbox.ProjectileLife,
	})
	return p
}
