package systems

import (
	"log"
	"math"

	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/gamemath"
	"github.com/automoto/viewmodel/systems/factory"
	"github.com/automoto/viewmodel/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActorMotion drives the sandbox actor from input: yaw, jump,
// gravity, slide and camera bank. Actors with a body collide with the
// arena; the others move over a flat floor at height zero. It writes the
// snapshot the weapons read. Must run AFTER UpdateClock.
func UpdateActorMotion(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	input := getOrCreateInput(ecs)
	dt := clock.Delta

	tags.Actor.Each(ecs.World, func(entry *donburi.Entry) {
		a := components.Actor.Get(entry)
		a.YawIncrease = 0
		if dt <= 0 {
			return
		}
		steerActor(a, input, dt)
		if entry.HasComponent(components.Body) {
			moveBody(a, components.Body.Get(entry), dt)
		} else {
			moveFree(a, dt)
		}
	})
}

func steerActor(a *components.ActorData, input *components.InputData, dt float64) {
	s := cfg.Sandbox

	if GetAction(input, cfg.ActionYawLeft).Pressed {
		a.YawIncrease -= s.YawSpeed * dt
	}
	if GetAction(input, cfg.ActionYawRight).Pressed {
		a.YawIncrease += s.YawSpeed * dt
	}
	a.CameraRoll = gamemath.Damp(a.CameraRoll, -a.YawIncrease*s.BankPerYaw, s.BankDecay, dt)

	if a.OnGround && GetAction(input, cfg.ActionJump).JustPressed {
		a.Velocity[1] = s.JumpSpeed
		a.OnGround = false
	}
	a.Velocity[1] -= s.Gravity * dt

	// Slide speed is kept through the air
	if a.OnGround {
		a.Sliding = GetAction(input, cfg.ActionSlide).Pressed
		if a.Sliding {
			a.Velocity[2] = s.SlideSpeed
		} else {
			a.Velocity[2] = 0
		}
	}

	a.CrosshairDir = gamemath.AxisForward
}

func moveFree(a *components.ActorData, dt float64) {
	a.CameraPosition[1] += a.Velocity[1] * dt
	a.CameraPosition[2] += a.Velocity[2] * dt
	a.OnGround = a.CameraPosition[1] <= 0
	if a.OnGround {
		a.CameraPosition[1] = 0
		a.Velocity[1] = 0
	}
}

// moveBody resolves the actor's body against the arena solids, x first.
func moveBody(a *components.ActorData, body *components.BodyData, dt float64) {
	ppu := cfg.Arena.PixelsPerUnit
	obj := body.Object

	body.Yaw += a.YawIncrease
	body.Facing = 1
	if math.Cos(mgl64.DegToRad(body.Yaw)) < 0 {
		body.Facing = -1
	}

	a.OnWall = false
	if dx := a.Velocity[2] * body.Facing * dt * ppu; dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
				a.OnWall = true
			}
		}
		obj.X += dx
		obj.Update()
	}

	dy := -a.Velocity[1] * dt * ppu
	checkDist := dy
	if dy >= 0 {
		checkDist++
	}
	landed := false
	if check := obj.Check(0, checkDist, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			contact := check.ContactWithObject(solids[0])
			obj.Y += contact.Y()
			obj.Update()
			a.Velocity[1] = 0
			landed = dy >= 0
			dy = 0
		}
	}
	if dy != 0 {
		obj.Y += dy
		obj.Update()
	}
	a.OnGround = landed

	a.CameraPosition = mgl64.Vec3{
		0,
		(body.FloorY - (obj.Y + obj.H)) / ppu,
		(obj.X + obj.W/2) / ppu,
	}
}

// UpdateLoadout switches guns on the equip and holster actions.
func UpdateLoadout(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	target := cfg.GunNone
	switch {
	case GetAction(input, cfg.ActionEquipRifle).JustPressed:
		target = cfg.GunRifle
	case GetAction(input, cfg.ActionEquipCannon).JustPressed:
		target = cfg.GunCannon
	case GetAction(input, cfg.ActionHolster).JustPressed:
	default:
		return
	}

	equipped := false
	tags.Actor.Each(ecs.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Loadout) {
			return
		}
		if err := EquipGun(ecs, entry, target); err != nil {
			log.Printf("Warning: %v", err)
			return
		}
		equipped = true
	})
	if equipped {
		SaveCurrentSettings(ecs)
	}
}

// UpdateProjectiles turns queued shot requests into flying projectiles
// and moves them until they expire.
func UpdateProjectiles(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)

	var shots []components.ShotRequest
	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		shots = append(shots, DrainShots(entry)...)
	})
	for _, shot := range shots {
		factory.CreateProjectile(ecs, shot)
	}

	var expired []*donburi.Entry
	components.Projectile.Each(ecs.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		p.Position = p.Position.Add(p.Velocity.Mul(clock.Delta))
		p.Life -= clock.Delta
		if p.Life <= 0 {
			expired = append(expired, entry)
		}
	})
	for _, e := range expired {
		ecs.World.Remove(e.Entity())
	}
}

// UpdateMuzzleFlash consumes fire events and counts down the flash.
func UpdateMuzzleFlash(ecs *ecs.ECS) {
	components.MuzzleFlash.Each(ecs.World, func(entry *donburi.Entry) {
		flash := components.MuzzleFlash.Get(entry)
		if flash.Duration > 0 {
			flash.Duration--
		}
		for _, ev := range DrainFireEvents(entry) {
			flash.Duration = cfg.Sandbox.FlashFrames
			flash.Shots++
			flash.LastTick = ev.Tick
		}
	})
}

// ActorEntry returns the first actor in the world.
func ActorEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Actor.First(ecs.World)
}
