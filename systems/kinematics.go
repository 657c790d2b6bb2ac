package systems

import (
	"github.com/automoto/viewmodel/components"
	"github.com/automoto/viewmodel/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// SampleKinematics builds this tick's sample from the actor snapshot and
// advances the stored previous velocity. The first sample after a reset
// has a zero velocity delta.
func SampleKinematics(k *components.KinematicsData, actor *components.ActorData, dt float64) components.KinematicSample {
	velocity := finiteVec(actor.Velocity)

	var delta mgl64.Vec3
	if k.HasPrevious {
		delta = velocity.Sub(k.PrevVelocity)
	}
	k.PrevVelocity = velocity
	k.HasPrevious = true

	k.Sample = components.KinematicSample{
		VelocityDelta: delta,
		YawDelta:      gamemath.Finite(actor.YawIncrease),
		Grounded:      actor.OnGround,
		OnWall:        actor.OnWall,
		CameraRoll:    gamemath.Finite(actor.CameraRoll),
		Dt:            dt,
	}
	return k.Sample
}

func finiteVec(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{gamemath.Finite(v[0]), gamemath.Finite(v[1]), gamemath.Finite(v[2])}
}
