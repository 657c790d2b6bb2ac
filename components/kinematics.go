package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// KinematicSample is the immutable per-tick view of the actor consumed by
// the sway and fire systems.
type KinematicSample struct {
	VelocityDelta mgl64.Vec3
	YawDelta      float64
	Grounded      bool
	OnWall        bool
	CameraRoll    float64
	Dt            float64
}

// Airborne reports whether the actor touches neither ground nor wall.
func (s KinematicSample) Airborne() bool {
	return !s.Grounded && !s.OnWall
}

// KinematicsData stores the sampler state of one weapon.
type KinematicsData struct {
	PrevVelocity mgl64.Vec3
	HasPrevious  bool
	Sample       KinematicSample // sample taken this tick
}

var Kinematics = donburi.NewComponentType[KinematicsData]()
