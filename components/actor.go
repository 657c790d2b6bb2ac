package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ActorData is the per-tick snapshot of the player the weapon is held by.
// It is written by the movement layer and only read by the weapon core.
type ActorData struct {
	Velocity       mgl64.Vec3
	YawIncrease    float64 // degrees turned this tick
	OnGround       bool
	OnWall         bool
	Sliding        bool
	CameraRoll     float64 // degrees
	JumpKitEnabled bool    // lateral-movement capability
	CameraPosition mgl64.Vec3
	CrosshairDir   mgl64.Vec3
}

var Actor = donburi.NewComponentType[ActorData]()
