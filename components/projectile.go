package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ProjectileData is a launched shot flying through the sandbox.
type ProjectileData struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Life     float64 // seconds left before it is removed
}

var Projectile = donburi.NewComponentType[ProjectileData]()
