package tags

import "github.com/yohamta/donburi"

var (
	Actor      = donburi.NewTag().SetName("Actor")
	Weapon     = donburi.NewTag().SetName("Weapon")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for arena collision
const (
	ResolvSolid = "solid"
	ResolvActor = "Actor"
)
