package components

import (
	"github.com/automoto/viewmodel/arena"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ArenaData is the collision world of the sandbox (singleton component).
type ArenaData struct {
	Space  *resolv.Space
	Layout *arena.Layout
}

var Arena = donburi.NewComponentType[ArenaData]()

// BodyData is the actor's collision box in the arena.
type BodyData struct {
	Object *resolv.Object
	Facing float64 // +1 or -1 along the arena's x axis
	Yaw    float64 // accumulated yaw in degrees, picks Facing
	FloorY float64 // spawn floor height in pixels; camera height is measured from it
}

var Body = donburi.NewComponentType[BodyData]()
