package components

import (
	"github.com/automoto/viewmodel/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PivotSet is read from the rig once per tick and never written.
type PivotSet struct {
	Barrel  mgl64.Vec3
	Center  mgl64.Vec3
	Stock   mgl64.Vec3
	Up      mgl64.Vec3 // center pivot axes
	Right   mgl64.Vec3
	Forward mgl64.Vec3
}

// RigPart is a driven transform and the rest pose it is reset to every tick.
type RigPart struct {
	Transform *gamemath.Transform
	Rest      gamemath.Pose
}

// RigData is the set of transforms a weapon's pose is applied to. The
// presentation layer owns the transforms; the weapon core only moves them.
type RigData struct {
	Barrel *gamemath.Transform
	Center *gamemath.Transform
	Stock  *gamemath.Transform

	Parts        []RigPart
	DominantHand RigPart
	SupportHand  RigPart
}

// Pivots samples the pivot points and the center pivot's axes.
func (r *RigData) Pivots() PivotSet {
	return PivotSet{
		Barrel:  r.Barrel.WorldPosition(),
		Center:  r.Center.WorldPosition(),
		Stock:   r.Stock.WorldPosition(),
		Up:      r.Center.Up(),
		Right:   r.Center.Right(),
		Forward: r.Center.Forward(),
	}
}

// NewRigPart captures t's current pose as its rest pose.
func NewRigPart(t *gamemath.Transform) RigPart {
	return RigPart{Transform: t, Rest: t.Pose()}
}

var Rig = donburi.NewComponentType[RigData]()
