package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ComposedPose is the additive transform applied to the rig this tick.
// Angles are degrees.
type ComposedPose struct {
	Forward  float64 // local translation
	Right    float64
	Up       float64
	GlobalUp float64 // world-space lift
	Roll     float64 // about the barrel pivot, center up axis
	Swing    float64 // about the center pivot, center right axis
	Tilt     float64 // about the stock pivot, center forward axis
}

// LocalOffset returns the local translation as a vector in rig space.
func (p ComposedPose) LocalOffset() mgl64.Vec3 {
	return mgl64.Vec3{p.Right, p.Up, p.Forward}
}

// PoseData stores the last composed pose and the support-hand blend.
type PoseData struct {
	Pose         ComposedPose
	SupportBlend float64 // 1 = support hand fully driven by its animation layer
	HolsterDrop  float64 // extra world offset while equipping or unequipping
}

var Pose = donburi.NewComponentType[PoseData]()
