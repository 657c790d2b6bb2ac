package components

import "github.com/yohamta/donburi"

// DampedChannel is a scalar that decays toward Target at Rate (1/s).
type DampedChannel struct {
	Current float64
	Target  float64
	Rate    float64
}

// SwayData holds the smoothed channels driving the weapon pose.
type SwayData struct {
	Lateral      DampedChannel // yaw kick, decays to 0
	LateralSoft  DampedChannel // follows Lateral
	Vertical     DampedChannel // vertical kick, decays to 0
	VerticalSoft DampedChannel // follows Vertical asymmetrically, clamped
	Forward      DampedChannel // idle breathing drift, decays to 0

	CrouchFactor float64 // rate-limited side-grip blend in [0, 1]
	CrouchEase   float64 // cosine-eased CrouchFactor
	SideGrip     bool    // side-grip condition held this tick
}

// Reset returns every channel to neutral.
func (s *SwayData) Reset() {
	*s = SwayData{}
}

var Sway = donburi.NewComponentType[SwayData]()
