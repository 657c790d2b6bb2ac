package components

import (
	"github.com/automoto/viewmodel/animation"
	"github.com/yohamta/donburi"
)

// AnimatorData attaches an animation controller to a weapon. A nil
// Animator is valid and never blocks.
type AnimatorData struct {
	Animator animation.Animator
}

var Animator = donburi.NewComponentType[AnimatorData]()
