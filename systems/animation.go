package systems

import (
	"github.com/automoto/viewmodel/animation"
	cfg "github.com/automoto/viewmodel/config"
)

// stepAnimator advances animators that run on the weapon clock and
// dispatches the events their clips crossed.
func (h weaponHandle) stepAnimator(anim animation.Animator, dt float64) {
	stepper, ok := anim.(animation.Stepper)
	if !ok {
		return
	}
	stepper.Advance(dt)
	for _, ev := range stepper.DrainEvents() {
		h.handleAnimationEvent(ev)
	}
}

func (h weaponHandle) handleAnimationEvent(name string) {
	if name == cfg.EventReloadComplete {
		ReloadComplete(h.entry)
		return
	}
	if sound, ok := cfg.Animation.EventSounds[name]; ok {
		RestartSFX(h.ecs, sound)
	}
}
