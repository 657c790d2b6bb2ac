package systems

import (
	"github.com/automoto/viewmodel/animation"
	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/gamemath"
	"github.com/yohamta/donburi"
)

// FireInputs are the per-tick signals the trigger state machine reads.
type FireInputs struct {
	Held      bool
	TimeScale float64
	Grounded  bool
	Blocked   bool // weapon is being lowered
}

// StepSupportBlend moves the support-hand blend toward the support layer's
// activity and writes the result back as that layer's weight.
func StepSupportBlend(blend float64, anim animation.Animator, dt float64) float64 {
	if anim == nil {
		return gamemath.Damp(blend, 0, cfg.Sway.SupportDetachRate, dt)
	}

	layer, ok := anim.Layer(cfg.LayerSupport)
	active := ok && (layer.NormalizedTime <= 1 || layer.HasTag(cfg.TagHold)) && layer.Speed > 0
	switch {
	case active && layer.HasTag(cfg.TagInstant):
		blend = 1
	case active:
		blend = gamemath.Damp(blend, 1, cfg.Sway.SupportAttachRate, dt)
	default:
		blend = gamemath.Damp(blend, 0, cfg.Sway.SupportDetachRate, dt)
	}

	anim.SetLayerWeight(cfg.LayerSupport, blend)
	return blend
}

// StepFireControl advances the trigger state machine by one tick and
// reports whether a shot was fired. A fired shot has already moved the
// state to cooldown and issued the animator commands.
func StepFireControl(fc *components.FireControlData, anim animation.Animator, in FireInputs) bool {
	switch fc.Policy {
	case cfg.SingleShotPerPress:
		fc.State = components.FireReady
	case cfg.AlwaysReadyWhenGrounded:
		if in.Grounded {
			fc.State = components.FireReady
		}
	}

	if !in.Held {
		fc.InputConsumed = false
	}

	if !canFire(fc, anim, in) {
		return false
	}

	fc.State = components.FireCooldown
	fc.InputConsumed = true
	fc.ShotsFired++
	if anim != nil {
		if fc.ReloadCapable {
			anim.SetBool(cfg.FlagReload, true)
		}
		anim.Play(cfg.ClipFire)
	}
	if fc.ReloadCapable {
		fc.ReloadLocked = true
	}
	return true
}

func canFire(fc *components.FireControlData, anim animation.Animator, in FireInputs) bool {
	if !in.Held || in.TimeScale <= 0 || in.Blocked {
		return false
	}
	if fc.InputConsumed || fc.State != components.FireReady {
		return false
	}
	if fc.ReloadCapable && fc.ReloadLocked {
		return false
	}
	if anim != nil && anim.Bool(cfg.FlagUnequip) {
		return false
	}
	return true
}

// ReloadComplete clears the reload lock of a weapon entry. It is the only
// way the lock is released.
func ReloadComplete(entry *donburi.Entry) {
	if !entry.HasComponent(components.FireControl) {
		return
	}
	fc := components.FireControl.Get(entry)
	fc.ReloadLocked = false

	if entry.HasComponent(components.Animator) {
		if anim := components.Animator.Get(entry).Animator; anim != nil {
			anim.SetBool(cfg.FlagReload, false)
		}
	}
}
