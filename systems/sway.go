package systems

import (
	"github.com/automoto/viewmodel/animation"
	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/gamemath"
)

// SideGrip reports whether the weapon should lean into its side grip:
// the actor has the jump kit, is sliding, and the weapon is not being put away.
func SideGrip(actor *components.ActorData, anim animation.Animator) bool {
	if !actor.JumpKitEnabled {
		return false
	}
	if anim != nil {
		if base, ok := anim.Layer(cfg.LayerBase); ok && base.IsName(cfg.ClipUnequip) {
			return false
		}
	}
	return actor.Sliding
}

// VerticalKick is the raw vertical impulse caused by a change in vertical velocity.
func VerticalKick(velocityDeltaY float64) float64 {
	return -velocityDeltaY / cfg.Sway.KickScale
}

// StepSway advances every sway channel by one tick. A non-positive dt
// leaves every channel unchanged.
func StepSway(s *components.SwayData, sample components.KinematicSample, sideGrip, breathing bool) {
	c := cfg.Sway
	dt := sample.Dt
	if dt <= 0 {
		return
	}

	// Crouch blend
	s.SideGrip = sideGrip
	target := 0.0
	if sideGrip {
		target = 1
	}
	s.CrouchFactor = gamemath.Clamp01(gamemath.Approach(s.CrouchFactor, target, dt*c.CrouchSpeed))
	s.CrouchEase = gamemath.CosineEase(s.CrouchFactor)

	// Impulses
	dvy := sample.VelocityDelta.Y()
	s.Vertical.Current += VerticalKick(dvy)
	if sample.Airborne() {
		s.Vertical.Current += dt * gamemath.Lerp(c.AirDriftGrounded, c.AirDriftCrouched, s.CrouchEase)
	} else {
		s.Vertical.Current -= dvy / gamemath.Lerp(c.LandScaleStand, c.LandScaleCrouch, s.CrouchEase)
	}
	s.Lateral.Current -= sample.YawDelta / c.YawScale

	// Decay and soften
	settle(&s.Lateral, 0, c.LateralDecay, dt)
	settle(&s.Vertical, 0, c.VerticalDecay, dt)
	settle(&s.LateralSoft, s.Lateral.Current, c.LateralSoft, dt)

	rate := c.SoftenRiseRate
	if s.VerticalSoft.Current > s.Vertical.Current {
		rate = c.SoftenFallRate
	}
	settle(&s.VerticalSoft, s.Vertical.Current, rate, dt)
	s.VerticalSoft.Current = gamemath.Clamp(s.VerticalSoft.Current, -c.VerticalLimit, c.VerticalLimit)

	// Breathing
	if breathing {
		s.Forward.Current += dt / c.BreathingPeriod
	}
	settle(&s.Forward, 0, c.ForwardDecay, dt)
}

func settle(ch *components.DampedChannel, target, rate, dt float64) {
	ch.Target = target
	ch.Rate = rate
	ch.Current = gamemath.Damp(ch.Current, target, rate, dt)
}
