package systems

import (
	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// ComposePose maps the sway channels onto the additive rig transform.
// reloadMod is the weapon's reload posture lean, cameraRoll is in degrees.
func ComposePose(s *components.SwayData, cameraRoll, reloadMod float64) components.ComposedPose {
	p := cfg.Pose
	ease := s.CrouchEase
	vertical := s.VerticalSoft.Current
	lateral := s.LateralSoft.Current

	pose := components.ComposedPose{
		Forward:  s.Forward.Current,
		Right:    p.CrouchRight * ease,
		Up:       gamemath.Lerp(0, p.CrouchUp, ease),
		GlobalUp: vertical / p.GlobalUpScale,
		Roll:     gamemath.Lerp(lateral, p.CrouchRoll, ease),
		Swing:    lateral / gamemath.Lerp(p.SwingStand, p.SwingCrouch, ease),
		Tilt:     vertical,
	}
	if vertical < 0 {
		pose.Tilt = vertical * p.DownTiltScale
	}

	pose.Tilt += p.ReloadTilt * reloadMod
	pose.Up -= p.ReloadUp * reloadMod
	pose.Right -= p.ReloadRight * reloadMod
	pose.Roll -= p.ReloadRoll * reloadMod

	pose.Roll += cameraRoll / p.CameraRollDiv
	return pose
}

// ApplyPose resets the rig to rest and applies pose to every part and
// both hands. The support hand's local lift and rotations are scaled by
// 1 - supportBlend. drop lowers the whole rig in world space.
func ApplyPose(rig *components.RigData, pose components.ComposedPose, supportBlend, drop float64) {
	for i := range rig.Parts {
		rig.Parts[i].Transform.Restore(rig.Parts[i].Rest)
	}
	rig.DominantHand.Transform.Restore(rig.DominantHand.Rest)
	rig.SupportHand.Transform.Restore(rig.SupportHand.Rest)

	pivots := rig.Pivots()

	for i := range rig.Parts {
		applyToPart(rig.Parts[i].Transform, pivots, pose, 1, drop)
	}
	applyToPart(rig.DominantHand.Transform, pivots, pose, 1, drop)
	applyToPart(rig.SupportHand.Transform, pivots, pose, 1-supportBlend, drop)
}

// applyToPart translates locally, rotates roll -> swing -> tilt about
// their pivots, then lifts in world space. The order is significant.
func applyToPart(t *gamemath.Transform, pv components.PivotSet, pose components.ComposedPose, mod, drop float64) {
	offset := pose.LocalOffset()
	offset[1] *= mod
	t.TranslateLocal(offset)

	t.RotateAround(pv.Barrel, pv.Up, pose.Roll*mod)
	t.RotateAround(pv.Center, pv.Right, pose.Swing*mod)
	t.RotateAround(pv.Stock, pv.Forward, pose.Tilt*mod)

	t.TranslateWorld(mgl64.Vec3{0, pose.GlobalUp - drop, 0})
}
