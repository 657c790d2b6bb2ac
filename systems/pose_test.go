package systems

import (
	"testing"

	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/gamemath"
	"github.com/automoto/viewmodel/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
)

const poseEps = 1e-9

func testRig() *components.RigData {
	barrel := gamemath.NewTransform("barrel", nil, mgl64.Vec3{0, 0, 1})
	center := gamemath.NewTransform("center", nil, mgl64.Vec3{0, 0, 0})
	stock := gamemath.NewTransform("stock", nil, mgl64.Vec3{0, 0, -1})
	return &components.RigData{
		Barrel: barrel,
		Center: center,
		Stock:  stock,
		Parts: []components.RigPart{
			components.NewRigPart(barrel),
			components.NewRigPart(center),
			components.NewRigPart(stock),
		},
		DominantHand: components.NewRigPart(gamemath.NewTransform("dominant", nil, mgl64.Vec3{0.1, -0.1, 0})),
		SupportHand:  components.NewRigPart(gamemath.NewTransform("support", nil, mgl64.Vec3{0, -0.1, 0.5})),
	}
}

func assertVec(t *testing.T, name string, got, want mgl64.Vec3) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, poseEps) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestComposePoseNeutral(t *testing.T) {
	pose := ComposePose(&components.SwayData{}, 10, 0)
	want := components.ComposedPose{Roll: 10 / cfg.Pose.CameraRollDiv}
	if pose != want {
		t.Errorf("pose = %+v, want %+v", pose, want)
	}
}

func TestComposePoseVertical(t *testing.T) {
	s := &components.SwayData{}
	s.VerticalSoft.Current = -0.5
	pose := ComposePose(s, 0, 0)
	assertNear(t, "down tilt", pose.Tilt, -0.5*cfg.Pose.DownTiltScale, poseEps)
	assertNear(t, "global up", pose.GlobalUp, -0.5/cfg.Pose.GlobalUpScale, poseEps)

	s.VerticalSoft.Current = 0.6
	pose = ComposePose(s, 0, 0)
	assertNear(t, "up tilt", pose.Tilt, 0.6, poseEps)
}

func TestComposePoseCrouched(t *testing.T) {
	s := &components.SwayData{CrouchFactor: 1, CrouchEase: 1}
	s.LateralSoft.Current = 10
	pose := ComposePose(s, 0, 0)

	assertNear(t, "right", pose.Right, cfg.Pose.CrouchRight, poseEps)
	assertNear(t, "up", pose.Up, cfg.Pose.CrouchUp, poseEps)
	assertNear(t, "roll", pose.Roll, cfg.Pose.CrouchRoll, poseEps)
	assertNear(t, "swing", pose.Swing, 10/cfg.Pose.SwingCrouch, poseEps)

	s.CrouchEase = 0
	pose = ComposePose(s, 0, 0)
	assertNear(t, "standing roll", pose.Roll, 10, poseEps)
	assertNear(t, "standing swing", pose.Swing, 10/cfg.Pose.SwingStand, poseEps)
}

func TestComposePoseReloadLean(t *testing.T) {
	pose := ComposePose(&components.SwayData{}, 0, 1)
	assertNear(t, "tilt", pose.Tilt, cfg.Pose.ReloadTilt, poseEps)
	assertNear(t, "up", pose.Up, -cfg.Pose.ReloadUp, poseEps)
	assertNear(t, "right", pose.Right, -cfg.Pose.ReloadRight, poseEps)
	assertNear(t, "roll", pose.Roll, -cfg.Pose.ReloadRoll, poseEps)
}

func TestApplyPoseScalesSupportHand(t *testing.T) {
	rig := testRig()
	restDominant := rig.DominantHand.Transform.WorldPosition()
	restSupport := rig.SupportHand.Transform.WorldPosition()

	ApplyPose(rig, components.ComposedPose{Up: 0.1, GlobalUp: 0.2}, 1, 0)
	assertVec(t, "dominant", rig.DominantHand.Transform.WorldPosition(), restDominant.Add(mgl64.Vec3{0, 0.3, 0}))
	assertVec(t, "support", rig.SupportHand.Transform.WorldPosition(), restSupport.Add(mgl64.Vec3{0, 0.2, 0}))

	ApplyPose(rig, components.ComposedPose{Up: 0.1, GlobalUp: 0.2}, 0, 0)
	assertVec(t, "unblended support", rig.SupportHand.Transform.WorldPosition(), restSupport.Add(mgl64.Vec3{0, 0.3, 0}))

	// Forward and right offsets are not scaled.
	ApplyPose(rig, components.ComposedPose{Forward: 0.1, Right: 0.05}, 1, 0)
	assertVec(t, "support forward", rig.SupportHand.Transform.WorldPosition(), restSupport.Add(mgl64.Vec3{0.05, 0, 0.1}))

	// A fully blended support hand ignores rotations.
	ApplyPose(rig, components.ComposedPose{Roll: 45, Swing: 30, Tilt: 20}, 1, 0)
	assertVec(t, "support rotated", rig.SupportHand.Transform.WorldPosition(), restSupport)
}

func TestApplyPoseRollsAboutBarrel(t *testing.T) {
	rig := testRig()
	ApplyPose(rig, components.ComposedPose{Roll: 90}, 0, 0)

	assertVec(t, "barrel", rig.Barrel.WorldPosition(), mgl64.Vec3{0, 0, 1})
	assertVec(t, "center", rig.Center.WorldPosition(), mgl64.Vec3{-1, 0, 1})
}

func rotateAbout(p, pivot, axis mgl64.Vec3, degrees float64) mgl64.Vec3 {
	q := mgl64.QuatRotate(mgl64.DegToRad(degrees), axis.Normalize())
	return pivot.Add(q.Rotate(p.Sub(pivot)))
}

func TestApplyPoseRotationOrder(t *testing.T) {
	rig, err := factory.BuildRig(cfg.Rigs[cfg.GunRifle])
	if err != nil {
		t.Fatal(err)
	}
	pv := rig.Pivots()
	pose := components.ComposedPose{Roll: 25, Swing: -15, Tilt: 35}

	rest := map[string]mgl64.Vec3{}
	for _, p := range rig.Parts {
		rest[p.Transform.Name] = p.Transform.WorldPosition()
	}

	ApplyPose(rig, pose, 0, 0)

	differs := false
	for _, p := range rig.Parts {
		name := p.Transform.Name
		want := rotateAbout(rest[name], pv.Barrel, pv.Up, pose.Roll)
		want = rotateAbout(want, pv.Center, pv.Right, pose.Swing)
		want = rotateAbout(want, pv.Stock, pv.Forward, pose.Tilt)
		assertVec(t, name, p.Transform.WorldPosition(), want)

		reversed := rotateAbout(rest[name], pv.Stock, pv.Forward, pose.Tilt)
		reversed = rotateAbout(reversed, pv.Center, pv.Right, pose.Swing)
		reversed = rotateAbout(reversed, pv.Barrel, pv.Up, pose.Roll)
		if !reversed.ApproxEqualThreshold(want, 1e-6) {
			differs = true
		}
	}
	if !differs {
		t.Error("reversed rotation order gives the same rig")
	}
}

func TestApplyPoseDoesNotAccumulate(t *testing.T) {
	rig := testRig()
	pose := components.ComposedPose{Forward: 0.02, Up: 0.01, GlobalUp: 0.05, Roll: 12, Swing: 3, Tilt: -4}

	ApplyPose(rig, pose, 0.5, 0.03)
	first := make([]gamemath.Pose, 0, len(rig.Parts)+2)
	for _, p := range rig.Parts {
		first = append(first, p.Transform.Pose())
	}
	first = append(first, rig.SupportHand.Transform.Pose())

	ApplyPose(rig, pose, 0.5, 0.03)
	for i, p := range rig.Parts {
		if !p.Transform.Pose().Position.ApproxEqualThreshold(first[i].Position, poseEps) {
			t.Errorf("part %s drifted: %v -> %v", p.Transform.Name, first[i].Position, p.Transform.Pose().Position)
		}
	}
	support := rig.SupportHand.Transform.Pose()
	if !support.Position.ApproxEqualThreshold(first[len(first)-1].Position, poseEps) {
		t.Errorf("support hand drifted")
	}
}

func TestApplyPoseHolsterDrop(t *testing.T) {
	rig := testRig()
	ApplyPose(rig, components.ComposedPose{}, 0, 0.12)
	assertVec(t, "barrel", rig.Barrel.WorldPosition(), mgl64.Vec3{0, -0.12, 1})
	assertVec(t, "support", rig.SupportHand.Transform.WorldPosition(), mgl64.Vec3{0, -0.22, 0.5})
}
