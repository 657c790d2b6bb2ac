package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Basis axes in local space. Right-handed, Y up, Z forward.
var (
	AxisRight   = mgl64.Vec3{1, 0, 0}
	AxisUp      = mgl64.Vec3{0, 1, 0}
	AxisForward = mgl64.Vec3{0, 0, 1}
)

// Pose is a position/rotation pair relative to a transform's parent.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Transform is a node in a rigid hierarchy. Position and Rotation are
// relative to Parent; a nil Parent means world space.
type Transform struct {
	Name     string
	Parent   *Transform
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform creates an unrotated transform at the given local position.
func NewTransform(name string, parent *Transform, position mgl64.Vec3) *Transform {
	return &Transform{
		Name:     name,
		Parent:   parent,
		Position: position,
		Rotation: mgl64.QuatIdent(),
	}
}

func (t *Transform) WorldRotation() mgl64.Quat {
	if t.Parent == nil {
		return t.Rotation
	}
	return t.Parent.WorldRotation().Mul(t.Rotation)
}

func (t *Transform) WorldPosition() mgl64.Vec3 {
	if t.Parent == nil {
		return t.Position
	}
	return t.Parent.WorldPosition().Add(t.Parent.WorldRotation().Rotate(t.Position))
}

func (t *Transform) SetWorldPosition(p mgl64.Vec3) {
	if t.Parent == nil {
		t.Position = p
		return
	}
	inv := t.Parent.WorldRotation().Inverse()
	t.Position = inv.Rotate(p.Sub(t.Parent.WorldPosition()))
}

func (t *Transform) SetWorldRotation(q mgl64.Quat) {
	if t.Parent == nil {
		t.Rotation = q
		return
	}
	t.Rotation = t.Parent.WorldRotation().Inverse().Mul(q)
}

// Up, Right and Forward return the transform's world-space axes.
func (t *Transform) Up() mgl64.Vec3      { return t.WorldRotation().Rotate(AxisUp) }
func (t *Transform) Right() mgl64.Vec3   { return t.WorldRotation().Rotate(AxisRight) }
func (t *Transform) Forward() mgl64.Vec3 { return t.WorldRotation().Rotate(AxisForward) }

// TranslateLocal offsets the transform in its parent's space.
func (t *Transform) TranslateLocal(d mgl64.Vec3) {
	t.Position = t.Position.Add(d)
}

// TranslateWorld offsets the transform in world space.
func (t *Transform) TranslateWorld(d mgl64.Vec3) {
	t.SetWorldPosition(t.WorldPosition().Add(d))
}

// RotateAround rotates the transform by degrees about a world-space axis
// passing through point. Both position and orientation are affected.
func (t *Transform) RotateAround(point, axis mgl64.Vec3, degrees float64) {
	if degrees == 0 || axis.Len() == 0 {
		return
	}
	q := mgl64.QuatRotate(mgl64.DegToRad(degrees), axis.Normalize())
	pos := t.WorldPosition()
	t.SetWorldPosition(point.Add(q.Rotate(pos.Sub(point))))
	t.SetWorldRotation(q.Mul(t.WorldRotation()).Normalize())
}

// Pose captures the local position and rotation.
func (t *Transform) Pose() Pose {
	return Pose{Position: t.Position, Rotation: t.Rotation}
}

// Restore sets the local position and rotation from a captured pose.
func (t *Transform) Restore(p Pose) {
	t.Position = p.Position
	t.Rotation = p.Rotation
}
