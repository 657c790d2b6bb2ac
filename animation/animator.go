// Package animation defines the animation state source the weapon core
// queries each tick, and a small clip timeline that implements it.
package animation

// LayerState is a snapshot of the clip currently playing on one layer.
type LayerState struct {
	Name           string
	Tags           []string
	NormalizedTime float64 // 0 at clip start, 1 at clip end; keeps growing past the end for one-shot clips
	Speed          float64
}

// IsName reports whether the layer is playing the named clip.
func (s LayerState) IsName(name string) bool {
	return s.Name == name
}

// HasTag reports whether the playing clip carries the tag.
func (s LayerState) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Animator is the opaque animation controller attached to a weapon.
// Commands are fire-and-forget.
type Animator interface {
	Layer(index int) (LayerState, bool)
	Bool(name string) bool
	SetBool(name string, value bool)
	Play(clip string)
	SetLayerWeight(index int, weight float64)
}

// Stepper is implemented by animators that advance on the weapon's clock
// and report clip events.
type Stepper interface {
	Advance(dt float64)
	DrainEvents() []string
}
