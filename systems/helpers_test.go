package systems

import (
	"math"
	"testing"

	"github.com/automoto/viewmodel/animation"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tick = 1.0 / 60

// fakeAnimator records the commands it receives and reports fixed layers.
type fakeAnimator struct {
	layers  map[int]animation.LayerState
	bools   map[string]bool
	played  []string
	weights map[int]float64
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{
		layers:  make(map[int]animation.LayerState),
		bools:   make(map[string]bool),
		weights: make(map[int]float64),
	}
}

func (f *fakeAnimator) Layer(index int) (animation.LayerState, bool) {
	s, ok := f.layers[index]
	return s, ok
}

func (f *fakeAnimator) Bool(name string) bool { return f.bools[name] }

func (f *fakeAnimator) SetBool(name string, value bool) { f.bools[name] = value }

func (f *fakeAnimator) Play(clip string) { f.played = append(f.played, clip) }

func (f *fakeAnimator) SetLayerWeight(index int, w float64) { f.weights[index] = w }

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func assertNear(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

// setAction holds or releases an action, keeping the previous frame so
// JustPressed works without polling devices.
func setAction(e *ecs.ECS, id cfg.ActionID, held bool) {
	input := getOrCreateInput(e)
	input.Previous[id] = input.Current[id]
	input.Current[id] = held
}
