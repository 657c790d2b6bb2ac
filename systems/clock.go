package systems

import (
	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock toggles pause and advances the simulation clock by one frame.
// Must run AFTER UpdateInput.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		clock.Paused = !clock.Paused
	}

	AdvanceClock(clock, 1/float64(cfg.C.TickRate))
}

// AdvanceClock sets the scaled delta for a frame of the given length.
// The delta is clamped to cfg.Sway.MaxDelta; a paused clock yields zero.
func AdvanceClock(clock *components.ClockData, frame float64) {
	clock.Tick++
	scale := TimeScale(clock)
	if scale <= 0 || frame <= 0 {
		clock.Delta = 0
		return
	}
	dt := frame * scale
	if dt > cfg.Sway.MaxDelta {
		dt = cfg.Sway.MaxDelta
	}
	clock.Delta = dt
}

// TimeScale returns the effective time scale, zero while paused.
func TimeScale(clock *components.ClockData) float64 {
	if clock.Paused {
		return 0
	}
	return clock.TimeScale
}

// GetOrCreateClock returns the singleton Clock component, creating it if needed
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
		components.Clock.SetValue(entry, components.ClockData{TimeScale: 1})
	}
	return components.Clock.Get(entry)
}
