package config

import "github.com/automoto/viewmodel/animation"

// Animator layers
const (
	LayerBase    = 0
	LayerSupport = 1
	LayerCount   = 2
)

// Clip, tag, flag and event names shared with the weapon animator.
const (
	ClipIdle    = "Idle"
	ClipFire    = "Fire"
	ClipEquip   = "Equip"
	ClipUnequip = "Unequip"
	ClipEmpty   = "Empty"
	ClipReload  = "Reload"

	TagHold    = "Hold"
	TagInstant = "Instant"

	FlagUnequip = "Unequip"
	FlagReload  = "Reload"

	EventBoltUp         = "BoltUp"
	EventBoltBack       = "BoltBack"
	EventBoltForward    = "BoltForward"
	EventBoltDown       = "BoltDown"
	EventReloadComplete = "ReloadComplete"
)

// AnimationConfig holds the clip set built for each weapon's timeline.
type AnimationConfig struct {
	Clips []animation.Clip
	// Bool parameters that start a clip when raised
	Triggers map[string]string
	// Animation events mapped to restartable sounds
	EventSounds map[string]SoundID
}

var Animation AnimationConfig

func init() {
	Animation = AnimationConfig{
		Clips: []animation.Clip{
			{Name: ClipIdle, Layer: LayerBase, Length: 2, Loop: true},
			{Name: ClipFire, Layer: LayerBase, Length: 0.25, Next: ClipIdle},
			{Name: ClipEquip, Layer: LayerBase, Length: 0.35, Next: ClipIdle},
			{Name: ClipUnequip, Layer: LayerBase, Length: 0.3},
			{Name: ClipEmpty, Layer: LayerSupport, Static: true},
			{
				Name:   ClipReload,
				Layer:  LayerSupport,
				Length: 1.1,
				Tags:   []string{TagHold},
				Events: []animation.Event{
					{Name: EventBoltUp, At: 0.15},
					{Name: EventBoltBack, At: 0.35},
					{Name: EventBoltForward, At: 0.55},
					{Name: EventBoltDown, At: 0.75},
					{Name: EventReloadComplete, At: 1},
				},
				Next: ClipEmpty,
			},
		},
		Triggers: map[string]string{
			FlagReload: ClipReload,
		},
		EventSounds: map[string]SoundID{
			EventBoltUp:      SoundBoltUp,
			EventBoltBack:    SoundBoltBack,
			EventBoltForward: SoundBoltForward,
			EventBoltDown:    SoundBoltDown,
		},
	}
}
