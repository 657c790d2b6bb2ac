package systems

import (
	cfg "github.com/automoto/viewmodel/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the mute and volume keys and saves any change.
// Must run AFTER UpdateInput.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	audioData := GetOrCreateAudio(ecs)
	changed := false

	if GetAction(input, cfg.ActionMute).JustPressed {
		SetMuted(ecs, !audioData.Muted)
		changed = true
	}

	step := 0.0
	if GetAction(input, cfg.ActionVolumeUp).JustPressed {
		step += cfg.Audio.VolumeStep
	}
	if GetAction(input, cfg.ActionVolumeDown).JustPressed {
		step -= cfg.Audio.VolumeStep
	}
	if step != 0 {
		SetSFXVolume(ecs, audioData.SFXVolume+step)
		changed = true
	}

	if changed {
		SaveCurrentSettings(ecs)
	}
}
