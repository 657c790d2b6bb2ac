package components

import (
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/sfx"
	"github.com/yohamta/donburi"
)

// SFXRequest is a queued sound command.
type SFXRequest struct {
	Sound   cfg.SoundID
	Restart bool // restart the named instance instead of overlapping
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Pool       *sfx.Pool // nil until an audio device is available
	SFXVolume  float64   // 0.0 - 1.0
	Muted      bool
	PendingSFX []SFXRequest
}

var Audio = donburi.NewComponentType[AudioData]()
