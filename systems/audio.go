package systems

import (
	"io/fs"
	"log"
	"path"
	"sync"

	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/gamemath"
	"github.com/automoto/viewmodel/sfx"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - the device context can only be created once per process
var (
	globalAudioContext *audio.Context
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// InitAudio attaches a sound pool backed by fsys to the ECS and decodes
// every sound effect up front. Sounds that fail to load are logged and
// skipped.
func InitAudio(e *ecs.ECS, fsys fs.FS) {
	initGlobalAudio()

	loader := sfx.NewLoader(globalAudioContext, fsys)
	for _, p := range cfg.Sound.SFXPaths {
		if err := loader.Preload(assetPath(p)); err != nil {
			log.Printf("Warning: Could not preload sound %s: %v", p, err)
		}
	}

	audioData := GetOrCreateAudio(e)
	audioData.Pool = sfx.NewPool(loader.Load, effectiveVolume(audioData), cfg.Audio.MaxOneShotKey)
}

// UpdateAudio holds every sound while time is stopped, releases finished
// players and drains the sound queue. Must run AFTER UpdateClock.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if audioData.Pool == nil {
		audioData.PendingSFX = audioData.PendingSFX[:0]
		return
	}

	if TimeScale(GetOrCreateClock(e)) == 0 {
		audioData.Pool.Pause()
	} else {
		audioData.Pool.Resume()
	}

	audioData.Pool.Sweep()
	for _, req := range audioData.PendingSFX {
		playSFX(audioData.Pool, req)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(pool *sfx.Pool, req components.SFXRequest) {
	name, ok := cfg.Sound.Names[req.Sound]
	if !ok {
		return
	}
	p, ok := cfg.Sound.SFXPaths[req.Sound]
	if !ok {
		return
	}

	volume := 1.0
	if mult, ok := cfg.Sound.VolumeMultipliers[req.Sound]; ok {
		volume = mult
	}

	var err error
	if req.Restart {
		err = pool.PlayRestart(name, assetPath(p), volume)
	} else {
		err = pool.PlayOneShot(name, assetPath(p), volume)
	}
	if err != nil {
		log.Printf("Warning: Could not play sound %s: %v", name, err)
	}
}

func assetPath(p string) string {
	return path.Join(cfg.Audio.AssetDir, p)
}

// PlaySFX queues an overlapping one-shot sound effect
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, components.SFXRequest{Sound: sound})
}

// RestartSFX queues a sound that stops its previous instance first
func RestartSFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, components.SFXRequest{Sound: sound, Restart: true})
}

// SetSFXVolume changes the SFX volume, clamped to 0.0 - 1.0
func SetSFXVolume(e *ecs.ECS, volume float64) {
	volume = gamemath.Clamp01(volume)
	globalSFXVolume = volume
	audioData := GetOrCreateAudio(e)
	audioData.SFXVolume = volume
	applyMaster(audioData)
}

// SetMuted silences every sound without forgetting the volume
func SetMuted(e *ecs.ECS, muted bool) {
	globalMuted = muted
	audioData := GetOrCreateAudio(e)
	audioData.Muted = muted
	applyMaster(audioData)
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

func applyMaster(a *components.AudioData) {
	if a.Pool != nil {
		a.Pool.SetMaster(effectiveVolume(a))
	}
}

func effectiveVolume(a *components.AudioData) float64 {
	if a.Muted {
		return 0
	}
	return a.SFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			Muted:      globalMuted,
			PendingSFX: make([]components.SFXRequest, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
