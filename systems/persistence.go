package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/gamemath"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings is the sandbox state kept between runs: the sound
// settings and the gun last asked for.
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
	LastGun   int     `json:"lastGun"`
}

// Gun returns the saved gun, or cfg.GunNone if it is not a known gun.
func (s *SavedSettings) Gun() cfg.GunType {
	gun := cfg.GunType(s.LastGun)
	if _, ok := cfg.Weapons[gun]; !ok {
		return cfg.GunNone
	}
	return gun
}

var gdataManager *gdata.Manager

// InitPersistence opens the settings store
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "viewmodel",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings reads the saved settings. It returns nil when nothing is
// stored or the store is not open.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	settings.SFXVolume = gamemath.Clamp01(settings.SFXVolume)
	return &settings, nil
}

// SaveSettings writes s to the store. Without a store it does nothing.
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings collects the sound settings of the ECS and the gun the
// actor last selected.
func CurrentSettings(e *ecs.ECS) *SavedSettings {
	audioData := GetOrCreateAudio(e)
	s := &SavedSettings{
		SFXVolume: audioData.SFXVolume,
		Muted:     audioData.Muted,
	}
	if actor, ok := ActorEntry(e); ok && actor.HasComponent(components.Loadout) {
		s.LastGun = int(components.Loadout.Get(actor).Selected)
	}
	return s
}

// SaveCurrentSettings stores CurrentSettings.
func SaveCurrentSettings(e *ecs.ECS) {
	_ = SaveSettings(CurrentSettings(e))
}

// ApplySavedSettings applies loaded settings to the ECS and returns the
// gun to start with.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) cfg.GunType {
	if saved == nil {
		return cfg.GunRifle
	}
	SetSFXVolume(e, saved.SFXVolume)
	SetMuted(e, saved.Muted)
	return saved.Gun()
}

// ApplySavedSettingsGlobal applies the sound settings before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	globalSFXVolume = gamemath.Clamp01(saved.SFXVolume)
	globalMuted = saved.Muted
}
