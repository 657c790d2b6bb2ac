package systems

import (
	"testing"

	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
)

func TestApplySavedSettings(t *testing.T) {
	resetAudioGlobals(t)
	e := newTestECS()

	if gun := ApplySavedSettings(e, nil); gun != cfg.GunRifle {
		t.Errorf("default gun = %s, want Rifle", gun)
	}

	gun := ApplySavedSettings(e, &SavedSettings{SFXVolume: 0.3, Muted: true, LastGun: int(cfg.GunCannon)})
	if gun != cfg.GunCannon {
		t.Errorf("gun = %s, want Cannon", gun)
	}
	a := GetOrCreateAudio(e)
	if a.SFXVolume != 0.3 || !a.Muted {
		t.Errorf("audio = volume %v muted %v", a.SFXVolume, a.Muted)
	}

	if gun := ApplySavedSettings(e, &SavedSettings{SFXVolume: 1, LastGun: 42}); gun != cfg.GunNone {
		t.Errorf("unknown saved gun = %s, want None", gun)
	}
}

func TestApplySavedSettingsGlobal(t *testing.T) {
	resetAudioGlobals(t)
	ApplySavedSettingsGlobal(&SavedSettings{SFXVolume: 0.25, Muted: true})

	a := GetOrCreateAudio(newTestECS())
	if a.SFXVolume != 0.25 || !a.Muted {
		t.Errorf("new audio component = volume %v muted %v", a.SFXVolume, a.Muted)
	}

	ApplySavedSettingsGlobal(nil)
	if GetSFXVolume() != 0.25 {
		t.Error("nil settings changed the volume")
	}
}

func TestCurrentSettingsTracksSelection(t *testing.T) {
	resetAudioGlobals(t)
	e, actor := newTestActor(t)
	SetSFXVolume(e, 0.4)

	if s := CurrentSettings(e); s.LastGun != int(cfg.GunNone) || s.SFXVolume != 0.4 || s.Muted {
		t.Errorf("settings = %+v", *s)
	}

	drawGun(t, e, actor, cfg.GunRifle)
	if err := EquipGun(e, actor, cfg.GunCannon); err != nil {
		t.Fatal(err)
	}
	// The cannon is still waiting for the rifle to go down.
	if lo := components.Loadout.Get(actor); lo.Current != cfg.GunRifle {
		t.Fatalf("current = %s, want Rifle while lowering", lo.Current)
	}
	s := CurrentSettings(e)
	if s.Gun() != cfg.GunCannon {
		t.Errorf("saved gun = %s, want Cannon", s.Gun())
	}
	if got := ApplySavedSettings(newTestECS(), s); got != cfg.GunCannon {
		t.Errorf("restored gun = %s, want Cannon", got)
	}
}

func TestSettingsWithoutStorage(t *testing.T) {
	if gdataManager != nil {
		t.Skip("persistence initialized by another test")
	}
	s, err := LoadSettings()
	if s != nil || err != nil {
		t.Errorf("LoadSettings = %v, %v; want nil, nil", s, err)
	}
	if err := SaveSettings(&SavedSettings{SFXVolume: 1}); err != nil {
		t.Errorf("SaveSettings: %v", err)
	}
}
