package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Weapon sounds
	SoundRifleFire
	SoundCannonFire
	// Bolt cycle
	SoundBoltUp
	SoundBoltBack
	SoundBoltForward
	SoundBoltDown
	// Equip
	SoundEquip
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	AssetDir      string // directory sound paths are resolved against
	MaxOneShotKey int    // one-shot key counter wraps past this value
	VolumeStep    float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	Names             map[SoundID]string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		AssetDir:      "assets",
		MaxOneShotKey: 500000,
		VolumeStep:    0.1,
	}

	Sound = SoundConfig{
		Names: map[SoundID]string{
			SoundRifleFire:   "rifle_fire",
			SoundCannonFire:  "cannon_fire",
			SoundBoltUp:      "bolt_up",
			SoundBoltBack:    "bolt_back",
			SoundBoltForward: "bolt_forward",
			SoundBoltDown:    "bolt_down",
			SoundEquip:       "equip",
		},
		SFXPaths: map[SoundID]string{
			SoundRifleFire:   "audio/sfx/rifle_fire.wav",
			SoundCannonFire:  "audio/sfx/cannon_fire.wav",
			SoundBoltUp:      "audio/sfx/bolt_up.wav",
			SoundBoltBack:    "audio/sfx/bolt_back.wav",
			SoundBoltForward: "audio/sfx/bolt_forward.wav",
			SoundBoltDown:    "audio/sfx/bolt_down.wav",
			SoundEquip:       "audio/sfx/equip.ogg",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundCannonFire: 1.5,
			SoundBoltUp:     0.8,
			SoundBoltDown:   0.8,
		},
	}
}
