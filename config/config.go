package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// Config holds general sandbox configuration
type Config struct {
	Width    int
	Height   int
	TickRate int // simulation ticks per second
}

// SwayConfig contains the damping constants of the sway channels.
// Rates are in 1/s and feed gamemath.Damp.
type SwayConfig struct {
	// Crouch / side-grip blend
	CrouchSpeed float64 // blend units per second, both directions

	// Vertical channel
	KickScale        float64 // velocity delta divisor for the vertical kick
	AirDriftGrounded float64 // airborne drift per second at crouch ease 0
	AirDriftCrouched float64 // airborne drift per second at crouch ease 1
	LandScaleStand   float64 // landing absorb divisor at crouch ease 0
	LandScaleCrouch  float64 // landing absorb divisor at crouch ease 1
	VerticalDecay    float64
	SoftenFallRate   float64 // softened value above raw target
	SoftenRiseRate   float64 // softened value at or below raw target
	VerticalLimit    float64 // symmetric clamp of the softened channel

	// Lateral channel
	YawScale     float64 // yaw delta divisor
	LateralDecay float64
	LateralSoft  float64

	// Breathing / forward channel
	BreathingPeriod float64 // seconds per unit of forward drift
	ForwardDecay    float64

	// Support hand layer blend
	SupportAttachRate float64
	SupportDetachRate float64

	// Largest frame delta fed to the damper; longer frames are clamped to it
	MaxDelta float64
}

// PoseConfig contains the fixed coefficients of the composed pose.
type PoseConfig struct {
	CrouchRight     float64 // local right offset at full crouch ease
	CrouchUp        float64 // local up offset at full crouch ease
	GlobalUpScale   float64 // softened vertical divisor for world up
	CrouchRoll      float64 // roll target at full crouch ease, degrees
	SwingStand      float64 // lateral divisor for swing at crouch ease 0
	SwingCrouch     float64 // lateral divisor for swing at crouch ease 1
	DownTiltScale   float64 // tilt multiplier for negative vertical
	CameraRollDiv   float64
	ReloadTilt      float64
	ReloadUp        float64
	ReloadRight     float64
	ReloadRoll      float64
	HolsterDrop     float64 // world units the weapon sits below rest when holstered
	EquipDuration   float64 // seconds
	UnequipDuration float64
}

// DebugConfig contains debug options for the sandbox
type DebugConfig struct {
	ShowChannels bool
	ShowPivots   bool
}

// SandboxConfig drives the simulated actor in the sandbox scene.
type SandboxConfig struct {
	YawSpeed        float64 // degrees per second
	JumpSpeed       float64
	Gravity         float64
	SlideSpeed      float64
	BankPerYaw      float64 // camera roll degrees per degree/tick of yaw
	BankDecay       float64
	ViewScale       float64 // pixels per world unit in the debug view
	ProjectileLife  float64 // seconds a launched shot stays in the world
	FlashFrames     int
	Background      color.RGBA
	PartColor       color.RGBA
	HandColor       color.RGBA
	PivotColor      color.RGBA
	ProjectileColor color.RGBA
}

// ArenaConfig describes the side-view collision world of the sandbox.
type ArenaConfig struct {
	Path          string  // TMX file, relative to the asset filesystem
	CellSize      int     // resolv space cell size in pixels
	PixelsPerUnit float64 // arena pixels per world unit
	BodyWidth     float64
	BodyHeight    float64
	MinimapScale  float64
	SolidColor    color.RGBA
	BodyColor     color.RGBA
}

// Global configuration instances
var C *Config
var Sway SwayConfig
var Pose PoseConfig
var Debug DebugConfig
var Sandbox SandboxConfig
var Arena ArenaConfig

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TickRate: 60,
	}

	Sway = SwayConfig{
		CrouchSpeed: 4,

		KickScale:        15,
		AirDriftGrounded: 2,
		AirDriftCrouched: 1,
		LandScaleStand:   25,
		LandScaleCrouch:  50,
		VerticalDecay:    8,
		SoftenFallRate:   10,
		SoftenRiseRate:   5,
		VerticalLimit:    1.3,

		YawScale:     3,
		LateralDecay: 20,
		LateralSoft:  20,

		BreathingPeriod: 1.2,
		ForwardDecay:    8,

		SupportAttachRate: 1 / 0.05,
		SupportDetachRate: 1 / 0.25,

		MaxDelta: 0.25,
	}

	Pose = PoseConfig{
		CrouchRight:     -0.02,
		CrouchUp:        0.02,
		GlobalUpScale:   15,
		CrouchRoll:      60,
		SwingStand:      10,
		SwingCrouch:     5,
		DownTiltScale:   10,
		CameraRollDiv:   2,
		ReloadTilt:      5,
		ReloadUp:        0.02,
		ReloadRight:     0.005,
		ReloadRoll:      5,
		HolsterDrop:     0.12,
		EquipDuration:   0.35,
		UnequipDuration: 0.3,
	}

	Debug = DebugConfig{
		ShowChannels: true,
		ShowPivots:   true,
	}

	Sandbox = SandboxConfig{
		YawSpeed:        180,
		JumpSpeed:       6,
		Gravity:         18,
		SlideSpeed:      9,
		BankPerYaw:      1.5,
		BankDecay:       6,
		ViewScale:       900,
		ProjectileLife:  1.5,
		FlashFrames:     4,
		Background:      color.RGBA{R: 20, G: 22, B: 28, A: 255},
		PartColor:       color.RGBA{R: 200, G: 200, B: 210, A: 255},
		HandColor:       color.RGBA{R: 255, G: 180, B: 50, A: 255},
		PivotColor:      color.RGBA{R: 100, G: 180, B: 255, A: 255},
		ProjectileColor: color.RGBA{R: 255, G: 90, B: 60, A: 255},
	}

	Arena = ArenaConfig{
		Path:          "assets/arena.tmx",
		CellSize:      16,
		PixelsPerUnit: 32,
		BodyWidth:     12,
		BodyHeight:    28,
		MinimapScale:  0.25,
		SolidColor:    color.RGBA{R: 70, G: 74, B: 90, A: 255},
		BodyColor:     color.RGBA{R: 120, G: 220, B: 140, A: 255},
	}
}
