package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFire
	ActionYawLeft
	ActionYawRight
	ActionJump
	ActionSlide
	ActionEquipRifle
	ActionEquipCannon
	ActionHolster
	ActionPause
	ActionMute
	ActionVolumeUp
	ActionVolumeDown
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionFire: {
				Keys:         []ebiten.Key{ebiten.KeyZ},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				// Right trigger
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			ActionYawLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionYawRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionSlide: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyC},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionEquipRifle: {
				Keys: []ebiten.Key{ebiten.Key1},
			},
			ActionEquipCannon: {
				Keys: []ebiten.Key{ebiten.Key2},
			},
			ActionHolster: {
				Keys: []ebiten.Key{ebiten.Key0},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionVolumeUp: {
				Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd},
			},
			ActionVolumeDown: {
				Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
			},
		},
	}
}
