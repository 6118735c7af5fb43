package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionBack
	ActionAccept
	ActionSkip
	ActionScrollUp
	ActionScrollDown
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Mouse wheel movement below this is ignored
	WheelThreshold float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		WheelThreshold: 0.1,
		Bindings: map[ActionID]InputBinding{
			ActionBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionAccept: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionSkip: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyEscape, ebiten.KeyNumpadEnter},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionScrollUp: {
				Keys: []ebiten.Key{ebiten.KeyUp},
				// D-pad Up
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionScrollDown: {
				Keys: []ebiten.Key{ebiten.KeyDown},
				// D-pad Down
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyQ},
			},
		},
	}
}

// Bound reports whether key is bound to action.
func (c InputConfig) Bound(action ActionID, key ebiten.Key) bool {
	for _, k := range c.Bindings[action].Keys {
		if k == key {
			return true
		}
	}
	return false
}

// BoundButton reports whether a standard gamepad button is bound to action.
func (c InputConfig) BoundButton(action ActionID, btn ebiten.StandardGamepadButton) bool {
	for _, b := range c.Bindings[action].StandardGamepadButtons {
		if b == btn {
			return true
		}
	}
	return false
}
