package input

import (
	"image"
	"math"

	cfg "github.com/automoto/arena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Kind is the type of an input event
type Kind int

const (
	KeyDown Kind = iota
	MouseDown
	MouseWheel
	GamepadButton
	Quit
)

// Event is one discrete input occurrence within a frame. Point is the cursor
// position in original-resolution coordinates when the event was polled.
type Event struct {
	Kind          Kind
	Key           ebiten.Key
	Button        ebiten.MouseButton
	GamepadButton ebiten.StandardGamepadButton
	WheelY        float64
	Point         image.Point
}

// Is reports whether the event is a key or gamepad press bound to action.
func (e Event) Is(action cfg.ActionID) bool {
	switch e.Kind {
	case KeyDown:
		return cfg.Input.Bound(action, e.Key)
	case GamepadButton:
		return cfg.Input.BoundButton(action, e.GamepadButton)
	}
	return false
}

// IsLeftClick reports whether the event is a left mouse button press.
func (e Event) IsLeftClick() bool {
	return e.Kind == MouseDown && e.Button == ebiten.MouseButtonLeft
}

// WheelUp reports whether the event scrolls toward the top of a list.
func (e Event) WheelUp() bool {
	return e.Kind == MouseWheel && e.WheelY > 0
}

// WheelDown reports whether the event scrolls toward the bottom of a list.
func (e Event) WheelDown() bool {
	return e.Kind == MouseWheel && e.WheelY < 0
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Poller turns ebiten's polled input state into events. Buffers are reused
// across frames; the returned slice is valid until the next Poll.
type Poller struct {
	events     []Event
	keys       []ebiten.Key
	gamepadIDs []ebiten.GamepadID
}

// Poll collects this frame's events. toOriginal maps a window position into
// original-resolution coordinates.
func (p *Poller) Poll(toOriginal func(image.Point) image.Point) ([]Event, image.Point) {
	p.events = p.events[:0]
	cursor := toOriginal(image.Pt(ebiten.CursorPosition()))

	if ebiten.IsWindowBeingClosed() {
		p.events = append(p.events, Event{Kind: Quit, Point: cursor})
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		p.events = append(p.events, Event{Kind: KeyDown, Key: k, Point: cursor})
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			p.events = append(p.events, Event{Kind: MouseDown, Button: b, Point: cursor})
		}
	}

	if _, wy := ebiten.Wheel(); math.Abs(wy) >= cfg.Input.WheelThreshold {
		p.events = append(p.events, Event{Kind: MouseWheel, WheelY: wy, Point: cursor})
	}

	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])
	for _, id := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				p.events = append(p.events, Event{Kind: GamepadButton, GamepadButton: b, Point: cursor})
			}
		}
	}

	return p.events, cursor
}
