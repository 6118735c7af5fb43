package input

import (
	"testing"

	cfg "github.com/automoto/arena/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestEventIs(t *testing.T) {
	tests := []struct {
		name   string
		event  Event
		action cfg.ActionID
		want   bool
	}{
		{"escape is back", Event{Kind: KeyDown, Key: ebiten.KeyEscape}, cfg.ActionBack, true},
		{"escape skips", Event{Kind: KeyDown, Key: ebiten.KeyEscape}, cfg.ActionSkip, true},
		{"space skips", Event{Kind: KeyDown, Key: ebiten.KeySpace}, cfg.ActionSkip, true},
		{"keypad enter skips", Event{Kind: KeyDown, Key: ebiten.KeyNumpadEnter}, cfg.ActionSkip, true},
		{"space is not back", Event{Kind: KeyDown, Key: ebiten.KeySpace}, cfg.ActionBack, false},
		{"up scrolls up", Event{Kind: KeyDown, Key: ebiten.KeyUp}, cfg.ActionScrollUp, true},
		{"gamepad A accepts", Event{Kind: GamepadButton, GamepadButton: ebiten.StandardGamepadButtonRightBottom}, cfg.ActionAccept, true},
		{"click is no action", Event{Kind: MouseDown, Button: ebiten.MouseButtonLeft}, cfg.ActionAccept, false},
		{"quit is no action", Event{Kind: Quit}, cfg.ActionQuit, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Is(tt.action); got != tt.want {
				t.Errorf("Is(%d) = %v, want %v", tt.action, got, tt.want)
			}
		})
	}
}

func TestEventMouseHelpers(t *testing.T) {
	left := Event{Kind: MouseDown, Button: ebiten.MouseButtonLeft}
	if !left.IsLeftClick() {
		t.Error("left click misclassified")
	}
	right := Event{Kind: MouseDown, Button: ebiten.MouseButtonRight}
	if right.IsLeftClick() {
		t.Error("right click reported as left click")
	}
	key := Event{Kind: KeyDown, Key: ebiten.KeyA}
	if key.IsLeftClick() {
		t.Error("key event reported as click")
	}

	up := Event{Kind: MouseWheel, WheelY: 1}
	down := Event{Kind: MouseWheel, WheelY: -1}
	if !up.WheelUp() || up.WheelDown() {
		t.Error("wheel up misclassified")
	}
	if !down.WheelDown() || down.WheelUp() {
		t.Error("wheel down misclassified")
	}
}
