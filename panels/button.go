package panels

import "image"

// Button is a screen rectangle bound to an action. Hotkey buttons have no
// area and are only ever clicked directly.
type Button struct {
	rect   image.Rectangle
	hotkey bool
	action func()
}

// NewButton creates a button covering x <= px < x+w, y <= py < y+h.
func NewButton(x, y, w, h int, action func()) *Button {
	return &Button{rect: image.Rect(x, y, x+w, y+h), action: action}
}

// NewRectButton creates a button covering r.
func NewRectButton(r image.Rectangle, action func()) *Button {
	return &Button{rect: r, action: action}
}

// NewCenteredButton creates a w by h button centered on center.
func NewCenteredButton(center image.Point, w, h int, action func()) *Button {
	return NewButton(center.X-w/2, center.Y-h/2, w, h, action)
}

// NewHotkeyButton creates a button with no area.
func NewHotkeyButton(action func()) *Button {
	return &Button{hotkey: true, action: action}
}

func (b *Button) Rect() image.Rectangle {
	return b.rect
}

// Contains reports whether p is inside the button. Hotkey buttons contain
// nothing.
func (b *Button) Contains(p image.Point) bool {
	return !b.hotkey && p.In(b.rect)
}

// Click runs the button's action.
func (b *Button) Click() {
	b.action()
}
