package renderer

import (
	"image"
	"image/color"
	"math"

	cfg "github.com/automoto/arena/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer owns the original-resolution frame buffer panels draw into and
// scales it onto the window with letterboxing.
type Renderer struct {
	original *ebiten.Image
	native   image.Point
	overlays []func(screen *ebiten.Image)
	cursor   *ebiten.Image
}

// New creates a renderer for a window of the given size.
func New(nativeWidth, nativeHeight int) *Renderer {
	return &Renderer{native: image.Pt(nativeWidth, nativeHeight)}
}

// SetNativeSize records the window's logical size.
func (r *Renderer) SetNativeSize(w, h int) {
	r.native = image.Pt(w, h)
}

func (r *Renderer) NativeSize() image.Point {
	return r.native
}

// Letterbox returns the largest rectangle inside a native area of the given
// size that shows the original frame at its display aspect, centered.
func Letterbox(native image.Point) image.Rectangle {
	displayW := float64(cfg.OriginalWidth)
	displayH := float64(cfg.OriginalHeight) * cfg.Renderer.PixelAspect
	scale := math.Min(float64(native.X)/displayW, float64(native.Y)/displayH)
	if scale <= 0 {
		return image.Rectangle{}
	}
	w := int(math.Round(displayW * scale))
	h := int(math.Round(displayH * scale))
	x := (native.X - w) / 2
	y := (native.Y - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

// NativeToOriginal maps a window position into original-resolution
// coordinates. Positions in the letterbox bars map outside the frame.
func (r *Renderer) NativeToOriginal(p image.Point) image.Point {
	box := Letterbox(r.native)
	if box.Empty() {
		return image.Pt(-1, -1)
	}
	fx := float64(p.X-box.Min.X) * float64(cfg.OriginalWidth) / float64(box.Dx())
	fy := float64(p.Y-box.Min.Y) * float64(cfg.OriginalHeight) / float64(box.Dy())
	return image.Pt(int(math.Floor(fx)), int(math.Floor(fy)))
}

// Original returns the original-resolution frame buffer, creating it on first use.
func (r *Renderer) Original() *ebiten.Image {
	if r.original == nil {
		r.original = ebiten.NewImage(cfg.OriginalWidth, cfg.OriginalHeight)
	}
	return r.original
}

// ClearOriginal fills the frame buffer with clr.
func (r *Renderer) ClearOriginal(clr color.Color) {
	r.Original().Fill(clr)
}

// DrawOriginal draws img with its top-left corner at (x, y) in the frame buffer.
func (r *Renderer) DrawOriginal(img *ebiten.Image, x, y int) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	r.Original().DrawImage(img, op)
}

// DrawNative queues a draw onto the window after the frame buffer is scaled.
// Widgets that hit-test in window coordinates draw here.
func (r *Renderer) DrawNative(draw func(screen *ebiten.Image)) {
	r.overlays = append(r.overlays, draw)
}

// SetCursor sets the image drawn at the mouse position; nil hides it.
func (r *Renderer) SetCursor(img *ebiten.Image) {
	r.cursor = img
}

// Present scales the frame buffer onto screen, runs queued native draws and
// draws the cursor at the native position.
func (r *Renderer) Present(screen *ebiten.Image, cursor image.Point) {
	screen.Fill(cfg.Renderer.LetterboxColor)

	box := Letterbox(r.native)
	if !box.Empty() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(
			float64(box.Dx())/float64(cfg.OriginalWidth),
			float64(box.Dy())/float64(cfg.OriginalHeight),
		)
		op.GeoM.Translate(float64(box.Min.X), float64(box.Min.Y))
		if cfg.Renderer.Smooth {
			op.Filter = ebiten.FilterLinear
		}
		screen.DrawImage(r.Original(), op)
	}

	for _, draw := range r.overlays {
		draw(screen)
	}
	r.overlays = r.overlays[:0]

	r.drawCursor(screen, cursor, box)
}

func (r *Renderer) drawCursor(screen *ebiten.Image, p image.Point, box image.Rectangle) {
	if r.cursor == nil || box.Empty() {
		return
	}
	scale := float64(box.Dx()) / float64(cfg.OriginalWidth) * cfg.Cursor.Scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale*cfg.Renderer.PixelAspect)
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	screen.DrawImage(r.cursor, op)
}

// Close releases the frame buffer.
func (r *Renderer) Close() {
	if r.original != nil {
		r.original.Deallocate()
		r.original = nil
	}
}
