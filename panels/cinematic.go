package panels

import (
	"github.com/automoto/arena/assets"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/input"
	"github.com/automoto/arena/renderer"
	"github.com/hajimehoshi/ebiten/v2"
)

// CinematicPanel plays a texture sequence at a fixed rate, then runs its
// ending action. It never loops.
type CinematicPanel struct {
	ctx    Context
	frames []*ebiten.Image

	secondsPerImage float64
	currentSeconds  float64
	imageIndex      int
	finished        bool

	skipButton *Button
}

// NewCinematicPanel creates a panel playing seq. ending runs once, either
// after the last frame or when the player skips.
func NewCinematicPanel(ctx Context, seq assets.TextureSequenceName, secondsPerImage float64, ending func()) *CinematicPanel {
	return &CinematicPanel{
		ctx:             ctx,
		frames:          ctx.Textures().Sequence(seq),
		secondsPerImage: secondsPerImage,
		skipButton:      NewHotkeyButton(ending),
	}
}

func (p *CinematicPanel) ImageIndex() int         { return p.imageIndex }
func (p *CinematicPanel) CurrentSeconds() float64 { return p.currentSeconds }
func (p *CinematicPanel) Finished() bool          { return p.finished }

func (p *CinematicPanel) HandleEvent(e input.Event) {
	if e.IsLeftClick() || e.Is(cfg.ActionSkip) {
		p.finish()
	}
}

func (p *CinematicPanel) Tick(dt float64) {
	if p.finished {
		return
	}
	if p.secondsPerImage <= 0 {
		p.imageIndex = max(len(p.frames)-1, 0)
		p.finish()
		return
	}

	p.currentSeconds += dt
	for p.currentSeconds >= p.secondsPerImage {
		p.currentSeconds -= p.secondsPerImage
		p.imageIndex++
	}

	if p.imageIndex >= len(p.frames) {
		p.imageIndex = max(len(p.frames)-1, 0)
		p.finish()
	}
}

func (p *CinematicPanel) finish() {
	if p.finished {
		return
	}
	p.finished = true
	p.skipButton.Click()
}

func (p *CinematicPanel) Render(r *renderer.Renderer) {
	r.ClearOriginal(cfg.Black)
	if p.imageIndex < len(p.frames) {
		r.DrawOriginal(p.frames[p.imageIndex], 0, 0)
	}
	r.SetCursor(nil)
}
