package panels

import (
	"github.com/automoto/arena/assets"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/input"
	"github.com/automoto/arena/renderer"
	"github.com/automoto/arena/systems/factory"
)

// ImagePanel shows a single full-screen image for a while, fading in from
// black. Clicking or pressing a skip key ends it early.
type ImagePanel struct {
	widgets *widgets

	secondsToDisplay float64
	currentSeconds   float64
	done             bool

	skipButton *Button
}

// NewImagePanel creates a panel showing name for seconds before running ending.
func NewImagePanel(ctx Context, name assets.TextureName, seconds float64, ending func()) *ImagePanel {
	p := &ImagePanel{
		widgets:          newWidgets(),
		secondsToDisplay: seconds,
		skipButton:       NewHotkeyButton(ending),
	}
	factory.CreateBackground(p.widgets.ecs, ctx.Textures().Texture(name))
	factory.CreateFade(p.widgets.ecs, cfg.Black, 1, 0, cfg.Intro.FadeSeconds)
	return p
}

func (p *ImagePanel) HandleEvent(e input.Event) {
	if e.IsLeftClick() || e.Is(cfg.ActionSkip) {
		p.end()
	}
}

func (p *ImagePanel) Tick(dt float64) {
	p.widgets.tick(dt)
	p.currentSeconds += dt
	if p.currentSeconds > p.secondsToDisplay {
		p.end()
	}
}

func (p *ImagePanel) end() {
	if p.done {
		return
	}
	p.done = true
	p.skipButton.Click()
}

func (p *ImagePanel) Render(r *renderer.Renderer) {
	r.ClearOriginal(cfg.Black)
	p.widgets.draw(r)
	r.SetCursor(nil)
}
