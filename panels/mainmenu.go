package panels

import (
	"github.com/automoto/arena/assets"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/input"
	"github.com/automoto/arena/renderer"
	"github.com/automoto/arena/systems/factory"
)

// NewIntroPanel returns the first panel of a run: the title and quote images
// leading to the main menu, or the main menu itself when the intro is skipped.
func NewIntroPanel(ctx Context) Panel {
	if ctx.Options().SkipIntro() {
		return NewMainMenuPanel(ctx)
	}
	ctx.Audio().PlayMusic(assets.EvilIntro)
	return NewImagePanel(ctx, assets.IntroTitle, cfg.Intro.TitleSeconds, func() {
		ctx.SetPanel(NewImagePanel(ctx, assets.IntroQuote, cfg.Intro.QuoteSeconds, func() {
			ctx.SetPanel(NewMainMenuPanel(ctx))
		}))
	})
}

// MainMenuPanel starts a new game or exits.
type MainMenuPanel struct {
	ctx     Context
	widgets *widgets

	newGameButton *Button
	exitButton    *Button
}

func NewMainMenuPanel(ctx Context) *MainMenuPanel {
	ctx.Audio().PlayMusic(assets.PercIntro)

	p := &MainMenuPanel{
		ctx:     ctx,
		widgets: newWidgets(),
	}
	factory.CreateBackground(p.widgets.ecs, ctx.Textures().Texture(assets.MainMenu))

	p.newGameButton = NewRectButton(cfg.Menu.NewGameButton, func() {
		ctx.Audio().PlayMusic(assets.EvilIntro)
		ctx.SetPanel(NewCinematicPanel(ctx, assets.OpeningScroll, cfg.Cinematic.OpeningScrollSecondsPerImage, func() {
			ctx.SetPanel(NewChooseClassCreationPanel(ctx))
		}))
	})
	p.exitButton = NewRectButton(cfg.Menu.ExitButton, ctx.Quit)
	return p
}

func (p *MainMenuPanel) HandleEvent(e input.Event) {
	if e.Is(cfg.ActionQuit) || e.Is(cfg.ActionBack) {
		p.exitButton.Click()
		return
	}
	if !e.IsLeftClick() {
		return
	}
	if p.newGameButton.Contains(e.Point) {
		p.newGameButton.Click()
	} else if p.exitButton.Contains(e.Point) {
		p.exitButton.Click()
	}
}

func (p *MainMenuPanel) Tick(dt float64) {
	p.widgets.tick(dt)
}

func (p *MainMenuPanel) Render(r *renderer.Renderer) {
	r.ClearOriginal(cfg.Black)
	p.widgets.draw(r)
	r.SetCursor(cursor(p.ctx))
}
