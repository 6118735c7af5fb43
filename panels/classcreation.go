package panels

import (
	"math/rand/v2"

	"github.com/automoto/arena/assets"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/entities"
	"github.com/automoto/arena/fonts"
	"github.com/automoto/arena/input"
	"github.com/automoto/arena/renderer"
	"github.com/automoto/arena/systems/factory"
	"github.com/leonelquinteros/gotext"
	"github.com/yohamta/donburi"
)

// ChooseClassCreationPanel asks whether to pick a class from the list or have
// one chosen at random.
type ChooseClassCreationPanel struct {
	ctx     Context
	widgets *widgets
	tooltip *donburi.Entry

	backButton     *Button
	generateButton *Button
	selectButton   *Button
}

func NewChooseClassCreationPanel(ctx Context) *ChooseClassCreationPanel {
	ctx.Audio().PlayMusic(assets.Sheet)

	p := &ChooseClassCreationPanel{
		ctx:     ctx,
		widgets: newWidgets(),
	}
	l := cfg.ClassCreation
	w := p.widgets.ecs

	factory.CreateBackground(w, ctx.Textures().Texture(assets.CharacterCreation))
	factory.CreateCenteredPicture(w, ctx.Textures().Texture(assets.PopUp), l.TitleCenter)
	factory.CreateTitle(w, gotext.Get("How do you wish\nto select your class?"), fonts.C, l.TitleColor, l.TitleCenter)
	factory.CreateCenteredPicture(w, ctx.Textures().Texture(assets.PopUp2), l.GenerateCenter)
	factory.CreateTitle(w, gotext.Get("Generate\n(Answer questions)"), fonts.A, l.TitleColor, l.GenerateCenter)
	factory.CreateCenteredPicture(w, ctx.Textures().Texture(assets.PopUp2), l.SelectCenter)
	factory.CreateTitle(w, gotext.Get("Select\n(Choose from a list)"), fonts.A, l.TitleColor, l.SelectCenter)
	p.tooltip = factory.CreateTooltip(w, fonts.A, cfg.Tooltip.TextColor)

	p.backButton = NewHotkeyButton(func() {
		ctx.SetPanel(NewMainMenuPanel(ctx))
	})
	p.generateButton = NewCenteredButton(l.GenerateCenter, l.ButtonWidth, l.ButtonHeight, func() {
		classes := entities.Classes()
		ctx.SetPanel(NewChooseNamePanel(ctx, classes[rand.IntN(len(classes))]))
	})
	p.selectButton = NewCenteredButton(l.SelectCenter, l.ButtonWidth, l.ButtonHeight, func() {
		ctx.SetPanel(NewChooseClassPanel(ctx))
	})
	return p
}

func (p *ChooseClassCreationPanel) HandleEvent(e input.Event) {
	if e.Is(cfg.ActionBack) {
		p.backButton.Click()
		return
	}
	if !e.IsLeftClick() {
		return
	}
	if p.generateButton.Contains(e.Point) {
		p.generateButton.Click()
	} else if p.selectButton.Contains(e.Point) {
		p.selectButton.Click()
	}
}

func (p *ChooseClassCreationPanel) Tick(dt float64) {
	mouse := p.ctx.MousePosition()
	switch {
	case p.generateButton.Contains(mouse):
		showTooltip(p.tooltip, gotext.Get("Let fate choose\na class for you"), mouse)
	case p.selectButton.Contains(mouse):
		showTooltip(p.tooltip, gotext.Get("Choose from a list\nof all classes"), mouse)
	default:
		hideTooltip(p.tooltip)
	}
	p.widgets.tick(dt)
}

func (p *ChooseClassCreationPanel) Render(r *renderer.Renderer) {
	r.ClearOriginal(cfg.Black)
	p.widgets.draw(r)
	r.SetCursor(cursor(p.ctx))
}
