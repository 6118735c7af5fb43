package panels

import (
	"image"

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

// ChooseRacePanel picks the home province on the world map. Choosing one
// starts the session.
type ChooseRacePanel struct {
	ctx     Context
	widgets *widgets
	player  entities.Player
	tooltip *donburi.Entry

	backButton      *Button
	provinceButtons []*Button
}

// NewChooseRacePanel creates the province map for a player whose name,
// gender and class are already chosen.
func NewChooseRacePanel(ctx Context, player entities.Player) *ChooseRacePanel {
	p := &ChooseRacePanel{
		ctx:     ctx,
		widgets: newWidgets(),
		player:  player,
	}
	l := cfg.Race
	w := p.widgets.ecs
	factory.CreateBackground(w, ctx.Textures().Texture(assets.RaceSelect))
	factory.CreateTitle(w, gotext.Get("From where dost thou hail, %s the %s?", player.Name, player.Class.Name),
		fonts.A, l.TextColor, l.TitleCenter)
	p.tooltip = factory.CreateTooltip(w, fonts.A, cfg.Tooltip.TextColor)

	p.backButton = NewHotkeyButton(func() {
		ctx.SetPanel(NewChooseGenderPanel(ctx, player.Class, player.Name))
	})
	for id := entities.Province(0); id < entities.ProvinceCount; id++ {
		rect, ok := l.Provinces[int(id)]
		if !ok {
			continue
		}
		p.provinceButtons = append(p.provinceButtons, NewRectButton(rect, func() {
			p.choose(id)
		}))
	}
	return p
}

func (p *ChooseRacePanel) choose(province entities.Province) {
	player := p.player
	player.Province = province
	p.ctx.SetGameData(entities.NewGameData(player))
	p.ctx.SetPanel(NewGameWorldPanel(p.ctx))
}

// provinceAt returns the province whose region contains pt.
func provinceAt(pt image.Point) (entities.Province, bool) {
	for id := entities.Province(0); id < entities.ProvinceCount; id++ {
		if rect, ok := cfg.Race.Provinces[int(id)]; ok && pt.In(rect) {
			return id, true
		}
	}
	return 0, false
}

func (p *ChooseRacePanel) HandleEvent(e input.Event) {
	if e.Is(cfg.ActionBack) {
		p.backButton.Click()
		return
	}
	if !e.IsLeftClick() {
		return
	}
	for _, b := range p.provinceButtons {
		if b.Contains(e.Point) {
			b.Click()
			return
		}
	}
}

func (p *ChooseRacePanel) Tick(dt float64) {
	mouse := p.ctx.MousePosition()
	if id, ok := provinceAt(mouse); ok {
		showTooltip(p.tooltip, gotext.Get("%s (%s)", id.String(), id.Race()), mouse)
	} else {
		hideTooltip(p.tooltip)
	}
	p.widgets.tick(dt)
}

func (p *ChooseRacePanel) Render(r *renderer.Renderer) {
	r.ClearOriginal(cfg.Black)
	p.widgets.draw(r)
	r.SetCursor(cursor(p.ctx))
}
