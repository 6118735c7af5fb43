package panels

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

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

// ChooseClassPanel lists every class alphabetically in a scrolling list.
type ChooseClassPanel struct {
	ctx     Context
	widgets *widgets

	classes []*entities.CharacterClass
	list    *ListBox
	rows    []*donburi.Entry

	tooltip *donburi.Entry
	// tooltip text per class index, built on first hover
	tooltips map[int]string

	backButton *Button
	upButton   *Button
	downButton *Button
}

func NewChooseClassPanel(ctx Context) *ChooseClassPanel {
	classes := entities.Classes()
	slices.SortFunc(classes, func(a, b *entities.CharacterClass) int {
		return cmp.Compare(a.Name, b.Name)
	})
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}

	l := cfg.ClassList
	p := &ChooseClassPanel{
		ctx:      ctx,
		widgets:  newWidgets(),
		classes:  classes,
		list:     NewListBox(l.ListOrigin, l.ListWidth, l.RowHeight, l.MaxDisplayed, names),
		tooltips: make(map[int]string),
	}

	w := p.widgets.ecs
	factory.CreateBackground(w, ctx.Textures().Texture(assets.CharacterCreation))
	factory.CreateCenteredPicture(w, ctx.Textures().Texture(assets.PopUp), l.TitleCenter)
	factory.CreateTitle(w, gotext.Get("Choose thy class..."), fonts.C, l.TitleColor, l.TitleCenter)
	factory.CreatePicture(w, ctx.Textures().Texture(assets.UpDown), l.UpButton.Min)
	for i := 0; i < l.MaxDisplayed; i++ {
		p.rows = append(p.rows, factory.CreateLabel(w, "", fonts.A, l.TextColor, p.list.RowOrigin(i)))
	}
	p.tooltip = factory.CreateTooltip(w, fonts.A, cfg.Tooltip.TextColor)
	p.refreshRows()

	p.backButton = NewHotkeyButton(func() {
		ctx.SetPanel(NewChooseClassCreationPanel(ctx))
	})
	p.upButton = NewRectButton(l.UpButton, func() {
		p.list.ScrollUp()
		p.refreshRows()
	})
	p.downButton = NewRectButton(l.DownButton, func() {
		p.list.ScrollDown()
		p.refreshRows()
	})
	return p
}

// Classes returns the classes in list order.
func (p *ChooseClassPanel) Classes() []*entities.CharacterClass {
	return p.classes
}

func (p *ChooseClassPanel) refreshRows() {
	visible := p.list.Visible()
	for i, row := range p.rows {
		if i < len(visible) {
			setText(row, visible[i])
		} else {
			setText(row, "")
		}
	}
}

func (p *ChooseClassPanel) HandleEvent(e input.Event) {
	switch {
	case e.Is(cfg.ActionBack):
		p.backButton.Click()
	case e.Is(cfg.ActionScrollUp), e.WheelUp() && p.list.Contains(e.Point):
		p.upButton.Click()
	case e.Is(cfg.ActionScrollDown), e.WheelDown() && p.list.Contains(e.Point):
		p.downButton.Click()
	case e.IsLeftClick():
		p.handleClick(e)
	}
}

func (p *ChooseClassPanel) handleClick(e input.Event) {
	if p.list.Contains(e.Point) {
		index := p.list.ClickedIndex(e.Point)
		if index >= 0 && index < p.list.Len() {
			p.choose(index)
		}
		return
	}
	if p.upButton.Contains(e.Point) {
		p.upButton.Click()
	} else if p.downButton.Contains(e.Point) {
		p.downButton.Click()
	}
}

func (p *ChooseClassPanel) choose(index int) {
	class := p.classes[index].Clone()
	p.ctx.SetPanel(NewChooseNamePanel(p.ctx, class))
}

func (p *ChooseClassPanel) Tick(dt float64) {
	mouse := p.ctx.MousePosition()
	hideTooltip(p.tooltip)
	if p.list.Contains(mouse) {
		index := p.list.ClickedIndex(mouse)
		if index >= 0 && index < p.list.Len() {
			showTooltip(p.tooltip, p.TooltipText(index), mouse)
		}
	}
	p.widgets.tick(dt)
}

// TooltipText returns the hover description of the class at index, building
// it the first time it is asked for.
func (p *ChooseClassPanel) TooltipText(index int) string {
	if text, ok := p.tooltips[index]; ok {
		return text
	}
	text := classTooltip(p.classes[index], cfg.ClassList.MaxTooltipLine)
	p.tooltips[index] = text
	return text
}

func classTooltip(c *entities.CharacterClass, maxLine int) string {
	magic := gotext.Get("Cannot")
	if c.CastsMagic {
		magic = gotext.Get("Can")
	}
	var b strings.Builder
	b.WriteString(c.Name + "\n\n")
	b.WriteString(gotext.Get("%s class", c.Category.String()) + "\n")
	b.WriteString(gotext.Get("%s cast magic", magic) + "\n")
	b.WriteString(gotext.Get("Health: ") + strconv.Itoa(c.StartingHealth) + " + d" + strconv.Itoa(c.HealthDice) + "\n")
	b.WriteString(gotext.Get("Armors: ") + wrappedList(c.Armors, maxLine) + "\n")
	b.WriteString(gotext.Get("Shields: ") + wrappedList(c.Shields, maxLine) + "\n")
	b.WriteString(gotext.Get("Weapons: ") + wrappedList(c.Weapons, maxLine))
	return b.String()
}

// wrappedList sorts a copy of items by value and joins them with ", ",
// breaking onto an indented line once the names written since the last break
// exceed maxLine.
func wrappedList[T interface {
	cmp.Ordered
	fmt.Stringer
}](items []T, maxLine int) string {
	if len(items) == 0 {
		return gotext.Get("None") + "."
	}
	sorted := slices.Clone(items)
	slices.Sort(sorted)

	var b strings.Builder
	length := 0
	for i, item := range sorted {
		name := item.String()
		length += len(name)
		b.WriteString(name)
		if i < len(sorted)-1 {
			b.WriteString(", ")
			if length > maxLine {
				length = 0
				b.WriteString("\n   ")
			}
		}
	}
	b.WriteString(".")
	return b.String()
}

func (p *ChooseClassPanel) Render(r *renderer.Renderer) {
	r.ClearOriginal(cfg.Black)
	p.widgets.draw(r)
	r.SetCursor(cursor(p.ctx))
}
