package factory

import (
	"image"
	"image/color"

	"github.com/automoto/arena/archetypes"
	"github.com/automoto/arena/components"
	"github.com/automoto/arena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBackground creates a full-frame picture drawn beneath everything else
func CreateBackground(ecs *ecs.ECS, img *ebiten.Image) *donburi.Entry {
	entry := archetypes.Background.Spawn(ecs)
	components.Picture.SetValue(entry, components.PictureData{Image: img})
	return entry
}

// CreatePicture creates a picture with its top-left corner at pos
func CreatePicture(ecs *ecs.ECS, img *ebiten.Image, pos image.Point) *donburi.Entry {
	entry := archetypes.Picture.Spawn(ecs)
	components.Picture.SetValue(entry, components.PictureData{
		Image:    img,
		Position: pos,
	})
	return entry
}

// CreateCenteredPicture creates a picture centered on center
func CreateCenteredPicture(ecs *ecs.ECS, img *ebiten.Image, center image.Point) *donburi.Entry {
	entry := CreatePicture(ecs, img, center)
	components.Picture.Get(entry).Centered = true
	return entry
}

// CreateLabel creates a text label with its top-left corner at pos
func CreateLabel(ecs *ecs.ECS, text string, font fonts.FontName, clr color.RGBA, pos image.Point) *donburi.Entry {
	entry := archetypes.Label.Spawn(ecs)
	components.Label.SetValue(entry, components.LabelData{
		Text:     text,
		Font:     font,
		Color:    clr,
		Position: pos,
	})
	return entry
}

// CreateTitle creates a label centered on center
func CreateTitle(ecs *ecs.ECS, text string, font fonts.FontName, clr color.RGBA, center image.Point) *donburi.Entry {
	entry := archetypes.Title.Spawn(ecs)
	components.Label.SetValue(entry, components.LabelData{
		Text:     text,
		Font:     font,
		Color:    clr,
		Position: center,
		Centered: true,
	})
	return entry
}

// CreateTooltip creates a hidden tooltip label. Panels fill in its text and
// position while the cursor hovers something.
func CreateTooltip(ecs *ecs.ECS, font fonts.FontName, clr color.RGBA) *donburi.Entry {
	entry := archetypes.Tooltip.Spawn(ecs)
	components.Label.SetValue(entry, components.LabelData{
		Font:   font,
		Color:  clr,
		Hidden: true,
	})
	return entry
}

// CreateFade creates a full-frame overlay that goes from opacity `from` to
// `to` over seconds.
func CreateFade(ecs *ecs.ECS, clr color.RGBA, from, to, seconds float32) *donburi.Entry {
	entry := archetypes.Fade.Spawn(ecs)
	components.Fade.SetValue(entry, components.FadeData{
		Tween: gween.New(from, to, seconds, ease.Linear),
		Color: clr,
		Alpha: from,
	})
	return entry
}
