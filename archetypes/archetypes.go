package archetypes

import (
	"github.com/automoto/arena/components"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Background = newArchetype(
		cfg.LayerBackground,
		tags.Background,
		components.Picture,
	)
	Picture = newArchetype(
		cfg.LayerWidgets,
		components.Picture,
	)
	Label = newArchetype(
		cfg.LayerText,
		components.Label,
	)
	Title = newArchetype(
		cfg.LayerText,
		tags.Title,
		components.Label,
	)
	Tooltip = newArchetype(
		cfg.LayerOverlay,
		tags.Tooltip,
		components.Label,
	)
	Fade = newArchetype(
		cfg.LayerOverlay,
		components.Fade,
	)
	Clock = newArchetype(
		cfg.LayerBackground,
		components.Clock,
	)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(layer ecs.LayerID, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      layer,
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(a.layer, all...))
}
