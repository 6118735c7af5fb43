package systems

import (
	"github.com/automoto/arena/archetypes"
	"github.com/automoto/arena/components"
	"github.com/yohamta/donburi/ecs"
)

// AdvanceClock records the seconds elapsed this tick for time-based systems.
// Call before ecs.Update.
func AdvanceClock(ecs *ecs.ECS, dt float64) {
	clock := GetOrCreateClock(ecs)
	clock.DT = dt
	clock.Elapsed += dt
}

// GetOrCreateClock returns the singleton Clock component, creating it if needed
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = archetypes.Clock.Spawn(ecs)
	}
	return components.Clock.Get(entry)
}
