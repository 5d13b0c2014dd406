package factory

import (
	"log"

	"github.com/automoto/puffball/archetypes"
	"github.com/automoto/puffball/components"
	"github.com/automoto/puffball/scheduler"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Scheduler: scheduler.New()})
	return clock
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

// Scheduler returns the level clock. Every level world has exactly one.
func Scheduler(w donburi.World) *scheduler.Scheduler {
	entry, ok := components.Clock.First(w)
	if !ok {
		log.Panic("factory: world has no clock")
	}
	return components.Clock.Get(entry).Scheduler
}

// Destroy removes an entity and its collision object. Destroying an entity
// that is already gone is a no-op.
func Destroy(ecs *ecs.ECS, entity donburi.Entity) {
	if entity == donburi.Null || !ecs.World.Valid(entity) {
		return
	}
	entry := ecs.World.Entry(entity)
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	entry.Remove()
}
