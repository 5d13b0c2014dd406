package systems

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput latches the keyboard into the Input singleton. It runs before
// UpdatePlayer.
func UpdateInput(ecs *ecs.ECS) {
	inputState(ecs).Latch(heldActions())
}

func heldActions() [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	for id, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			held[id] = held[id] || ebiten.IsKeyPressed(key)
		}
	}
	return held
}

// inputState returns the Input singleton, creating it on first use.
func inputState(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
