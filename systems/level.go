package systems

import (
	"github.com/automoto/puffball/components"
	"github.com/yohamta/donburi/ecs"
)

// requestScene asks the running scene to switch levels at the end of the frame.
func requestScene(ecs *ecs.ECS, name, reason string) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	components.Level.Get(levelEntry).RequestScene(name, reason)
}
