package systems

import (
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the level clock by one fixed frame and runs every
// continuation that came due. Registered first so timed transitions land
// before the behaviour systems read state.
func UpdateClock(ecs *ecs.ECS) {
	factory.Scheduler(ecs.World).Advance(cfg.FrameDelta())
}
