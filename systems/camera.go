package systems

import (
	"github.com/automoto/puffball/components"
	"github.com/automoto/puffball/config"
	"github.com/automoto/puffball/systems/factory"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player horizontally, LeadX units ahead, for as
// long as the player is left of the level origin plus ThresholdX. Past that
// point the camera holds still. Y is fixed.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera, factory.Scheduler(e.World).Dt())

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player (could be dead), skip camera update
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	pos := components.Position.Get(playerEntry)

	if pos.X < level.OriginX+config.Camera.ThresholdX {
		camera.Position.X = pos.X + config.Camera.LeadX
		camera.Position.Y = config.Camera.FixedY
	}
}
