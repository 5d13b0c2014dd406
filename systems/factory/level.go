package factory

import (
	"github.com/automoto/puffball/archetypes"
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/leveldata"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel records the active level. OriginX is the leftmost world X of the
// level, the reference point for the camera follow rule.
func CreateLevel(ecs *ecs.ECS, name string, data *leveldata.Level, originX float64) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:    name,
		OriginX: originX,
		Data:    data,
	})
	return level
}

// CreateGeometry adds the level's solids and exits to the space.
func CreateGeometry(ecs *ecs.ECS, data *leveldata.Level) {
	for _, r := range data.Solids {
		CreatePlatform(ecs, r)
	}
	for _, r := range data.Exits {
		CreateExit(ecs, r)
	}
}

func CreatePlatform(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	attachBody(ecs, platform, r.X, r.Y, cfg.Rect{W: r.W, H: r.H}, tags.KindPlatform)
	return platform
}

func CreateExit(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)
	attachBody(ecs, exit, r.X, r.Y, cfg.Rect{W: r.W, H: r.H}, tags.KindExit)
	return exit
}
