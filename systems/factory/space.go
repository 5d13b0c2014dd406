package factory

import (
	"github.com/automoto/puffball/archetypes"
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellSize, cellSize),
	})
	return space
}

// attachBody places e at (x, y), gives it a collision object shaped by hb and
// registers the object with the level space.
func attachBody(ecs *ecs.ECS, e *donburi.Entry, x, y float64, hb cfg.Rect, kind tags.Kind) *resolv.Object {
	components.Position.SetValue(e, math.Vec2{X: x, Y: y})
	components.Hitbox.SetValue(e, components.HitboxData{
		OffsetX: hb.X,
		OffsetY: hb.Y,
		Width:   hb.W,
		Height:  hb.H,
	})

	obj := resolv.NewObject(x+hb.X, y+hb.Y, hb.W, hb.H, kind.ResolvTag())
	obj.Data = e.Entity()
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

// watch makes e report contacts with the given kinds.
func watch(e *donburi.Entry, self tags.Kind, kinds ...tags.Kind) {
	components.Collider.SetValue(e, components.ColliderData{
		Kind:     self,
		Watches:  kinds,
		Touching: make(map[donburi.Entity]tags.Kind),
	})
}
