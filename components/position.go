package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Position is an entity's origin in world units.
var Position = donburi.NewComponentType[math.Vec2]()

// HitboxData places the entity's collision object relative to its Position.
type HitboxData struct {
	OffsetX, OffsetY float64
	Width, Height    float64
}

var Hitbox = donburi.NewComponentType[HitboxData]()
