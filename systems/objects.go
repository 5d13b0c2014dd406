package systems

import (
	"github.com/automoto/puffball/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// overlapEpsilon keeps flush edges from counting as overlap.
const overlapEpsilon = 1e-6

var placed = donburi.NewQuery(filter.Contains(
	components.Object,
	components.Position,
	components.Hitbox,
))

// UpdateObjects moves every collision object to its entity's position.
func UpdateObjects(ecs *ecs.ECS) {
	placed.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		syncObject(components.Object.Get(e).Object, pos.X, pos.Y, components.Hitbox.Get(e))
	})
}

func syncObject(obj *resolv.Object, x, y float64, hb *components.HitboxData) {
	obj.X = x + hb.OffsetX
	obj.Y = y + hb.OffsetY
	obj.W = hb.Width
	obj.H = hb.Height
	obj.Update()
}

// spansOverlap reports whether [a, a+al) and [b, b+bl) share more than an edge.
func spansOverlap(a, al, b, bl float64) bool {
	return a < b+bl-overlapEpsilon && b < a+al-overlapEpsilon
}

// overlaps reports whether two objects' rectangles intersect.
func overlaps(a, b *resolv.Object) bool {
	return spansOverlap(a.X, a.W, b.X, b.W) && spansOverlap(a.Y, a.H, b.Y, b.H)
}
