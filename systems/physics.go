package systems

import (
	"math"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/systems/factory"
	"github.com/automoto/puffball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var bodies = donburi.NewQuery(filter.Contains(
	components.Body,
	components.Position,
	components.Hitbox,
	components.Object,
))

// UpdatePhysics integrates gravity and requested movement for every body and
// resolves it against solid geometry one axis at a time. Static bodies only
// follow their requested movement and never collide.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := factory.Scheduler(ecs.World).Dt()

	bodies.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		pos := components.Position.Get(e)

		dx := (body.VelX + body.MoveX) * dt
		body.MoveX = 0
		if !body.Static {
			body.VelY = math.Min(body.VelY+cfg.Physics.Gravity*dt, cfg.Physics.MaxFallSpeed)
		}
		dy := (body.VelY + body.MoveY) * dt
		body.MoveY = 0

		if body.Static {
			pos.X += dx
			pos.Y += dy
			return
		}

		obj := components.Object.Get(e).Object
		hb := components.Hitbox.Get(e)
		syncObject(obj, pos.X, pos.Y, hb)

		if dx != 0 {
			dx, _ = resolveHorizontal(obj, dx)
			pos.X += dx
			syncObject(obj, pos.X, pos.Y, hb)
		}

		wasGrounded := body.Grounded
		body.Grounded = false
		if dy != 0 {
			var blocked bool
			dy, blocked = resolveVertical(obj, dy)
			if blocked {
				if body.VelY > 0 {
					body.Grounded = true
				}
				body.VelY = 0
			}
			pos.Y += dy
			syncObject(obj, pos.X, pos.Y, hb)
		}

		if body.Grounded && !wasGrounded && e.HasComponent(components.DoubleJump) {
			jumps := components.DoubleJump.Get(e)
			jumps.Remaining = jumps.Max
		}
	})
}

// UpdateMovers moves constant-velocity entities. They pass through geometry.
func UpdateMovers(ecs *ecs.ECS) {
	dt := factory.Scheduler(ecs.World).Dt()
	components.Mover.Each(ecs.World, func(e *donburi.Entry) {
		mover := components.Mover.Get(e)
		pos := components.Position.Get(e)
		pos.X += mover.VelX * dt
		pos.Y += mover.VelY * dt
	})
}

// resolveHorizontal shortens dx so obj stops flush against the first solid in
// its path.
func resolveHorizontal(obj *resolv.Object, dx float64) (float64, bool) {
	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		return dx, false
	}

	blocked := false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !spansOverlap(obj.Y, obj.H, solid.Y, solid.H) {
			continue
		}
		switch {
		case dx > 0 && solid.X >= obj.X+obj.W-overlapEpsilon:
			if gap := solid.X - (obj.X + obj.W); gap < dx {
				dx, blocked = math.Max(gap, 0), true
			}
		case dx < 0 && solid.X+solid.W <= obj.X+overlapEpsilon:
			if gap := solid.X + solid.W - obj.X; gap > dx {
				dx, blocked = math.Min(gap, 0), true
			}
		}
	}
	return dx, blocked
}

// resolveVertical shortens dy so obj lands on, or bumps its head against, the
// first solid in its path.
func resolveVertical(obj *resolv.Object, dy float64) (float64, bool) {
	check := obj.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		return dy, false
	}

	blocked := false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !spansOverlap(obj.X, obj.W, solid.X, solid.W) {
			continue
		}
		switch {
		case dy > 0 && solid.Y >= obj.Y+obj.H-overlapEpsilon:
			if gap := solid.Y - (obj.Y + obj.H); gap < dy {
				dy, blocked = math.Max(gap, 0), true
			}
		case dy < 0 && solid.Y+solid.H <= obj.Y+overlapEpsilon:
			if gap := solid.Y + solid.H - obj.Y; gap > dy {
				dy, blocked = math.Min(gap, 0), true
			}
		}
	}
	return dy, blocked
}
