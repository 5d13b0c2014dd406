package systems

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/systems/factory"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts finds which watched entities every collider overlaps, then
// publishes ContactBegin for new overlaps and ContactEnd for finished ones.
// Events are dispatched before the system returns, after detection is done,
// so handlers are free to destroy entities.
func UpdateContacts(ecs *ecs.ECS) {
	components.Collider.Each(ecs.World, func(e *donburi.Entry) {
		collider := components.Collider.Get(e)
		obj := components.Object.Get(e).Object
		self := e.Entity()

		current := make(map[donburi.Entity]tags.Kind, len(collider.Touching))
		if check := obj.Check(0, 0, watchedTags(collider)...); check != nil {
			for _, other := range check.Objects {
				entity, ok := other.Data.(donburi.Entity)
				if !ok || entity == self || !overlaps(obj, other) {
					continue
				}
				if kind := watchedKind(collider, other.HasTags); kind != tags.KindNone {
					current[entity] = kind
				}
			}
		}

		for other, kind := range current {
			if _, was := collider.Touching[other]; !was {
				components.ContactBegin.Publish(ecs.World, components.ContactEvent{
					Self: self, SelfKind: collider.Kind, Other: other, OtherKind: kind,
				})
			}
		}
		for other, kind := range collider.Touching {
			if _, still := current[other]; !still {
				components.ContactEnd.Publish(ecs.World, components.ContactEvent{
					Self: self, SelfKind: collider.Kind, Other: other, OtherKind: kind,
				})
			}
		}
		collider.Touching = current
	})

	components.ContactBegin.ProcessEvents(ecs.World)
	components.ContactEnd.ProcessEvents(ecs.World)
}

func watchedTags(c *components.ColliderData) []string {
	out := make([]string, 0, len(c.Watches))
	for _, k := range c.Watches {
		out = append(out, k.ResolvTag())
	}
	return out
}

func watchedKind(c *components.ColliderData, hasTags func(...string) bool) tags.Kind {
	for _, k := range c.Watches {
		if hasTags(k.ResolvTag()) {
			return k
		}
	}
	return tags.KindNone
}

// RegisterContactHandlers wires the gameplay reactions to contact events.
// Call once per world.
func RegisterContactHandlers(ecs *ecs.ECS) {
	components.ContactBegin.Subscribe(ecs.World, func(w donburi.World, ev components.ContactEvent) {
		onContactBegin(ecs, ev)
	})
	components.ContactEnd.Subscribe(ecs.World, func(w donburi.World, ev components.ContactEvent) {
		onContactEnd(ecs, ev)
	})
}

func onContactBegin(ecs *ecs.ECS, ev components.ContactEvent) {
	if !ecs.World.Valid(ev.Self) {
		return
	}
	self := ecs.World.Entry(ev.Self)

	// Exits need no live counterpart.
	if ev.SelfKind == tags.KindPlayer && ev.OtherKind == tags.KindExit {
		onPlayerReachExit(ecs)
		return
	}

	if !ecs.World.Valid(ev.Other) {
		return
	}
	other := ecs.World.Entry(ev.Other)

	switch {
	case ev.SelfKind == tags.KindPlayer && ev.OtherKind == tags.KindEnemy:
		onPlayerHitEnemy(ecs, self, other)
	case ev.SelfKind == tags.KindEnemy && ev.OtherKind == tags.KindInhaleZone:
		onEnemyInhaleZone(self, true)
	case ev.SelfKind == tags.KindEnemy && ev.OtherKind == tags.KindShootingStar:
		onEnemyShot(ecs, self, other)
	case ev.SelfKind == tags.KindShootingStar && ev.OtherKind == tags.KindPlatform:
		onStarImpact(ecs, self)
	}
}

func onContactEnd(ecs *ecs.ECS, ev components.ContactEvent) {
	if !ecs.World.Valid(ev.Self) {
		return
	}
	// The zone may be gone already; the enemy still leaves it.
	if ev.SelfKind == tags.KindEnemy && ev.OtherKind == tags.KindInhaleZone {
		onEnemyInhaleZone(ecs.World.Entry(ev.Self), false)
	}
}

// onStarImpact bursts a shooting star that hit level geometry.
func onStarImpact(ecs *ecs.ECS, starEntry *donburi.Entry) {
	factory.SpawnExplosion(ecs, *components.Position.Get(starEntry), cfg.Explosion.Impact)
	factory.Destroy(ecs, starEntry.Entity())
}
