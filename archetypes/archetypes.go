package archetypes

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Position,
		components.Hitbox,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Object,
		components.Position,
		components.Hitbox,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Position,
		components.Hitbox,
		components.Visual,
		components.Body,
		components.DoubleJump,
		components.Health,
		components.Flash,
		components.Collider,
	)
	InhaleZone = newArchetype(
		tags.InhaleZone,
		components.InhaleZone,
		components.Object,
		components.Position,
		components.Hitbox,
	)
	InhaleEffect = newArchetype(
		tags.InhaleEffect,
		components.Position,
		components.Visual,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Position,
		components.Hitbox,
		components.Visual,
		components.Body,
		components.State,
		components.Collider,
	)
	ShootingStar = newArchetype(
		tags.ShootingStar,
		components.ShootingStar,
		components.Object,
		components.Position,
		components.Hitbox,
		components.Visual,
		components.Mover,
		components.Offscreen,
		components.Collider,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Position,
		components.Visual,
		components.Growth,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
