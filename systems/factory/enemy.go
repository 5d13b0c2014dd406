package factory

import (
	"github.com/automoto/puffball/archetypes"
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the given kind. Flame and Guy start in
// StateNone and enter idle on their first update; a Bird flies left at speed
// and never runs a state machine.
func CreateEnemy(ecs *ecs.ECS, kind components.EnemyKind, x, y, speed float64) *donburi.Entry {
	var (
		enemy  *donburi.Entry
		hitbox cfg.Rect
		anim   cfg.AnimID
	)

	switch kind {
	case components.EnemyBird:
		enemy = archetypes.Enemy.Spawn(ecs, components.Mover, components.Offscreen)
		hitbox = cfg.Enemy.Bird.Hitbox
		anim = cfg.AnimBird
	case components.EnemyGuy:
		enemy = archetypes.Enemy.Spawn(ecs)
		hitbox = cfg.Enemy.Guy.Hitbox
		anim = cfg.AnimGuyWalk
	default:
		enemy = archetypes.Enemy.Spawn(ecs)
		hitbox = cfg.Enemy.Flame.Hitbox
		anim = cfg.AnimFlame
	}

	attachBody(ecs, enemy, x, y, hitbox, tags.KindEnemy)
	watch(enemy, tags.KindEnemy, tags.KindInhaleZone, tags.KindShootingStar)

	// Weak handle, checked for validity on every read.
	player := donburi.Null
	if p, ok := tags.Player.First(ecs.World); ok {
		player = p.Entity()
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:   kind,
		Speed:  speed,
		Player: player,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StateNone,
		PreviousState: cfg.StateNone,
	})
	components.Visual.SetValue(enemy, components.VisualData{
		Anim:    anim,
		Width:   frameSize * cfg.C.Scale,
		Height:  frameSize * cfg.C.Scale,
		Opacity: 1,
		ScaleX:  1,
		ScaleY:  1,
	})

	if kind == components.EnemyBird {
		components.Body.SetValue(enemy, components.BodyData{Static: true})
		components.Mover.SetValue(enemy, components.MoverData{VelX: -speed})
		components.Offscreen.SetValue(enemy, components.OffscreenData{Distance: cfg.Enemy.Bird.DespawnDistance})
	}

	return enemy
}

func CreateFlame(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	return CreateEnemy(ecs, components.EnemyFlame, x, y, 0)
}

func CreateGuy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	return CreateEnemy(ecs, components.EnemyGuy, x, y, cfg.Enemy.Guy.Speed)
}

// CreateBird spawns a bird flying left at a speed picked uniformly from the
// configured set.
func CreateBird(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	speeds := cfg.Enemy.Bird.Speeds
	return CreateEnemy(ecs, components.EnemyBird, x, y, speeds[rng.IntN(len(speeds))])
}
