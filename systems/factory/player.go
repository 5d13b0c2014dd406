package factory

import (
	"github.com/automoto/puffball/archetypes"
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Sprite frames are 16x16 level pixels.
const frameSize = 16

// CreatePlayer spawns the player at (x, y) together with its inhale zone.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	attachBody(ecs, player, x, y, cfg.Player.Hitbox, tags.KindPlayer)
	watch(player, tags.KindPlayer, tags.KindEnemy, tags.KindExit)

	components.Visual.SetValue(player, components.VisualData{
		Anim:    cfg.AnimPlayerIdle,
		Width:   frameSize * cfg.C.Scale,
		Height:  frameSize * cfg.C.Scale,
		Opacity: 1,
		ScaleX:  1,
		ScaleY:  1,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.DoubleJump.SetValue(player, components.DoubleJumpData{
		Remaining: cfg.Player.MaxJumps,
		Max:       cfg.Player.MaxJumps,
	})

	zone := CreateInhaleZone(ecs, player)
	components.Player.SetValue(player, components.PlayerData{
		Speed:     cfg.Player.Speed,
		Direction: cfg.DirectionRight,
		Zone:      zone.Entity(),
	})

	return player
}

// CreateInhaleZone spawns the detection region in front of owner. The inhale
// system moves it with the player every frame.
func CreateInhaleZone(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	zone := archetypes.InhaleZone.Spawn(ecs)
	pos := components.Position.Get(owner)
	attachBody(ecs, zone, pos.X, pos.Y, cfg.Inhale.Zone, tags.KindInhaleZone)
	components.InhaleZone.SetValue(zone, components.InhaleZoneData{Owner: owner.Entity()})
	return zone
}

// CreateInhaleEffect spawns the level's inhale visual, hidden until the
// player starts inhaling.
func CreateInhaleEffect(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	effect := archetypes.InhaleEffect.Spawn(ecs)
	components.Position.SetValue(effect, math.Vec2{X: x + cfg.Inhale.EffectOffsetX, Y: y + cfg.Inhale.EffectOffsetY})
	components.Visual.SetValue(effect, components.VisualData{
		Anim:    cfg.AnimInhaleEffect,
		Width:   cfg.Inhale.EffectWidth,
		Height:  cfg.Inhale.EffectHeight,
		Opacity: 0,
		ScaleX:  1,
		ScaleY:  1,
	})
	return effect
}
