package systems

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInhale keeps the inhale zone and its visual in front of the player.
// The zone's left edge sits Zone.X units toward the facing side; the visual
// sits EffectOffsetX units out and mirrors when facing left.
func UpdateInhale(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	pos := *components.Position.Get(playerEntry)

	if ecs.World.Valid(player.Zone) {
		zone := ecs.World.Entry(player.Zone)
		*components.Position.Get(zone) = pos
		components.Hitbox.Get(zone).OffsetX = player.Direction * cfg.Inhale.Zone.X
	}

	effectEntry, ok := tags.InhaleEffect.First(ecs.World)
	if !ok {
		return
	}
	effectPos := components.Position.Get(effectEntry)
	effectPos.X = pos.X + player.Direction*cfg.Inhale.EffectOffsetX
	effectPos.Y = pos.Y + cfg.Inhale.EffectOffsetY
	components.Visual.Get(effectEntry).FlipX = player.FacingLeft()
}

func setInhaleEffectVisible(ecs *ecs.ECS, visible bool) {
	effectEntry, ok := tags.InhaleEffect.First(ecs.World)
	if !ok {
		return
	}
	visual := components.Visual.Get(effectEntry)
	if visible {
		visual.Opacity = 1
		return
	}
	visual.Opacity = 0
}

// pullSpeed drags an inhalable enemy back toward the player's mouth.
func pullSpeed(player *components.PlayerData) float64 {
	return -player.Direction * cfg.Inhale.PullSpeed
}
