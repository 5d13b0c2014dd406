package systems

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/systems/factory"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Scene change reasons, logged by the scene.
const (
	reasonExit = "reached exit"
	reasonDied = "player died"
	reasonFell = "fell out of the level"
)

// UpdatePlayer applies this frame's input to the player.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	input := inputState(ecs)
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	visual := components.Visual.Get(playerEntry)

	if input.Action(cfg.ActionMoveLeft).Pressed {
		player.Direction = cfg.DirectionLeft
		visual.FlipX = true
		body.Move(-player.Speed, 0)
	}
	if input.Action(cfg.ActionMoveRight).Pressed {
		player.Direction = cfg.DirectionRight
		visual.FlipX = false
		body.Move(player.Speed, 0)
	}

	if input.Action(cfg.ActionJump).JustPressed {
		doubleJump(playerEntry)
	}

	inhale := input.Action(cfg.ActionInhale)
	switch {
	case inhale.Pressed:
		holdInhale(ecs, playerEntry)
	case inhale.JustReleased:
		releaseInhale(ecs, playerEntry)
	}

	if components.Position.Get(playerEntry).Y > cfg.Player.FallResetY {
		requestScene(ecs, cfg.FirstScene(), reasonFell)
	}
}

// doubleJump spends one jump charge. Charges refill on landing.
func doubleJump(e *donburi.Entry) {
	jumps := components.DoubleJump.Get(e)
	if jumps.Remaining <= 0 {
		return
	}
	jumps.Remaining--
	components.Body.Get(e).Jump(cfg.Player.JumpForce)
}

func holdInhale(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	visual := components.Visual.Get(e)

	// A full player cannot start another inhale.
	if player.IsFull {
		visual.Play(cfg.AnimPlayerFull)
		setInhaleEffectVisible(ecs, false)
		return
	}

	player.IsInhaling = true
	visual.Play(cfg.AnimPlayerInhaling)
	setInhaleEffectVisible(ecs, true)
}

func releaseInhale(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	if player.IsFull {
		launchShootingStar(ecs, e)
		return
	}

	setInhaleEffectVisible(ecs, false)
	player.IsInhaling = false
	components.Visual.Get(e).Play(cfg.AnimPlayerIdle)
}

// launchShootingStar spits the swallowed enemy out as a projectile and
// returns to the idle pose after the recovery delay.
func launchShootingStar(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	pos := components.Position.Get(e)

	components.Visual.Get(e).Play(cfg.AnimPlayerInhaling)
	factory.CreateShootingStar(ecs, pos.X, pos.Y, player.Direction)
	player.IsFull = false

	entity := e.Entity()
	factory.Scheduler(ecs.World).After(cfg.Player.LaunchRecovery, func() {
		if !ecs.World.Valid(entity) {
			return
		}
		components.Visual.Get(ecs.World.Entry(entity)).Play(cfg.AnimPlayerIdle)
	})
}

// onPlayerHitEnemy resolves a player touching an enemy: swallow it, die on a
// hit taken at zero health, or lose one health point and flash.
func onPlayerHitEnemy(ecs *ecs.ECS, playerEntry, enemyEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	enemy := components.Enemy.Get(enemyEntry)

	if player.IsInhaling && enemy.IsInhalable {
		player.IsInhaling = false
		factory.Destroy(ecs, enemyEntry.Entity())
		player.IsFull = true
		return
	}

	health := components.Health.Get(playerEntry)
	if health.Current == 0 {
		factory.Destroy(ecs, player.Zone)
		factory.Destroy(ecs, playerEntry.Entity())
		requestScene(ecs, cfg.FirstScene(), reasonDied)
		return
	}

	health.Hurt()
	TriggerFlash(playerEntry)
}

func onPlayerReachExit(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	level.RequestScene(cfg.NextScene(level.Name), reasonExit)
}
