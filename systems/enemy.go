package systems

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// stateHandlers are the hooks of one enemy state. enter runs once on
// transition in, update every frame while the state is current.
type stateHandlers struct {
	enter  func(ecs *ecs.ECS, e *donburi.Entry)
	update func(ecs *ecs.ECS, e *donburi.Entry)
}

// Tables are built in init: their hooks call enterState, which reads them.
var flameStates, guyStates map[cfg.StateID]stateHandlers

func init() {
	flameStates = map[cfg.StateID]stateHandlers{
		cfg.StateIdle: {
			enter: func(ecs *ecs.ECS, e *donburi.Entry) {
				transitionAfter(ecs, e, cfg.Enemy.Flame.IdleDelay, cfg.StateJump)
			},
		},
		cfg.StateJump: {
			enter: func(ecs *ecs.ECS, e *donburi.Entry) {
				components.Body.Get(e).Jump(cfg.Enemy.Flame.JumpForce)
			},
			update: idleWhenGrounded,
		},
	}

	guyStates = map[cfg.StateID]stateHandlers{
		cfg.StateIdle: {
			enter: func(ecs *ecs.ECS, e *donburi.Entry) {
				transitionAfter(ecs, e, cfg.Enemy.Guy.IdleDelay, cfg.StateLeft)
			},
		},
		cfg.StateLeft: {
			enter: func(ecs *ecs.ECS, e *donburi.Entry) {
				components.Visual.Get(e).FlipX = false
				transitionAfter(ecs, e, cfg.Enemy.Guy.WalkDuration, cfg.StateRight)
			},
			update: func(ecs *ecs.ECS, e *donburi.Entry) {
				components.Body.Get(e).Move(-components.Enemy.Get(e).Speed, 0)
			},
		},
		cfg.StateRight: {
			enter: func(ecs *ecs.ECS, e *donburi.Entry) {
				components.Visual.Get(e).FlipX = true
				transitionAfter(ecs, e, cfg.Enemy.Guy.WalkDuration, cfg.StateLeft)
			},
			update: func(ecs *ecs.ECS, e *donburi.Entry) {
				components.Body.Get(e).Move(components.Enemy.Get(e).Speed, 0)
			},
		},
		// Nothing transitions into jump; the slot is kept for a future trigger.
		cfg.StateJump: {
			update: idleWhenGrounded,
		},
	}
}

func idleWhenGrounded(ecs *ecs.ECS, e *donburi.Entry) {
	if components.Body.Get(e).Grounded {
		enterState(ecs, e, cfg.StateIdle)
	}
}

func statesFor(kind components.EnemyKind) map[cfg.StateID]stateHandlers {
	switch kind {
	case components.EnemyFlame:
		return flameStates
	case components.EnemyGuy:
		return guyStates
	}
	return nil
}

// UpdateEnemies runs each enemy's state update hook and pulls inhalable
// enemies toward an inhaling player. Flame and Guy enter idle on their first
// update.
func UpdateEnemies(ecs *ecs.ECS) {
	var entries []*donburi.Entry
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})

	for _, e := range entries {
		if !e.Valid() {
			continue
		}
		enemy := components.Enemy.Get(e)

		if states := statesFor(enemy.Kind); states != nil {
			state := components.State.Get(e)
			if state.CurrentState == cfg.StateNone {
				enterState(ecs, e, cfg.StateIdle)
			} else if h := states[state.CurrentState]; h.update != nil {
				h.update(ecs, e)
			}
		}

		if !e.Valid() || !enemy.IsInhalable {
			continue
		}
		// The player handle is weak: the player may already be gone.
		if !ecs.World.Valid(enemy.Player) {
			continue
		}
		player := components.Player.Get(ecs.World.Entry(enemy.Player))
		if player.IsInhaling {
			components.Body.Get(e).Move(pullSpeed(player), 0)
		}
	}
}

// enterState switches e to next and runs the state's enter hook.
func enterState(ecs *ecs.ECS, e *donburi.Entry, next cfg.StateID) {
	state := components.State.Get(e)
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.EnteredAt = factory.Scheduler(ecs.World).Now()

	if h := statesFor(components.Enemy.Get(e).Kind)[next]; h.enter != nil {
		h.enter(ecs, e)
	}
}

// transitionAfter enters next after d seconds unless the enemy is gone by then.
func transitionAfter(ecs *ecs.ECS, e *donburi.Entry, d float64, next cfg.StateID) {
	entity := e.Entity()
	factory.Scheduler(ecs.World).After(d, func() {
		if !ecs.World.Valid(entity) {
			return
		}
		enterState(ecs, ecs.World.Entry(entity), next)
	})
}

func onEnemyInhaleZone(enemyEntry *donburi.Entry, inside bool) {
	components.Enemy.Get(enemyEntry).IsInhalable = inside
}

// onEnemyShot blows up an enemy hit by a shooting star and shakes the camera.
func onEnemyShot(ecs *ecs.ECS, enemyEntry, starEntry *donburi.Entry) {
	TriggerScreenShake(ecs, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDuration)
	factory.SpawnExplosion(ecs, *components.Position.Get(enemyEntry), cfg.Explosion.EnemyHit)
	factory.Destroy(ecs, enemyEntry.Entity())
	factory.Destroy(ecs, starEntry.Entity())
}
