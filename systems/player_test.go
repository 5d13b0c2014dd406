package systems

import (
	"testing"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/leveldata"
	"github.com/automoto/puffball/systems/factory"
	"github.com/automoto/puffball/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerMovesWhileDirectionHeld(t *testing.T) {
	w := newTestWorld(t)
	p := addStandingPlayer(w, 100, 100)
	runFrames(w, 2)

	runFrames(w, 60, cfg.ActionMoveLeft)
	assert.InDelta(t, 100-cfg.Player.Speed, components.Position.Get(p).X, 1e-6)
	assert.True(t, components.Player.Get(p).FacingLeft())
	assert.True(t, components.Visual.Get(p).FlipX)

	runFrames(w, 30, cfg.ActionMoveRight)
	assert.InDelta(t, 100-cfg.Player.Speed/2, components.Position.Get(p).X, 1e-6)
	assert.False(t, components.Player.Get(p).FacingLeft())
	assert.False(t, components.Visual.Get(p).FlipX)
}

func TestDoubleJumpSpendsChargesAndRefillsOnLanding(t *testing.T) {
	w := newTestWorld(t)
	p := addStandingPlayer(w, 100, 100)
	runFrames(w, 2)
	require.True(t, components.Body.Get(p).Grounded)

	body := components.Body.Get(p)
	jumps := components.DoubleJump.Get(p)
	for i := 0; i < cfg.Player.MaxJumps; i++ {
		hold(w)
		hold(w, cfg.ActionJump)
		UpdatePlayer(w)
		assert.Equal(t, -cfg.Player.JumpForce, body.VelY)
	}
	assert.Zero(t, jumps.Remaining)

	body.VelY = 0
	hold(w)
	hold(w, cfg.ActionJump)
	UpdatePlayer(w)
	assert.Zero(t, body.VelY, "no charge left, jump is a no-op")

	// Holding the key does not jump again.
	hold(w, cfg.ActionJump)
	jumps.Remaining = 1
	UpdatePlayer(w)
	assert.Equal(t, 1, jumps.Remaining)

	runFrames(w, 120)
	assert.True(t, body.Grounded)
	assert.Equal(t, cfg.Player.MaxJumps, jumps.Remaining)
}

func TestInhaleHoldAndRelease(t *testing.T) {
	w := newTestWorld(t)
	p := factory.CreatePlayer(w, 100, 100)
	factory.CreateInhaleEffect(w, 100, 100)
	player := components.Player.Get(p)
	visual := components.Visual.Get(p)

	hold(w, cfg.ActionInhale)
	UpdatePlayer(w)
	assert.True(t, player.IsInhaling)
	assert.Equal(t, cfg.AnimPlayerInhaling, visual.Anim)
	assert.Equal(t, 1.0, inhaleEffect(w).Opacity)

	hold(w)
	UpdatePlayer(w)
	assert.False(t, player.IsInhaling)
	assert.Equal(t, cfg.AnimPlayerIdle, visual.Anim)
	assert.Equal(t, 0.0, inhaleEffect(w).Opacity)
}

func TestInhaleWhileFullShowsFullPose(t *testing.T) {
	w := newTestWorld(t)
	p := factory.CreatePlayer(w, 100, 100)
	factory.CreateInhaleEffect(w, 100, 100)
	player := components.Player.Get(p)
	player.IsFull = true

	hold(w, cfg.ActionInhale)
	UpdatePlayer(w)
	assert.False(t, player.IsInhaling)
	assert.Equal(t, cfg.AnimPlayerFull, components.Visual.Get(p).Anim)
	assert.Equal(t, 0.0, inhaleEffect(w).Opacity)
}

func TestLaunchSpawnsShootingStarInFacingDirection(t *testing.T) {
	cases := []struct {
		name      string
		direction float64
		wantX     float64
		wantVelX  float64
	}{
		{"facing left", cfg.DirectionLeft, 20, -800},
		{"facing right", cfg.DirectionRight, 180, 800},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			p := factory.CreatePlayer(w, 100, 100)
			player := components.Player.Get(p)
			player.Direction = tc.direction
			player.IsFull = true

			hold(w, cfg.ActionInhale)
			hold(w)
			UpdatePlayer(w)

			star, ok := tags.ShootingStar.First(w.World)
			require.True(t, ok)
			pos := components.Position.Get(star)
			assert.InDelta(t, tc.wantX, pos.X, 1e-9)
			assert.InDelta(t, 105, pos.Y, 1e-9)
			mover := components.Mover.Get(star)
			assert.Equal(t, tc.wantVelX, mover.VelX)
			assert.Zero(t, mover.VelY)

			assert.False(t, player.IsFull)
			visual := components.Visual.Get(p)
			assert.Equal(t, cfg.AnimPlayerInhaling, visual.Anim)

			sched := factory.Scheduler(w.World)
			sched.Advance(0.5)
			assert.Equal(t, cfg.AnimPlayerInhaling, visual.Anim)
			sched.Advance(0.5)
			assert.Equal(t, cfg.AnimPlayerIdle, visual.Anim)
		})
	}
}

func TestLaunchRecoveryToleratesDestroyedPlayer(t *testing.T) {
	w := newTestWorld(t)
	p := factory.CreatePlayer(w, 100, 100)
	components.Player.Get(p).IsFull = true

	hold(w, cfg.ActionInhale)
	hold(w)
	UpdatePlayer(w)
	factory.Destroy(w, components.Player.Get(p).Zone)
	factory.Destroy(w, p.Entity())

	assert.NotPanics(t, func() { factory.Scheduler(w.World).Advance(2) })
}

func TestSwallowNeedsInhalingAndInhalable(t *testing.T) {
	cases := []struct {
		name        string
		inhaling    bool
		inhalable   bool
		wantSwallow bool
	}{
		{"inhaling an inhalable enemy", true, true, true},
		{"inhaling but out of reach", true, false, false},
		{"not inhaling", false, true, false},
		{"neither", false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			p := factory.CreatePlayer(w, 100, 100)
			player := components.Player.Get(p)
			player.IsInhaling = tc.inhaling

			// Overlaps the player but not the inhale zone in front of it.
			enemy := factory.CreateFlame(w, 100, 100)
			components.Enemy.Get(enemy).IsInhalable = tc.inhalable

			run(w, collisions)

			health := components.Health.Get(p)
			if tc.wantSwallow {
				assert.False(t, w.World.Valid(enemy.Entity()))
				assert.True(t, player.IsFull)
				assert.False(t, player.IsInhaling)
				assert.Equal(t, cfg.Player.Health, health.Current)
				return
			}
			assert.True(t, w.World.Valid(enemy.Entity()))
			assert.False(t, player.IsFull)
			assert.Equal(t, cfg.Player.Health-1, health.Current)
		})
	}
}

func TestPlayerDiesOnHitAfterReachingZeroHealth(t *testing.T) {
	w := newTestWorld(t)
	p := factory.CreatePlayer(w, 100, 100)
	zone := components.Player.Get(p).Zone
	health := components.Health.Get(p)

	touch := func() {
		enemy := factory.CreateFlame(w, 100, 100)
		run(w, collisions)
		factory.Destroy(w, enemy.Entity())
		run(w, collisions)
	}

	for want := cfg.Player.Health - 1; want >= 0; want-- {
		touch()
		require.True(t, w.World.Valid(p.Entity()))
		assert.Equal(t, want, health.Current)
		assert.Empty(t, level(w).NextScene, "reaching zero health alone does not end the level")
	}

	touch()
	assert.False(t, w.World.Valid(p.Entity()))
	assert.False(t, w.World.Valid(zone))
	assert.Equal(t, cfg.FirstScene(), level(w).NextScene)
	assert.Equal(t, reasonDied, level(w).NextReason)
}

func TestHealthNeverNegative(t *testing.T) {
	h := components.HealthData{Current: 1, Max: 3}
	h.Hurt()
	h.Hurt()
	assert.Zero(t, h.Current)
}

func TestFlashRunsOutAndBackIn(t *testing.T) {
	w := newTestWorld(t)
	p := factory.CreatePlayer(w, 100, 100)
	visual := components.Visual.Get(p)

	TriggerFlash(p)
	var path []float64
	for i := 0; i < 10; i++ {
		UpdateClock(w)
		UpdateEffects(w)
		path = append(path, visual.Opacity)
	}

	lowest := 0
	for i, v := range path {
		if v < path[lowest] {
			lowest = i
		}
	}
	assert.InDelta(t, 0, path[lowest], 0.05)
	for i := 1; i <= lowest; i++ {
		assert.LessOrEqual(t, path[i], path[i-1], "fading out")
	}
	for i := lowest + 1; i < len(path); i++ {
		assert.GreaterOrEqual(t, path[i], path[i-1], "fading in")
	}
	assert.Equal(t, 1.0, path[len(path)-1])
	assert.Empty(t, components.Flash.Get(p).Sequences)
}

func TestOverlappingFlashesEndOpaque(t *testing.T) {
	w := newTestWorld(t)
	p := factory.CreatePlayer(w, 100, 100)

	TriggerFlash(p)
	UpdateClock(w)
	UpdateEffects(w)
	UpdateClock(w)
	UpdateEffects(w)
	TriggerFlash(p)
	assert.Len(t, components.Flash.Get(p).Sequences, 2)

	for i := 0; i < 12; i++ {
		UpdateClock(w)
		UpdateEffects(w)
	}
	assert.Equal(t, 1.0, components.Visual.Get(p).Opacity)
	assert.Empty(t, components.Flash.Get(p).Sequences)
}

func TestExitAdvancesToNextScene(t *testing.T) {
	w := newTestWorld(t)
	factory.CreatePlayer(w, 100, 100)
	factory.CreateExit(w, leveldata.Rect{X: 120, Y: 120, W: 20, H: 20})

	run(w, collisions)
	assert.Equal(t, "level2", level(w).NextScene)
	assert.Equal(t, reasonExit, level(w).NextReason)
}

func TestExitFromLastSceneWraps(t *testing.T) {
	w := newTestWorld(t)
	level(w).Name = "level2"
	factory.CreatePlayer(w, 100, 100)
	factory.CreateExit(w, leveldata.Rect{X: 120, Y: 120, W: 20, H: 20})

	run(w, collisions)
	assert.Equal(t, "level1", level(w).NextScene)
}

func TestFallingOutOfTheLevelResets(t *testing.T) {
	w := newTestWorld(t)
	factory.CreatePlayer(w, 100, cfg.Player.FallResetY+1)

	hold(w)
	UpdatePlayer(w)
	assert.Equal(t, cfg.FirstScene(), level(w).NextScene)
	assert.Equal(t, reasonFell, level(w).NextReason)
}
