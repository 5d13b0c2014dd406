package factory

import (
	"testing"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/leveldata"
	"github.com/automoto/puffball/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

func newWorld(t *testing.T) (*ecs.ECS, *components.SpaceData) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	Seed(7)

	w := ecs.NewECS(donburi.NewWorld())
	CreateClock(w)
	space := CreateSpace(w, 2000, 1000, cfg.Physics.CellSize)
	return w, components.Space.Get(space)
}

func countOf(w *ecs.ECS, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(w.World)
}

func TestCreatePlayerRegistersBodyAndZone(t *testing.T) {
	w, space := newWorld(t)
	p := CreatePlayer(w, 100, 200)

	obj := components.Object.Get(p)
	assert.Equal(t, 100+cfg.Player.Hitbox.X, obj.X)
	assert.Equal(t, 200+cfg.Player.Hitbox.Y, obj.Y)
	assert.True(t, obj.HasTags(tags.ResolvPlayer))
	assert.Equal(t, p.Entity(), obj.Data)

	player := components.Player.Get(p)
	assert.Equal(t, cfg.DirectionRight, player.Direction)
	require.True(t, w.World.Valid(player.Zone))
	zone := w.World.Entry(player.Zone)
	assert.True(t, components.Object.Get(zone).HasTags(tags.ResolvInhaleZone))
	assert.Equal(t, p.Entity(), components.InhaleZone.Get(zone).Owner)

	assert.Len(t, space.Objects(), 2)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(p).Current)
	assert.Equal(t, cfg.Player.MaxJumps, components.DoubleJump.Get(p).Remaining)
	assert.ElementsMatch(t, []tags.Kind{tags.KindEnemy, tags.KindExit}, components.Collider.Get(p).Watches)
}

func TestDestroyRemovesObjectAndIsIdempotent(t *testing.T) {
	w, space := newWorld(t)
	platform := CreatePlatform(w, leveldata.Rect{X: 0, Y: 500, W: 100, H: 20})
	entity := platform.Entity()
	require.Len(t, space.Objects(), 1)

	Destroy(w, entity)
	assert.False(t, w.World.Valid(entity))
	assert.Empty(t, space.Objects())

	assert.NotPanics(t, func() {
		Destroy(w, entity)
		Destroy(w, donburi.Null)
	})
}

func TestCreateGeometry(t *testing.T) {
	w, space := newWorld(t)
	CreateGeometry(w, &leveldata.Level{
		Solids: []leveldata.Rect{{X: 0, Y: 900, W: 2000, H: 100}, {X: 500, Y: 600, W: 64, H: 64}},
		Exits:  []leveldata.Rect{{X: 1900, Y: 800, W: 64, H: 100}},
	})

	assert.Equal(t, 2, countOf(w, tags.Platform))
	assert.Equal(t, 1, countOf(w, tags.Exit))
	assert.Len(t, space.Objects(), 3)
}

func TestCreateBirdPicksConfiguredSpeed(t *testing.T) {
	w, _ := newWorld(t)
	seen := map[float64]bool{}
	for i := 0; i < 60; i++ {
		bird := CreateBird(w, 0, 0)
		speed := components.Enemy.Get(bird).Speed
		require.Contains(t, cfg.Enemy.Bird.Speeds, speed)
		assert.True(t, components.Body.Get(bird).Static)
		seen[speed] = true
	}
	assert.Len(t, seen, len(cfg.Enemy.Bird.Speeds), "every speed shows up eventually")
}

func TestEnemyHoldsWeakPlayerHandle(t *testing.T) {
	w, _ := newWorld(t)
	orphan := CreateFlame(w, 0, 0)
	assert.Equal(t, donburi.Null, components.Enemy.Get(orphan).Player)

	p := CreatePlayer(w, 0, 0)
	guy := CreateGuy(w, 0, 0)
	assert.Equal(t, p.Entity(), components.Enemy.Get(guy).Player)
	assert.Equal(t, cfg.Enemy.Guy.Speed, components.Enemy.Get(guy).Speed)
	assert.Equal(t, cfg.StateNone, components.State.Get(guy).CurrentState)
}

func TestShootingStarLaunch(t *testing.T) {
	cases := []struct {
		dir   float64
		wantX float64
		flip  bool
	}{
		{cfg.DirectionRight, 180, true},
		{cfg.DirectionLeft, 20, false},
	}
	for _, tc := range cases {
		w, _ := newWorld(t)
		star := CreateShootingStar(w, 100, 100, tc.dir)

		pos := components.Position.Get(star)
		assert.Equal(t, tc.wantX, pos.X)
		assert.Equal(t, 105.0, pos.Y)
		assert.Equal(t, tc.dir*cfg.Projectile.Speed, components.Mover.Get(star).VelX)
		assert.Equal(t, tc.flip, components.Visual.Get(star).FlipX)
		assert.Equal(t, 1, Scheduler(w.World).Pending(), "lifetime timer")
	}
}

func TestSpawnExplosionSchedulesBursts(t *testing.T) {
	w, _ := newWorld(t)
	sched := Scheduler(w.World)
	p := cfg.ExplosionParams{Count: 8, Radius: 100, Size: 40}
	SpawnExplosion(w, math.Vec2{}, p)
	assert.Equal(t, p.Count, sched.Pending())

	for i := 0; i < 60; i++ {
		sched.Advance(1.0 / 60)
	}
	assert.Equal(t, 0, countOf(w, tags.Particle), "particles expired")
	assert.Zero(t, sched.Pending())
}

func TestSchedulerPanicsWithoutClock(t *testing.T) {
	w := donburi.NewWorld()
	assert.Panics(t, func() { Scheduler(w) })
}
