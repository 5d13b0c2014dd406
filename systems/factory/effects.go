package factory

import (
	"math/rand/v2"

	"github.com/automoto/puffball/archetypes"
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

// Seed makes random spawns and explosions reproducible.
func Seed(seed uint64) {
	rng = rand.New(rand.NewPCG(seed, seed))
}

// between returns a uniform random value in [lo, hi).
func between(lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// SpawnExplosion schedules p.Count bursts of two particles around origin.
// Each burst waits a random delay below Count*StaggerStep seconds.
func SpawnExplosion(ecs *ecs.ECS, origin math.Vec2, p cfg.ExplosionParams) {
	sched := Scheduler(ecs.World)
	maxDelay := float64(p.Count) * cfg.Explosion.StaggerStep
	for i := 0; i < p.Count; i++ {
		sched.After(between(0, maxDelay), func() {
			for j := 0; j < 2; j++ {
				at := math.Vec2{
					X: origin.X + between(-p.Radius, p.Radius),
					Y: origin.Y + between(-p.Radius, p.Radius),
				}
				CreateParticle(ecs, at, p.Size)
			}
		})
	}
}

// CreateParticle spawns a square fragment centered on at that grows every
// frame and disappears after the configured lifetime.
func CreateParticle(ecs *ecs.ECS, at math.Vec2, size float64) *donburi.Entry {
	particle := archetypes.Particle.Spawn(ecs)
	sched := Scheduler(ecs.World)

	components.Position.SetValue(particle, at)
	components.Visual.SetValue(particle, components.VisualData{
		Anim:     cfg.AnimParticle,
		Width:    cfg.Explosion.ParticleSize,
		Height:   cfg.Explosion.ParticleSize,
		Opacity:  1,
		ScaleX:   size,
		ScaleY:   size,
		Centered: true,
	})
	components.Growth.SetValue(particle, components.GrowthData{
		Rate: between(cfg.Explosion.MinGrowth, cfg.Explosion.MaxGrowth) * size,
	})
	components.Particle.SetValue(particle, components.ParticleData{
		SpawnedAt: sched.Now(),
		Lifetime:  cfg.Explosion.ParticleLifetime,
	})

	entity := particle.Entity()
	sched.After(cfg.Explosion.ParticleLifetime, func() {
		Destroy(ecs, entity)
	})
	return particle
}
