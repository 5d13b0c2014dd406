package factory

import (
	"github.com/automoto/puffball/archetypes"
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateShootingStar launches a star from a player at (x, y) looking in
// direction. It expires after its lifetime or once far enough off screen.
func CreateShootingStar(ecs *ecs.ECS, x, y, direction float64) *donburi.Entry {
	star := archetypes.ShootingStar.Spawn(ecs)
	sx := x + direction*cfg.Projectile.OffsetX
	sy := y + cfg.Projectile.OffsetY
	attachBody(ecs, star, sx, sy, cfg.Projectile.Hitbox, tags.KindShootingStar)
	watch(star, tags.KindShootingStar, tags.KindPlatform)

	sched := Scheduler(ecs.World)
	components.ShootingStar.SetValue(star, components.ShootingStarData{
		Direction:  direction,
		LaunchedAt: sched.Now(),
	})
	components.Visual.SetValue(star, components.VisualData{
		Anim:    cfg.AnimShootingStar,
		Width:   frameSize * cfg.C.Scale,
		Height:  frameSize * cfg.C.Scale,
		Opacity: 1,
		FlipX:   direction > 0,
		ScaleX:  1,
		ScaleY:  1,
	})
	components.Mover.SetValue(star, components.MoverData{VelX: direction * cfg.Projectile.Speed})
	components.Offscreen.SetValue(star, components.OffscreenData{Distance: cfg.Projectile.OffscreenDistance})

	entity := star.Entity()
	sched.After(cfg.Projectile.Lifetime, func() {
		Destroy(ecs, entity)
	})

	return star
}
