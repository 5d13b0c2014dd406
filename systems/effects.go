package systems

import (
	"math"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances damage flashes and particle growth.
func UpdateEffects(ecs *ecs.ECS) {
	dt := factory.Scheduler(ecs.World).Dt()
	updateFlashEffects(ecs, dt)
	updateGrowth(ecs, dt)
}

// updateFlashEffects steps every running flash sequence. The newest sequence
// drives the opacity; once all are done the entity is fully opaque again.
func updateFlashEffects(ecs *ecs.ECS, dt float64) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if len(flash.Sequences) == 0 {
			return
		}

		opacity := 1.0
		running := flash.Sequences[:0]
		for _, seq := range flash.Sequences {
			v, _, done := seq.Update(float32(dt))
			if done {
				opacity = 1
				continue
			}
			opacity = float64(v)
			running = append(running, seq)
		}
		for i := len(running); i < len(flash.Sequences); i++ {
			flash.Sequences[i] = nil
		}
		flash.Sequences = running

		components.Visual.Get(e).Opacity = opacity
	})
}

func updateGrowth(ecs *ecs.ECS, dt float64) {
	components.Growth.Each(ecs.World, func(e *donburi.Entry) {
		n := components.Growth.Get(e).Rate * dt
		visual := components.Visual.Get(e)
		visual.ScaleX += n
		visual.ScaleY += n
	})
}

// TriggerFlash fades the entity out and back in, one linear segment each way.
// Overlapping flashes each run to completion.
func TriggerFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	from := float32(components.Visual.Get(entry).Opacity)
	seg := float32(cfg.Player.FlashSegment)

	flash := components.Flash.Get(entry)
	flash.Sequences = append(flash.Sequences, gween.NewSequence(
		gween.New(from, 0, seg, ease.Linear),
		gween.New(0, 1, seg, ease.Linear),
	))
}

// updateScreenShake offsets the camera with a decaying oscillation and
// removes the shake once its duration has elapsed.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData, dt float64) {
	camera.Shake.X, camera.Shake.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dt

	// Calculate decaying intensity
	progress := (shake.Duration - shake.Elapsed) / shake.Duration
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Frame-rate independent phase so the wobble looks the same at any TPS.
	phase := shake.Elapsed * 60
	camera.Shake.X = math.Sin(phase*1.1) * currentIntensity
	camera.Shake.Y = math.Cos(phase*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
		})
	}
}
