package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData holds the opacity tweens driving a damage flash. Each hit adds
// its own sequence; the newest unfinished one owns the opacity.
type FlashData struct {
	Sequences []*gween.Sequence
}

var Flash = donburi.NewComponentType[FlashData]()

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in world units
	Duration  float64 // seconds
	Elapsed   float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// GrowthData scales a visual uniformly every frame.
type GrowthData struct {
	Rate float64 // scale units per second
}

var Growth = donburi.NewComponentType[GrowthData]()

// ParticleData marks a short-lived explosion fragment.
type ParticleData struct {
	SpawnedAt float64
	Lifetime  float64
}

var Particle = donburi.NewComponentType[ParticleData]()

// OffscreenData destroys an entity once it is Distance units outside the view.
type OffscreenData struct {
	Distance float64
}

var Offscreen = donburi.NewComponentType[OffscreenData]()
