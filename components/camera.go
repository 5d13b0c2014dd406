package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Shake    math.Vec2 // offset added on top of Position while shaking
	Scale    float64
}

var Camera = donburi.NewComponentType[CameraData]()
