package components

import "github.com/yohamta/donburi"

type BodyData struct {
	VelX, VelY float64
	MoveX      float64 // horizontal speed requested this frame, cleared after physics
	MoveY      float64
	Static     bool // unaffected by gravity
	Grounded   bool
}

// Jump applies an upward impulse and leaves the ground.
func (b *BodyData) Jump(force float64) {
	b.VelY = -force
	b.Grounded = false
}

// Move requests movement at the given speed for the current frame.
func (b *BodyData) Move(speedX, speedY float64) {
	b.MoveX += speedX
	b.MoveY += speedY
}

var Body = donburi.NewComponentType[BodyData]()

// MoverData moves an entity at a constant velocity without collision response.
type MoverData struct {
	VelX, VelY float64
}

var Mover = donburi.NewComponentType[MoverData]()
