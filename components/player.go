package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed      float64
	Direction  float64 // config.DirectionLeft or config.DirectionRight
	IsInhaling bool
	IsFull     bool
	Zone       donburi.Entity // inhale zone attached to this player
}

// FacingLeft reports whether the player looks left.
func (p *PlayerData) FacingLeft() bool {
	return p.Direction < 0
}

var Player = donburi.NewComponentType[PlayerData]()

type DoubleJumpData struct {
	Remaining int
	Max       int
}

var DoubleJump = donburi.NewComponentType[DoubleJumpData]()
