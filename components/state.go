package components

import (
	"github.com/automoto/puffball/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	EnteredAt     float64
}

var State = donburi.NewComponentType[StateData]()
