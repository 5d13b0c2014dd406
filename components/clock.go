package components

import (
	"github.com/automoto/puffball/scheduler"
	"github.com/yohamta/donburi"
)

// ClockData owns the level's frame clock and pending continuations.
type ClockData struct {
	*scheduler.Scheduler
}

var Clock = donburi.NewComponentType[ClockData]()
