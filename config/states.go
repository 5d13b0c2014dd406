package config

import "github.com/yohamta/donburi/ecs"

// StateID identifies an enemy behavior state.
type StateID int

const (
	StateNone StateID = iota
	StateIdle
	StateJump
	StateLeft
	StateRight
)

var stateNames = map[StateID]string{
	StateNone:  "none",
	StateIdle:  "idle",
	StateJump:  "jump",
	StateLeft:  "left",
	StateRight: "right",
}

func (s StateID) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// AnimID identifies a pose played on an entity's visual.
type AnimID int

const (
	AnimNone AnimID = iota
	AnimPlayerIdle
	AnimPlayerInhaling
	AnimPlayerFull
	AnimInhaleEffect
	AnimShootingStar
	AnimFlame
	AnimGuyWalk
	AnimBird
	AnimParticle
)

// Default is the only render layer.
const Default ecs.LayerID = 0
