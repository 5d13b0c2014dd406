package components

import (
	cfg "github.com/automoto/puffball/config"
	"github.com/yohamta/donburi"
)

// ActionState is one action as seen on the current frame.
type ActionState struct {
	Pressed      bool // key-down, fires every frame while held
	JustPressed  bool // key-press edge
	JustReleased bool // key-release edge
}

// InputData keeps the held actions of this frame and the previous one; edges
// are derived from the pair.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Latch starts a new frame with the given held actions.
func (in *InputData) Latch(held [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = held
}

// Action reports the state of id on this frame.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	now, before := in.Current[id], in.Previous[id]
	return ActionState{
		Pressed:      now,
		JustPressed:  now && !before,
		JustReleased: !now && before,
	}
}

var Input = donburi.NewComponentType[InputData]()
