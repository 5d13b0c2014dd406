package components

import (
	"github.com/automoto/puffball/config"
	"github.com/yohamta/donburi"
)

type VisualData struct {
	Anim          config.AnimID
	Width, Height float64
	Opacity       float64
	FlipX         bool
	ScaleX        float64
	ScaleY        float64
	Centered      bool // Position is the center rather than the top-left corner
}

// Play switches the pose shown by the visual.
func (v *VisualData) Play(anim config.AnimID) {
	v.Anim = anim
}

var Visual = donburi.NewComponentType[VisualData]()
