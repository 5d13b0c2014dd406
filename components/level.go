package components

import (
	"github.com/automoto/puffball/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name    string
	OriginX float64
	Data    *leveldata.Level

	// Scene transition requested this frame; the first request wins.
	NextScene  string
	NextReason string
}

// RequestScene asks the scene to switch to name at the end of the frame.
func (l *LevelData) RequestScene(name, reason string) {
	if l.NextScene != "" {
		return
	}
	l.NextScene = name
	l.NextReason = reason
}

var Level = donburi.NewComponentType[LevelData]()
