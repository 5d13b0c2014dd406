package components

import "github.com/yohamta/donburi"

// InhaleZoneData is the detection region in front of the player.
type InhaleZoneData struct {
	Owner donburi.Entity
}

var InhaleZone = donburi.NewComponentType[InhaleZoneData]()
