package components

import "github.com/yohamta/donburi"

type ShootingStarData struct {
	Direction  float64
	LaunchedAt float64
}

var ShootingStar = donburi.NewComponentType[ShootingStarData]()
