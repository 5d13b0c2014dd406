package components

import (
	"github.com/yohamta/donburi"
)

// EnemyKind selects an enemy's behavior.
type EnemyKind int

const (
	EnemyFlame EnemyKind = iota
	EnemyGuy
	EnemyBird
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyFlame:
		return "Flame"
	case EnemyGuy:
		return "Guy"
	case EnemyBird:
		return "Bird"
	}
	return "Unknown"
}

type EnemyData struct {
	Kind        EnemyKind
	IsInhalable bool
	Speed       float64
	Player      donburi.Entity // resolved at creation, may be gone by the time it is read
}

var Enemy = donburi.NewComponentType[EnemyData]()
