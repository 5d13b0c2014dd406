package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Hurt removes one point of health, never going below zero.
func (h *HealthData) Hurt() {
	if h.Current > 0 {
		h.Current--
	}
}

var Health = donburi.NewComponentType[HealthData]()
