package components

import "github.com/yohamta/donburi"

// HealthData is an actor's combat stats. Current stays within [0, Max].
type HealthData struct {
	Current int
	Max     int
	Dead    bool
	DiedAt  float64 // level clock at the killing hit
}

var Health = donburi.NewComponentType[HealthData]()

func NewHealth(max int) HealthData {
	return HealthData{Current: max, Max: max}
}

// Damage subtracts amount. It reports whether anything changed and whether
// this hit was the killing one. Once dead, nothing changes.
func (h *HealthData) Damage(amount int, now float64) (applied, killed bool) {
	if h.Dead {
		return false, false
	}
	h.Current -= amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	if h.Current <= 0 {
		h.Current = 0
		h.Dead = true
		h.DiedAt = now
		return true, true
	}
	return true, false
}
