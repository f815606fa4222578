package components

import "github.com/yohamta/donburi"

// Vitals is the read-only view HUD bars use.
type Vitals interface {
	Health() int
	MaxHealth() int
	Position() (x, y float64)
}

type entryVitals struct {
	entry *donburi.Entry
}

// VitalsOf exposes an actor entry through Vitals. The entry must carry
// Health and Body.
func VitalsOf(entry *donburi.Entry) Vitals {
	return entryVitals{entry: entry}
}

func (v entryVitals) Health() int    { return Health.Get(v.entry).Current }
func (v entryVitals) MaxHealth() int { return Health.Get(v.entry).Max }

// Position is the hitbox bottom-center.
func (v entryVitals) Position() (float64, float64) {
	hb := Body.Get(v.entry).Hitbox
	x, y := hb.MidBottom()
	return float64(x), float64(y)
}
