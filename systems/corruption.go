package systems

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/components"
)

// UpdateCorruption raises the player's corruption by Rate for every full
// second of level time. A full meter costs the player's remaining health.
func UpdateCorruption(w donburi.World) {
	level := GetLevel(w)
	playerEntry, ok := findPlayer(w)
	if level == nil || !ok {
		return
	}
	c := components.Corruption.Get(playerEntry)
	hp := components.Health.Get(playerEntry)
	if c.Rate <= 0 || hp.Dead {
		return
	}

	c.Timer += level.DT
	for c.Timer >= 1 {
		c.Timer--
		c.Value += c.Rate
	}
	if c.Value < c.Max {
		return
	}
	c.Value = c.Max
	ApplyHit(w, playerEntry, hp.Current)
}
