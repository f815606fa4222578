package systems

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
)

// UpdateDeaths removes enemies whose Death animation has played out and
// reports game over once the player has been dead for the configured delay.
// Removal happens after the scan so no enemy is skipped.
func UpdateDeaths(w donburi.World) {
	var removed []donburi.Entity
	for e := range components.Enemy.Iter(w) {
		anim := components.Animation.Get(e)
		if components.Health.Get(e).Dead && anim.State == cfg.Death && anim.Finished {
			removed = append(removed, e.Entity())
		}
	}
	for _, entity := range removed {
		w.Remove(entity)
	}

	level := GetLevel(w)
	playerEntry, ok := findPlayer(w)
	if level == nil || !ok || level.Finished() {
		return
	}
	hp := components.Health.Get(playerEntry)
	if hp.Dead && level.Clock-hp.DiedAt >= cfg.Player.DeathDelay {
		level.Outcome = components.OutcomeGameOver
	}
}
