package systems

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
)

// UpdateTeleport ends the level once the living player touches a teleport.
func UpdateTeleport(w donburi.World) {
	level := GetLevel(w)
	if level == nil || level.Finished() {
		return
	}

	playerEntry, ok := findPlayer(w)
	if !ok || components.Health.Get(playerEntry).Dead {
		return
	}
	hitbox := components.Body.Get(playerEntry).Hitbox

	for e := range components.Teleport.Iter(w) {
		tp := components.Teleport.Get(e)
		if tp.Activated || !hitbox.Intersects(tp.Region) {
			continue
		}
		tp.Activated = true
		level.Outcome = components.OutcomeNextLevel
		PlaySFX(w, cfg.SoundTeleport)
		return
	}
}
