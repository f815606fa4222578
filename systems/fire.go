package systems

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
)

// UpdateFire animates hazard emitters. Damage is applied by the player
// controller.
func UpdateFire(w donburi.World) {
	level := GetLevel(w)
	if level == nil {
		return
	}
	for e := range components.Fire.Iter(w) {
		components.Animation.Get(e).Advance(level.DT, cfg.Burning)
	}
}
