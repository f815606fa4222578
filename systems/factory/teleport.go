package factory

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/archetypes"
	"github.com/perfidia-game/perfidia/components"
	"github.com/perfidia-game/perfidia/shared/gamemath"
)

func CreateTeleport(w donburi.World, region gamemath.Rect) *donburi.Entry {
	tp := archetypes.Teleport.Spawn(w)
	components.Teleport.SetValue(tp, components.TeleportData{Region: region})
	return tp
}
