package components

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/shared/gamemath"
)

type TeleportData struct {
	Region    gamemath.Rect
	Activated bool
}

var Teleport = donburi.NewComponentType[TeleportData]()
