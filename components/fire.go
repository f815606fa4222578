package components

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/shared/gamemath"
)

// FireData is a hazard emitter. Sprite is the scaled visual box; Region is
// the reduced box that deals damage.
type FireData struct {
	FireType string
	Damage   int
	Sprite   gamemath.Rect
	Region   gamemath.Rect
}

var Fire = donburi.NewComponentType[FireData]()
