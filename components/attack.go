package components

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/shared/gamemath"
)

// AttackData is the attack window of an actor. One swing applies damage at
// most once, at DamageFrame.
type AttackData struct {
	Active        bool
	ElapsedFrames int
	DamageFrame   int
	Damage        int
	Width         int
	Height        int
	HitRegion     gamemath.Rect
	Applied       bool
}

var Attack = donburi.NewComponentType[AttackData]()

// Start opens a new window. The caller has checked Active.
func (a *AttackData) Start() {
	a.Active = true
	a.ElapsedFrames = 0
	a.Applied = false
	a.HitRegion = gamemath.Rect{}
}

// Cancel closes the window without applying damage.
func (a *AttackData) Cancel() {
	a.Active = false
	a.ElapsedFrames = 0
}

// Region returns the box in front of hitbox on the facing side, vertically
// centered on it.
func (a *AttackData) Region(hitbox gamemath.Rect, facingRight bool) gamemath.Rect {
	y := hitbox.Y + (hitbox.H-a.Height)/2
	if facingRight {
		return gamemath.NewRect(hitbox.Right(), y, a.Width, a.Height)
	}
	return gamemath.NewRect(hitbox.X-a.Width, y, a.Width, a.Height)
}
