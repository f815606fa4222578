package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	cfg "github.com/perfidia-game/perfidia/config"
)

var keyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	cfg.ActionMoveRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	cfg.ActionRun:       {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	cfg.ActionJump:      {ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
	cfg.ActionAttack:    {ebiten.KeyJ, ebiten.KeyX},
	cfg.ActionConfirm:   {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	cfg.ActionSkipLevel: {ebiten.KeyTab},
}

// PollActions snapshots the held state of every bound action.
func PollActions() cfg.Actions {
	var actions cfg.Actions
	for action, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				actions[action] = true
				break
			}
		}
	}
	return actions
}

// justPressed reports a fresh press of action this update. Used by menus;
// gameplay derives edges inside the simulation.
func justPressed(action cfg.ActionID) bool {
	for _, key := range keyBindings[action] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
