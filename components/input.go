package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/perfidia-game/perfidia/config"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  cfg.Actions
	Previous cfg.Actions
}

var Input = donburi.NewComponentType[InputData]()

func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

// Push makes next the current state and keeps the old one for edge checks.
func (in *InputData) Push(next cfg.Actions) {
	in.Previous = in.Current
	in.Current = next
}

// Hold repeats the current state, so no edges fire on the next step.
func (in *InputData) Hold() {
	in.Previous = in.Current
}
