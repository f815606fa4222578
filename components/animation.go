package components

import (
	"fmt"

	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/config"
)

// AnimationEvent is what a single Advance produced.
type AnimationEvent int

const (
	AnimationNone AnimationEvent = iota
	AnimationFrame
	// AnimationComplete fires once when a non-looping state passes its
	// last frame.
	AnimationComplete
)

// AnimationData is the per-instance animation state machine. Kind selects
// the frame table in config.CharacterAnimations.
type AnimationData struct {
	Kind     string
	State    config.StateID
	Frame    int
	Elapsed  float64
	Finished bool
}

var Animation = donburi.NewComponentType[AnimationData]()

func NewAnimation(kind string, initial config.StateID) AnimationData {
	return AnimationData{Kind: kind, State: initial}
}

func (a *AnimationData) Table() config.AnimationTable {
	return config.CharacterAnimations[a.Kind]
}

// Playing reports whether a locking state is still mid-playback.
func (a *AnimationData) Playing() bool {
	return a.State.Locking() && !a.Finished
}

// Play switches to state unless a locking state is mid-playback. Death is
// never left.
func (a *AnimationData) Play(state config.StateID) bool {
	if state == a.State || a.State == config.Death || a.Playing() {
		return false
	}
	a.reset(state)
	return true
}

// Force switches to state from the first frame, even if the current state is
// locking or identical. Death is still never left.
func (a *AnimationData) Force(state config.StateID) {
	if a.State == config.Death && state != config.Death {
		return
	}
	a.reset(state)
}

// Advance requests desired, then steps the frame clock. At most one frame
// step happens per call regardless of dt.
func (a *AnimationData) Advance(dt float64, desired config.StateID) AnimationEvent {
	a.Play(desired)

	def := a.Table()[a.State]
	if def.Frames <= 0 {
		panic(fmt.Sprintf("animation: %q has no frames for state %s", a.Kind, a.State))
	}
	if a.Finished {
		return AnimationNone
	}

	a.Elapsed += dt
	if a.Elapsed < def.Interval {
		return AnimationNone
	}
	a.Elapsed = 0

	if a.State.Looping() {
		a.Frame = (a.Frame + 1) % def.Frames
		return AnimationFrame
	}
	if a.Frame+1 >= def.Frames {
		a.Finished = true
		return AnimationComplete
	}
	a.Frame++
	if a.Frame >= def.Frames {
		panic(fmt.Sprintf("animation: %q frame %d out of range for %s (%d frames)", a.Kind, a.Frame, a.State, def.Frames))
	}
	return AnimationFrame
}

func (a *AnimationData) reset(state config.StateID) {
	a.State = state
	a.Frame = 0
	a.Elapsed = 0
	a.Finished = false
}
