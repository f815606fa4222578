package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// Outcome is the terminal state of a level, if any.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeNextLevel
	OutcomeGameOver
)

// LevelData is the singleton level state.
type LevelData struct {
	Number    int
	Type      string
	Clock     float64 // seconds simulated so far
	DT        float64 // length of the current step
	Outcome   Outcome
	MapWidth  int
	MapHeight int
	Rand      *rand.Rand
}

var Level = donburi.NewComponentType[LevelData]()

// Finished reports whether the level reached a terminal outcome.
func (l *LevelData) Finished() bool {
	return l.Outcome != OutcomeRunning
}
