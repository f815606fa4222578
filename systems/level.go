package systems

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/components"
)

// System is one stage of the tick pipeline.
type System func(w donburi.World)

// GetLevel returns the level singleton, or nil before the level is built.
func GetLevel(w donburi.World) *components.LevelData {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// GetGrid returns the collision grid of the current level.
func GetGrid(w donburi.World) *components.GridData {
	entry, ok := components.Grid.First(w)
	if !ok {
		return nil
	}
	return components.Grid.Get(entry)
}

// IsLevelFinished reports whether the level already has a terminal outcome.
func IsLevelFinished(w donburi.World) bool {
	level := GetLevel(w)
	return level == nil || level.Finished()
}

// WithLevelRunning wraps a system to skip execution once the level has
// reached a terminal outcome.
func WithLevelRunning(system System) System {
	return func(w donburi.World) {
		if IsLevelFinished(w) {
			return
		}
		system(w)
	}
}

// AdvanceClock moves the level clock by one step of length dt.
func AdvanceClock(dt float64) System {
	return func(w donburi.World) {
		level := GetLevel(w)
		if level == nil {
			return
		}
		level.DT = dt
		level.Clock += dt
	}
}

// findPlayer returns the player entry, if one exists.
func findPlayer(w donburi.World) (*donburi.Entry, bool) {
	return components.Player.First(w)
}
