package factory

import (
	"math/rand"

	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/archetypes"
	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/shared/leveldata"
)

// CreateLevel spawns the level singleton: its state, the collision grid
// built from lvl's solids and the sound queue.
func CreateLevel(w donburi.World, lvl *leveldata.Level, seed int64) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	components.Level.SetValue(level, components.LevelData{
		Number:    lvl.Number,
		Type:      cfg.Level.TypeOf(lvl.Number),
		MapWidth:  lvl.MapWidth,
		MapHeight: lvl.MapHeight,
		Rand:      rand.New(rand.NewSource(seed)),
	})

	cell := lvl.TileSize
	if cell <= 0 {
		cell = cfg.Level.CellSize
	}
	components.Grid.Set(level, components.NewGrid(lvl.MapWidth, lvl.MapHeight, cell, lvl.Solids))
	components.Audio.SetValue(level, components.AudioData{})

	return level
}
