package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfidia-game/perfidia/shared/gamemath"
)

func TestLoadLevel(t *testing.T) {
	lvl, err := LoadLevel(os.DirFS("testdata"), "level1.tmx")
	require.NoError(t, err)

	assert.Equal(t, "level1", lvl.Name)
	assert.Equal(t, 32, lvl.TileSize)
	assert.Equal(t, 320, lvl.MapWidth)
	assert.Equal(t, 192, lvl.MapHeight)

	t.Run("collision layer only", func(t *testing.T) {
		assert.Len(t, lvl.Solids, 11)
		assert.Contains(t, lvl.Solids, gamemath.NewRect(192, 128, 32, 32))
		assert.NotContains(t, lvl.Solids, gamemath.NewRect(0, 0, 32, 32), "background layer is not solid")
	})

	t.Run("spawns", func(t *testing.T) {
		require.NotNil(t, lvl.PlayerSpawn)
		assert.Equal(t, Point{X: 48, Y: 160}, *lvl.PlayerSpawn)
		assert.Equal(t, []Point{{X: 160, Y: 160}, {X: 256, Y: 160}}, lvl.EnemySpawns)
	})

	t.Run("hazards and teleport", func(t *testing.T) {
		require.Len(t, lvl.Hazards, 1)
		assert.Equal(t, "r_fire", lvl.Hazards[0].Type)
		assert.Equal(t, Point{X: 112, Y: 160}, lvl.Hazards[0].Point)

		require.NotNil(t, lvl.Teleport)
		assert.Equal(t, gamemath.NewRect(288, 96, 32, 64), *lvl.Teleport)
	})
}

func TestLoadLevelWithoutCollisionLayer(t *testing.T) {
	lvl, err := LoadLevel(os.DirFS("testdata"), "level2.tmx")
	require.NoError(t, err)

	assert.Len(t, lvl.Solids, 5)
	assert.Nil(t, lvl.PlayerSpawn)
	assert.Nil(t, lvl.Teleport)
	assert.Empty(t, lvl.EnemySpawns)
}

func TestLoadAll(t *testing.T) {
	levels, err := LoadAll(os.DirFS("testdata"), ".")
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, 1, levels[0].Number)
	assert.Equal(t, 2, levels[1].Number)
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := LoadLevel(os.DirFS("testdata"), "level9.tmx")
	assert.Error(t, err)
}

func TestLevelPath(t *testing.T) {
	assert.Equal(t, "levels/level3.tmx", LevelPath("levels", 3))
	assert.Equal(t, "level1.tmx", LevelPath(".", 1))
}

func TestLoadLevelWithoutLayers(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="32" tileheight="32" infinite="0">
</map>
`)},
	}
	_, err := LoadLevel(fsys, "empty.tmx")
	assert.ErrorIs(t, err, ErrNoTiles)
}
