package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/perfidia-game/perfidia/logging"
	"github.com/perfidia-game/perfidia/shared/gamemath"
)

// ErrNoTiles is returned for a map without any tile layer.
var ErrNoTiles = errors.New("level has no tile layers")

var logger = logging.New("leveldata")

// LevelPath returns the conventional file name for level n inside dir.
func LevelPath(dir string, n int) string {
	return path.Join(dir, fmt.Sprintf("level%d.tmx", n))
}

// LoadLevel parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoTiles)
	}

	lvl := &Level{
		Name:      strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		TileSize:  levelMap.TileWidth,
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	lvl.Solids = solidTiles(levelMap)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				if lvl.PlayerSpawn == nil {
					p := objectAnchor(o)
					lvl.PlayerSpawn = &p
				}
			}
		case GroupEnemySpawn:
			for _, o := range og.Objects {
				lvl.EnemySpawns = append(lvl.EnemySpawns, objectAnchor(o))
			}
		case GroupHazards:
			for _, o := range og.Objects {
				lvl.Hazards = append(lvl.Hazards, Hazard{Point: objectAnchor(o), Type: hazardType(o)})
			}
		case GroupTeleport:
			for _, o := range og.Objects {
				if lvl.Teleport != nil {
					logger.Warn("extra teleport ignored", "level", lvl.Name, "id", o.ID)
					continue
				}
				r := gamemath.NewRect(round(o.X), round(o.Y), round(o.Width), round(o.Height))
				lvl.Teleport = &r
			}
		}
	}

	// Left to right so spawn order is stable across loads.
	sort.SliceStable(lvl.EnemySpawns, func(i, j int) bool {
		return lvl.EnemySpawns[i].X < lvl.EnemySpawns[j].X
	})

	logger.Debug("level parsed",
		"level", lvl.Name,
		"solids", len(lvl.Solids),
		"enemies", len(lvl.EnemySpawns),
		"hazards", len(lvl.Hazards),
		"teleport", lvl.Teleport != nil)

	return lvl, nil
}

func solidTiles(levelMap *tiled.Map) []gamemath.Rect {
	layers := make([]*tiled.Layer, 0, len(levelMap.Layers))
	for _, layer := range levelMap.Layers {
		if layer.Name == CollisionLayer {
			layers = append(layers[:0], layer)
			break
		}
		layers = append(layers, layer)
	}

	tileW, tileH := levelMap.TileWidth, levelMap.TileHeight
	seen := make(map[[2]int]bool)
	var solids []gamemath.Rect
	for _, layer := range layers {
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				idx := y*levelMap.Width + x
				if idx >= len(layer.Tiles) {
					continue
				}
				tile := layer.Tiles[idx]
				if tile == nil || tile.IsNil() || seen[[2]int{x, y}] {
					continue
				}
				seen[[2]int{x, y}] = true
				solids = append(solids, gamemath.NewRect(x*tileW, y*tileH, tileW, tileH))
			}
		}
	}
	return solids
}

// objectAnchor converts a Tiled object to its bottom-center point. Point
// objects have no size and are used as-is.
func objectAnchor(o *tiled.Object) Point {
	return Point{X: round(o.X + o.Width/2), Y: round(o.Y + o.Height)}
}

// hazardType reads the fire type from the object class, falling back to the
// legacy type attribute and then a "type" property.
func hazardType(o *tiled.Object) string {
	switch {
	case o.Class != "":
		return o.Class
	case o.Type != "":
		return o.Type
	}
	return o.Properties.GetString("type")
}

func round(v float64) int {
	return int(math.Round(v))
}

// LoadAll loads level1..levelN from dir, stopping at the first missing file.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	var levels []*Level
	for n := 1; ; n++ {
		p := LevelPath(dir, n)
		if _, err := fs.Stat(fsys, p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				break
			}
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		lvl, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, err
		}
		lvl.Number = n
		levels = append(levels, lvl)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no level1.tmx found in %s", dir)
	}
	return levels, nil
}
