// Package leveldata parses Tiled levels into plain geometry for the simulation.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

import "github.com/perfidia-game/perfidia/shared/gamemath"

// Object group names recognised in a level file.
const (
	GroupPlayerSpawn = "PlayerSpawn"
	GroupEnemySpawn  = "EnemySpawn"
	GroupHazards     = "Hazards"
	GroupTeleport    = "Teleport"

	// CollisionLayer marks the solid tile layer. Maps without it treat
	// every tile layer as solid.
	CollisionLayer = "collision"
)

// Point is a bottom-center anchor in world pixels.
type Point struct {
	X, Y int
}

// Hazard is a fire emitter placement.
type Hazard struct {
	Point
	Type string
}

// Level is everything the simulation needs from a parsed map.
type Level struct {
	Number   int
	Name     string
	TileSize int
	// MapWidth and MapHeight are in pixels.
	MapWidth  int
	MapHeight int

	Solids      []gamemath.Rect
	PlayerSpawn *Point
	EnemySpawns []Point
	Hazards     []Hazard
	Teleport    *gamemath.Rect
}
