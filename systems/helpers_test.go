package systems

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/components"
	"github.com/perfidia-game/perfidia/shared/gamemath"
	"github.com/perfidia-game/perfidia/shared/leveldata"
	"github.com/perfidia-game/perfidia/systems/factory"
)

const (
	testDT    = 0.03
	floorTop  = 288
	mapWidth  = 640
	mapHeight = 320
)

// newTestWorld builds a level whose floor spans the whole map at floorTop.
func newTestWorld() donburi.World {
	return newTestWorldWith(gamemath.NewRect(0, floorTop, mapWidth, 32))
}

func newTestWorldWith(solids ...gamemath.Rect) donburi.World {
	w := donburi.NewWorld()
	factory.CreateLevel(w, &leveldata.Level{
		Number:    1,
		TileSize:  32,
		MapWidth:  mapWidth,
		MapHeight: mapHeight,
		Solids:    solids,
	}, 1)
	return w
}

// run advances the clock and the given systems n times.
func run(w donburi.World, n int, systems ...System) {
	for i := 0; i < n; i++ {
		AdvanceClock(testDT)(w)
		for _, s := range systems {
			s(w)
		}
	}
}

func healthOf(e *donburi.Entry) *components.HealthData  { return components.Health.Get(e) }
func bodyOf(e *donburi.Entry) *components.BodyData      { return components.Body.Get(e) }
func animOf(e *donburi.Entry) *components.AnimationData { return components.Animation.Get(e) }

func countEnemies(w donburi.World) int {
	n := 0
	for range components.Enemy.Iter(w) {
		n++
	}
	return n
}
