package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/shared/gamemath"
	"github.com/perfidia-game/perfidia/tags"
)

// GridData is the static collision geometry of one level. The resolv space
// is the broadphase; candidates are confirmed with an exact box test.
type GridData struct {
	Space  *resolv.Space
	Solids []gamemath.Rect
	probe  *resolv.Object

	// origin is the world position of the space's top-left cell.
	originX, originY int
}

var Grid = donburi.NewComponentType[GridData]()

// NewGrid builds the space once at level load. Solids are never mutated
// afterwards. The space covers the map and every solid, so solids placed
// past the map edge or a zero-sized map still collide.
func NewGrid(width, height, cellSize int, solids []gamemath.Rect) *GridData {
	if cellSize <= 0 {
		cellSize = 32
	}

	minX, minY, maxX, maxY := 0, 0, max(width, 0), max(height, 0)
	for _, r := range solids {
		minX, minY = min(minX, r.X), min(minY, r.Y)
		maxX, maxY = max(maxX, r.Right()), max(maxY, r.Bottom())
	}
	cols := max(1, (maxX-minX+cellSize-1)/cellSize)
	rows := max(1, (maxY-minY+cellSize-1)/cellSize)
	space := resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize)

	owned := make([]gamemath.Rect, len(solids))
	copy(owned, solids)
	for i, r := range owned {
		obj := resolv.NewObject(float64(r.X-minX), float64(r.Y-minY), float64(r.W), float64(r.H), tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, float64(r.W), float64(r.H)))
		obj.Data = i
		space.Add(obj)
	}

	// The probe is repositioned for each query; it is never moved through
	// the space, so it stays registered in its spawn cell only.
	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(probe)

	return &GridData{Space: space, Solids: owned, probe: probe, originX: minX, originY: minY}
}

// Intersects reports whether r overlaps any solid tile.
func (g *GridData) Intersects(r gamemath.Rect) bool {
	if g == nil || g.Space == nil {
		return false
	}
	g.probe.X, g.probe.Y = float64(r.X-g.originX), float64(r.Y-g.originY)
	g.probe.W, g.probe.H = float64(r.W), float64(r.H)

	check := g.probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		i, ok := obj.Data.(int)
		if ok && r.Intersects(g.Solids[i]) {
			return true
		}
	}
	return false
}
