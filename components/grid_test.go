package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/perfidia-game/perfidia/shared/gamemath"
)

func TestGridIntersects(t *testing.T) {
	grid := NewGrid(320, 192, 32, []gamemath.Rect{
		gamemath.NewRect(0, 160, 32, 32),
		gamemath.NewRect(192, 128, 32, 32),
	})

	tests := []struct {
		name string
		r    gamemath.Rect
		want bool
	}{
		{"inside a tile", gamemath.NewRect(4, 164, 8, 8), true},
		{"resting on top edge", gamemath.NewRect(0, 112, 24, 48), false},
		{"one pixel into top edge", gamemath.NewRect(0, 113, 24, 48), true},
		{"spanning several cells", gamemath.NewRect(150, 100, 60, 40), true},
		{"empty air", gamemath.NewRect(64, 32, 24, 48), false},
		{"hanging off the left of the map", gamemath.NewRect(-10, 150, 24, 20), true},
		{"outside the map entirely", gamemath.NewRect(-100, -100, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.Intersects(tt.r))
		})
	}
}

func TestGridOwnsItsSolids(t *testing.T) {
	solids := []gamemath.Rect{gamemath.NewRect(0, 0, 32, 32)}
	grid := NewGrid(64, 64, 32, solids)
	solids[0] = gamemath.NewRect(32, 32, 32, 32)

	assert.True(t, grid.Intersects(gamemath.NewRect(0, 0, 4, 4)))
	assert.False(t, grid.Intersects(gamemath.NewRect(40, 40, 4, 4)))
}

func TestNilGridIsEmpty(t *testing.T) {
	var grid *GridData
	assert.False(t, grid.Intersects(gamemath.NewRect(0, 0, 10, 10)))
}

func TestGridCoversSolidsOutsideTheMap(t *testing.T) {
	floor := gamemath.NewRect(0, 288, 640, 32)

	tests := []struct {
		name          string
		width, height int
		cell          int
		solids        []gamemath.Rect
		query         gamemath.Rect
	}{
		{"zero sized map", 0, 0, 32, []gamemath.Rect{floor}, gamemath.NewRect(52, 290, 8, 8)},
		{"short tiles", 320, 80, 32, []gamemath.Rect{gamemath.NewRect(0, 64, 32, 16)}, gamemath.NewRect(4, 66, 4, 4)},
		{"map height not a multiple of the cell", 320, 100, 32, []gamemath.Rect{gamemath.NewRect(0, 96, 32, 4)}, gamemath.NewRect(4, 97, 4, 2)},
		{"past the right edge", 320, 320, 32, []gamemath.Rect{gamemath.NewRect(400, 0, 32, 32)}, gamemath.NewRect(410, 10, 4, 4)},
		{"above and left of the origin", 320, 320, 32, []gamemath.Rect{gamemath.NewRect(-96, -64, 32, 32)}, gamemath.NewRect(-90, -60, 4, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewGrid(tt.width, tt.height, tt.cell, tt.solids)
			assert.True(t, grid.Intersects(tt.query))
			assert.False(t, grid.Intersects(tt.query.Translate(0, -200)))
		})
	}
}
