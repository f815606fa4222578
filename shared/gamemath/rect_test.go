package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 32, 32)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(16, 16, 32, 32), true},
		{"contained", NewRect(4, 4, 8, 8), true},
		{"touching right edge", NewRect(32, 0, 32, 32), false},
		{"touching bottom edge", NewRect(0, 32, 32, 32), false},
		{"one pixel overlap", NewRect(31, 31, 10, 10), true},
		{"far away", NewRect(100, 100, 5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base))
		})
	}
}

func TestRectMidBottom(t *testing.T) {
	r := NewRect(0, 0, 24, 48).WithMidBottom(100, 200)
	assert.Equal(t, NewRect(88, 152, 24, 48), r)

	x, y := r.MidBottom()
	assert.Equal(t, 100, x)
	assert.Equal(t, 200, y)
}

func TestRectShrinkKeepsBottomCenter(t *testing.T) {
	r := NewRect(0, 0, 48, 72).Shrink(0.5, 0.5)
	assert.Equal(t, NewRect(12, 36, 24, 36), r)
}

func TestCenterDistance(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(30, 40, 10, 10)
	assert.InDelta(t, 50.0, CenterDistance(a, b), 1e-9)
}
