package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampDT(t *testing.T) {
	assert.Equal(t, 0.0, ClampDT(-1, 0.3))
	assert.Equal(t, 0.0, ClampDT(math.NaN(), 0.3))
	assert.Equal(t, 0.016, ClampDT(0.016, 0.3))
	assert.Equal(t, 0.3, ClampDT(5, 0.3))
}

func TestSubSteps(t *testing.T) {
	tests := []struct {
		dt    float64
		wantN int
	}{
		{0.016, 1},
		{0.03, 1},
		{0.06, 2},
		{0.3, 10},
		{0, 0},
	}
	for _, tt := range tests {
		n, slice := SubSteps(tt.dt, 0.03)
		assert.Equal(t, tt.wantN, n, "dt=%v", tt.dt)
		if n > 0 {
			assert.LessOrEqual(t, slice, 0.03+1e-12)
			assert.InDelta(t, tt.dt, slice*float64(n), 1e-12)
		}
	}
}

func TestTier(t *testing.T) {
	assert.Equal(t, 100, Tier(100, 10, 100))
	assert.Equal(t, 90, Tier(99, 10, 100))
	assert.Equal(t, 0, Tier(9, 10, 100))
	assert.Equal(t, 0, Tier(-5, 10, 100))
	assert.Equal(t, 100, Tier(250, 10, 100))
}

func TestBarPercent(t *testing.T) {
	tests := []struct {
		name            string
		value, max, step int
		want            int
	}{
		{"full enemy", 30, 30, 10, 100},
		{"enemy after one hit", 20, 30, 10, 60},
		{"enemy after two hits", 10, 30, 10, 30},
		{"twisted after one hit", 35, 50, 10, 70},
		{"player", 85, 100, 10, 80},
		{"dead", 0, 30, 10, 0},
		{"corruption", 47, 100, 5, 45},
		{"no max", 10, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BarPercent(tt.value, tt.max, tt.step)
			assert.Equal(t, tt.want, got)
			assert.Zero(t, got%tt.step)
		})
	}
}

func TestChooseIsPure(t *testing.T) {
	opts := []string{"male", "female", "twisted"}
	for seed := int64(0); seed < 20; seed++ {
		assert.Equal(t, Choose(seed, opts), Choose(seed, opts))
		assert.Contains(t, opts, Choose(seed, opts))
	}
	assert.Equal(t, "", Choose[string](1, nil))
}
