package levelsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/shared/gamemath"
	"github.com/perfidia-game/perfidia/shared/leveldata"
)

type recordingSink struct {
	played []cfg.SoundID
}

func (r *recordingSink) Play(id cfg.SoundID) { r.played = append(r.played, id) }

func (r *recordingSink) count(ids ...cfg.SoundID) int {
	n := 0
	for _, p := range r.played {
		for _, id := range ids {
			if p == id {
				n++
			}
		}
	}
	return n
}

// flatLevel is a 640x320 level with a floor whose top is y=288.
func flatLevel() *leveldata.Level {
	return &leveldata.Level{
		Number:      1,
		TileSize:    32,
		MapWidth:    640,
		MapHeight:   320,
		Solids:      []gamemath.Rect{gamemath.NewRect(0, 288, 640, 32)},
		PlayerSpawn: &leveldata.Point{X: 64, Y: 288},
	}
}

func actions(ids ...cfg.ActionID) cfg.Actions {
	var a cfg.Actions
	for _, id := range ids {
		a[id] = true
	}
	return a
}

func TestSignalString(t *testing.T) {
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "next_level", NextLevel.String())
	assert.Equal(t, "game_over", GameOver.String())
	assert.Equal(t, "Signal(7)", Signal(7).String())
}

func TestMissingSpawnFallsBack(t *testing.T) {
	lvl := flatLevel()
	lvl.PlayerSpawn = nil

	sim := New(lvl, WithCorruptionRate(0))

	x, y := sim.Player().Position()
	assert.Equal(t, float64(cfg.Level.DefaultSpawn[0]), x)
	assert.Equal(t, float64(cfg.Level.DefaultSpawn[1]), y)
}

func TestTickClampsDT(t *testing.T) {
	sim := New(flatLevel(), WithCorruptionRate(0))

	sim.Tick(5, actions())
	assert.InDelta(t, cfg.Level.MaxFrameDT, sim.Level().Clock, 1e-9)

	sim.Tick(-1, actions())
	sim.Tick(0, actions())
	assert.InDelta(t, cfg.Level.MaxFrameDT, sim.Level().Clock, 1e-9)
}

func TestTeleportReachedIsTerminal(t *testing.T) {
	lvl := flatLevel()
	tp := gamemath.NewRect(96, 224, 32, 64)
	lvl.Teleport = &tp
	sim := New(lvl, WithCorruptionRate(0))

	var signal Signal
	for i := 0; i < 200 && signal == Continue; i++ {
		signal = sim.Tick(1.0/60, actions(cfg.ActionMoveRight))
	}
	require.Equal(t, NextLevel, signal)

	clock := sim.Level().Clock
	assert.Equal(t, NextLevel, sim.Tick(1.0/60, actions(cfg.ActionMoveRight)))
	assert.Equal(t, clock, sim.Level().Clock, "a finished level does not advance")
}

func TestSkip(t *testing.T) {
	sim := New(flatLevel(), WithCorruptionRate(0))
	sim.Skip()
	assert.Equal(t, NextLevel, sim.Tick(1.0/60, actions()))
}

func TestHazardDeathLeadsToGameOver(t *testing.T) {
	lvl := flatLevel()
	lvl.Hazards = []leveldata.Hazard{{Point: leveldata.Point{X: 64, Y: 288}, Type: "b_fire"}}
	sink := &recordingSink{}
	sim := New(lvl, WithCorruptionRate(0), WithSoundSink(sink))

	var signal Signal
	var diedAt float64
	for i := 0; i < 2000 && signal == Continue; i++ {
		signal = sim.Tick(1.0/60, actions())
		if sim.PlayerDead() && diedAt == 0 {
			diedAt = sim.Level().Clock
		}
	}

	require.Equal(t, GameOver, signal)
	assert.Zero(t, sim.Player().Health())
	assert.GreaterOrEqual(t, sim.Level().Clock-diedAt, cfg.Player.DeathDelay-1.0/60)
	assert.Equal(t, 5, sink.count(cfg.SoundBurn), "100 health at 20 per burn")
	assert.Equal(t, 1, sink.count(cfg.Sound.DeathVariants[cfg.AnimPlayer]...))
}

func TestAttackEdgeOnlyOnFirstSubStep(t *testing.T) {
	sink := &recordingSink{}
	sim := New(flatLevel(), WithCorruptionRate(0), WithSoundSink(sink))
	attackSounds := cfg.Sound.AttackVariants[cfg.AnimPlayer]

	// One long frame holding attack still starts a single swing, and keeping
	// the button down across frames does not start another.
	sim.Tick(0.3, actions(cfg.ActionAttack))
	sim.Tick(0.3, actions(cfg.ActionAttack))
	sim.Tick(0.3, actions(cfg.ActionAttack))
	assert.Equal(t, 1, sink.count(attackSounds...))

	sim.Tick(0.3, actions())
	sim.Tick(0.3, actions(cfg.ActionAttack))
	assert.Equal(t, 2, sink.count(attackSounds...))
}

func TestEnemiesSpawnDeterministically(t *testing.T) {
	lvl := flatLevel()
	for x := 200; x < 600; x += 40 {
		lvl.EnemySpawns = append(lvl.EnemySpawns, leveldata.Point{X: x, Y: 288})
	}

	variants := func(seed int64) []string {
		sim := New(lvl, WithSeed(seed), WithCorruptionRate(0))
		var out []string
		for e := range components.Enemy.Iter(sim.World()) {
			out = append(out, components.Enemy.Get(e).Variant)
		}
		return out
	}

	first := variants(42)
	require.Len(t, first, 10)
	assert.Equal(t, first, variants(42))
	for _, v := range first {
		assert.Contains(t, cfg.Enemy.Variants, v)
	}
	assert.Len(t, New(lvl, WithSeed(42)).Enemies(), 10)
}

func TestSameInputsSameOutcome(t *testing.T) {
	lvl := flatLevel()
	lvl.EnemySpawns = []leveldata.Point{{X: 200, Y: 288}, {X: 400, Y: 288}}
	lvl.Hazards = []leveldata.Hazard{{Point: leveldata.Point{X: 300, Y: 288}, Type: "d_fire"}}

	script := func(i int) cfg.Actions {
		switch {
		case i%50 == 0:
			return actions(cfg.ActionAttack, cfg.ActionMoveRight)
		case i%30 < 10:
			return actions(cfg.ActionJump, cfg.ActionMoveRight)
		}
		return actions(cfg.ActionMoveRight, cfg.ActionRun)
	}
	play := func() (float64, float64, int, Signal) {
		sim := New(lvl, WithSeed(7))
		var s Signal
		for i := 0; i < 600 && s == Continue; i++ {
			s = sim.Tick(1.0/60, script(i))
		}
		x, y := sim.Player().Position()
		return x, y, sim.Player().Health(), s
	}

	x1, y1, h1, s1 := play()
	x2, y2, h2, s2 := play()
	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
	assert.Equal(t, h1, h2)
	assert.Equal(t, s1, s2)
}

func TestLevelWithoutMapSizeStillHasFloor(t *testing.T) {
	lvl := flatLevel()
	lvl.MapWidth, lvl.MapHeight = 0, 0
	sim := New(lvl, WithSeed(1), WithCorruptionRate(0))

	for i := 0; i < 60; i++ {
		require.Equal(t, Continue, sim.Tick(1.0/60, cfg.Actions{}))
	}

	body := components.Body.Get(sim.player)
	assert.True(t, body.OnGround)
	assert.Equal(t, 288, body.Hitbox.Bottom())
	assert.False(t, sim.PlayerDead())
}
