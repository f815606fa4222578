package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/shared/gamemath"
	"github.com/perfidia-game/perfidia/systems/factory"
)

func TestWithLevelRunning(t *testing.T) {
	w := newTestWorld()
	calls := 0
	system := WithLevelRunning(func(donburi.World) { calls++ })

	system(w)
	GetLevel(w).Outcome = components.OutcomeNextLevel
	system(w)

	assert.Equal(t, 1, calls)
	assert.True(t, IsLevelFinished(w))
	assert.True(t, IsLevelFinished(donburi.NewWorld()), "no level means nothing to run")
}

func TestAdvanceClock(t *testing.T) {
	w := newTestWorld()
	run(w, 4)

	level := GetLevel(w)
	assert.InDelta(t, 4*testDT, level.Clock, 1e-9)
	assert.Equal(t, testDT, level.DT)
}

func TestTeleportEndsLevel(t *testing.T) {
	w := newTestWorld()
	player := factory.CreatePlayer(w, 100, floorTop, 0)
	factory.CreateTeleport(w, gamemath.NewRect(200, 224, 32, 64))
	DrainSFX(w)

	UpdateTeleport(w)
	require.False(t, IsLevelFinished(w))

	bodyOf(player).Hitbox = bodyOf(player).Hitbox.WithMidBottom(210, floorTop)
	UpdateTeleport(w)

	assert.Equal(t, components.OutcomeNextLevel, GetLevel(w).Outcome)
	assert.Equal(t, []cfg.SoundID{cfg.SoundTeleport}, DrainSFX(w))
}

func TestTeleportIgnoresDeadPlayer(t *testing.T) {
	w := newTestWorld()
	player := factory.CreatePlayer(w, 210, floorTop, 0)
	factory.CreateTeleport(w, gamemath.NewRect(200, 224, 32, 64))
	ApplyHit(w, player, 1000)

	UpdateTeleport(w)

	assert.Equal(t, components.OutcomeRunning, GetLevel(w).Outcome)
}

func TestGameOverAfterDeathDelay(t *testing.T) {
	w := newTestWorld()
	player := factory.CreatePlayer(w, 100, floorTop, 0)
	run(w, 1, UpdatePlayer)
	factory.CreateFire(w, 100, floorTop, "b_fire")

	// Burn until dead, then wait out the delay.
	for i := 0; i < 1000 && !healthOf(player).Dead; i++ {
		run(w, 1, UpdatePlayer, UpdateDeaths)
	}
	require.True(t, healthOf(player).Dead)
	diedAt := healthOf(player).DiedAt

	for GetLevel(w).Clock-diedAt < cfg.Player.DeathDelay-2*testDT {
		run(w, 1, UpdatePlayer, UpdateDeaths)
		require.False(t, IsLevelFinished(w))
	}
	run(w, 3, UpdatePlayer, UpdateDeaths)

	assert.Equal(t, components.OutcomeGameOver, GetLevel(w).Outcome)
}

func TestFireAnimates(t *testing.T) {
	w := newTestWorld()
	fire := factory.CreateFire(w, 100, floorTop, "d_fire")

	run(w, 4, UpdateFire)

	assert.Equal(t, cfg.Burning, animOf(fire).State)
	assert.Equal(t, 1, animOf(fire).Frame)
}

func TestCorruption(t *testing.T) {
	t.Run("rises by rate each full second", func(t *testing.T) {
		w := newTestWorld()
		player := factory.CreatePlayer(w, 100, floorTop, 2)

		run(w, 110, UpdateCorruption)

		assert.Equal(t, 6, components.Corruption.Get(player).Value)
		assert.Equal(t, 100, healthOf(player).Current)
	})

	t.Run("full meter kills", func(t *testing.T) {
		w := newTestWorld()
		player := factory.CreatePlayer(w, 100, floorTop, 1)
		components.Corruption.Get(player).Value = 99

		run(w, 34, UpdateCorruption)

		c := components.Corruption.Get(player)
		assert.Equal(t, c.Max, c.Value)
		assert.True(t, healthOf(player).Dead)
	})

	t.Run("rate zero disables the meter", func(t *testing.T) {
		w := newTestWorld()
		player := factory.CreatePlayer(w, 100, floorTop, 0)

		run(w, 200, UpdateCorruption)

		assert.Zero(t, components.Corruption.Get(player).Value)
	})
}
