package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/systems/factory"
)

func press(actions ...cfg.ActionID) cfg.Actions {
	var a cfg.Actions
	for _, id := range actions {
		a[id] = true
	}
	return a
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name      string
		actions   cfg.Actions
		wantVX    float64
		wantFace  bool
		wantState cfg.StateID
	}{
		{"idle", press(), 0, true, cfg.Idle},
		{"walk right", press(cfg.ActionMoveRight), cfg.Player.WalkSpeed, true, cfg.Walk},
		{"walk left", press(cfg.ActionMoveLeft), -cfg.Player.WalkSpeed, false, cfg.Walk},
		{"run right", press(cfg.ActionMoveRight, cfg.ActionRun), cfg.Player.RunSpeed, true, cfg.Run},
		{"both directions cancel", press(cfg.ActionMoveLeft, cfg.ActionMoveRight), 0, true, cfg.Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			player := factory.CreatePlayer(w, 300, floorTop, 0)
			run(w, 1, UpdatePlayer)
			startX := bodyOf(player).Hitbox.X

			components.Input.Get(player).Push(tt.actions)
			run(w, 10, UpdatePlayer)

			b := bodyOf(player)
			assert.Equal(t, tt.wantVX, b.Velocity.X)
			assert.Equal(t, tt.wantFace, b.FacingRight)
			assert.True(t, b.OnGround)
			assert.Equal(t, tt.wantState, animOf(player).State)
			switch {
			case tt.wantVX > 0:
				assert.Greater(t, b.Hitbox.X, startX)
			case tt.wantVX < 0:
				assert.Less(t, b.Hitbox.X, startX)
			default:
				assert.Equal(t, startX, b.Hitbox.X)
			}
		})
	}
}

func TestPlayerJumpsOnlyFromGround(t *testing.T) {
	w := newTestWorld()
	player := factory.CreatePlayer(w, 300, floorTop, 0)
	run(w, 1, UpdatePlayer)
	DrainSFX(w)

	components.Input.Get(player).Push(press(cfg.ActionJump))
	run(w, 1, UpdatePlayer)

	b := bodyOf(player)
	assert.False(t, b.OnGround)
	assert.Less(t, b.Velocity.Y, 0.0)
	assert.Equal(t, cfg.Jump, animOf(player).State)
	assert.Equal(t, []cfg.SoundID{cfg.SoundJump}, DrainSFX(w))

	// Holding jump in the air does not add a second impulse.
	run(w, 5, UpdatePlayer)
	assert.Empty(t, DrainSFX(w))

	for i := 0; i < 100 && !b.OnGround; i++ {
		components.Input.Get(player).Push(press())
		run(w, 1, UpdatePlayer)
	}
	assert.True(t, b.OnGround)
	assert.Equal(t, floorTop, b.Hitbox.Bottom())
}

func TestPlayerAttackOnPressEdge(t *testing.T) {
	w := newTestWorld()
	player := factory.CreatePlayer(w, 300, floorTop, 0)
	run(w, 1, UpdatePlayer)
	attack := components.Attack.Get(player)
	input := components.Input.Get(player)

	input.Push(press(cfg.ActionAttack, cfg.ActionMoveRight))
	run(w, 1, UpdatePlayer)
	require.True(t, attack.Active)
	assert.Zero(t, bodyOf(player).Velocity.X, "no horizontal movement while attacking")

	startX := bodyOf(player).Hitbox.X
	starts := 1
	for i := 0; i < 60; i++ {
		wasActive := attack.Active
		input.Hold()
		run(w, 1, UpdatePlayer)
		if !wasActive && attack.Active {
			starts++
		}
		if attack.Active {
			assert.Equal(t, startX, bodyOf(player).Hitbox.X)
		}
	}

	assert.Equal(t, 1, starts, "a held attack button starts one attack")
	assert.False(t, attack.Active)
	assert.Equal(t, cfg.Walk, animOf(player).State, "falls back to the movement state")
}

func TestHazardDamageCooldown(t *testing.T) {
	w := newTestWorld()
	player := factory.CreatePlayer(w, 300, floorTop, 0)
	factory.CreateFire(w, 300, floorTop, "r_fire")

	run(w, 1, UpdatePlayer)
	damage := cfg.Fire.Types["r_fire"].Damage
	assert.Equal(t, 100-damage, healthOf(player).Current, "first contact burns immediately")

	// 2.5s of contact: hits at the start, after ~1s and after ~2s.
	run(w, 83, UpdatePlayer)
	assert.Equal(t, 100-3*damage, healthOf(player).Current)
}

func TestHazardBurnsOncePerSecondOverLongContact(t *testing.T) {
	w := newTestWorld()
	player := factory.CreatePlayer(w, 300, floorTop, 0)
	factory.CreateFire(w, 300, floorTop, "r_fire")
	hp := healthOf(player)
	hp.Max, hp.Current = 10000, 10000

	// 1990 steps of 0.03s is 59.7s of contact: one burn on contact plus one
	// for every full second after it.
	run(w, 1990, UpdatePlayer)

	burns := (10000 - hp.Current) / cfg.Fire.Types["r_fire"].Damage
	assert.Equal(t, 60, burns)
}

func TestHazardOverlapUsesStrongestFire(t *testing.T) {
	w := newTestWorld()
	player := factory.CreatePlayer(w, 300, floorTop, 0)
	factory.CreateFire(w, 300, floorTop, "d_fire")
	factory.CreateFire(w, 300, floorTop, "b_fire")
	DrainSFX(w)

	run(w, 1, UpdatePlayer)

	assert.Equal(t, 100-cfg.Fire.Types["b_fire"].Damage, healthOf(player).Current)
	assert.Contains(t, DrainSFX(w), cfg.SoundBurn)
}

func TestHazardOutsideRegionIsHarmless(t *testing.T) {
	w := newTestWorld()
	player := factory.CreatePlayer(w, 300, floorTop, 0)
	factory.CreateFire(w, 400, floorTop, "b_fire")

	run(w, 50, UpdatePlayer)

	assert.Equal(t, 100, healthOf(player).Current)
}

func TestDeadPlayerKeepsFalling(t *testing.T) {
	w := newTestWorldWith()
	player := factory.CreatePlayer(w, 100, 100, 0)
	ApplyHit(w, player, 1000)
	startY := bodyOf(player).Hitbox.Y

	components.Input.Get(player).Push(press(cfg.ActionMoveRight))
	run(w, 10, UpdatePlayer)

	assert.Greater(t, bodyOf(player).Hitbox.Y, startY)
	assert.Zero(t, bodyOf(player).Velocity.X)
	assert.Equal(t, cfg.Death, animOf(player).State)
}
