package systems

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
)

// UpdatePlayer runs the player controller for one step: input, physics,
// animation, the attack window, hazards and the dead zone.
func UpdatePlayer(w donburi.World) {
	playerEntry, ok := findPlayer(w)
	if !ok {
		return
	}
	level := GetLevel(w)
	if level == nil {
		return
	}
	updateSinglePlayer(w, playerEntry, level.DT)
}

func updateSinglePlayer(w donburi.World, playerEntry *donburi.Entry, dt float64) {
	grid := GetGrid(w)
	body := components.Body.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)

	// A dead player keeps falling and plays out the Death animation.
	if components.Health.Get(playerEntry).Dead {
		body.Velocity.X = 0
		body.Step(dt, grid)
		anim.Advance(dt, cfg.Death)
		return
	}

	handlePlayerInput(w, playerEntry)
	body.Step(dt, grid)

	input := components.Input.Get(playerEntry)
	event := anim.Advance(dt, playerMovementState(body, components.Attack.Get(playerEntry), input))

	resolveAttack(w, playerEntry, enemyEntries(w))
	finishAttack(playerEntry, event)

	applyHazards(w, playerEntry, dt)
	checkDeadZone(w, playerEntry)
}

func handlePlayerInput(w donburi.World, playerEntry *donburi.Entry) {
	input := components.Input.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	attack := components.Attack.Get(playerEntry)

	// Horizontal movement and jumping are locked for the whole swing.
	if attack.Active {
		body.Velocity.X = 0
		return
	}

	handleMovementInput(input, player, body)

	if input.Pressed(cfg.ActionJump) && body.OnGround {
		body.Velocity.Y = player.JumpSpeed
		body.OnGround = false
		PlaySFX(w, cfg.SoundJump)
	}

	if input.JustPressed(cfg.ActionAttack) && StartAttack(w, playerEntry) {
		body.Velocity.X = 0
	}
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, body *components.BodyData) {
	speed := player.WalkSpeed
	if input.Pressed(cfg.ActionRun) {
		speed = player.RunSpeed
	}

	left := input.Pressed(cfg.ActionMoveLeft)
	right := input.Pressed(cfg.ActionMoveRight)
	switch {
	case left && !right:
		body.Velocity.X = -speed
		body.FacingRight = false
	case right && !left:
		body.Velocity.X = speed
		body.FacingRight = true
	default:
		body.Velocity.X = 0
	}
}

// playerMovementState derives the animation the player should be in.
func playerMovementState(body *components.BodyData, attack *components.AttackData, input *components.InputData) cfg.StateID {
	if attack.Active {
		return cfg.Attack
	}
	if !body.OnGround {
		if body.Velocity.Y < -1 {
			return cfg.Jump
		}
		return cfg.Fall
	}
	if body.Velocity.X != 0 {
		if input.Pressed(cfg.ActionRun) {
			return cfg.Run
		}
		return cfg.Walk
	}
	return cfg.Idle
}

// applyHazards burns the player while its hitbox overlaps a fire. The first
// contact hurts immediately, then once per cooldown window. Overlapping fires
// do not stack: the strongest one applies.
func applyHazards(w donburi.World, playerEntry *donburi.Entry, dt float64) {
	player := components.Player.Get(playerEntry)
	if player.HazardCooldown > 0 {
		player.HazardCooldown -= dt
	}

	hitbox := components.Body.Get(playerEntry).Hitbox
	damage, touching := 0, false
	for e := range components.Fire.Iter(w) {
		fire := components.Fire.Get(e)
		if !hitbox.Intersects(fire.Region) {
			continue
		}
		if !touching || fire.Damage > damage {
			damage = fire.Damage
		}
		touching = true
	}
	if !touching || player.HazardCooldown > 0 {
		return
	}

	// Carry the overshoot so continuous contact burns exactly once per
	// cooldown instead of once per whole number of steps.
	player.HazardCooldown += cfg.Player.HazardCooldown
	PlaySFX(w, cfg.SoundBurn)
	ApplyHit(w, playerEntry, damage)
}
