package systems

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/shared/gamemath"
)

// UpdateEnemies runs every enemy for one step. Enemies read the player as it
// is after this step's player update and treat its hitbox as an obstacle.
func UpdateEnemies(w donburi.World) {
	level := GetLevel(w)
	if level == nil {
		return
	}

	playerEntry, hasPlayer := findPlayer(w)
	var obstacles []gamemath.Rect
	var targets []*donburi.Entry
	if hasPlayer {
		obstacles = []gamemath.Rect{components.Body.Get(playerEntry).Hitbox}
		targets = []*donburi.Entry{playerEntry}
	}

	for _, e := range enemyEntries(w) {
		updateEnemy(w, e, playerEntry, level, obstacles, targets)
	}
}

func updateEnemy(w donburi.World, e, playerEntry *donburi.Entry, level *components.LevelData, obstacles []gamemath.Rect, targets []*donburi.Entry) {
	dt := level.DT
	grid := GetGrid(w)
	enemy := components.Enemy.Get(e)
	body := components.Body.Get(e)
	anim := components.Animation.Get(e)
	attack := components.Attack.Get(e)

	var desired cfg.StateID
	switch {
	case components.Health.Get(e).Dead:
		enemy.State = components.EnemyDead
		body.Velocity.X = 0
		desired = cfg.Death
	case anim.State == cfg.Hit && !anim.Finished:
		enemy.State = components.EnemyStunned
		body.Velocity.X = 0
		desired = cfg.Hit
	case attack.Active:
		enemy.State = components.EnemyAttacking
		body.Velocity.X = 0
		desired = cfg.Attack
	default:
		desired = updateEnemyAI(w, e, playerEntry, level.Clock)
	}

	body.Step(dt, grid, obstacles...)
	event := anim.Advance(dt, desired)

	if enemy.State == components.EnemyDead {
		return
	}

	resolveAttack(w, e, targets)
	if finishAttack(e, event) {
		enemy.State = components.EnemyStand
	}
	if event == components.AnimationComplete && anim.State == cfg.Hit {
		enemy.State = components.EnemyStand
	}

	checkDeadZone(w, e)
}

// updateEnemyAI picks the next state from the distance between hitbox
// centers: strike inside attack range when the cooldown allows, hold
// position inside attack range otherwise, chase inside aggro range, idle
// beyond it.
func updateEnemyAI(w donburi.World, e, playerEntry *donburi.Entry, now float64) cfg.StateID {
	enemy := components.Enemy.Get(e)
	body := components.Body.Get(e)

	if playerEntry == nil {
		return enemyStand(enemy, body)
	}
	playerBody := components.Body.Get(playerEntry)
	playerDead := components.Health.Get(playerEntry).Dead

	distance := gamemath.CenterDistance(body.Hitbox, playerBody.Hitbox)
	px, _ := playerBody.Center()
	ex, _ := body.Center()

	switch {
	case distance < enemy.AttackRange:
		if !enemy.CooldownElapsed(now) || playerDead {
			return enemyStand(enemy, body)
		}
		faceTowards(body, ex, px)
		if !StartAttack(w, e) {
			return enemyStand(enemy, body)
		}
		enemy.LastAttackTime = now
		enemy.State = components.EnemyAttacking
		body.Velocity.X = 0
		return cfg.Attack

	case distance < enemy.AggroRange:
		faceTowards(body, ex, px)
		enemy.State = components.EnemyWalk
		if body.FacingRight {
			body.Velocity.X = enemy.WalkSpeed
		} else {
			body.Velocity.X = -enemy.WalkSpeed
		}
		return cfg.Walk
	}

	return enemyStand(enemy, body)
}

func enemyStand(enemy *components.EnemyData, body *components.BodyData) cfg.StateID {
	enemy.State = components.EnemyStand
	body.Velocity.X = 0
	return cfg.Idle
}

func faceTowards(body *components.BodyData, from, to float64) {
	if to > from {
		body.FacingRight = true
	} else if to < from {
		body.FacingRight = false
	}
}
