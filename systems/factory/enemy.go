package factory

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/archetypes"
	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
)

// CreateEnemy spawns an enemy of the given variant with its hitbox
// bottom-center on (x, y). Unknown variants fall back to the first
// configured one.
func CreateEnemy(w donburi.World, x, y int, variant string) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[variant]
	if !exists && len(cfg.Enemy.Variants) > 0 {
		variant = cfg.Enemy.Variants[0]
		enemyType = cfg.Enemy.Types[variant]
	}

	enemy := archetypes.Enemy.Spawn(w)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Variant:        variant,
		State:          components.EnemyStand,
		WalkSpeed:      enemyType.WalkSpeed,
		AggroRange:     enemyType.AggroRange,
		AttackRange:    enemyType.AttackRange,
		AttackCooldown: enemyType.AttackCooldown,
		// First attack is available immediately.
		LastAttackTime: -enemyType.AttackCooldown,
	})

	body := components.NewBody(x, y, enemyType.CollisionWidth, enemyType.CollisionHeight, enemyType.Gravity)
	body.FacingRight = false
	components.Body.SetValue(enemy, body)

	components.Health.SetValue(enemy, components.NewHealth(enemyType.Health))
	components.Animation.SetValue(enemy, components.NewAnimation(cfg.AnimEnemy, cfg.Idle))
	components.Attack.SetValue(enemy, components.AttackData{
		DamageFrame: enemyType.DamageFrame,
		Damage:      enemyType.Damage,
		Width:       enemyType.AttackWidth,
		Height:      enemyType.AttackHeight,
	})

	return enemy
}
