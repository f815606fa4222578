package components

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// EnemyState is the AI state of an enemy.
type EnemyState int

const (
	EnemyStand EnemyState = iota
	EnemyWalk
	EnemyAttacking
	EnemyStunned
	EnemyDead
)

func (s EnemyState) String() string {
	switch s {
	case EnemyStand:
		return "stand"
	case EnemyWalk:
		return "walk"
	case EnemyAttacking:
		return "attacking"
	case EnemyStunned:
		return "stunned"
	case EnemyDead:
		return "dead"
	}
	return fmt.Sprintf("EnemyState(%d)", int(s))
}

type EnemyData struct {
	Variant string
	State   EnemyState

	WalkSpeed      float64
	AggroRange     float64
	AttackRange    float64
	AttackCooldown float64 // seconds
	LastAttackTime float64 // level clock of the last attack start
}

var Enemy = donburi.NewComponentType[EnemyData]()

// CooldownElapsed reports whether a new attack may start at now.
func (e *EnemyData) CooldownElapsed(now float64) bool {
	return now-e.LastAttackTime >= e.AttackCooldown
}
