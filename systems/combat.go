package systems

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
)

// StartAttack opens an attack window on e. It is a no-op while e is dead or
// already attacking.
func StartAttack(w donburi.World, e *donburi.Entry) bool {
	hp := components.Health.Get(e)
	attack := components.Attack.Get(e)
	if hp.Dead || attack.Active {
		return false
	}
	anim := components.Animation.Get(e)

	attack.Start()
	anim.Force(cfg.Attack)
	PlayRandomSFX(w, cfg.Sound.AttackVariants[anim.Kind])
	return true
}

// resolveAttack applies the swing of e to targets once its animation reaches
// the damage frame. The Applied flag keeps it to one hit per window.
func resolveAttack(w donburi.World, e *donburi.Entry, targets []*donburi.Entry) {
	attack := components.Attack.Get(e)
	if !attack.Active {
		return
	}
	anim := components.Animation.Get(e)
	if anim.State != cfg.Attack {
		attack.Cancel()
		return
	}
	attack.ElapsedFrames = anim.Frame
	if attack.Applied || anim.Frame != attack.DamageFrame {
		return
	}

	body := components.Body.Get(e)
	attack.HitRegion = attack.Region(body.Hitbox, body.FacingRight)
	attack.Applied = true

	for _, target := range targets {
		if !target.Valid() || components.Health.Get(target).Dead {
			continue
		}
		if attack.HitRegion.Intersects(components.Body.Get(target).Hitbox) {
			ApplyHit(w, target, attack.Damage)
		}
	}
}

// finishAttack closes the window when the attack animation has played out.
func finishAttack(e *donburi.Entry, event components.AnimationEvent) bool {
	attack := components.Attack.Get(e)
	anim := components.Animation.Get(e)
	if !attack.Active || event != components.AnimationComplete || anim.State != cfg.Attack {
		return false
	}
	attack.Cancel()
	return true
}

// ApplyHit deals damage to e. Dead actors are unaffected. A killing hit
// forces the Death animation; any other hit forces Hit when the actor's
// table has one, which also cancels its attack.
func ApplyHit(w donburi.World, e *donburi.Entry, damage int) {
	level := GetLevel(w)
	now := 0.0
	if level != nil {
		now = level.Clock
	}

	hp := components.Health.Get(e)
	applied, killed := hp.Damage(damage, now)
	if !applied {
		return
	}

	anim := components.Animation.Get(e)
	attack := components.Attack.Get(e)

	if killed {
		attack.Cancel()
		anim.Force(cfg.Death)
		if e.HasComponent(components.Enemy) {
			components.Enemy.Get(e).State = components.EnemyDead
		}
		PlayRandomSFX(w, cfg.Sound.DeathVariants[anim.Kind])
		return
	}

	PlaySFX(w, cfg.Sound.Hurt[anim.Kind])
	if !anim.Table().Has(cfg.Hit) {
		return
	}
	attack.Cancel()
	anim.Force(cfg.Hit)
	if e.HasComponent(components.Enemy) {
		components.Enemy.Get(e).State = components.EnemyStunned
	}
}

// checkDeadZone kills e once its hitbox top is below the map.
func checkDeadZone(w donburi.World, e *donburi.Entry) {
	level := GetLevel(w)
	if level == nil || level.MapHeight <= 0 {
		return
	}
	hp := components.Health.Get(e)
	if hp.Dead {
		return
	}
	if components.Body.Get(e).Hitbox.Y > level.MapHeight {
		ApplyHit(w, e, hp.Current)
	}
}

// enemyEntries snapshots the enemies so callers can mutate the world after
// iterating.
func enemyEntries(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	for e := range components.Enemy.Iter(w) {
		out = append(out, e)
	}
	return out
}
