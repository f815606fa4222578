package factory

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/archetypes"
	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
)

// CreatePlayer spawns the player with its hitbox bottom-center on (x, y).
// corruptionRate 0 disables the corruption meter.
func CreatePlayer(w donburi.World, x, y, corruptionRate int) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Player.SetValue(player, components.PlayerData{
		WalkSpeed: cfg.Player.WalkSpeed,
		RunSpeed:  cfg.Player.RunSpeed,
		JumpSpeed: cfg.Player.JumpSpeed,
	})
	components.Body.SetValue(player, components.NewBody(
		x, y,
		cfg.Player.CollisionWidth, cfg.Player.CollisionHeight,
		cfg.Player.Gravity,
	))
	components.Health.SetValue(player, components.NewHealth(cfg.Player.Health))
	components.Animation.SetValue(player, components.NewAnimation(cfg.AnimPlayer, cfg.Idle))
	components.Attack.SetValue(player, components.AttackData{
		DamageFrame: cfg.Player.AttackDamageFrame,
		Damage:      cfg.Player.AttackDamage,
		Width:       cfg.Player.AttackWidth,
		Height:      cfg.Player.AttackHeight,
	})
	components.Corruption.SetValue(player, components.CorruptionData{
		Max:  cfg.Corruption.Max,
		Rate: corruptionRate,
	})

	return player
}
