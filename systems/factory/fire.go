package factory

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/archetypes"
	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/shared/gamemath"
)

// CreateFire spawns a hazard standing on (x, y). Unknown types use the
// default fire type.
func CreateFire(w donburi.World, x, y int, fireType string) *donburi.Entry {
	fireCfg, ok := cfg.Fire.Types[fireType]
	if !ok {
		fireType = cfg.Fire.DefaultType
		fireCfg = cfg.Fire.Types[fireType]
	}

	fire := archetypes.Fire.Spawn(w)

	sprite := gamemath.NewRect(0, 0,
		int(math.Round(float64(fireCfg.FrameWidth)*fireCfg.Scale)),
		int(math.Round(float64(fireCfg.FrameHeight)*fireCfg.Scale)),
	).WithMidBottom(x, y)

	components.Fire.SetValue(fire, components.FireData{
		FireType: fireType,
		Damage:   fireCfg.Damage,
		Sprite:   sprite,
		Region:   sprite.Shrink(fireCfg.HitboxScaleW, fireCfg.HitboxScaleH),
	})
	components.Animation.SetValue(fire, components.NewAnimation(cfg.AnimFire, cfg.Burning))

	return fire
}
