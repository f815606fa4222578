package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/perfidia-game/perfidia/assets"
	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/shared/gamemath"
)

const layerWorld ecs.LayerID = 0

var drawOp = &ebiten.DrawImageOptions{}

// sprite draws one animation frame with its bottom-center on (x, y), mirrored
// when facing left.
func (ls *LevelScene) sprite(screen, frame *ebiten.Image, x, y int, scale float64, facingRight bool) {
	w := float64(frame.Bounds().Dx()) * scale
	h := float64(frame.Bounds().Dy()) * scale

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(scale, scale)
	if !facingRight {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(w, 0)
	}
	drawOp.GeoM.Translate(float64(x)-w/2-ls.camera.Position.X, float64(y)-h-ls.camera.Position.Y)
	screen.DrawImage(frame, drawOp)
}

func (ls *LevelScene) drawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.DarkRed)
	if ls.background == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-ls.camera.Position.X, -ls.camera.Position.Y)
	screen.DrawImage(ls.background, drawOp)
}

func (ls *LevelScene) drawFires(e *ecs.ECS, screen *ebiten.Image) {
	for entry := range components.Fire.Iter(e.World) {
		fire := components.Fire.Get(entry)
		anim := components.Animation.Get(entry)
		fireCfg := cfg.Fire.Types[fire.FireType]

		frame := ls.session.Frames.Frame(assets.SheetDir(cfg.AnimFire, fire.FireType), anim.State, anim.Frame, fireCfg.FrameWidth, fireCfg.FrameHeight)
		x, y := fire.Sprite.MidBottom()
		ls.sprite(screen, frame, x, y, fireCfg.Scale, true)
	}
}

func (ls *LevelScene) drawActors(e *ecs.ECS, screen *ebiten.Image) {
	for entry := range components.Enemy.Iter(e.World) {
		enemyType := cfg.Enemy.Types[components.Enemy.Get(entry).Variant]
		ls.drawActor(screen, entry, assets.SheetDir(cfg.AnimEnemy, components.Enemy.Get(entry).Variant), enemyType.FrameWidth, enemyType.FrameHeight)
	}
	if player, ok := components.Player.First(e.World); ok {
		ls.drawActor(screen, player, cfg.AnimPlayer, cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	}
}

func (ls *LevelScene) drawActor(screen *ebiten.Image, entry *donburi.Entry, dir string, w, h int) {
	body := components.Body.Get(entry)
	anim := components.Animation.Get(entry)
	frame := ls.session.Frames.Frame(dir, anim.State, anim.Frame, w, h)
	x, y := body.Hitbox.MidBottom()
	ls.sprite(screen, frame, x, y, 1, body.FacingRight)
}

// drawHitboxes outlines collision boxes, attack regions and hazard regions.
func (ls *LevelScene) drawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}
	if grid, ok := components.Grid.First(e.World); ok {
		for _, r := range components.Grid.Get(grid).Solids {
			ls.outline(screen, r, cfg.SolidGray)
		}
	}
	for entry := range components.Body.Iter(e.World) {
		ls.outline(screen, components.Body.Get(entry).Hitbox, cfg.LightBlue)
		if attack := components.Attack.Get(entry); attack.Active && attack.Applied {
			ls.outline(screen, attack.HitRegion, cfg.Red)
		}
	}
	for entry := range components.Fire.Iter(e.World) {
		ls.outline(screen, components.Fire.Get(entry).Region, cfg.Orange)
	}
	for entry := range components.Teleport.Iter(e.World) {
		ls.outline(screen, components.Teleport.Get(entry).Region, cfg.Purple)
	}
}

func (ls *LevelScene) outline(screen *ebiten.Image, r gamemath.Rect, clr color.Color) {
	x := float32(float64(r.X) - ls.camera.Position.X)
	y := float32(float64(r.Y) - ls.camera.Position.Y)
	vector.StrokeRect(screen, x, y, float32(r.W), float32(r.H), 1, clr, false)
}
