package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based API matches the freetype faces
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/fonts"
	"github.com/perfidia-game/perfidia/shared/gamemath"
)

const (
	barWidth         = 70
	barHeight        = 10
	healthBarOffset  = 10
	corruptionOffset = 24
)

var (
	barBackground   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	healthColor     = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	corruptionColor = color.RGBA{R: 110, G: 20, B: 160, A: 255}
)

// drawHUD draws the bars that follow each actor plus the level caption.
func (ls *LevelScene) drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	for _, enemy := range ls.sim.Enemies() {
		ls.drawHealthBar(screen, enemy)
	}

	player := ls.sim.Player()
	ls.drawHealthBar(screen, player)

	value, max := ls.sim.Corruption()
	percent := gamemath.BarPercent(value, max, cfg.Corruption.Tier)
	ls.drawBar(screen, "corruption_bar", player, percent, corruptionOffset, corruptionColor)

	level := ls.sim.Level()
	text.Draw(screen, fmt.Sprintf("Circle %d  %s", level.Number, level.Type), fonts.HUD.Get(), 16, 28, cfg.White)
}

func (ls *LevelScene) drawHealthBar(screen *ebiten.Image, v components.Vitals) {
	percent := gamemath.BarPercent(v.Health(), v.MaxHealth(), cfg.Screen.HealthTier)
	ls.drawBar(screen, "health_bar", v, percent, healthBarOffset, healthColor)
}

// drawBar shows a bar filled to percent above the owner's head. A bar image
// for the percentage is used when the asset tree has one.
func (ls *LevelScene) drawBar(screen *ebiten.Image, kind string, owner components.Vitals, percent, offset int, fill color.Color) {
	x, y := owner.Position()
	left := x - barWidth/2 - ls.camera.Position.X
	top := y - float64(cfg.Player.FrameHeight) - float64(offset) - ls.camera.Position.Y

	if img := ls.session.Frames.Image(fmt.Sprintf("images/%s/bar%d.png", kind, percent)); img != nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(left, top)
		screen.DrawImage(img, drawOp)
		return
	}

	vector.FillRect(screen, float32(left), float32(top), barWidth, barHeight, barBackground, false)
	w := float32(barWidth) * float32(percent) / 100
	vector.FillRect(screen, float32(left), float32(top), w, barHeight, fill, false)
}
