package scenes

import (
	"math"

	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
)

const cameraSmoothing = 0.15

// camera is the top-left corner of the view in world pixels.
type camera struct {
	Position dmath.Vec2
	ready    bool
}

// follow moves the camera towards the player, clamped so the level always
// fills the screen. Levels smaller than the screen are centered.
func (c *camera) follow(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	px, py := components.Body.Get(playerEntry).Center()

	screenW, screenH := float64(cfg.C.Width), float64(cfg.C.Height)
	targetX := clampView(px-screenW/2, float64(level.MapWidth), screenW)
	targetY := clampView(py-screenH/2, float64(level.MapHeight), screenH)

	if !c.ready {
		c.Position = dmath.Vec2{X: targetX, Y: targetY}
		c.ready = true
		return
	}
	c.Position.X += (targetX - c.Position.X) * cameraSmoothing
	c.Position.Y += (targetY - c.Position.Y) * cameraSmoothing
}

func clampView(target, mapSize, screenSize float64) float64 {
	if mapSize <= screenSize {
		return (mapSize - screenSize) / 2
	}
	return math.Max(0, math.Min(mapSize-screenSize, target))
}
