package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/fonts"
)

// GameOverScene displays the game over screen. Enter restarts from the
// first level.
type GameOverScene struct {
	session *Session
	started bool
}

func NewGameOverScene(s *Session) *GameOverScene {
	return &GameOverScene{session: s}
}

func (gs *GameOverScene) Update() {
	if !gs.started {
		logger.Info("game over")
		gs.session.Sound.PlayMusic(cfg.Sound.DeathMusic)
		gs.started = true
	}
	if justPressed(cfg.ActionConfirm) {
		gs.session.Sound.StopMusic()
		gs.session.Changer.ChangeScene(NewTransitionScene(gs.session, 1))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.DarkRed)

	if img := gs.session.Frames.Image("images/gameover.png"); img != nil {
		screen.DrawImage(img, nil)
		return
	}
	h := screen.Bounds().Dy()
	drawCentered(screen, "YOU DIED", fonts.Title.Get(), h/2, cfg.Red)
	drawCentered(screen, "Press Enter to descend again", fonts.Body.Get(), h/2+60, cfg.White)
}
