package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/fonts"
)

// StartScene loops the title animation until Enter is pressed.
type StartScene struct {
	session *Session
	frame   int
	elapsed float64
	started bool
}

func NewStartScene(s *Session) *StartScene {
	return &StartScene{session: s}
}

func (ss *StartScene) Update() {
	if !ss.started {
		ss.session.Sound.PlayMusic(cfg.Sound.StartMusic)
		ss.started = true
	}

	ss.elapsed += frameDT()
	if ss.elapsed >= cfg.Screen.StartFrameDelay {
		ss.elapsed = 0
		ss.frame = (ss.frame + 1) % cfg.Screen.StartFrames
	}

	if justPressed(cfg.ActionConfirm) {
		ss.session.Sound.StopMusic()
		ss.session.Changer.ChangeScene(NewTransitionScene(ss.session, cfg.Debug.StartingLevel))
	}
}

func (ss *StartScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.DarkRed)
	img := ss.session.Frames.Image(fmt.Sprintf("images/start/frame_%d.png", ss.frame+1))
	if img != nil {
		screen.DrawImage(img, nil)
		return
	}
	h := screen.Bounds().Dy()
	drawCentered(screen, "PERFIDIA", fonts.Title.Get(), h/2, cfg.Red)
	drawCentered(screen, "Press Enter", fonts.Body.Get(), h/2+60, cfg.White)
}
