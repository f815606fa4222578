package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/fonts"
)

const cutsceneScale = 6

// CutsceneScene is the ending: the player's death animation plays large
// while the closing line types itself out. It returns to the start screen
// after a hold.
type CutsceneScene struct {
	session   *Session
	frame     int
	frameTime float64
	typed     int
	typeTime  float64
	hold      float64
	started   bool
}

func NewCutsceneScene(s *Session) *CutsceneScene {
	return &CutsceneScene{session: s}
}

func (cs *CutsceneScene) Update() {
	if !cs.started {
		logger.Info("descent complete")
		cs.session.Sound.PlayMusic(cfg.Sound.FinalMusic)
		cs.started = true
	}
	dt := frameDT()

	frames := cfg.CharacterAnimations[cfg.AnimPlayer].FrameCount(cfg.Death)
	cs.frameTime += dt
	if cs.frameTime >= cfg.Screen.CutsceneFrameDT {
		cs.frameTime = 0
		if cs.frame < frames-1 {
			cs.frame++
		}
	}

	text := []rune(cfg.Screen.CutsceneText)
	if cs.typed < len(text) {
		cs.typeTime += dt
		if cs.typeTime >= 1/cfg.Screen.CutsceneTypeRate {
			cs.typeTime = 0
			cs.typed++
		}
		return
	}

	cs.hold += dt
	if cs.hold >= cfg.Screen.CutsceneHold || justPressed(cfg.ActionConfirm) {
		cs.session.Sound.StopMusic()
		cs.session.Changer.ChangeScene(NewStartScene(cs.session))
	}
}

func (cs *CutsceneScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.DarkRed)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	frame := cs.session.Frames.Frame(cfg.AnimPlayer, cfg.Death, cs.frame, cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cutsceneScale, cutsceneScale)
	fw := float64(frame.Bounds().Dx() * cutsceneScale)
	fh := float64(frame.Bounds().Dy() * cutsceneScale)
	op.GeoM.Translate(float64(w)/2+100-fw/2, float64(h)/2-170-fh/2)
	screen.DrawImage(frame, op)

	text := []rune(cfg.Screen.CutsceneText)
	drawCentered(screen, string(text[:cs.typed]), fonts.Body.Get(), h/2+200, cfg.White)
}
