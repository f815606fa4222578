package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/fonts"
)

type fadePhase int

const (
	fadeIn fadePhase = iota
	fadeHold
	fadeOut
)

// TransitionScene fades the circle's picture in and out before a level.
// Enter skips straight to the level.
type TransitionScene struct {
	session *Session
	number  int
	phase   fadePhase
	tween   *gween.Tween
	alpha   float32
	hold    float64
	started bool
}

func NewTransitionScene(s *Session, number int) *TransitionScene {
	return &TransitionScene{
		session: s,
		number:  number,
		tween:   gween.New(0, 1, float32(cfg.Screen.FadeDuration), ease.Linear),
	}
}

func (ts *TransitionScene) Update() {
	if !ts.started {
		ts.session.Sound.PlayMusic(cfg.Sound.TransitionMusic)
		ts.started = true
	}
	if justPressed(cfg.ActionConfirm) {
		ts.done()
		return
	}

	dt := frameDT()
	switch ts.phase {
	case fadeIn:
		var finished bool
		ts.alpha, finished = ts.tween.Update(float32(dt))
		if finished {
			ts.phase = fadeHold
		}
	case fadeHold:
		ts.hold += dt
		if ts.hold >= cfg.Screen.FadeHold {
			ts.phase = fadeOut
			ts.tween = gween.New(1, 0, float32(cfg.Screen.FadeDuration), ease.Linear)
		}
	case fadeOut:
		var finished bool
		ts.alpha, finished = ts.tween.Update(float32(dt))
		if finished {
			ts.done()
		}
	}
}

func (ts *TransitionScene) done() {
	ts.session.Sound.StopMusic()
	logger.Info("entering level", "level", ts.number)
	ts.session.Changer.ChangeScene(NewLevelScene(ts.session, ts.number))
}

func (ts *TransitionScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.DarkRed)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(ts.alpha)
	if img := ts.session.Frames.Image(fmt.Sprintf("images/hells/hell_%d.png", ts.number)); img != nil {
		screen.DrawImage(img, op)
		return
	}

	caption := ebiten.NewImage(screen.Bounds().Dx(), screen.Bounds().Dy())
	drawCentered(caption, fmt.Sprintf("Circle %d", ts.number), fonts.Title.Get(), caption.Bounds().Dy()/2, cfg.White)
	screen.DrawImage(caption, op)
	caption.Deallocate()
}
