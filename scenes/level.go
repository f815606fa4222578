package scenes

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/perfidia-game/perfidia/assets"
	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/fonts"
	"github.com/perfidia-game/perfidia/levelsim"
	"github.com/perfidia-game/perfidia/replay"
	"github.com/perfidia-game/perfidia/shared/leveldata"
)

// LevelScene plays one level of the sequence.
type LevelScene struct {
	session    *Session
	number     int
	ecs        *ecs.ECS
	sim        *levelsim.Simulation
	recorder   *replay.Recorder
	background *ebiten.Image
	camera     camera
	once       sync.Once
	err        error
}

func NewLevelScene(s *Session, number int) *LevelScene {
	return &LevelScene{session: s, number: number}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	if ls.err != nil {
		if justPressed(cfg.ActionConfirm) {
			ls.session.Changer.ChangeScene(NewStartScene(ls.session))
		}
		return
	}

	if cfg.Debug.SkipLevel && justPressed(cfg.ActionSkipLevel) {
		ls.sim.Skip()
		if ls.recorder != nil {
			ls.recorder.MarkSkip()
		}
	}

	dt, actions := frameDT(), PollActions()
	if ls.recorder != nil {
		ls.recorder.Record(dt, actions)
	}
	signal := ls.sim.Tick(dt, actions)
	ls.ecs.Update()

	switch signal {
	case levelsim.NextLevel:
		ls.finish()
		if ls.number >= cfg.Level.Count {
			ls.session.Changer.ChangeScene(NewCutsceneScene(ls.session))
			return
		}
		ls.session.Changer.ChangeScene(NewTransitionScene(ls.session, ls.number+1))
	case levelsim.GameOver:
		ls.finish()
		ls.session.Changer.ChangeScene(NewGameOverScene(ls.session))
	}
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.DarkRed)
	if ls.err != nil {
		drawCentered(screen, "Level failed to load. Press Enter.", fonts.Body.Get(), screen.Bounds().Dy()/2, cfg.White)
		return
	}
	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	path := leveldata.LevelPath(cfg.Level.Dir, ls.number)
	lvl, err := leveldata.LoadLevel(ls.session.Assets, path)
	if err != nil {
		logger.Error("cannot load level", "level", ls.number, "err", err)
		ls.err = err
		return
	}
	lvl.Number = ls.number

	seed := ls.session.seedFor(ls.number)
	rate := cfg.Corruption.RateFor(ls.number)
	ls.sim = levelsim.New(lvl,
		levelsim.WithSeed(seed),
		levelsim.WithSoundSink(ls.session.Sound),
		levelsim.WithCorruptionRate(rate),
	)
	if ls.session.RecordDir != "" {
		ls.recorder = replay.NewRecorder(ls.number, seed, rate)
	}
	ls.background = assets.Background(ls.session.Assets, path)

	ls.ecs = ecs.NewECS(ls.sim.World())
	ls.ecs.AddSystem(ls.camera.follow)
	ls.ecs.AddRenderer(layerWorld, ls.drawBackground)
	ls.ecs.AddRenderer(layerWorld, ls.drawFires)
	ls.ecs.AddRenderer(layerWorld, ls.drawActors)
	ls.ecs.AddRenderer(layerWorld, ls.drawHitboxes)
	ls.ecs.AddRenderer(layerWorld, ls.drawHUD)

	ls.session.Sound.PlayMusic(cfg.Sound.LevelMusic[cfg.Level.TypeOf(ls.number)])
}

// finish stores the replay of a level that reached an outcome.
func (ls *LevelScene) finish() {
	if ls.recorder == nil {
		return
	}
	path := filepath.Join(ls.session.RecordDir, fmt.Sprintf("level%d-%d.replay", ls.number, ls.sim.Seed()))
	if err := replay.SaveFile(path, ls.recorder.Recording()); err != nil {
		logger.Error("cannot save replay", "path", path, "err", err)
		return
	}
	logger.Info("replay saved", "path", path)
}
