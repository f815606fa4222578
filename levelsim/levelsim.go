// Package levelsim runs one level: it builds the world from level data,
// steps the systems in a fixed order and reports when the level ends.
package levelsim

import (
	"fmt"

	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/logging"
	"github.com/perfidia-game/perfidia/shared/gamemath"
	"github.com/perfidia-game/perfidia/shared/leveldata"
	"github.com/perfidia-game/perfidia/systems"
	"github.com/perfidia-game/perfidia/systems/factory"
)

var logger = logging.New("levelsim")

// Signal is what a tick tells the caller about the level.
type Signal int

const (
	Continue Signal = iota
	NextLevel
	GameOver
)

func (s Signal) String() string {
	switch s {
	case Continue:
		return "continue"
	case NextLevel:
		return "next_level"
	case GameOver:
		return "game_over"
	}
	return fmt.Sprintf("Signal(%d)", int(s))
}

// SoundSink receives the sound cues raised during a tick.
type SoundSink interface {
	Play(id cfg.SoundID)
}

type options struct {
	seed           int64
	sink           SoundSink
	corruptionRate int
}

type Option func(*options)

// WithSeed fixes the random source used for enemy variants and sound picks.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithSoundSink routes sound cues to sink. Without one they are dropped.
func WithSoundSink(sink SoundSink) Option {
	return func(o *options) { o.sink = sink }
}

// WithCorruptionRate overrides the per-level corruption rate. 0 disables it.
func WithCorruptionRate(rate int) Option {
	return func(o *options) { o.corruptionRate = rate }
}

// Simulation is a single level in progress.
type Simulation struct {
	world    donburi.World
	player   *donburi.Entry
	sink     SoundSink
	seed     int64
	signal   Signal
	pipeline []systems.System
}

// New builds the world for lvl. A level without a player spawn uses
// config.Level.DefaultSpawn.
func New(lvl *leveldata.Level, opts ...Option) *Simulation {
	o := options{
		seed:           int64(lvl.Number),
		corruptionRate: cfg.Corruption.RateFor(lvl.Number),
	}
	for _, opt := range opts {
		opt(&o)
	}

	w := donburi.NewWorld()
	levelEntry := factory.CreateLevel(w, lvl, o.seed)
	level := components.Level.Get(levelEntry)

	spawn := leveldata.Point{X: cfg.Level.DefaultSpawn[0], Y: cfg.Level.DefaultSpawn[1]}
	if lvl.PlayerSpawn != nil {
		spawn = *lvl.PlayerSpawn
	} else {
		logger.Warn("spawn point missing", "level", lvl.Number, "fallback", spawn)
	}
	player := factory.CreatePlayer(w, spawn.X, spawn.Y, o.corruptionRate)

	for _, p := range lvl.EnemySpawns {
		variant := gamemath.Choose(level.Rand.Int63(), cfg.Enemy.Variants)
		factory.CreateEnemy(w, p.X, p.Y, variant)
	}
	for _, h := range lvl.Hazards {
		factory.CreateFire(w, h.X, h.Y, h.Type)
	}
	if lvl.Teleport != nil {
		factory.CreateTeleport(w, *lvl.Teleport)
	}

	logger.Info("level ready",
		"level", lvl.Number,
		"type", level.Type,
		"solids", len(lvl.Solids),
		"enemies", len(lvl.EnemySpawns),
		"hazards", len(lvl.Hazards),
		"teleport", lvl.Teleport != nil,
		"seed", o.seed,
	)

	return &Simulation{
		world:  w,
		player: player,
		sink:   o.sink,
		seed:   o.seed,
		pipeline: []systems.System{
			systems.WithLevelRunning(systems.UpdatePlayer),
			systems.WithLevelRunning(systems.UpdateCorruption),
			systems.WithLevelRunning(systems.UpdateFire),
			systems.WithLevelRunning(systems.UpdateTeleport),
			systems.WithLevelRunning(systems.UpdateEnemies),
			systems.WithLevelRunning(systems.UpdateDeaths),
		},
	}
}

// Tick advances the level by dt seconds with the given input. dt is clamped
// and split into fixed sub-steps; input edges only count on the first one.
// Once the level has ended the same signal is returned without simulating.
func (s *Simulation) Tick(dt float64, actions cfg.Actions) Signal {
	if s.signal != Continue {
		return s.signal
	}

	dt = gamemath.ClampDT(dt, cfg.Level.MaxFrameDT)
	n, step := gamemath.SubSteps(dt, cfg.Level.SubStepDT)
	input := components.Input.Get(s.player)
	level := systems.GetLevel(s.world)

	for i := 0; i < n && !level.Finished(); i++ {
		if i == 0 {
			input.Push(actions)
		} else {
			input.Hold()
		}
		systems.AdvanceClock(step)(s.world)
		for _, system := range s.pipeline {
			system(s.world)
		}
	}

	s.flushSounds()
	s.signal = signalFor(level.Outcome)
	if s.signal != Continue {
		logger.Info("level finished", "level", level.Number, "signal", s.signal, "clock", level.Clock)
	}
	return s.signal
}

// Skip ends the level as if the teleport was reached.
func (s *Simulation) Skip() {
	level := systems.GetLevel(s.world)
	if !level.Finished() {
		level.Outcome = components.OutcomeNextLevel
	}
}

func (s *Simulation) flushSounds() {
	for _, id := range systems.DrainSFX(s.world) {
		if s.sink != nil {
			s.sink.Play(id)
		}
	}
}

func signalFor(outcome components.Outcome) Signal {
	switch outcome {
	case components.OutcomeNextLevel:
		return NextLevel
	case components.OutcomeGameOver:
		return GameOver
	}
	return Continue
}

// World exposes the entities for rendering. Callers must not mutate it.
func (s *Simulation) World() donburi.World { return s.world }

// Seed is the seed the level's random source started from.
func (s *Simulation) Seed() int64 { return s.seed }

// Level is the level state: number, type, clock and outcome.
func (s *Simulation) Level() components.LevelData {
	return *systems.GetLevel(s.world)
}

// Player is a read-only view of the player for HUD bars.
func (s *Simulation) Player() components.Vitals {
	return components.VitalsOf(s.player)
}

// PlayerDead reports whether the player has died this level.
func (s *Simulation) PlayerDead() bool {
	return components.Health.Get(s.player).Dead
}

// Corruption returns the player's corruption meter.
func (s *Simulation) Corruption() (value, max int) {
	c := components.Corruption.Get(s.player)
	return c.Value, c.Max
}

// Enemies returns read-only views of the enemies still in the level.
func (s *Simulation) Enemies() []components.Vitals {
	var out []components.Vitals
	for e := range components.Enemy.Iter(s.world) {
		out = append(out, components.VitalsOf(e))
	}
	return out
}
