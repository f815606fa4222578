// Package replay records the per-frame input of a level and plays it back
// headless. The simulation is deterministic for a given seed, so a replay
// reproduces the recorded run exactly.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-msgpack/v2/codec"

	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/levelsim"
	"github.com/perfidia-game/perfidia/logging"
	"github.com/perfidia-game/perfidia/shared/leveldata"
)

const formatVersion = 1

// ErrBadReplay is returned for files that cannot be played back.
var ErrBadReplay = errors.New("bad replay")

var logger = logging.New("replay")

// Frame is one Tick call: its delta and the input bitmask. Skip marks a
// debug level skip issued just before the tick.
type Frame struct {
	DT    float64 `codec:"dt"`
	Input uint16  `codec:"in"`
	Skip  bool    `codec:"skip,omitempty"`
}

type Recording struct {
	Version        int     `codec:"version"`
	Level          int     `codec:"level"`
	Seed           int64   `codec:"seed"`
	CorruptionRate int     `codec:"corruption_rate"`
	Frames         []Frame `codec:"frames"`
}

// Recorder collects frames while a level is played.
type Recorder struct {
	rec  Recording
	skip bool
}

func NewRecorder(level int, seed int64, corruptionRate int) *Recorder {
	return &Recorder{rec: Recording{
		Version:        formatVersion,
		Level:          level,
		Seed:           seed,
		CorruptionRate: corruptionRate,
	}}
}

func (r *Recorder) Record(dt float64, actions cfg.Actions) {
	r.rec.Frames = append(r.rec.Frames, Frame{DT: dt, Input: packActions(actions), Skip: r.skip})
	r.skip = false
}

// MarkSkip flags the next recorded frame as skipped.
func (r *Recorder) MarkSkip() {
	r.skip = true
}

func (r *Recorder) Recording() *Recording {
	return &r.rec
}

func packActions(a cfg.Actions) uint16 {
	var bits uint16
	for i, pressed := range a {
		if pressed {
			bits |= 1 << i
		}
	}
	return bits
}

func unpackActions(bits uint16) cfg.Actions {
	var a cfg.Actions
	for i := range a {
		a[i] = bits&(1<<i) != 0
	}
	return a
}

func handle() *codec.MsgpackHandle {
	return &codec.MsgpackHandle{}
}

// Save writes rec as msgpack.
func Save(w io.Writer, rec *Recording) error {
	if err := codec.NewEncoder(w, handle()).Encode(rec); err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}
	return nil
}

// Load reads a recording written by Save.
func Load(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := codec.NewDecoder(r, handle()).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReplay, err)
	}
	if rec.Version != formatVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrBadReplay, rec.Version, formatVersion)
	}
	if rec.Level < 1 {
		return nil, fmt.Errorf("%w: level %d", ErrBadReplay, rec.Level)
	}
	return &rec, nil
}

func SaveFile(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create replay: %w", err)
	}
	if err := Save(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func LoadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Result is the state of the level when playback stopped.
type Result struct {
	Signal levelsim.Signal
	Ticks  int
	Clock  float64
	X, Y   float64
	Health int
}

// Run replays rec against lvl. Playback stops at the first terminal signal
// or when the frames run out.
func Run(lvl *leveldata.Level, rec *Recording) (Result, error) {
	if lvl.Number != rec.Level {
		return Result{}, fmt.Errorf("%w: recorded on level %d, got level %d", ErrBadReplay, rec.Level, lvl.Number)
	}

	sim := levelsim.New(lvl,
		levelsim.WithSeed(rec.Seed),
		levelsim.WithCorruptionRate(rec.CorruptionRate),
	)

	var res Result
	for _, f := range rec.Frames {
		if f.Skip {
			sim.Skip()
		}
		res.Signal = sim.Tick(f.DT, unpackActions(f.Input))
		res.Ticks++
		if res.Signal != levelsim.Continue {
			break
		}
	}

	res.Clock = sim.Level().Clock
	res.X, res.Y = sim.Player().Position()
	res.Health = sim.Player().Health()

	logger.Info("replay finished",
		"level", rec.Level,
		"ticks", res.Ticks,
		"frames", len(rec.Frames),
		"signal", res.Signal,
		"health", res.Health,
	)
	return res, nil
}
