package config

// AnimationDef describes one frame sequence.
type AnimationDef struct {
	Frames   int     `yaml:"frames"`
	Interval float64 `yaml:"interval"` // seconds per frame
}

// AnimationTable maps each state an actor can be in to its sequence.
type AnimationTable map[StateID]AnimationDef

// FrameCount returns the frame count of state, or 0 if the table lacks it.
func (t AnimationTable) FrameCount(state StateID) int {
	return t[state].Frames
}

// Has reports whether the table defines state.
func (t AnimationTable) Has(state StateID) bool {
	_, ok := t[state]
	return ok
}

// Animation table keys.
const (
	AnimPlayer = "player"
	AnimEnemy  = "enemy"
	AnimFire   = "fire"
)

// CharacterAnimations maps an actor kind to its animation table.
var CharacterAnimations map[string]AnimationTable

func init() {
	const playerInterval = 0.12
	const enemyInterval = 0.08

	CharacterAnimations = map[string]AnimationTable{
		AnimPlayer: {
			Idle:   {Frames: 5, Interval: playerInterval},
			Walk:   {Frames: 8, Interval: playerInterval},
			Run:    {Frames: 8, Interval: playerInterval},
			Jump:   {Frames: 4, Interval: playerInterval},
			Fall:   {Frames: 4, Interval: playerInterval},
			Attack: {Frames: 6, Interval: 0.08},
			Death:  {Frames: 8, Interval: 0.16},
		},
		AnimEnemy: {
			Idle:   {Frames: 5, Interval: enemyInterval},
			Walk:   {Frames: 8, Interval: enemyInterval},
			Attack: {Frames: 7, Interval: enemyInterval},
			Hit:    {Frames: 5, Interval: enemyInterval},
			Death:  {Frames: 8, Interval: enemyInterval},
		},
		AnimFire: {
			Burning: {Frames: 6, Interval: 0.1},
		},
	}
}
