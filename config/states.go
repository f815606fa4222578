package config

import "fmt"

// StateID is the logical animation state of an actor or hazard.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
	Run
	Jump
	Fall
	Attack
	Hit
	Death
	Burning
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "stand",
	Walk:      "walk",
	Run:       "run",
	Jump:      "jump",
	Fall:      "fall",
	Attack:    "attack",
	Hit:       "hit",
	Death:     "death",
	Burning:   "burn",
}

// String returns the asset folder name for the state.
func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Locking states play to completion before another transition is honored.
func (s StateID) Locking() bool {
	switch s {
	case Attack, Hit, Death:
		return true
	}
	return false
}

// Looping states wrap their frame index.
func (s StateID) Looping() bool {
	switch s {
	case Idle, Walk, Run, Jump, Fall, Burning:
		return true
	case StateNone, Attack, Hit, Death:
		return false
	}
	panic(fmt.Sprintf("config: unknown state %d", int(s)))
}
