package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionRun
	ActionJump
	ActionAttack
	ActionConfirm
	ActionSkipLevel
	ActionCount // Must be last - used for array sizing
)

// Actions is the fixed-size per-tick action state.
type Actions [ActionCount]bool
