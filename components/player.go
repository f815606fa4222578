package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	WalkSpeed float64
	RunSpeed  float64
	JumpSpeed float64

	// HazardCooldown counts down to the next allowed fire damage. It stops
	// within one step below zero.
	HazardCooldown float64
}

var Player = donburi.NewComponentType[PlayerData]()
