package components

import "github.com/yohamta/donburi"

// CorruptionData is the player's rising corruption meter.
type CorruptionData struct {
	Value int
	Max   int
	Rate  int // units added per full second
	Timer float64
}

var Corruption = donburi.NewComponentType[CorruptionData]()
