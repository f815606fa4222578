package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Fire     = donburi.NewTag().SetName("Fire")
	Teleport = donburi.NewTag().SetName("Teleport")
)

// Resolv tags for the collision space
const (
	ResolvSolid = "solid"
	ResolvProbe = "probe"
)
