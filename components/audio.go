package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/perfidia-game/perfidia/config"
)

// AudioData queues sound cues raised during a tick (singleton component).
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
