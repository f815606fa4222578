package systems

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/components"
	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/shared/gamemath"
)

// PlaySFX queues a sound effect. Cues are drained by whoever owns the sink.
func PlaySFX(w donburi.World, sound cfg.SoundID) {
	if sound == cfg.SoundNone {
		return
	}
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	audio.PendingSFX = append(audio.PendingSFX, sound)
}

// PlayRandomSFX queues one of variants, picked with the level's random source.
func PlayRandomSFX(w donburi.World, variants []cfg.SoundID) {
	if len(variants) == 0 {
		return
	}
	level := GetLevel(w)
	if level == nil || level.Rand == nil {
		PlaySFX(w, variants[0])
		return
	}
	PlaySFX(w, gamemath.Choose(level.Rand.Int63(), variants))
}

// DrainSFX returns the queued cues and empties the queue.
func DrainSFX(w donburi.World) []cfg.SoundID {
	entry, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	audio := components.Audio.Get(entry)
	pending := audio.PendingSFX
	audio.PendingSFX = nil
	return pending
}
