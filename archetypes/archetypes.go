package archetypes

import (
	"github.com/yohamta/donburi"

	"github.com/perfidia-game/perfidia/components"
	"github.com/perfidia-game/perfidia/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Health,
		components.Animation,
		components.Attack,
		components.Input,
		components.Corruption,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Health,
		components.Animation,
		components.Attack,
	)
	Fire = newArchetype(
		tags.Fire,
		components.Fire,
		components.Animation,
	)
	Teleport = newArchetype(
		tags.Teleport,
		components.Teleport,
	)
	Level = newArchetype(
		components.Level,
		components.Grid,
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	comps := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	comps = append(comps, a.components...)
	return w.Entry(w.Create(append(comps, cs...)...))
}
