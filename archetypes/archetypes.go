package archetypes

import (
	"github.com/automoto/lanebrawl/components"
	"github.com/automoto/lanebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Fighter,
		components.Object,
		components.Health,
		components.Physics,
		components.MeleeAttack,
		components.Special,
		components.PlayerInput,
	)
	Titan = newArchetype(
		tags.Titan,
		components.Titan,
		components.Fighter,
		components.Object,
		components.Health,
		components.Physics,
		components.ChargeTween,
	)
	Orb = newArchetype(
		tags.Orb,
		components.Orb,
		components.Object,
		components.Health,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Match,
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

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
