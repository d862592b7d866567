package systems

import (
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/yohamta/donburi/ecs"
)

// getMatch returns the singleton world state.
func getMatch(e *ecs.ECS) *components.MatchData {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil
	}
	return components.Match.Get(entry)
}

// UpdateClock decides whether this step runs. A decided match or a pending
// hit-stop freezes the step; otherwise the tick counter advances.
func UpdateClock(e *ecs.ECS) {
	match := getMatch(e)
	if match == nil {
		return
	}
	match.Events = match.Events[:0]
	match.Frozen = true

	if match.Winner != cfg.WinnerNone {
		return
	}
	if match.HitStop > 0 {
		match.HitStop--
		return
	}

	match.Frozen = false
	match.Tick++
}

// WithGameplayChecks wraps a system to skip execution on frozen steps.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if match := getMatch(e); match == nil || match.Frozen {
			return
		}
		system(e)
	}
}

// UpdateInput copies the host's held actions into each human player's input.
// Bot-driven players are filled in by UpdateBots.
func UpdateInput(e *ecs.ECS) {
	match := getMatch(e)
	for _, side := range sides {
		entry := playerBySide(e.World, side)
		if entry == nil || entry.HasComponent(components.Bot) {
			continue
		}
		components.PlayerInput.Get(entry).Load(match.Inputs[side.Index()])
	}
}

// GetPlayerAction returns the full ActionState for an action ID from PlayerInputData.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdateObjects refreshes every body's broad-phase cells.
func UpdateObjects(e *ecs.ECS) {
	for entry := range components.Object.Iter(e.World) {
		obj := components.Object.Get(entry)
		obj.Update()
	}
}
