package systems

import (
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/tags"
	"github.com/yohamta/donburi"
)

// sides is the fixed per-tick processing order.
var sides = [2]cfg.Side{cfg.Side1, cfg.Side2}

func playerBySide(w donburi.World, side cfg.Side) *donburi.Entry {
	for e := range tags.Player.Iter(w) {
		if components.Player.Get(e).Side == side {
			return e
		}
	}
	return nil
}

func titanBySide(w donburi.World, side cfg.Side) *donburi.Entry {
	for e := range tags.Titan.Iter(w) {
		if components.Titan.Get(e).Side == side {
			return e
		}
	}
	return nil
}

func orbBySide(w donburi.World, side cfg.Side) *donburi.Entry {
	for e := range tags.Orb.Iter(w) {
		if components.Orb.Get(e).Side == side {
			return e
		}
	}
	return nil
}

// playerPresent reports whether a player is in the arena and can act or be
// hit: not dead, respawning or resurrecting.
func playerPresent(e *donburi.Entry) bool {
	if e == nil {
		return false
	}
	p := components.Player.Get(e)
	return !components.Fighter.Get(e).IsDead && p.Targetable()
}

// titanAlive reports whether a titan entry exists and is standing.
func titanAlive(e *donburi.Entry) bool {
	return e != nil && !components.Fighter.Get(e).IsDead
}

// orbAlive reports whether an orb entry exists and is intact.
func orbAlive(e *donburi.Entry) bool {
	return e != nil && !components.Orb.Get(e).IsDead
}

// playerDown reports whether a side's player is dead or respawning.
func playerDown(e *donburi.Entry) bool {
	return e == nil || components.Player.Get(e).IsRespawning
}

func laneOf(e *donburi.Entry) cfg.Lane {
	return components.Fighter.Get(e).Lane
}
