package systems

import (
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// armSiegeBeam starts the one-time beam countdown once the sieged orb is
// critical.
func armSiegeBeam(e *ecs.ECS, side cfg.Side, orbEntry *donburi.Entry) {
	match := getMatch(e)
	if match.Siege.Used || !orbAlive(orbEntry) {
		return
	}
	if components.Health.Get(orbEntry).Fraction() > cfg.Titan.CriticalFraction {
		return
	}

	match.Siege = components.SiegeData{
		Armed:     true,
		Used:      true,
		Side:      side,
		Remaining: cfg.Titan.SiegeBeamSeconds,
	}
	logf("[siege] side %d beam armed at tick %d (%.0fs)", side, match.Tick, cfg.Titan.SiegeBeamSeconds)
	match.Emit(messages.SiegeEvent{Tick: match.Tick, Side: side, Phase: messages.SiegeArmed})
}

func cancelSiegeBeam(e *ecs.ECS) {
	match := getMatch(e)
	if !match.Siege.Armed {
		return
	}
	match.Siege.Armed = false
	match.Siege.Remaining = 0
	logf("[siege] side %d beam cancelled at tick %d", match.Siege.Side, match.Tick)
	match.Emit(messages.SiegeEvent{Tick: match.Tick, Side: match.Siege.Side, Phase: messages.SiegeCancelled})
}

// UpdateSiegeBeam counts down an armed beam and destroys the opposing orb
// when it runs out.
func UpdateSiegeBeam(e *ecs.ECS) {
	match := getMatch(e)
	if !match.Siege.Armed {
		return
	}
	match.Siege.Remaining -= match.DT
	if match.Siege.Remaining > 0 {
		return
	}

	side := match.Siege.Side
	match.Siege.Armed = false
	match.Siege.Remaining = 0

	target := orbBySide(e.World, side.Opponent())
	if !orbAlive(target) {
		return
	}
	r := components.Object.Get(target).Rect()
	destroyOrb(e, target)
	match.LastHit = components.LastHitData{
		X:        r.CenterX(),
		Y:        r.CenterY(),
		Category: cfg.HitSiegeBeam,
		Attacker: side,
		Tick:     match.Tick,
	}
	logf("[siege] side %d beam fired at tick %d", side, match.Tick)
	match.Emit(messages.SiegeEvent{Tick: match.Tick, Side: side, Phase: messages.SiegeFired})
}
