package systems

import (
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// orbHitDamage is the nominal damage of a player's blade hit on the enemy
// orb, before the orb's own intake.
func orbHitDamage(e *ecs.ECS, attacker cfg.Side, base float64) float64 {
	match := getMatch(e)
	defender := attacker.Opponent()
	damage := base * cfg.Orb.PlayerDamageMultiplier

	attackingPlayer := playerBySide(e.World, attacker)
	defendingPlayer := playerBySide(e.World, defender)
	if playerPresent(attackingPlayer) && playerPresent(defendingPlayer) &&
		laneOf(attackingPlayer) == cfg.LaneForeground && laneOf(defendingPlayer) == cfg.LaneForeground {
		damage *= cfg.Orb.SharedForegroundMultiplier
	}
	if guardingOrb(e, defender) {
		damage *= cfg.Orb.GuardMultiplier
	}

	hits := match.OrbCombo[attacker.Index()].Register(match.Tick, cfg.Combat.ComboMaxHits)
	return damage * float64(1+hits)
}

// guardingOrb reports whether side's player stands by its own orb in the
// foreground.
func guardingOrb(e *ecs.ECS, side cfg.Side) bool {
	player := playerBySide(e.World, side)
	orb := orbBySide(e.World, side)
	if !playerPresent(player) || orb == nil || laneOf(player) != cfg.LaneForeground {
		return false
	}
	p := components.Object.Get(player).Rect()
	o := components.Object.Get(orb).Rect()
	return gamemath.CenterDistance(p, o) <= cfg.Orb.GuardRadius
}

// regenOrbArmor restores armor on every intact orb, faster once its titan
// has fallen.
func regenOrbArmor(e *ecs.ECS) {
	match := getMatch(e)
	for _, side := range sides {
		entry := orbBySide(e.World, side)
		if !orbAlive(entry) {
			continue
		}
		orb := components.Orb.Get(entry)
		rate := cfg.Orb.ArmorRegenPerSecond
		if !orb.IsShielded {
			rate *= cfg.Orb.UnshieldedRegenMultiplier
		}
		orb.RegenArmor(rate * match.DT)
	}
}
