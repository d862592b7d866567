package systems

import (
	"log"

	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// logf writes a lifecycle log line unless logging is silenced.
func logf(format string, args ...any) {
	if cfg.Debug.Quiet {
		return
	}
	log.Printf(format, args...)
}

// damageFighter runs a player's damage intake: blocking cuts the hit to 10%
// and cannot kill. Returns the health actually removed.
func damageFighter(e *ecs.ECS, target *donburi.Entry, amount float64) float64 {
	fighter := components.Fighter.Get(target)
	if fighter.IsDead {
		return 0
	}
	if fighter.IsBlocking {
		amount *= cfg.Combat.BlockDamageFactor
	}

	hp := components.Health.Get(target)
	taken := hp.Damage(amount)
	if hp.Current > 0 {
		return taken
	}
	if fighter.IsBlocking {
		hp.Current = min(1, hp.Max)
		return taken - hp.Current
	}
	killPlayer(e, target)
	return taken
}

// damageTitan runs a titan's damage intake: proximity charge reduces the hit
// and the hit resets the regen clock.
func damageTitan(e *ecs.ECS, target *donburi.Entry, amount float64) float64 {
	taken := hurtTitan(e, target, amount)
	if components.Health.Get(target).Current <= 0 {
		killTitan(e, target)
	}
	return taken
}

// hurtTitan applies titan damage without resolving a death.
func hurtTitan(e *ecs.ECS, target *donburi.Entry, amount float64) float64 {
	if components.Fighter.Get(target).IsDead {
		return 0
	}
	titan := components.Titan.Get(target)
	titan.LastDamageTick = getMatch(e).Tick

	amount *= titan.DamageReduction(cfg.Combat.ProximityDefenseFactor)
	return components.Health.Get(target).Damage(amount)
}

// damageOrb runs the orb intake: defense bonus, then the piercing share
// straight to health, then armor with overflow to health.
func damageOrb(e *ecs.ECS, target *donburi.Entry, amount float64, piercing bool) {
	orb := components.Orb.Get(target)
	if orb.IsDead || amount <= 0 {
		return
	}
	match := getMatch(e)
	hp := components.Health.Get(target)

	if orb.HasDefenseBonus {
		amount *= cfg.Orb.DefenseBonusMultiplier
		if piercing {
			direct := amount * cfg.Orb.PierceFraction
			hp.Damage(direct)
			amount -= direct
		}
	}
	hp.Damage(orb.AbsorbArmor(amount))
	orb.LastHitTick = match.Tick

	if hp.Current <= 0 {
		destroyOrb(e, target)
	}
}

// destroyOrb marks an orb dead. The win evaluator picks it up at the end of
// the step.
func destroyOrb(e *ecs.ECS, target *donburi.Entry) {
	orb := components.Orb.Get(target)
	if orb.IsDead {
		return
	}
	match := getMatch(e)
	components.Health.Get(target).Current = 0
	orb.IsDead = true
	logf("[orb] side %d orb destroyed at tick %d", orb.Side, match.Tick)
	match.Emit(messages.DeathEvent{Tick: match.Tick, Side: orb.Side, Kind: messages.KindOrb})
}

// registerHit records an impactful hit for effects and freezes the world.
func registerHit(match *components.MatchData, attacker cfg.Side, kind string, category cfg.HitCategory, damage, x, y float64, hitStop int) {
	match.Freeze(hitStop)
	match.LastHit = components.LastHitData{
		X:        x,
		Y:        y,
		Category: category,
		Attacker: attacker,
		Tick:     match.Tick,
	}
	match.Emit(messages.HitEvent{
		Tick:     match.Tick,
		Attacker: attacker,
		Target:   kind,
		Category: category,
		Damage:   damage,
		X:        x,
		Y:        y,
	})
}
