package systems

import (
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/shared/gamemath"
	"github.com/automoto/lanebrawl/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// startSpecial spends the full meter and opens the special window.
func startSpecial(special *components.SpecialData) {
	special.Meter = 0
	special.Active = true
	special.Frame = 0
}

// updateSpecial advances an active special. The first frames are windup,
// the impact frame resolves a radius check, and the window then idles out.
func updateSpecial(e *ecs.ECS, entry *donburi.Entry) {
	special := components.Special.Get(entry)
	if !special.Active {
		return
	}
	if !playerPresent(entry) {
		special.Active = false
		special.Frame = 0
		return
	}

	if special.Frame == cfg.Special.ImpactFrame {
		resolveSpecialImpact(e, entry)
	}
	special.Frame++
	if special.Frame >= cfg.Special.Frames {
		special.Active = false
		special.Frame = 0
	}
}

func resolveSpecialImpact(e *ecs.ECS, attacker *donburi.Entry) {
	match := getMatch(e)
	fighter := components.Fighter.Get(attacker)
	body := components.Object.Get(attacker).Rect()
	enemy := fighter.Side.Opponent()

	cx := body.CenterX() + fighter.Facing*cfg.Special.Reach
	cy := body.CenterY()
	radius := cfg.Special.Radius
	nearby := queryArea(e, gamemath.Rect{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius}, enemy)

	inBlast := func(target *donburi.Entry) bool {
		return nearby[target.Entity()] &&
			gamemath.CircleIntersectsRect(cx, cy, radius, components.Object.Get(target).Rect())
	}
	connected := false
	hit := func(kind string, damage float64) {
		connected = true
		registerHit(match, fighter.Side, kind, cfg.HitSpecial, damage, cx, cy, cfg.Combat.HitStopSpecial)
	}

	if target := playerBySide(e.World, enemy); playerPresent(target) && laneOf(target) == fighter.Lane && inBlast(target) {
		damageFighter(e, target, cfg.Special.FighterDamage)
		hit(messages.KindPlayer, cfg.Special.FighterDamage)
	}

	if target := titanBySide(e.World, enemy); titanAlive(target) && laneOf(target) == fighter.Lane && inBlast(target) {
		damageTitan(e, target, cfg.Special.FighterDamage)
		hit(messages.KindTitan, cfg.Special.FighterDamage)
	}

	if target := orbBySide(e.World, enemy); fighter.Lane == cfg.LaneForeground && orbAlive(target) && inBlast(target) {
		damage, piercing := specialOrbDamage(e, enemy, target)
		damageOrb(e, target, damage, piercing)
		hit(messages.KindOrb, damage)
	}

	if connected {
		logf("[combat] side %d special connected at tick %d", fighter.Side, match.Tick)
	}
}

// specialOrbDamage applies the catch-up rule: a bonus-protected orb whose
// titan has fallen takes triple damage while its owner is up. Specials
// pierce once the orb's titan is dead.
func specialOrbDamage(e *ecs.ECS, defender cfg.Side, orbEntry *donburi.Entry) (damage float64, piercing bool) {
	orb := components.Orb.Get(orbEntry)
	titanDead := !titanAlive(titanBySide(e.World, defender))
	damage = cfg.Special.OrbDamage
	if orb.HasDefenseBonus && titanDead && !playerDown(playerBySide(e.World, defender)) {
		damage *= cfg.Special.CatchUpMultiplier
	}
	return damage, titanDead
}
