package systems

import (
	"math"

	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/mathutil"
	"github.com/automoto/lanebrawl/shared/gamemath"
	"github.com/automoto/lanebrawl/shared/messages"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTitans runs the titan controller: proximity charge, regeneration,
// orb armor regen, then the duel, march and siege behaviors.
func UpdateTitans(e *ecs.ECS) {
	for _, side := range sides {
		if titan := titanBySide(e.World, side); titanAlive(titan) {
			updateProximityCharge(e, titan)
			updateTitanRegen(e, titan)
		}
	}
	regenOrbArmor(e)

	t1 := titanBySide(e.World, cfg.Side1)
	t2 := titanBySide(e.World, cfg.Side2)
	alive1, alive2 := titanAlive(t1), titanAlive(t2)

	switch {
	case alive1 && alive2:
		updateDuel(e, t1, t2)
	case alive1:
		updateSurvivor(e, t1)
	case alive2:
		updateSurvivor(e, t2)
	default:
		updateDormant(e, t1, t2)
	}
}

// updateProximityCharge tweens the charge up while the allied player stands
// close in the background and down otherwise. Leaving the background drops
// it to zero at once.
func updateProximityCharge(e *ecs.ECS, entry *donburi.Entry) {
	match := getMatch(e)
	titan := components.Titan.Get(entry)
	ally := playerBySide(e.World, titan.Side)

	if ally == nil || laneOf(ally) != cfg.LaneBackground {
		if titan.ProximityCharge != 0 || titan.ChargeTarget != 0 {
			titan.ProximityCharge = 0
			titan.ChargeTarget = 0
			components.ChargeTween.Set(entry, gween.New(0, 0, 0, ease.Linear))
		}
		return
	}

	target := 0.0
	if playerPresent(ally) {
		dist := gamemath.CenterDistance(components.Object.Get(ally).Rect(), components.Object.Get(entry).Rect())
		if dist <= cfg.Titan.ProximityRadius {
			target = 1
		}
	}

	if target != titan.ChargeTarget {
		window := cfg.Titan.ChargeDecaySeconds
		if target > titan.ProximityCharge {
			window = cfg.Titan.ChargeBuildSeconds
		}
		duration := math.Abs(target-titan.ProximityCharge) * window
		components.ChargeTween.Set(entry, gween.New(float32(titan.ProximityCharge), float32(target), float32(duration), ease.Linear))
		titan.ChargeTarget = target
	}

	if match.DT <= 0 || titan.ProximityCharge == titan.ChargeTarget {
		return
	}
	charge, _ := components.ChargeTween.Get(entry).Update(float32(match.DT))
	titan.ProximityCharge = mathutil.ClampFloat(float64(charge), 0, 1)
}

// updateTitanRegen heals a critical titan once its rival is dead. The rate
// doubles and then quadruples the longer it goes without taking damage.
func updateTitanRegen(e *ecs.ECS, entry *donburi.Entry) {
	match := getMatch(e)
	titan := components.Titan.Get(entry)
	if titanAlive(titanBySide(e.World, titan.Side.Opponent())) {
		return
	}

	hp := components.Health.Get(entry)
	threshold := hp.Max * cfg.Titan.CriticalFraction
	if hp.Current >= threshold {
		return
	}

	rate := cfg.Titan.RegenPerSecond
	switch idle := match.Tick - titan.LastDamageTick; {
	case idle >= cfg.Frames(cfg.Titan.RegenTier3Seconds):
		rate *= 4
	case idle >= cfg.Frames(cfg.Titan.RegenTier2Seconds):
		rate *= 2
	}
	hp.Heal(min(rate*match.DT, threshold-hp.Current))
}

// titanSpeed is the duel walking speed, scaled by the allied class.
func titanSpeed(titan *components.TitanData) float64 {
	return cfg.Classes[cfg.ClassTitan].Speed * titan.SpeedMod
}

// updateDuel walks both titans together until they are in clash range and
// then lets each roll for a hit on the other. Both rolls land together.
func updateDuel(e *ecs.ECS, t1, t2 *donburi.Entry) {
	match := getMatch(e)
	components.Titan.Get(t1).State = cfg.TitanDueling
	components.Titan.Get(t2).State = cfg.TitanDueling

	for _, pair := range [2][2]*donburi.Entry{{t1, t2}, {t2, t1}} {
		self, other := pair[0], pair[1]
		a := components.Object.Get(self).Rect()
		b := components.Object.Get(other).Rect()
		gap := gamemath.EdgeGap(a, b)
		step := min(titanSpeed(components.Titan.Get(self))*match.DT, max(0, gap-cfg.Titan.ClashRange))
		walkToward(self, b.CenterX(), step)
	}

	gap := gamemath.EdgeGap(components.Object.Get(t1).Rect(), components.Object.Get(t2).Rect())
	chance := cfg.Titan.ClashChancePerSecond * match.DT
	if gap > cfg.Titan.ClashRange || chance <= 0 {
		return
	}

	hit1 := match.Rng.Float64() < chance
	hit2 := match.Rng.Float64() < chance
	if hit1 {
		clash(e, t1, t2)
	}
	if hit2 {
		clash(e, t2, t1)
	}

	// Deaths resolve only after both hits have landed.
	for _, entry := range [2]*donburi.Entry{t1, t2} {
		if components.Health.Get(entry).Current <= 0 {
			killTitan(e, entry)
		}
	}
	if !titanAlive(t1) && !titanAlive(t2) {
		updateDormant(e, t1, t2)
	}
}

func clash(e *ecs.ECS, attacker, target *donburi.Entry) {
	match := getMatch(e)
	side := components.Titan.Get(attacker).Side
	hurtTitan(e, target, cfg.Titan.ClashDamage)

	r := components.Object.Get(target).Rect()
	match.LastHit = components.LastHitData{
		X:        r.CenterX(),
		Y:        r.CenterY(),
		Category: cfg.HitTitanClash,
		Attacker: side,
		Tick:     match.Tick,
	}
	match.Emit(messages.HitEvent{
		Tick:     match.Tick,
		Attacker: side,
		Target:   messages.KindTitan,
		Category: cfg.HitTitanClash,
		Damage:   cfg.Titan.ClashDamage,
		X:        r.CenterX(),
		Y:        r.CenterY(),
	})
}

// updateSurvivor marches the last titan to the enemy orb and sieges it.
func updateSurvivor(e *ecs.ECS, entry *donburi.Entry) {
	match := getMatch(e)
	titan := components.Titan.Get(entry)
	orbEntry := orbBySide(e.World, titan.Side.Opponent())
	if !orbAlive(orbEntry) {
		titan.State = cfg.TitanMarching
		return
	}

	body := components.Object.Get(entry).Rect()
	orbRect := components.Object.Get(orbEntry).Rect()
	gap := gamemath.EdgeGap(body, orbRect)
	if gap > cfg.Titan.SiegeRange {
		titan.State = cfg.TitanMarching
		walkToward(entry, orbRect.CenterX(), min(cfg.Titan.MarchSpeed*match.DT, gap-cfg.Titan.SiegeRange))
		return
	}

	titan.State = cfg.TitanSieging
	damageOrb(e, orbEntry, cfg.Titan.SiegeDPS*match.DT, false)
	armSiegeBeam(e, titan.Side, orbEntry)
}

// updateDormant parks both fallen titans and calls off any pending beam.
func updateDormant(e *ecs.ECS, t1, t2 *donburi.Entry) {
	for _, entry := range []*donburi.Entry{t1, t2} {
		if entry != nil {
			components.Titan.Get(entry).State = cfg.TitanDormant
		}
	}
	cancelSiegeBeam(e)
}

// walkToward moves a body horizontally toward x by at most step.
func walkToward(entry *donburi.Entry, x, step float64) {
	if step <= 0 {
		return
	}
	obj := components.Object.Get(entry)
	center := obj.Rect().CenterX()
	dir := mathutil.Sign(x - center)
	if dir == 0 {
		return
	}
	components.Fighter.Get(entry).Facing = dir
	obj.X += mathutil.MoveToward(center, x, step) - center
	obj.Update()
}

// killTitan drops a titan, unshields its orb and grants the rival a second
// wind when it is critical. A rival that fell on the same tick gets nothing.
func killTitan(e *ecs.ECS, entry *donburi.Entry) {
	match := getMatch(e)
	fighter := components.Fighter.Get(entry)
	titan := components.Titan.Get(entry)
	if fighter.IsDead {
		return
	}

	fighter.IsDead = true
	components.Health.Get(entry).Current = 0
	titan.State = cfg.TitanDead
	titan.ProximityCharge = 0
	physics := components.Physics.Get(entry)
	physics.SpeedX, physics.SpeedY = 0, 0

	if orb := orbBySide(e.World, titan.Side); orb != nil {
		components.Orb.Get(orb).IsShielded = false
	}
	logf("[titan] side %d titan down at tick %d", titan.Side, match.Tick)
	match.Emit(messages.DeathEvent{Tick: match.Tick, Side: titan.Side, Kind: messages.KindTitan})

	rival := titanBySide(e.World, titan.Side.Opponent())
	if !titanAlive(rival) || components.Health.Get(rival).Current <= 0 || titan.DeathHandled {
		return
	}
	titan.DeathHandled = true

	hp := components.Health.Get(rival)
	if hp.Fraction() < cfg.Titan.CriticalFraction {
		before := hp.Current
		hp.Heal(hp.Max * cfg.Titan.SecondWindFraction)
		rivalSide := components.Titan.Get(rival).Side
		logf("[titan] side %d titan second wind: %.0f -> %.0f", rivalSide, before, hp.Current)
		match.Emit(messages.SecondWindEvent{Tick: match.Tick, Side: rivalSide, Healed: hp.Current - before})
	}
	components.Titan.Get(rival).State = cfg.TitanMarching
}
