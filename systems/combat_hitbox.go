package systems

import (
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/shared/gamemath"
	"github.com/automoto/lanebrawl/shared/messages"
	"github.com/automoto/lanebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// queryArea returns the entities of a side whose bodies share broad-phase
// cells with area. Callers still run an exact test.
func queryArea(e *ecs.ECS, area gamemath.Rect, side cfg.Side) map[donburi.Entity]bool {
	found := make(map[donburi.Entity]bool)
	spaceEntry, ok := components.Space.First(e.World)
	if !ok || area.Empty() {
		return found
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(area.X, area.Y, area.W, area.H, tags.ResolvProbe)
	probe.SetShape(resolv.NewRectangle(0, 0, area.W, area.H))
	space.Add(probe)
	defer space.Remove(probe)

	if collision := probe.Check(0, 0, tags.SideTag(side)); collision != nil {
		for _, obj := range collision.Objects {
			if entry, ok := obj.Data.(*donburi.Entry); ok {
				found[entry.Entity()] = true
			}
		}
	}
	return found
}

// bounds returns the smallest box covering a and b.
func bounds(a, b gamemath.Rect) gamemath.Rect {
	x := min(a.X, b.X)
	y := min(a.Y, b.Y)
	return gamemath.Rect{
		X: x,
		Y: y,
		W: max(a.Right(), b.Right()) - x,
		H: max(a.Bottom(), b.Bottom()) - y,
	}
}

// resolveSwing tests the active swing against the opposing player, titan
// and orb. Each target is struck at most once per swing.
func resolveSwing(e *ecs.ECS, attacker *donburi.Entry) {
	match := getMatch(e)
	fighter := components.Fighter.Get(attacker)
	melee := components.MeleeAttack.Get(attacker)
	special := components.Special.Get(attacker)
	body := components.Object.Get(attacker).Rect()
	enemy := fighter.Side.Opponent()

	handle, blade := gamemath.WeaponZones(body, fighter.Facing, melee.Weapon.MinRange, melee.Weapon.Range+cfg.Combat.BladeBonus)
	nearby := queryArea(e, bounds(handle, blade), enemy)

	hit := func(target *donburi.Entry, kind string, category cfg.HitCategory, damage float64) {
		melee.HitEntities[target.Entity()] = true
		r := components.Object.Get(target).Rect()
		registerHit(match, fighter.Side, kind, category, damage, r.CenterX(), body.CenterY(), cfg.Combat.HitStopNormal)
		special.AddMeter(cfg.Combat.MeterPerHit, cfg.Combat.MeterMax)
	}

	// Opposing player: the handle is a dead zone.
	if target := playerBySide(e.World, enemy); canStrike(target, fighter.Lane, melee, nearby) {
		r := components.Object.Get(target).Rect()
		if !handle.Overlaps(r) && blade.Overlaps(r) {
			damage := melee.Weapon.Damage
			damageFighter(e, target, damage)
			hit(target, messages.KindPlayer, cfg.HitBlade, damage)
		}
	}

	// Opposing titan: either zone connects.
	if target := titanBySide(e.World, enemy); canStrikeTitan(target, fighter.Lane, melee, nearby) {
		r := components.Object.Get(target).Rect()
		category := cfg.HitNone
		if handle.Overlaps(r) {
			category = cfg.HitHandle
		} else if blade.Overlaps(r) {
			category = cfg.HitBlade
		}
		if category != cfg.HitNone {
			damage := titanHitDamage(e, fighter.Side, enemy, melee.Weapon.Damage)
			damageTitan(e, target, damage)
			hit(target, messages.KindTitan, category, damage)
		}
	}

	// Enemy orb: blade only, from the foreground.
	if target := orbBySide(e.World, enemy); fighter.Lane == cfg.LaneForeground && orbAlive(target) {
		if !melee.HitEntities[target.Entity()] && nearby[target.Entity()] {
			r := components.Object.Get(target).Rect()
			if blade.Overlaps(r) {
				damage := orbHitDamage(e, fighter.Side, melee.Weapon.Damage)
				damageOrb(e, target, damage, false)
				hit(target, messages.KindOrb, cfg.HitBlade, damage)
			}
		}
	}
}

func canStrike(target *donburi.Entry, lane cfg.Lane, melee *components.MeleeAttackData, nearby map[donburi.Entity]bool) bool {
	return playerPresent(target) &&
		laneOf(target) == lane &&
		!melee.HitEntities[target.Entity()] &&
		nearby[target.Entity()]
}

func canStrikeTitan(target *donburi.Entry, lane cfg.Lane, melee *components.MeleeAttackData, nearby map[donburi.Entity]bool) bool {
	return titanAlive(target) &&
		laneOf(target) == lane &&
		!melee.HitEntities[target.Entity()] &&
		nearby[target.Entity()]
}

// titanHitDamage scales a player's hit on a titan: desperation while the
// titan's owner is down, diffusion while both players fight in the
// background, and the attacker's titan combo.
func titanHitDamage(e *ecs.ECS, attacker, defender cfg.Side, base float64) float64 {
	match := getMatch(e)
	damage := base

	defendingPlayer := playerBySide(e.World, defender)
	if playerDown(defendingPlayer) {
		damage *= cfg.Combat.DesperationMultiplier
	}

	attackingPlayer := playerBySide(e.World, attacker)
	if playerPresent(attackingPlayer) && playerPresent(defendingPlayer) &&
		laneOf(attackingPlayer) == cfg.LaneBackground && laneOf(defendingPlayer) == cfg.LaneBackground {
		damage *= cfg.Combat.SharedLaneMultiplier
	}

	hits := match.TitanCombo[attacker.Index()].Register(match.Tick, cfg.Combat.ComboMaxHits)
	return damage * (1 + cfg.Combat.TitanComboStep*float64(hits))
}
