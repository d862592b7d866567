package sim

import (
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Body is the renderable shape of an entity.
type Body struct {
	Rect   gamemath.Rect
	Facing float64
	Lane   cfg.Lane
}

// PlayerSnapshot is a read-only copy of one player.
type PlayerSnapshot struct {
	Body
	Side            cfg.Side
	Class           cfg.Class
	Health          float64
	MaxHealth       float64
	IsDead          bool
	IsBlocking      bool
	IsCrouching     bool
	IsAttacking     bool
	AttackCooldown  float64
	Meter           float64
	SpecialActive   bool
	SpecialFrame    int
	Phase           cfg.PlayerPhase
	RespawnTimer    float64
	DeathFrames     int
	ResurrectFrames int
	Deaths          int
}

// TitanSnapshot is a read-only copy of one titan.
type TitanSnapshot struct {
	Body
	Side            cfg.Side
	Health          float64
	MaxHealth       float64
	IsDead          bool
	State           cfg.TitanState
	ProximityCharge float64
}

// OrbSnapshot is a read-only copy of one orb.
type OrbSnapshot struct {
	Rect            gamemath.Rect
	Side            cfg.Side
	Health          float64
	MaxHealth       float64
	Armor           float64
	MaxArmor        float64
	IsShielded      bool
	HasDefenseBonus bool
	IsDead          bool
}

// Snapshot is the world state between two ticks. It shares nothing with
// the simulation.
type Snapshot struct {
	Tick    int
	Winner  cfg.Winner
	HitStop int
	Siege   components.SiegeData
	LastHit components.LastHitData
	Players [2]PlayerSnapshot
	Titans  [2]TitanSnapshot
	Orbs    [2]OrbSnapshot

	// Per attacking side, indexed like Players.
	OrbCombo   [2]components.ComboTracker
	TitanCombo [2]components.ComboTracker
}

// Snapshot copies the current world state for renderers and tests.
func (s *Simulation) Snapshot() Snapshot {
	match := components.Match.Get(s.match)
	snap := Snapshot{
		Tick:       match.Tick,
		Winner:     match.Winner,
		HitStop:    match.HitStop,
		Siege:      match.Siege,
		LastHit:    match.LastHit,
		OrbCombo:   match.OrbCombo,
		TitanCombo: match.TitanCombo,
	}
	for i := range snap.Players {
		snap.Players[i] = snapshotPlayer(s.players[i])
		snap.Titans[i] = snapshotTitan(s.titans[i])
		snap.Orbs[i] = snapshotOrb(s.orbs[i])
	}
	return snap
}

func snapshotBody(e *donburi.Entry) Body {
	fighter := components.Fighter.Get(e)
	return Body{
		Rect:   components.Object.Get(e).Rect(),
		Facing: fighter.Facing,
		Lane:   fighter.Lane,
	}
}

func snapshotPlayer(e *donburi.Entry) PlayerSnapshot {
	fighter := components.Fighter.Get(e)
	player := components.Player.Get(e)
	hp := components.Health.Get(e)
	melee := components.MeleeAttack.Get(e)
	special := components.Special.Get(e)
	return PlayerSnapshot{
		Body:            snapshotBody(e),
		Side:            player.Side,
		Class:           fighter.Class,
		Health:          hp.Current,
		MaxHealth:       hp.Max,
		IsDead:          fighter.IsDead,
		IsBlocking:      fighter.IsBlocking,
		IsCrouching:     fighter.IsCrouching,
		IsAttacking:     melee.IsAttacking,
		AttackCooldown:  melee.Cooldown,
		Meter:           special.Meter,
		SpecialActive:   special.Active,
		SpecialFrame:    special.Frame,
		Phase:           player.Phase,
		RespawnTimer:    player.RespawnTimer,
		DeathFrames:     player.DeathFrames,
		ResurrectFrames: player.ResurrectFrames,
		Deaths:          player.Deaths,
	}
}

func snapshotTitan(e *donburi.Entry) TitanSnapshot {
	fighter := components.Fighter.Get(e)
	titan := components.Titan.Get(e)
	hp := components.Health.Get(e)
	return TitanSnapshot{
		Body:            snapshotBody(e),
		Side:            titan.Side,
		Health:          hp.Current,
		MaxHealth:       hp.Max,
		IsDead:          fighter.IsDead,
		State:           titan.State,
		ProximityCharge: titan.ProximityCharge,
	}
}

func snapshotOrb(e *donburi.Entry) OrbSnapshot {
	orb := components.Orb.Get(e)
	hp := components.Health.Get(e)
	return OrbSnapshot{
		Rect:            components.Object.Get(e).Rect(),
		Side:            orb.Side,
		Health:          hp.Current,
		MaxHealth:       hp.Max,
		Armor:           orb.Armor,
		MaxArmor:        orb.MaxArmor,
		IsShielded:      orb.IsShielded,
		HasDefenseBonus: orb.HasDefenseBonus,
		IsDead:          orb.IsDead,
	}
}
