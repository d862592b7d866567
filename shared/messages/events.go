package messages

import cfg "github.com/automoto/lanebrawl/config"

// Target kinds carried by events
const (
	KindPlayer = "player"
	KindTitan  = "titan"
	KindOrb    = "orb"
)

// HitEvent is raised when an attack connects
type HitEvent struct {
	Tick     int
	Attacker cfg.Side
	Target   string // KindPlayer, KindTitan or KindOrb
	Category cfg.HitCategory
	Damage   float64 // nominal, before the target's intake
	X, Y     float64
}

// DeathEvent is raised when a player, titan or orb goes down
type DeathEvent struct {
	Tick int
	Side cfg.Side
	Kind string
}

// RespawnEvent is raised when a player returns to the arena
type RespawnEvent struct {
	Tick   int
	Side   cfg.Side
	Health float64
}

// SecondWindEvent is raised when a titan outlives its rival
type SecondWindEvent struct {
	Tick   int
	Side   cfg.Side
	Healed float64
}

// SiegePhase is the stage of the siege beam an event reports.
type SiegePhase int

const (
	SiegeArmed SiegePhase = iota
	SiegeFired
	SiegeCancelled
)

func (p SiegePhase) String() string {
	switch p {
	case SiegeArmed:
		return "armed"
	case SiegeFired:
		return "fired"
	case SiegeCancelled:
		return "cancelled"
	}
	return "unknown"
}

// SiegeEvent tracks the siege beam
type SiegeEvent struct {
	Tick  int
	Side  cfg.Side // side whose titan owns the beam
	Phase SiegePhase
}

// MatchOverEvent is raised once when a winner is decided
type MatchOverEvent struct {
	Tick   int
	Winner cfg.Winner
}
