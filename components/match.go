package components

import (
	"math/rand"

	cfg "github.com/automoto/lanebrawl/config"
	"github.com/yohamta/donburi"
)

// ComboTracker counts consecutive hits from one side. Hits are ignored
// until CooldownUntilTick.
type ComboTracker struct {
	Hits              int
	CooldownUntilTick int
}

// Register returns the hit count this hit is scaled by and then counts it.
// During the cooldown it returns zero and counts nothing.
func (c *ComboTracker) Register(tick, maxHits int) int {
	if tick < c.CooldownUntilTick {
		return 0
	}
	hits := c.Hits
	if c.Hits < maxHits {
		c.Hits++
	}
	return hits
}

// Reset clears the count and holds it off for cooldown ticks.
func (c *ComboTracker) Reset(tick, cooldown int) {
	c.Hits = 0
	c.CooldownUntilTick = tick + cooldown
}

// SiegeData is the one-shot siege beam countdown.
type SiegeData struct {
	Armed     bool
	Used      bool
	Side      cfg.Side // side whose titan armed the beam
	Remaining float64  // seconds
}

// LastHitData describes the latest impactful hit for effects.
type LastHitData struct {
	X, Y     float64
	Category cfg.HitCategory
	Attacker cfg.Side
	Tick     int
}

// MatchData is the singleton world state shared by all systems.
type MatchData struct {
	Tick    int // advances on every non-frozen step
	DT      float64
	Winner  cfg.Winner
	HitStop int // frames of global freeze left

	// Frozen is set when the current step is skipped by the winner check
	// or hit-stop.
	Frozen bool

	// Held actions handed in by the host for the current step.
	Inputs [2]cfg.ActionSet

	Siege   SiegeData
	LastHit LastHitData

	// Indexed by attacking side.
	OrbCombo   [2]ComboTracker
	TitanCombo [2]ComboTracker

	LanesSynced bool
	Rng         *rand.Rand

	// Events raised during the current tick.
	Events []any
}

// Emit records an event for the host.
func (m *MatchData) Emit(ev any) {
	m.Events = append(m.Events, ev)
}

// Freeze extends the global hit-stop to at least frames.
func (m *MatchData) Freeze(frames int) {
	if frames > m.HitStop {
		m.HitStop = frames
	}
}

var Match = donburi.NewComponentType[MatchData]()
