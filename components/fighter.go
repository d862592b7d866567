package components

import (
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/yohamta/donburi"
)

// FighterData is shared by players and titans.
type FighterData struct {
	Side        cfg.Side
	Class       cfg.Class
	Lane        cfg.Lane
	Facing      float64 // cfg.DirectionLeft or cfg.DirectionRight
	IsDead      bool
	IsBlocking  bool
	IsCrouching bool

	// Foreground collision size; the background lane scales it down.
	BaseW float64
	BaseH float64

	LaneSwitchCooldown int // frames
	BlockCooldownUntil int // tick at which blocking is allowed again
}

var Fighter = donburi.NewComponentType[FighterData]()
