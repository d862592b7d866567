package components

import (
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/yohamta/donburi"
)

// BotAIState is the bot's current intent.
type BotAIState int

const (
	BotStateIdle BotAIState = iota
	BotStateChase
	BotStateAttack
	BotStateRetreat
	BotStateSiege // push the enemy orb
)

func (s BotAIState) String() string {
	switch s {
	case BotStateIdle:
		return "idle"
	case BotStateChase:
		return "chase"
	case BotStateAttack:
		return "attack"
	case BotStateRetreat:
		return "retreat"
	case BotStateSiege:
		return "siege"
	}
	return "unknown"
}

// BotData marks a player whose input is generated each tick.
type BotData struct {
	Difficulty    cfg.BotDifficulty
	Tuning        cfg.BotDifficultyConfig
	AIState       BotAIState
	DecisionTimer int                   // frames until the next decision
	Held          [cfg.ActionCount]bool // actions chosen at the last decision
}

var Bot = donburi.NewComponentType[BotData]()
