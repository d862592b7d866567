package factory

import (
	"math/rand"

	"github.com/automoto/lanebrawl/archetypes"
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the singleton world state. Both players start in the
// foreground, so lanes begin in sync.
func CreateMatch(ecs *ecs.ECS, seed int64) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		Winner:      cfg.WinnerNone,
		LanesSynced: true,
		Rng:         rand.New(rand.NewSource(seed)),
	})
	return match
}

// AttachBot makes a player entity bot-driven.
func AttachBot(player *donburi.Entry, difficulty cfg.BotDifficulty) {
	tuning, ok := cfg.Bot.Difficulties[difficulty]
	if !ok {
		tuning = cfg.Bot.Difficulties[cfg.BotDifficultyNormal]
	}
	donburi.Add(player, components.Bot, &components.BotData{
		Difficulty: difficulty,
		Tuning:     tuning,
		AIState:    components.BotStateIdle,
	})
}
