package config

import "fmt"

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyNormal:
		return "normal"
	case BotDifficultyHard:
		return "hard"
	}
	return "unknown"
}

// ParseBotDifficulty maps a flag value to a difficulty.
func ParseBotDifficulty(name string) (BotDifficulty, error) {
	switch name {
	case "easy":
		return BotDifficultyEasy, nil
	case "normal":
		return BotDifficultyNormal, nil
	case "hard":
		return BotDifficultyHard, nil
	}
	return BotDifficultyEasy, fmt.Errorf("unknown bot difficulty %q", name)
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    int     // Frames between decisions
	ReachMargin      float64 // How far inside blade reach the bot closes before swinging
	RetreatThreshold float64 // Health % to start retreating
	BlockChance      float64 // Chance per decision to hold back while the opponent swings
	LaneFollowChance float64 // Chance per decision to follow the opponent into its lane
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	BotDefaults()
}

// BotDefaults resets the bot tuning to its built-in values.
func BotDefaults() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    30, // 0.5 second reaction time
				ReachMargin:      30,
				RetreatThreshold: 0.2, // Retreat at 20% health
				BlockChance:      0.1,
				LaneFollowChance: 0.2,
			},
			BotDifficultyNormal: {
				ReactionDelay:    15, // 0.25 second reaction time
				ReachMargin:      20,
				RetreatThreshold: 0.3,
				BlockChance:      0.3,
				LaneFollowChance: 0.5,
			},
			BotDifficultyHard: {
				ReactionDelay:    5, // Near-instant reaction
				ReachMargin:      10,
				RetreatThreshold: 0.15,
				BlockChance:      0.6,
				LaneFollowChance: 0.9,
			},
		},
	}
}
