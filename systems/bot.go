package systems

import (
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBots generates input for bot-controlled players based on AI decisions.
// Must run after UpdateInput so the host's actions never reach a bot.
func UpdateBots(e *ecs.ECS) {
	match := getMatch(e)
	for _, side := range sides {
		entry := playerBySide(e.World, side)
		if entry == nil || !entry.HasComponent(components.Bot) {
			continue
		}
		updateBotAI(e, match, entry)
	}
}

func updateBotAI(e *ecs.ECS, match *components.MatchData, entry *donburi.Entry) {
	bot := components.Bot.Get(entry)
	input := components.PlayerInput.Get(entry)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	if !playerPresent(entry) {
		bot.AIState = components.BotStateIdle
		bot.Held = [cfg.ActionCount]bool{}
		bot.DecisionTimer = 0
		return
	}

	if bot.DecisionTimer > 0 {
		bot.DecisionTimer--
	} else {
		decideBot(e, match, entry, bot)
		bot.DecisionTimer = bot.Tuning.ReactionDelay
	}

	input.Current = bot.Held
	// Attack is edge-triggered, so release it on alternate frames.
	if input.Current[cfg.ActionAttack] && input.Previous[cfg.ActionAttack] {
		input.Current[cfg.ActionAttack] = false
	}
	// Lane switches are one-shot decisions.
	bot.Held[cfg.ActionSwitchLane] = false
}

// decideBot picks the bot's held actions until its next decision.
func decideBot(e *ecs.ECS, match *components.MatchData, entry *donburi.Entry, bot *components.BotData) {
	fighter := components.Fighter.Get(entry)
	health := components.Health.Get(entry)
	melee := components.MeleeAttack.Get(entry)
	me := components.Object.Get(entry).Rect()
	opponent := playerBySide(e.World, fighter.Side.Opponent())

	bot.Held = [cfg.ActionCount]bool{}

	if !playerPresent(opponent) {
		bot.AIState = components.BotStateSiege
		generateSiegeInputs(e, bot, fighter, melee, me)
		return
	}

	them := components.Object.Get(opponent).Rect()
	if laneOf(opponent) != fighter.Lane {
		if match.Rng.Float64() < bot.Tuning.LaneFollowChance {
			bot.Held[cfg.ActionSwitchLane] = true
			bot.AIState = components.BotStateChase
			return
		}
		bot.AIState = components.BotStateSiege
		generateSiegeInputs(e, bot, fighter, melee, me)
		return
	}

	if health.Fraction() < bot.Tuning.RetreatThreshold {
		bot.AIState = components.BotStateRetreat
		holdAway(bot, me, them)
		return
	}

	// Hold back against an incoming swing.
	if components.MeleeAttack.Get(opponent).IsAttacking && match.Rng.Float64() < bot.Tuning.BlockChance {
		bot.AIState = components.BotStateRetreat
		holdAway(bot, me, them)
		return
	}

	generateAttackInputs(bot, fighter, melee, me, them)
}

// generateAttackInputs closes to blade range of target and swings.
func generateAttackInputs(bot *components.BotData, fighter *components.FighterData, melee *components.MeleeAttackData, me, target gamemath.Rect) {
	gap := gamemath.EdgeGap(me, target)
	reach := melee.Weapon.Range + cfg.Combat.BladeBonus - bot.Tuning.ReachMargin
	toward := cfg.DirectionRight
	if target.CenterX() < me.CenterX() {
		toward = cfg.DirectionLeft
	}

	switch {
	case gap > reach:
		bot.AIState = components.BotStateChase
		holdDirection(bot, toward)
	case gap < melee.Weapon.MinRange:
		// Inside the handle: step back out.
		bot.AIState = components.BotStateRetreat
		holdDirection(bot, -toward)
	default:
		bot.AIState = components.BotStateAttack
		if fighter.Facing != toward {
			holdDirection(bot, toward)
		}
		bot.Held[cfg.ActionAttack] = true
	}
}

// generateSiegeInputs takes the bot to the enemy orb in the foreground.
func generateSiegeInputs(e *ecs.ECS, bot *components.BotData, fighter *components.FighterData, melee *components.MeleeAttackData, me gamemath.Rect) {
	if fighter.Lane != cfg.LaneForeground {
		bot.Held[cfg.ActionSwitchLane] = true
		return
	}
	orb := orbBySide(e.World, fighter.Side.Opponent())
	if !orbAlive(orb) {
		bot.AIState = components.BotStateIdle
		return
	}
	generateAttackInputs(bot, fighter, melee, me, components.Object.Get(orb).Rect())
	bot.AIState = components.BotStateSiege
}

func holdAway(bot *components.BotData, me, them gamemath.Rect) {
	if them.CenterX() > me.CenterX() {
		holdDirection(bot, cfg.DirectionLeft)
	} else {
		holdDirection(bot, cfg.DirectionRight)
	}
}

func holdDirection(bot *components.BotData, dir float64) {
	if dir < 0 {
		bot.Held[cfg.ActionMoveLeft] = true
	} else {
		bot.Held[cfg.ActionMoveRight] = true
	}
}
