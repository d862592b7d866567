package systems

import (
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/shared/messages"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWin ends the match when an orb falls. Both orbs falling on the same
// tick is a draw.
func UpdateWin(e *ecs.ECS) {
	match := getMatch(e)
	if match.Winner != cfg.WinnerNone {
		return
	}

	down1 := !orbAlive(orbBySide(e.World, cfg.Side1))
	down2 := !orbAlive(orbBySide(e.World, cfg.Side2))
	match.Winner = determineWinner(down1, down2)
	if match.Winner == cfg.WinnerNone {
		return
	}

	logf("[match] %s wins at tick %d", match.Winner, match.Tick)
	match.Emit(messages.MatchOverEvent{Tick: match.Tick, Winner: match.Winner})
}

func determineWinner(orb1Down, orb2Down bool) cfg.Winner {
	switch {
	case orb1Down && orb2Down:
		return cfg.WinnerDraw
	case orb1Down:
		return cfg.WinnerFor(cfg.Side2)
	case orb2Down:
		return cfg.WinnerFor(cfg.Side1)
	}
	return cfg.WinnerNone
}

// IsMatchFinished returns true once a winner is decided.
func IsMatchFinished(e *ecs.ECS) bool {
	match := getMatch(e)
	return match != nil && match.Winner != cfg.WinnerNone
}
