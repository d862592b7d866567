package systems

import (
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updateCombat advances the swing timers, starts a new swing on a fresh
// attack press and resolves the active window.
func updateCombat(e *ecs.ECS, entry *donburi.Entry) {
	if !playerPresent(entry) {
		return
	}
	match := getMatch(e)
	melee := components.MeleeAttack.Get(entry)
	special := components.Special.Get(entry)
	input := components.PlayerInput.Get(entry)

	if melee.Cooldown > 0 {
		melee.Cooldown = max(0, melee.Cooldown-match.DT)
	}
	if melee.IsAttacking {
		if melee.StartupFrames > 0 {
			melee.StartupFrames--
		}
		melee.AttackFrames--
		if melee.AttackFrames <= 0 {
			melee.AttackFrames = 0
			melee.IsAttacking = false
		}
	}

	attack := GetPlayerAction(input, cfg.ActionAttack)
	if attack.JustPressed && melee.Cooldown <= 0 && !melee.IsAttacking && !special.Active {
		melee.BeginSwing(cfg.Combat.AttackFrames)
		if special.Meter >= cfg.Combat.MeterMax {
			startSpecial(special)
		}
	}

	if melee.Active() && !special.Active {
		resolveSwing(e, entry)
	}
}
