package systems

import (
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/shared/gamemath"
	"github.com/automoto/lanebrawl/shared/messages"
	"github.com/automoto/lanebrawl/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRespawns advances each player's death, respawn and resurrection
// timers.
func UpdateRespawns(e *ecs.ECS) {
	match := getMatch(e)
	for _, side := range sides {
		entry := playerBySide(e.World, side)
		if entry == nil {
			continue
		}
		player := components.Player.Get(entry)

		switch {
		case player.IsRespawning:
			if player.DeathFrames < cfg.Respawn.DeathFrames {
				player.DeathFrames++
				if player.DeathFrames >= cfg.Respawn.DeathFrames {
					player.Phase = cfg.PhaseRespawning
				}
			}
			player.RespawnTimer -= match.DT
			if player.RespawnTimer <= 0 {
				respawnPlayer(e, entry)
			}

		case player.IsResurrecting:
			player.ResurrectFrames--
			if player.ResurrectFrames <= 0 {
				player.ResurrectFrames = 0
				player.IsResurrecting = false
				player.Phase = cfg.PhaseAlive
			}
		}
	}
}

// killPlayer starts the respawn cycle and arms the owner's orb defense bonus.
func killPlayer(e *ecs.ECS, entry *donburi.Entry) {
	match := getMatch(e)
	player := components.Player.Get(entry)
	fighter := components.Fighter.Get(entry)

	fighter.IsDead = true
	fighter.IsBlocking = false
	fighter.IsCrouching = false
	components.Health.Get(entry).Current = 0

	player.IsRespawning = true
	player.IsResurrecting = false
	player.Phase = cfg.PhaseDying
	player.RespawnTimer = cfg.Respawn.Seconds
	player.DeathFrames = 0
	player.Deaths++

	resetPlayerMotion(entry)

	if orb := orbBySide(e.World, player.Side); orb != nil {
		components.Orb.Get(orb).HasDefenseBonus = true
	}

	logf("[respawn] side %d player down at tick %d (deaths: %d)", player.Side, match.Tick, player.Deaths)
	match.Emit(messages.DeathEvent{Tick: match.Tick, Side: player.Side, Kind: messages.KindPlayer})
}

// respawnPlayer returns a player to the foreground beside its orb.
func respawnPlayer(e *ecs.ECS, entry *donburi.Entry) {
	match := getMatch(e)
	player := components.Player.Get(entry)
	fighter := components.Fighter.Get(entry)
	hp := components.Health.Get(entry)

	hp.Current = hp.Max * cfg.Respawn.HealthFraction
	fighter.IsDead = false
	fighter.Facing = factory.HomeFacing(player.Side)
	fighter.LaneSwitchCooldown = 0

	w, h := factory.LaneSize(fighter.BaseW, fighter.BaseH, cfg.LaneForeground)
	resetPlayerAtPosition(entry, factory.PlayerSpawnRect(player.Side, w, h))

	player.IsRespawning = false
	player.RespawnTimer = 0
	player.IsResurrecting = true
	player.ResurrectFrames = cfg.Respawn.ResurrectFrames
	player.Phase = cfg.PhaseResurrecting

	logf("[respawn] side %d player back at tick %d with %.0f hp", player.Side, match.Tick, hp.Current)
	match.Emit(messages.RespawnEvent{Tick: match.Tick, Side: player.Side, Health: hp.Current})
}

func resetPlayerMotion(entry *donburi.Entry) {
	physics := components.Physics.Get(entry)
	physics.SpeedX = 0
	physics.SpeedY = 0

	melee := components.MeleeAttack.Get(entry)
	melee.IsAttacking = false
	melee.AttackFrames = 0
	melee.StartupFrames = 0

	special := components.Special.Get(entry)
	special.Active = false
	special.Frame = 0
}

func resetPlayerAtPosition(entry *donburi.Entry, spawn gamemath.Rect) {
	fighter := components.Fighter.Get(entry)
	fighter.Lane = cfg.LaneForeground
	fighter.IsBlocking = false
	fighter.IsCrouching = false

	obj := components.Object.Get(entry)
	obj.SetRect(spawn)
	obj.Update()

	resetPlayerMotion(entry)
	components.Physics.Get(entry).OnGround = true
}
