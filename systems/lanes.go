package systems

import (
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/shared/gamemath"
	"github.com/automoto/lanebrawl/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLaneSync tracks whether both players share a lane. Coming back into
// sync delays blocking and resets the orb and titan combos.
func UpdateLaneSync(e *ecs.ECS) {
	refreshLaneSync(e)
}

func refreshLaneSync(e *ecs.ECS) {
	match := getMatch(e)
	p1 := playerBySide(e.World, cfg.Side1)
	p2 := playerBySide(e.World, cfg.Side2)

	synced := playerPresent(p1) && playerPresent(p2) && laneOf(p1) == laneOf(p2)
	if synced && !match.LanesSynced {
		until := match.Tick + cfg.Frames(cfg.Combat.BlockReactivationSeconds)
		components.Fighter.Get(p1).BlockCooldownUntil = until
		components.Fighter.Get(p2).BlockCooldownUntil = until
		cooldown := cfg.Frames(cfg.Combat.ComboCooldownSeconds)
		for i := range match.OrbCombo {
			match.OrbCombo[i].Reset(match.Tick, cooldown)
			match.TitanCombo[i].Reset(match.Tick, cooldown)
		}
	}
	match.LanesSynced = synced
}

// setLane teleports a body onto lane's ground line and rescales its
// collision box, keeping its horizontal center.
func setLane(entry *donburi.Entry, lane cfg.Lane) {
	fighter := components.Fighter.Get(entry)
	obj := components.Object.Get(entry)
	physics := components.Physics.Get(entry)

	w, h := factory.LaneSize(fighter.BaseW, fighter.BaseH, lane)
	r := gamemath.ScaleAboutBottomCenter(obj.Rect(), w, h)
	r.Y = factory.LaneGround(lane) - h
	obj.SetRect(r)
	obj.Update()

	fighter.Lane = lane
	fighter.IsCrouching = false
	physics.SpeedY = 0
	physics.OnGround = true
}

// updateLaneSwitch handles the debounced switchLane action.
func updateLaneSwitch(e *ecs.ECS, entry *donburi.Entry, input *components.PlayerInputData) {
	fighter := components.Fighter.Get(entry)
	if fighter.LaneSwitchCooldown > 0 {
		fighter.LaneSwitchCooldown--
		return
	}
	if !GetPlayerAction(input, cfg.ActionSwitchLane).Pressed {
		return
	}
	if components.Special.Get(entry).Active {
		return
	}

	setLane(entry, fighter.Lane.Other())
	fighter.LaneSwitchCooldown = cfg.Combat.LaneSwitchFrames
	refreshLaneSync(e)
}
