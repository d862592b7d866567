package systems

import (
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/mathutil"
	"github.com/automoto/lanebrawl/shared/gamemath"
	"github.com/automoto/lanebrawl/systems/factory"
	"github.com/automoto/lanebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters runs movement, combat and the special sequence for side 1
// and then side 2.
func UpdateFighters(e *ecs.ECS) {
	for _, side := range sides {
		entry := playerBySide(e.World, side)
		if entry == nil {
			continue
		}
		updateMovement(e, entry)
		updateCombat(e, entry)
		updateSpecial(e, entry)
	}
}

func updateMovement(e *ecs.ECS, entry *donburi.Entry) {
	if !playerPresent(entry) {
		return
	}
	match := getMatch(e)
	dt := match.DT
	input := components.PlayerInput.Get(entry)
	fighter := components.Fighter.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)
	stats := cfg.Classes[fighter.Class]

	updateLaneSwitch(e, entry, input)

	left := GetPlayerAction(input, cfg.ActionMoveLeft).Pressed
	right := GetPlayerAction(input, cfg.ActionMoveRight).Pressed
	up := GetPlayerAction(input, cfg.ActionMoveUp).Pressed
	down := GetPlayerAction(input, cfg.ActionMoveDown).Pressed

	fighter.IsCrouching = down && physics.OnGround

	if left && !right {
		fighter.Facing = cfg.DirectionLeft
	} else if right && !left {
		fighter.Facing = cfg.DirectionRight
	}

	if fighter.IsCrouching || components.Special.Get(entry).Active {
		physics.SpeedX = 0
	} else {
		physics.SpeedX = gamemath.HorizontalSpeed(left, right, stats.Speed)
	}

	if up && physics.OnGround && !fighter.IsCrouching {
		physics.SpeedY = -cfg.Physics.JumpSpeed
		physics.OnGround = false
	}

	obj.X += physics.SpeedX * dt
	obj.Y, physics.SpeedY, physics.OnGround = gamemath.IntegrateVertical(
		obj.Y, obj.H, physics.SpeedY, physics.Gravity, physics.MaxFallSpeed,
		factory.LaneGround(fighter.Lane), dt,
	)
	obj.X = mathutil.ClampFloat(obj.X, 0, cfg.Arena.Width-obj.W)
	obj.Update()

	fighter.IsBlocking = canBlock(e, entry, left, right)
}

// canBlock grants the block stance: same lane as a present opponent, the
// reactivation delay over, and holding away from the opponent.
func canBlock(e *ecs.ECS, entry *donburi.Entry, left, right bool) bool {
	fighter := components.Fighter.Get(entry)
	opponent := playerBySide(e.World, fighter.Side.Opponent())
	if !playerPresent(opponent) || laneOf(opponent) != fighter.Lane {
		return false
	}
	if getMatch(e).Tick < fighter.BlockCooldownUntil {
		return false
	}

	me := components.Object.Get(entry).Rect()
	them := components.Object.Get(opponent).Rect()
	if them.CenterX() > me.CenterX() {
		return left && !right
	}
	if them.CenterX() < me.CenterX() {
		return right && !left
	}
	return false
}

// UpdateBounds keeps every fighter inside the arena and on its lane's
// ground line.
func UpdateBounds(e *ecs.ECS) {
	for entry := range components.Fighter.Iter(e.World) {
		fighter := components.Fighter.Get(entry)
		obj := components.Object.Get(entry)
		physics := components.Physics.Get(entry)

		obj.X = mathutil.ClampFloat(obj.X, 0, cfg.Arena.Width-obj.W)
		ground := factory.LaneGround(fighter.Lane)
		if obj.Y+obj.H >= ground {
			obj.Y = ground - obj.H
			physics.SpeedY = 0
			physics.OnGround = true
		}
		if entry.HasComponent(tags.Titan) {
			// Titans never leave the ground.
			obj.Y = ground - obj.H
		}
	}
}
