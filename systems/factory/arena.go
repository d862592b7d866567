package factory

import (
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/shared/gamemath"
)

// LaneGround returns the y of the line bodies in lane stand on.
func LaneGround(lane cfg.Lane) float64 {
	if lane == cfg.LaneBackground {
		return cfg.Arena.BackgroundGroundY
	}
	return cfg.Arena.ForegroundGroundY
}

// LaneSize returns the collision size for a body in lane.
func LaneSize(baseW, baseH float64, lane cfg.Lane) (w, h float64) {
	if lane == cfg.LaneBackground {
		return baseW * cfg.Arena.BackgroundScale, baseH * cfg.Arena.BackgroundScale
	}
	return baseW, baseH
}

// HomeFacing is the direction a side faces at spawn, toward the arena center.
func HomeFacing(side cfg.Side) float64 {
	if side == cfg.Side2 {
		return cfg.DirectionLeft
	}
	return cfg.DirectionRight
}

// OrbRect is the fixed box of a side's orb. Side 1 holds the left edge.
func OrbRect(side cfg.Side) gamemath.Rect {
	x := cfg.Orb.Margin
	if side == cfg.Side2 {
		x = cfg.Arena.Width - cfg.Orb.Margin - cfg.Orb.Width
	}
	return gamemath.Rect{
		X: x,
		Y: cfg.Arena.ForegroundGroundY - cfg.Orb.Height,
		W: cfg.Orb.Width,
		H: cfg.Orb.Height,
	}
}

// PlayerSpawnRect places a foreground body of size w x h beside its own orb,
// on the arena side of it.
func PlayerSpawnRect(side cfg.Side, w, h float64) gamemath.Rect {
	orb := OrbRect(side)
	x := orb.Right() + cfg.Respawn.SpawnGap
	if side == cfg.Side2 {
		x = orb.X - cfg.Respawn.SpawnGap - w
	}
	return gamemath.Rect{X: x, Y: cfg.Arena.ForegroundGroundY - h, W: w, H: h}
}

// TitanSpawnRect places a titan in the background lane ahead of its orb.
func TitanSpawnRect(side cfg.Side) gamemath.Rect {
	tc := cfg.Classes[cfg.ClassTitan]
	w, h := LaneSize(tc.Width, tc.Height, cfg.LaneBackground)
	orb := OrbRect(side)
	x := orb.Right() + cfg.Titan.SpawnOffset
	if side == cfg.Side2 {
		x = orb.X - cfg.Titan.SpawnOffset - w
	}
	return gamemath.Rect{X: x, Y: cfg.Arena.BackgroundGroundY - h, W: w, H: h}
}
