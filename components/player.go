package components

import (
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Side            cfg.Side
	Phase           cfg.PlayerPhase
	RespawnTimer    float64 // seconds left while respawning
	DeathFrames     int     // counts up through the death animation
	ResurrectFrames int     // counts down through the resurrection window
	IsRespawning    bool
	IsResurrecting  bool
	Deaths          int
}

// Targetable reports whether the player can be hit.
func (p *PlayerData) Targetable() bool {
	return !p.IsRespawning && !p.IsResurrecting
}

var Player = donburi.NewComponentType[PlayerData]()
