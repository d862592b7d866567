package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX       float64 // px/s
	SpeedY       float64 // px/s
	Gravity      float64
	MaxFallSpeed float64
	OnGround     bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
