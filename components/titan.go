package components

import (
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type TitanData struct {
	Side     cfg.Side
	State    cfg.TitanState
	SpeedMod float64 // from the allied player's class

	// ProximityCharge follows ChargeTween toward ChargeTarget.
	ProximityCharge float64
	ChargeTarget    float64

	LastDamageTick int
	DeathHandled   bool
}

// DamageReduction is the share of incoming damage that still lands.
func (t *TitanData) DamageReduction(factor float64) float64 {
	return 1 - factor*t.ProximityCharge
}

var Titan = donburi.NewComponentType[TitanData]()

// ChargeTween drives a titan's proximity charge between 0 and 1.
var ChargeTween = donburi.NewComponentType[gween.Tween]()
