package components

import (
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/mathutil"
	"github.com/yohamta/donburi"
)

// OrbData is a side's objective. Health lives in the Health component.
type OrbData struct {
	Side            cfg.Side
	Armor           float64
	MaxArmor        float64
	IsShielded      bool // allied titan alive
	HasDefenseBonus bool // set once the owner first dies, never cleared
	LastHitTick     int
	IsDead          bool
}

// AbsorbArmor takes what it can from amount and returns the overflow.
func (o *OrbData) AbsorbArmor(amount float64) float64 {
	absorbed := mathutil.ClampFloat(amount, 0, o.Armor)
	o.Armor -= absorbed
	return amount - absorbed
}

// RegenArmor restores armor, never exceeding max.
func (o *OrbData) RegenArmor(amount float64) {
	o.Armor = mathutil.ClampFloat(o.Armor+amount, 0, o.MaxArmor)
}

var Orb = donburi.NewComponentType[OrbData]()
