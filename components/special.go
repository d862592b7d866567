package components

import (
	"github.com/automoto/lanebrawl/mathutil"
	"github.com/yohamta/donburi"
)

type SpecialData struct {
	Meter  float64
	Active bool
	Frame  int // frames since the special started
}

// AddMeter grants amount, capped at max.
func (s *SpecialData) AddMeter(amount, max float64) {
	s.Meter = mathutil.ClampFloat(s.Meter+amount, 0, max)
}

var Special = donburi.NewComponentType[SpecialData]()
