package components

import (
	"github.com/automoto/lanebrawl/mathutil"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current float64
	Max     float64
}

// Fraction returns current health as a share of max.
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// Damage removes amount, never dropping below zero, and returns what was taken.
func (h *HealthData) Damage(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	before := h.Current
	h.Current = mathutil.ClampFloat(h.Current-amount, 0, h.Max)
	return before - h.Current
}

// Heal adds amount, never exceeding max.
func (h *HealthData) Heal(amount float64) {
	if amount <= 0 {
		return
	}
	h.Current = mathutil.ClampFloat(h.Current+amount, 0, h.Max)
}

var Health = donburi.NewComponentType[HealthData]()
