// components/melee.go
package components

import (
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/yohamta/donburi"
)

type MeleeAttackData struct {
	Weapon        cfg.WeaponConfig
	Cooldown      float64 // seconds until the next swing is allowed
	IsAttacking   bool
	AttackFrames  int // frames left on the current swing
	StartupFrames int // frames before the swing can connect
	HitEntities   map[donburi.Entity]bool
}

// Active reports whether the current swing can connect this frame.
func (m *MeleeAttackData) Active() bool {
	return m.IsAttacking && m.StartupFrames <= 0
}

// BeginSwing starts a new attack and clears the per-swing hit set.
func (m *MeleeAttackData) BeginSwing(attackFrames int) {
	m.IsAttacking = true
	m.AttackFrames = attackFrames
	m.StartupFrames = m.Weapon.Startup
	m.Cooldown = m.Weapon.Cooldown
	clear(m.HitEntities)
}

var MeleeAttack = donburi.NewComponentType[MeleeAttackData]()
