package config

// Class names a fighter archetype. Classes are keyed by name the same way
// enemy types are, so a YAML overlay can tune them individually.
type Class string

const (
	ClassSamurai Class = "samurai" // balanced
	ClassNinja   Class = "ninja"   // fast
	ClassOni     Class = "oni"     // tanky
	ClassTitan   Class = "titan"
)

// WeaponConfig describes a melee weapon hitbox.
type WeaponConfig struct {
	Range    float64 // Far edge of the blade, from the attacker's front edge
	MinRange float64 // Handle/blade boundary
	Damage   float64
	Cooldown float64 // seconds
	Startup  int     // frames before the swing becomes active
}

// ClassConfig contains per-archetype stats
type ClassConfig struct {
	Name      string
	MaxHealth float64
	Speed     float64 // px/s
	Width     float64 // Foreground collision size
	Height    float64
	Weapon    WeaponConfig

	// Titans allied to this class walk at Titan.Speed * TitanSpeedMod
	TitanSpeedMod float64
}

// ArenaConfig contains arena geometry
type ArenaConfig struct {
	Width             float64
	Height            float64
	ForegroundGroundY float64
	BackgroundGroundY float64
	BackgroundScale   float64 // Collision box scale while in the background lane
	CellSize          int     // resolv space cell size
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 // px/s^2
	JumpSpeed    float64 // px/s
	MaxFallSpeed float64 // px/s
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	AttackFrames             int     // frames the attacking flag stays up
	BladeBonus               float64 // extra reach past Weapon.Range
	MeterPerHit              float64
	MeterMax                 float64
	HitStopNormal            int // frames
	HitStopSpecial           int // frames
	BlockDamageFactor        float64
	BlockReactivationSeconds float64
	LaneSwitchFrames         int

	// Titan damage multipliers
	DesperationMultiplier  float64 // defending player is dead
	SharedLaneMultiplier   float64 // both players in the background
	TitanComboStep         float64
	ProximityDefenseFactor float64

	// Combo trackers (orb and titan)
	ComboMaxHits         int
	ComboCooldownSeconds float64
}

// SpecialConfig contains special attack configuration values
type SpecialConfig struct {
	Frames            int
	ImpactFrame       int
	Reach             float64 // impact center distance ahead of the attacker
	Radius            float64
	FighterDamage     float64
	OrbDamage         float64
	CatchUpMultiplier float64
}

// OrbConfig contains objective configuration values
type OrbConfig struct {
	MaxHealth float64
	MaxArmor  float64
	Width     float64
	Height    float64
	Margin    float64 // gap between the orb and the arena edge

	PlayerDamageMultiplier     float64
	SharedForegroundMultiplier float64
	GuardMultiplier            float64
	GuardRadius                float64 // center-to-center
	DefenseBonusMultiplier     float64
	PierceFraction             float64
	ArmorRegenPerSecond        float64
	UnshieldedRegenMultiplier  float64
}

// TitanConfig contains titan controller configuration values
type TitanConfig struct {
	SpawnOffset          float64 // distance between the orb and its titan at match start
	ClashRange           float64 // edge-to-edge gap at which titans stop and clash
	ClashChancePerSecond float64
	ClashDamage          float64
	MarchSpeed           float64
	SiegeRange           float64
	SiegeDPS             float64
	CriticalFraction     float64
	SecondWindFraction   float64
	SiegeBeamSeconds     float64

	ProximityRadius    float64 // center-to-center
	ChargeBuildSeconds float64
	ChargeDecaySeconds float64

	RegenPerSecond    float64
	RegenTier2Seconds float64 // time without damage before 2x regen
	RegenTier3Seconds float64 // time without damage before 4x regen
}

// RespawnConfig contains player life-cycle configuration values
type RespawnConfig struct {
	Seconds         float64
	HealthFraction  float64
	DeathFrames     int
	ResurrectFrames int
	SpawnGap        float64 // gap between the respawned player and its orb
}

// MatchConfig contains match-wide configuration values
type MatchConfig struct {
	TickRate int // nominal ticks per second for tick-valued timers
	Seed     int64
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Quiet bool // Suppress lifecycle logging
}

// Global configuration instances
var Arena ArenaConfig
var Physics PhysicsConfig
var Classes map[Class]ClassConfig
var Combat CombatConfig
var Special SpecialConfig
var Orb OrbConfig
var Titan TitanConfig
var Respawn RespawnConfig
var Match MatchConfig
var Debug DebugConfig

// ClassByName returns the stats for a class.
func ClassByName(c Class) (ClassConfig, bool) {
	cc, ok := Classes[c]
	return cc, ok
}

// Frames converts seconds to ticks at the nominal tick rate.
func Frames(seconds float64) int {
	return int(seconds*float64(Match.TickRate) + 0.5)
}

func init() {
	Defaults()
}

// Defaults resets every section to its built-in values.
func Defaults() {
	Arena = ArenaConfig{
		Width:             1600,
		Height:            720,
		ForegroundGroundY: 620,
		BackgroundGroundY: 500,
		BackgroundScale:   0.8,
		CellSize:          32,
	}

	Physics = PhysicsConfig{
		Gravity:      2400,
		JumpSpeed:    900,
		MaxFallSpeed: 1800,
	}

	Classes = map[Class]ClassConfig{
		ClassSamurai: {
			Name:      "Samurai",
			MaxHealth: 1000,
			Speed:     320,
			Width:     60,
			Height:    120,
			Weapon: WeaponConfig{
				Range:    120,
				MinRange: 40,
				Damage:   80,
				Cooldown: 0.45,
				Startup:  3,
			},
			TitanSpeedMod: 1.0,
		},
		ClassNinja: {
			Name:      "Ninja",
			MaxHealth: 800,
			Speed:     400,
			Width:     52,
			Height:    112,
			Weapon: WeaponConfig{
				Range:    100,
				MinRange: 30,
				Damage:   60,
				Cooldown: 0.3,
				Startup:  2,
			},
			TitanSpeedMod: 1.15,
		},
		ClassOni: {
			Name:      "Oni",
			MaxHealth: 1400,
			Speed:     250,
			Width:     76,
			Height:    132,
			Weapon: WeaponConfig{
				Range:    140,
				MinRange: 55,
				Damage:   115,
				Cooldown: 0.75,
				Startup:  5,
			},
			TitanSpeedMod: 0.85,
		},
		ClassTitan: {
			Name:          "Titan",
			MaxHealth:     6000,
			Speed:         45,
			Width:         150,
			Height:        240,
			TitanSpeedMod: 1.0,
		},
	}

	Combat = CombatConfig{
		AttackFrames:             18,
		BladeBonus:               10,
		MeterPerHit:              10,
		MeterMax:                 100,
		HitStopNormal:            4,
		HitStopSpecial:           10,
		BlockDamageFactor:        0.1,
		BlockReactivationSeconds: 0.5,
		LaneSwitchFrames:         20,

		DesperationMultiplier:  3,
		SharedLaneMultiplier:   0.5,
		TitanComboStep:         0.4,
		ProximityDefenseFactor: 0.5,

		ComboMaxHits:         10,
		ComboCooldownSeconds: 4,
	}

	Special = SpecialConfig{
		Frames:            30,
		ImpactFrame:       15,
		Reach:             120,
		Radius:            110,
		FighterDamage:     300,
		OrbDamage:         500,
		CatchUpMultiplier: 3,
	}

	Orb = OrbConfig{
		MaxHealth: 7500,
		MaxArmor:  1875,
		Width:     90,
		Height:    150,
		Margin:    30,

		PlayerDamageMultiplier:     0.8,
		SharedForegroundMultiplier: 0.5,
		GuardMultiplier:            0.25,
		GuardRadius:                220,
		DefenseBonusMultiplier:     0.75,
		PierceFraction:             0.2,
		ArmorRegenPerSecond:        12,
		UnshieldedRegenMultiplier:  5,
	}

	Titan = TitanConfig{
		SpawnOffset:          160,
		ClashRange:           30,
		ClashChancePerSecond: 1.2, // ~0.02 per tick at 60 ticks/s
		ClashDamage:          90,
		MarchSpeed:           30,
		SiegeRange:           40,
		SiegeDPS:             90,
		CriticalFraction:     0.35,
		SecondWindFraction:   0.35,
		SiegeBeamSeconds:     45,

		ProximityRadius:    260,
		ChargeBuildSeconds: 3,
		ChargeDecaySeconds: 1,

		RegenPerSecond:    15,
		RegenTier2Seconds: 4,
		RegenTier3Seconds: 8,
	}

	Respawn = RespawnConfig{
		Seconds:         10,
		HealthFraction:  0.75,
		DeathFrames:     45,
		ResurrectFrames: 60,
		SpawnGap:        20,
	}

	Match = MatchConfig{
		TickRate: 60,
		Seed:     42,
	}

	Debug = DebugConfig{
		Quiet: false,
	}
}
