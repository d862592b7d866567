package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the tuning globals in a YAML document. Keys inside a
// section are the lowercased field names (yaml.v3 default).
type fileConfig struct {
	Arena   *ArenaConfig         `yaml:"arena"`
	Physics *PhysicsConfig       `yaml:"physics"`
	Classes map[Class]yaml.Node  `yaml:"classes"`
	Combat  *CombatConfig        `yaml:"combat"`
	Special *SpecialConfig       `yaml:"special"`
	Orb     *OrbConfig           `yaml:"orb"`
	Titan   *TitanConfig         `yaml:"titan"`
	Respawn *RespawnConfig       `yaml:"respawn"`
	Match   *MatchConfig         `yaml:"match"`
	Bots    map[string]yaml.Node `yaml:"bots"`
	Debug   *DebugConfig         `yaml:"debug"`
}

// LoadFile overlays the YAML file at path onto the current tuning values.
// Anything the file leaves out keeps its current value.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return Load(data)
}

// Load overlays a YAML document onto the current tuning values. Nothing is
// changed when the document fails to parse or validate.
func Load(data []byte) error {
	classes := make(map[Class]ClassConfig, len(Classes))
	for k, v := range Classes {
		classes[k] = v
	}
	difficulties := make(map[BotDifficulty]BotDifficultyConfig, len(Bot.Difficulties))
	for k, v := range Bot.Difficulties {
		difficulties[k] = v
	}

	arena, physics, combat, special := Arena, Physics, Combat, Special
	orb, titan, respawn, match, debug := Orb, Titan, Respawn, Match, Debug

	fc := fileConfig{
		Arena:   &arena,
		Physics: &physics,
		Combat:  &combat,
		Special: &special,
		Orb:     &orb,
		Titan:   &titan,
		Respawn: &respawn,
		Match:   &match,
		Debug:   &debug,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Map entries are decoded onto the existing class so partial overrides work.
	for name, node := range fc.Classes {
		cc := classes[name]
		if err := node.Decode(&cc); err != nil {
			return fmt.Errorf("parse class %q: %w", name, err)
		}
		classes[name] = cc
	}
	for name, node := range fc.Bots {
		d, err := ParseBotDifficulty(name)
		if err != nil {
			return fmt.Errorf("parse bots: %w", err)
		}
		dc := difficulties[d]
		if err := node.Decode(&dc); err != nil {
			return fmt.Errorf("parse bot %q: %w", name, err)
		}
		difficulties[d] = dc
	}

	if err := validate(arena, match, classes); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	Arena, Physics, Combat, Special = arena, physics, combat, special
	Orb, Titan, Respawn, Match, Debug = orb, titan, respawn, match, debug
	Classes = classes
	Bot.Difficulties = difficulties
	return nil
}

var (
	ErrBadTickRate = errors.New("tick rate must be positive")
	ErrBadArena    = errors.New("arena must have positive size")
	ErrBadClass    = errors.New("class stats out of range")
)

func validate(arena ArenaConfig, match MatchConfig, classes map[Class]ClassConfig) error {
	if match.TickRate <= 0 {
		return ErrBadTickRate
	}
	if arena.Width <= 0 || arena.Height <= 0 || arena.CellSize <= 0 {
		return ErrBadArena
	}
	for name, cc := range classes {
		if cc.MaxHealth <= 0 || cc.Width <= 0 || cc.Height <= 0 {
			return fmt.Errorf("%w: %s", ErrBadClass, name)
		}
		if name != ClassTitan && (cc.Weapon.MinRange < 0 || cc.Weapon.MinRange > cc.Weapon.Range) {
			return fmt.Errorf("%w: %s weapon ranges", ErrBadClass, name)
		}
	}
	return nil
}
