package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func resetConfig(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		Defaults()
		BotDefaults()
	})
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  error
		validate func(t *testing.T)
	}{
		{
			name: "partial class override keeps other stats",
			content: `classes:
  samurai:
    maxhealth: 1200
    weapon:
      damage: 95
`,
			validate: func(t *testing.T) {
				c := Classes[ClassSamurai]
				if c.MaxHealth != 1200 {
					t.Errorf("MaxHealth = %v, want 1200", c.MaxHealth)
				}
				if c.Weapon.Damage != 95 {
					t.Errorf("Weapon.Damage = %v, want 95", c.Weapon.Damage)
				}
				if c.Weapon.Range != 120 || c.Speed != 320 {
					t.Errorf("untouched fields changed: %+v", c)
				}
			},
		},
		{
			name: "section fields overlay defaults",
			content: `orb:
  maxarmor: 1000
match:
  seed: 7
bots:
  hard:
    blockchance: 1
`,
			validate: func(t *testing.T) {
				if Orb.MaxArmor != 1000 {
					t.Errorf("Orb.MaxArmor = %v, want 1000", Orb.MaxArmor)
				}
				if Orb.MaxHealth != 7500 {
					t.Errorf("Orb.MaxHealth = %v, want 7500", Orb.MaxHealth)
				}
				if Match.Seed != 7 || Match.TickRate != 60 {
					t.Errorf("Match = %+v", Match)
				}
				hard := Bot.Difficulties[BotDifficultyHard]
				if hard.BlockChance != 1 || hard.ReactionDelay != 5 {
					t.Errorf("hard bot = %+v", hard)
				}
			},
		},
		{
			name:    "zero tick rate rejected",
			content: "match:\n  tickrate: 0\n",
			wantErr: ErrBadTickRate,
			validate: func(t *testing.T) {
				if Match.TickRate != 60 {
					t.Errorf("TickRate changed to %d after failed load", Match.TickRate)
				}
			},
		},
		{
			name: "inverted weapon ranges rejected",
			content: `classes:
  ninja:
    weapon:
      minrange: 200
`,
			wantErr: ErrBadClass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetConfig(t)
			err := Load([]byte(tt.content))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	resetConfig(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("titan:\n  siegedps: 120\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if Titan.SiegeDPS != 120 {
		t.Errorf("SiegeDPS = %v, want 120", Titan.SiegeDPS)
	}

	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}
}

func TestParseActionSet(t *testing.T) {
	set := ParseActionSet("jump", "attack", "dance", "crouch")
	if !set[ActionMoveUp] || !set[ActionAttack] || !set[ActionMoveDown] {
		t.Errorf("ParseActionSet missing actions: %v", set)
	}
	if len(set) != 3 {
		t.Errorf("len = %d, want 3 (unknown names ignored)", len(set))
	}
	if got := NewActionSet(ActionNone, ActionCount, ActionSwitchLane); len(got) != 1 {
		t.Errorf("NewActionSet kept invalid ids: %v", got)
	}
}

func TestFrames(t *testing.T) {
	if got := Frames(4); got != 240 {
		t.Errorf("Frames(4) = %d, want 240", got)
	}
}
