package systems

import (
	"fmt"
	"testing"

	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
)

func TestSetLaneRescales(t *testing.T) {
	w := newTestWorld(t)
	p1 := w.player(cfg.Side1)
	place(p1, 400)
	before := components.Object.Get(p1).Rect()

	setLane(p1, cfg.LaneBackground)
	r := components.Object.Get(p1).Rect()
	if r.W != 48 || r.H != 96 {
		t.Errorf("background size = %vx%v, want 48x96", r.W, r.H)
	}
	if r.CenterX() != before.CenterX() {
		t.Errorf("center x = %v, want %v", r.CenterX(), before.CenterX())
	}
	if r.Bottom() != cfg.Arena.BackgroundGroundY {
		t.Errorf("bottom = %v, want on the background ground line", r.Bottom())
	}

	setLane(p1, cfg.LaneForeground)
	if got := components.Object.Get(p1).Rect(); got != before {
		t.Errorf("round trip = %+v, want %+v", got, before)
	}
}

func TestLaneSwitchDebounce(t *testing.T) {
	w := newTestWorld(t)
	p1 := w.player(cfg.Side1)
	fighter := components.Fighter.Get(p1)
	input := components.PlayerInput.Get(p1)
	input.Load(cfg.NewActionSet(cfg.ActionSwitchLane))

	updateLaneSwitch(w.ecs, p1, input)
	if fighter.Lane != cfg.LaneBackground {
		t.Fatalf("lane = %v, want background", fighter.Lane)
	}
	for range cfg.Combat.LaneSwitchFrames {
		updateLaneSwitch(w.ecs, p1, input)
	}
	if fighter.Lane != cfg.LaneBackground {
		t.Fatalf("switched back during the debounce window")
	}
	updateLaneSwitch(w.ecs, p1, input)
	if fighter.Lane != cfg.LaneForeground {
		t.Errorf("lane = %v, want foreground once the debounce ends", fighter.Lane)
	}
}

func TestLaneSwitchBlockedDuringSpecial(t *testing.T) {
	w := newTestWorld(t)
	p1 := w.player(cfg.Side1)
	components.Special.Get(p1).Active = true
	input := components.PlayerInput.Get(p1)
	input.Load(cfg.NewActionSet(cfg.ActionSwitchLane))

	updateLaneSwitch(w.ecs, p1, input)
	if got := components.Fighter.Get(p1).Lane; got != cfg.LaneForeground {
		t.Errorf("lane = %v, want foreground while the special runs", got)
	}
}

func TestLaneSyncTransition(t *testing.T) {
	w := newTestWorld(t)
	match := w.match()
	match.Tick = 100
	p1, p2 := w.player(cfg.Side1), w.player(cfg.Side2)

	setLane(p1, cfg.LaneBackground)
	refreshLaneSync(w.ecs)
	if match.LanesSynced {
		t.Fatal("lanes synced with players apart")
	}

	match.OrbCombo[0].Hits = 5
	match.TitanCombo[1].Hits = 3
	setLane(p1, cfg.LaneForeground)
	refreshLaneSync(w.ecs)

	if !match.LanesSynced {
		t.Fatal("lanes not synced with players together")
	}
	for _, p := range []*components.FighterData{components.Fighter.Get(p1), components.Fighter.Get(p2)} {
		if p.BlockCooldownUntil != 130 {
			t.Errorf("side %d BlockCooldownUntil = %d, want 130", p.Side, p.BlockCooldownUntil)
		}
	}
	if match.OrbCombo[0].Hits != 0 || match.OrbCombo[0].CooldownUntilTick != 340 {
		t.Errorf("orb combo = %+v, want reset with a 4 second cooldown", match.OrbCombo[0])
	}
	if match.TitanCombo[1].Hits != 0 {
		t.Errorf("titan combo = %+v, want reset", match.TitanCombo[1])
	}

	// Staying together is not a transition.
	match.Tick = 200
	refreshLaneSync(w.ecs)
	if got := components.Fighter.Get(p1).BlockCooldownUntil; got != 130 {
		t.Errorf("BlockCooldownUntil = %d, want unchanged", got)
	}
}

func TestLaneSyncCooldownsFollowTickRate(t *testing.T) {
	tests := []struct {
		tickRate      int
		wantBlock     int
		wantComboTick int
	}{
		{tickRate: 60, wantBlock: 130, wantComboTick: 340},
		{tickRate: 30, wantBlock: 115, wantComboTick: 220},
		{tickRate: 120, wantBlock: 160, wantComboTick: 580},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d tps", tt.tickRate), func(t *testing.T) {
			w := newTestWorld(t)
			cfg.Match.TickRate = tt.tickRate
			match := w.match()
			match.Tick = 100
			p1 := w.player(cfg.Side1)

			setLane(p1, cfg.LaneBackground)
			refreshLaneSync(w.ecs)
			setLane(p1, cfg.LaneForeground)
			refreshLaneSync(w.ecs)

			if got := components.Fighter.Get(p1).BlockCooldownUntil; got != tt.wantBlock {
				t.Errorf("BlockCooldownUntil = %d, want %d", got, tt.wantBlock)
			}
			for i := range match.OrbCombo {
				if got := match.OrbCombo[i].CooldownUntilTick; got != tt.wantComboTick {
					t.Errorf("orb combo %d cooldown until %d, want %d", i, got, tt.wantComboTick)
				}
				if got := match.TitanCombo[i].CooldownUntilTick; got != tt.wantComboTick {
					t.Errorf("titan combo %d cooldown until %d, want %d", i, got, tt.wantComboTick)
				}
			}
		})
	}
}
