package systems

import (
	"testing"

	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/shared/gamemath"
	"github.com/automoto/lanebrawl/shared/messages"
	"github.com/yohamta/donburi"
)

func TestSecondWind(t *testing.T) {
	tests := []struct {
		name       string
		survivorHP float64
		wantHP     float64
		wantEvent  bool
	}{
		{name: "critical survivor heals", survivorHP: 1000, wantHP: 3100, wantEvent: true},
		{name: "healthy survivor unchanged", survivorHP: 5000, wantHP: 5000},
		{name: "just under the threshold", survivorHP: 2000, wantHP: 4100, wantEvent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			survivor := w.titan(cfg.Side1)
			setHealth(survivor, tt.survivorHP)

			w.killTitanOutright(cfg.Side2)

			if got := health(survivor); !near(got, tt.wantHP, epsilon) {
				t.Errorf("survivor health = %v, want %v", got, tt.wantHP)
			}
			if got := components.Titan.Get(survivor).State; got != cfg.TitanMarching {
				t.Errorf("survivor state = %v, want marching", got)
			}
			fallen := components.Titan.Get(w.titan(cfg.Side2))
			if fallen.State != cfg.TitanDead || !fallen.DeathHandled {
				t.Errorf("fallen titan = %+v", *fallen)
			}
			if components.Orb.Get(w.orb(cfg.Side2)).IsShielded {
				t.Error("fallen titan's orb is still shielded")
			}
			if _, ok := hasEvent[messages.SecondWindEvent](w.match().Events); ok != tt.wantEvent {
				t.Errorf("second wind event = %v, want %v", ok, tt.wantEvent)
			}
		})
	}
}

func TestProximityCharge(t *testing.T) {
	w := newTestWorld(t)
	p1 := w.player(cfg.Side1)
	titan := w.titan(cfg.Side1)
	data := components.Titan.Get(titan)

	// Stand on the titan in the background.
	setLane(p1, cfg.LaneBackground)
	body := components.Object.Get(titan).Rect()
	place(p1, body.CenterX()-components.Object.Get(p1).W/2)

	for range 90 {
		updateProximityCharge(w.ecs, titan)
	}
	if !near(data.ProximityCharge, 0.5, 0.01) {
		t.Errorf("charge after 1.5s = %v, want ~0.5", data.ProximityCharge)
	}

	for range 120 {
		updateProximityCharge(w.ecs, titan)
	}
	if !near(data.ProximityCharge, 1, 0.001) {
		t.Errorf("charge after 3.5s = %v, want 1", data.ProximityCharge)
	}
	if got := data.DamageReduction(cfg.Combat.ProximityDefenseFactor); !near(got, 0.5, 0.001) {
		t.Errorf("damage share = %v, want 0.5", got)
	}

	// Walking out of range decays over a second.
	place(p1, body.CenterX()+cfg.Titan.ProximityRadius+100)
	for range 30 {
		updateProximityCharge(w.ecs, titan)
	}
	if !near(data.ProximityCharge, 0.5, 0.01) {
		t.Errorf("charge after 0.5s decay = %v, want ~0.5", data.ProximityCharge)
	}

	// Leaving the background drops it at once.
	setLane(p1, cfg.LaneForeground)
	updateProximityCharge(w.ecs, titan)
	if data.ProximityCharge != 0 {
		t.Errorf("charge after lane switch = %v, want 0", data.ProximityCharge)
	}
}

func TestProximityChargeHoldsAtZeroDT(t *testing.T) {
	w := newTestWorld(t)
	p1 := w.player(cfg.Side1)
	titan := w.titan(cfg.Side1)
	setLane(p1, cfg.LaneBackground)
	body := components.Object.Get(titan).Rect()
	place(p1, body.CenterX())

	w.match().DT = 0
	for range 10 {
		updateProximityCharge(w.ecs, titan)
	}
	if got := components.Titan.Get(titan).ProximityCharge; got != 0 {
		t.Errorf("charge = %v, want 0 with no time passing", got)
	}
}

func TestTitanRegenTiers(t *testing.T) {
	tests := []struct {
		name   string
		idle   int
		hp     float64
		wantHP float64
	}{
		{name: "baseline", idle: 0, hp: 1000, wantHP: 1015},
		{name: "second tier", idle: 240, hp: 1000, wantHP: 1030},
		{name: "third tier", idle: 480, hp: 1000, wantHP: 1060},
		{name: "stops at the threshold", idle: 480, hp: 2090, wantHP: 2100},
		{name: "not below threshold", idle: 480, hp: 3000, wantHP: 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.killTitanOutright(cfg.Side2)
			titan := w.titan(cfg.Side1)
			setHealth(titan, tt.hp)

			match := w.match()
			match.DT = 1
			match.Tick = 1000
			components.Titan.Get(titan).LastDamageTick = match.Tick - tt.idle

			updateTitanRegen(w.ecs, titan)
			if got := health(titan); !near(got, tt.wantHP, epsilon) {
				t.Errorf("health = %v, want %v", got, tt.wantHP)
			}
		})
	}
}

func TestTitanRegenTiersFollowTickRate(t *testing.T) {
	tests := []struct {
		name   string
		idle   int
		wantHP float64
	}{
		{name: "under four seconds", idle: 119, wantHP: 1015},
		{name: "four seconds", idle: 120, wantHP: 1030},
		{name: "eight seconds", idle: 240, wantHP: 1060},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			cfg.Match.TickRate = 30
			w.killTitanOutright(cfg.Side2)
			titan := w.titan(cfg.Side1)
			setHealth(titan, 1000)

			match := w.match()
			match.DT = 1
			match.Tick = 1000
			components.Titan.Get(titan).LastDamageTick = match.Tick - tt.idle

			updateTitanRegen(w.ecs, titan)
			if got := health(titan); !near(got, tt.wantHP, epsilon) {
				t.Errorf("health = %v, want %v", got, tt.wantHP)
			}
		})
	}
}

func TestTitanRegenNeedsDeadRival(t *testing.T) {
	w := newTestWorld(t)
	w.match().DT = 1
	titan := w.titan(cfg.Side1)
	setHealth(titan, 1000)

	updateTitanRegen(w.ecs, titan)
	if got := health(titan); got != 1000 {
		t.Errorf("health = %v, want no regen while the rival stands", got)
	}
}

func TestDuelApproachAndClash(t *testing.T) {
	w := newTestWorld(t)
	match := w.match()
	// A full second per step makes every clash roll succeed.
	match.DT = 1
	t1, t2 := w.titan(cfg.Side1), w.titan(cfg.Side2)

	gap := func() float64 {
		return gamemath.EdgeGap(components.Object.Get(t1).Rect(), components.Object.Get(t2).Rect())
	}
	for i := 0; i < 100 && gap() > cfg.Titan.ClashRange; i++ {
		updateDuel(w.ecs, t1, t2)
	}

	if got := gap(); !near(got, cfg.Titan.ClashRange, epsilon) {
		t.Fatalf("gap = %v, want titans parked at clash range", got)
	}
	want := cfg.Classes[cfg.ClassTitan].MaxHealth - cfg.Titan.ClashDamage
	if health(t1) != want || health(t2) != want {
		t.Errorf("health = %v/%v, want %v each", health(t1), health(t2), want)
	}
	if match.LastHit.Category != cfg.HitTitanClash {
		t.Errorf("LastHit = %+v", match.LastHit)
	}
	if match.HitStop != 0 {
		t.Errorf("clash froze the world for %d frames", match.HitStop)
	}
	for _, e := range []*components.TitanData{components.Titan.Get(t1), components.Titan.Get(t2)} {
		if e.State != cfg.TitanDueling {
			t.Errorf("side %d state = %v, want dueling", e.Side, e.State)
		}
	}
}

func TestSurvivorMarchesAndSieges(t *testing.T) {
	w := newTestWorld(t)
	w.match().DT = 1
	w.killTitanOutright(cfg.Side2)
	survivor := w.titan(cfg.Side1)
	orb := w.orb(cfg.Side2)
	data := components.Titan.Get(survivor)

	start := components.Object.Get(survivor).X
	updateSurvivor(w.ecs, survivor)
	if data.State != cfg.TitanMarching {
		t.Fatalf("state = %v, want marching", data.State)
	}
	if got := components.Object.Get(survivor).X - start; got != cfg.Titan.MarchSpeed {
		t.Errorf("marched %v px, want %v", got, cfg.Titan.MarchSpeed)
	}

	// Park within siege range of the orb at x=1480.
	place(survivor, 1480-components.Object.Get(survivor).W-20)
	updateSurvivor(w.ecs, survivor)
	if data.State != cfg.TitanSieging {
		t.Fatalf("state = %v, want sieging", data.State)
	}
	if got := components.Orb.Get(orb).Armor; got != cfg.Orb.MaxArmor-cfg.Titan.SiegeDPS {
		t.Errorf("armor = %v, want one second of siege damage", got)
	}
	if w.match().Siege.Armed {
		t.Error("beam armed on a healthy orb")
	}

	setHealth(orb, 2000)
	updateSurvivor(w.ecs, survivor)
	siege := w.match().Siege
	if !siege.Armed || !siege.Used || siege.Side != cfg.Side1 || siege.Remaining != cfg.Titan.SiegeBeamSeconds {
		t.Errorf("siege = %+v, want armed by side 1", siege)
	}
}

func TestSiegeBeamArmsOnce(t *testing.T) {
	w := newTestWorld(t)
	orb := w.orb(cfg.Side2)
	setHealth(orb, 1000)

	armSiegeBeam(w.ecs, cfg.Side1, orb)
	cancelSiegeBeam(w.ecs)
	armSiegeBeam(w.ecs, cfg.Side1, orb)

	siege := w.match().Siege
	if siege.Armed || !siege.Used {
		t.Errorf("siege = %+v, want spent and not re-armed", siege)
	}
}

func TestSiegeBeamFires(t *testing.T) {
	w := newTestWorld(t)
	match := w.match()
	match.DT = 1
	match.Siege = components.SiegeData{Armed: true, Used: true, Side: cfg.Side1, Remaining: 1.5}

	UpdateSiegeBeam(w.ecs)
	if components.Orb.Get(w.orb(cfg.Side2)).IsDead {
		t.Fatal("beam fired early")
	}

	UpdateSiegeBeam(w.ecs)
	if !components.Orb.Get(w.orb(cfg.Side2)).IsDead {
		t.Fatal("beam did not destroy the orb")
	}
	if match.LastHit.Category != cfg.HitSiegeBeam || match.LastHit.Attacker != cfg.Side1 {
		t.Errorf("LastHit = %+v", match.LastHit)
	}
	if match.Siege.Armed {
		t.Error("beam still armed after firing")
	}

	UpdateWin(w.ecs)
	if match.Winner != cfg.WinnerSide1 {
		t.Errorf("winner = %v, want side1", match.Winner)
	}
}

func TestMutualClashKillIsSimultaneous(t *testing.T) {
	tests := []struct {
		name       string
		hp1, hp2   float64
		wantDead   [2]bool
		wantHP     [2]float64
		wantState  [2]cfg.TitanState
		secondWind bool
	}{
		{
			name:      "both fall",
			hp1:       50,
			hp2:       50,
			wantDead:  [2]bool{true, true},
			wantState: [2]cfg.TitanState{cfg.TitanDormant, cfg.TitanDormant},
		},
		{
			name:       "critical survivor takes the hit before its second wind",
			hp1:        50,
			hp2:        1000,
			wantDead:   [2]bool{true, false},
			wantHP:     [2]float64{0, 3010},
			wantState:  [2]cfg.TitanState{cfg.TitanDead, cfg.TitanMarching},
			secondWind: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			match := w.match()
			// A full second per step makes every clash roll succeed.
			match.DT = 1
			t1, t2 := w.titan(cfg.Side1), w.titan(cfg.Side2)
			r1 := components.Object.Get(t1).Rect()
			place(t2, r1.X+r1.W+cfg.Titan.ClashRange-1)
			setHealth(t1, tt.hp1)
			setHealth(t2, tt.hp2)

			updateDuel(w.ecs, t1, t2)

			for i, entry := range [2]*donburi.Entry{t1, t2} {
				if got := components.Fighter.Get(entry).IsDead; got != tt.wantDead[i] {
					t.Errorf("side %d dead = %v, want %v", i+1, got, tt.wantDead[i])
				}
				if got := health(entry); !near(got, tt.wantHP[i], epsilon) {
					t.Errorf("side %d health = %v, want %v", i+1, got, tt.wantHP[i])
				}
				if got := components.Titan.Get(entry).State; got != tt.wantState[i] {
					t.Errorf("side %d state = %v, want %v", i+1, got, tt.wantState[i])
				}
			}
			if _, ok := hasEvent[messages.SecondWindEvent](match.Events); ok != tt.secondWind {
				t.Errorf("second wind event = %v, want %v", ok, tt.secondWind)
			}
		})
	}
}

func TestDormantCancelsBeam(t *testing.T) {
	w := newTestWorld(t)
	match := w.match()
	match.Siege = components.SiegeData{Armed: true, Used: true, Side: cfg.Side1, Remaining: 10}
	w.killTitanOutright(cfg.Side2)
	w.killTitanOutright(cfg.Side1)

	UpdateTitans(w.ecs)

	if match.Siege.Armed || !match.Siege.Used {
		t.Errorf("siege = %+v, want cancelled and spent", match.Siege)
	}
	for _, side := range sides {
		if got := components.Titan.Get(w.titan(side)).State; got != cfg.TitanDormant {
			t.Errorf("side %d state = %v, want dormant", side, got)
		}
	}
	ev, ok := hasEvent[messages.SiegeEvent](match.Events)
	if !ok || ev.Phase != messages.SiegeCancelled {
		t.Errorf("siege event = %+v (found %v)", ev, ok)
	}
}
