package systems

import (
	"testing"

	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testWorld is a full arena built through the factory, without a pipeline.
// Tests drive individual systems by hand.
type testWorld struct {
	ecs     *ecs.ECS
	players [2]*donburi.Entry
	titans  [2]*donburi.Entry
	orbs    [2]*donburi.Entry
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg.Defaults()
	cfg.BotDefaults()
	cfg.Debug.Quiet = true
	t.Cleanup(func() {
		cfg.Defaults()
		cfg.BotDefaults()
	})

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, int(cfg.Arena.Width), int(cfg.Arena.Height), cfg.Arena.CellSize, cfg.Arena.CellSize)
	factory.CreateMatch(e, 1)

	w := &testWorld{ecs: e}
	for _, side := range sides {
		i := side.Index()
		w.orbs[i] = factory.CreateOrb(e, side)
		w.titans[i] = factory.CreateTitan(e, side, 1)
		player, err := factory.CreatePlayer(e, side, cfg.ClassSamurai)
		if err != nil {
			t.Fatalf("CreatePlayer(%d): %v", side, err)
		}
		w.players[i] = player
	}

	match := w.match()
	match.Tick = 1
	match.DT = 1.0 / 60
	return w
}

func (w *testWorld) match() *components.MatchData {
	return getMatch(w.ecs)
}

func (w *testWorld) player(side cfg.Side) *donburi.Entry { return w.players[side.Index()] }
func (w *testWorld) titan(side cfg.Side) *donburi.Entry  { return w.titans[side.Index()] }
func (w *testWorld) orb(side cfg.Side) *donburi.Entry    { return w.orbs[side.Index()] }

// place moves a body horizontally and refreshes its broad-phase cells.
func place(entry *donburi.Entry, x float64) {
	obj := components.Object.Get(entry)
	obj.X = x
	obj.Update()
}

// swing starts an attack that is already past its startup and resolves it.
func (w *testWorld) swing(attacker *donburi.Entry) {
	melee := components.MeleeAttack.Get(attacker)
	melee.BeginSwing(cfg.Combat.AttackFrames)
	melee.StartupFrames = 0
	resolveSwing(w.ecs, attacker)
}

func health(entry *donburi.Entry) float64 {
	return components.Health.Get(entry).Current
}

func setHealth(entry *donburi.Entry, hp float64) {
	components.Health.Get(entry).Current = hp
}

// killTitanOutright takes a titan down through the regular intake.
func (w *testWorld) killTitanOutright(side cfg.Side) {
	entry := w.titan(side)
	setHealth(entry, 1)
	damageTitan(w.ecs, entry, 10)
}

func hasEvent[T any](events []any) (T, bool) {
	for _, ev := range events {
		if v, ok := ev.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

const epsilon = 1e-6

func near(a, b, tolerance float64) bool {
	d := a - b
	return d <= tolerance && d >= -tolerance
}
