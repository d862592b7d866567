package sim

import (
	"fmt"

	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/systems"
	"github.com/automoto/lanebrawl/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MaxStep caps the dt of a single step so fast bodies cannot tunnel.
const MaxStep = 0.1

// Options configures a new match.
type Options struct {
	Classes [2]cfg.Class                   // indexed by side
	Bots    map[cfg.Side]cfg.BotDifficulty // sides driven by the built-in AI
	Seed    int64
}

// DefaultOptions is a samurai mirror match with the configured seed.
func DefaultOptions() Options {
	return Options{
		Classes: [2]cfg.Class{cfg.ClassSamurai, cfg.ClassSamurai},
		Seed:    cfg.Match.Seed,
	}
}

// Simulation owns one match world and steps it.
type Simulation struct {
	ecs   *ecs.ECS
	match *donburi.Entry

	players [2]*donburi.Entry
	titans  [2]*donburi.Entry
	orbs    [2]*donburi.Entry
}

// New builds the arena, both sides and the system pipeline.
func New(opts Options) (*Simulation, error) {
	for i, class := range opts.Classes {
		if _, ok := cfg.ClassByName(class); !ok || class == cfg.ClassTitan {
			return nil, fmt.Errorf("side %d: unknown class %q", i+1, class)
		}
	}

	s := &Simulation{ecs: ecs.NewECS(donburi.NewWorld())}

	factory.CreateSpace(s.ecs,
		int(cfg.Arena.Width), int(cfg.Arena.Height),
		cfg.Arena.CellSize, cfg.Arena.CellSize,
	)
	s.match = factory.CreateMatch(s.ecs, opts.Seed)

	for _, side := range []cfg.Side{cfg.Side1, cfg.Side2} {
		i := side.Index()
		class := opts.Classes[i]

		s.orbs[i] = factory.CreateOrb(s.ecs, side)
		s.titans[i] = factory.CreateTitan(s.ecs, side, cfg.Classes[class].TitanSpeedMod)

		player, err := factory.CreatePlayer(s.ecs, side, class)
		if err != nil {
			return nil, fmt.Errorf("new simulation: %w", err)
		}
		s.players[i] = player

		if difficulty, ok := opts.Bots[side]; ok {
			factory.AttachBot(player, difficulty)
		}
	}

	s.addSystems()
	return s, nil
}

// addSystems wires the per-tick pipeline. Order matters.
func (s *Simulation) addSystems() {
	s.ecs.AddSystem(systems.UpdateClock)
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateInput))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBots))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateRespawns))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLaneSync))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFighters))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBounds))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTitans))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSiegeBeam))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateWin))
}

// Step advances the match by one tick of dt seconds with each side's held
// actions. A decided match or an active hit-stop skips the tick.
func (s *Simulation) Step(dt float64, inputs [2]cfg.ActionSet) {
	match := components.Match.Get(s.match)
	match.DT = min(max(dt, 0), MaxStep)
	match.Inputs = inputs
	s.ecs.Update()
	match.Inputs = [2]cfg.ActionSet{}
}

// Winner returns the match outcome so far.
func (s *Simulation) Winner() cfg.Winner {
	return components.Match.Get(s.match).Winner
}

// Tick returns the number of simulated (non-frozen) ticks.
func (s *Simulation) Tick() int {
	return components.Match.Get(s.match).Tick
}

// Events returns what happened during the last step. The slice is reused by
// the next step.
func (s *Simulation) Events() []any {
	return components.Match.Get(s.match).Events
}

// World exposes the underlying entity world, for tests and tooling.
func (s *Simulation) World() donburi.World {
	return s.ecs.World
}

// ECS exposes the system runner.
func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

// Player returns a side's player entry.
func (s *Simulation) Player(side cfg.Side) *donburi.Entry {
	return s.players[side.Index()]
}

// Titan returns a side's titan entry.
func (s *Simulation) Titan(side cfg.Side) *donburi.Entry {
	return s.titans[side.Index()]
}

// Orb returns a side's orb entry.
func (s *Simulation) Orb(side cfg.Side) *donburi.Entry {
	return s.orbs[side.Index()]
}

// Match returns the singleton world state.
func (s *Simulation) Match() *components.MatchData {
	return components.Match.Get(s.match)
}
