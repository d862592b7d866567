package sim

import (
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/lanebrawl/config"
)

// GameLoop steps a simulation at a fixed tick rate. Inputs and snapshots
// are exchanged between ticks under the loop's lock.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	mu     sync.Mutex
	inputs [2]cfg.ActionSet
	onTick func(*Simulation)
}

func NewGameLoop(sim *Simulation, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = cfg.Match.TickRate
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// OnTick registers a callback run under the lock after every tick.
func (g *GameLoop) OnTick(fn func(*Simulation)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onTick = fn
}

// SetInputs replaces the held actions used from the next tick on.
func (g *GameLoop) SetInputs(inputs [2]cfg.ActionSet) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inputs = inputs
}

// Snapshot copies the world between ticks.
func (g *GameLoop) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sim.Snapshot()
}

// Run blocks, stepping the simulation until Stop is called or the match is
// decided.
func (g *GameLoop) Run() {
	defer close(g.done)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			if g.tick() {
				log.Printf("Game loop finished: %s", g.sim.Winner())
				return
			}
		}
	}
}

// Stop asks Run to return. Safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Done is closed when Run returns.
func (g *GameLoop) Done() <-chan struct{} {
	return g.done
}

func (g *GameLoop) tick() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sim.Step(1/float64(g.tickRate), g.inputs)
	if g.onTick != nil {
		g.onTick(g.sim)
	}
	return g.sim.Winner() != cfg.WinnerNone
}
