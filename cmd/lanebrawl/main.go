package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/shared/messages"
	"github.com/automoto/lanebrawl/sim"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning overlay (empty = built-in values)")
	tickRate := flag.Int("tickrate", 0, "Simulation tick rate (0 = config value)")
	p1 := flag.String("p1", string(cfg.ClassSamurai), "Side 1 class: samurai, ninja or oni")
	p2 := flag.String("p2", string(cfg.ClassSamurai), "Side 2 class: samurai, ninja or oni")
	bot1 := flag.String("bot1", "normal", "Side 1 bot difficulty: easy, normal, hard or none")
	bot2 := flag.String("bot2", "normal", "Side 2 bot difficulty: easy, normal, hard or none")
	seconds := flag.Float64("seconds", 600, "Stop after this much simulated time (0 = until decided)")
	realtime := flag.Bool("realtime", false, "Step on a wall-clock ticker instead of as fast as possible")
	seed := flag.Int64("seed", 0, "Random seed (0 = config value)")
	quiet := flag.Bool("quiet", false, "Only print the result")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *tickRate > 0 {
		cfg.Match.TickRate = *tickRate
	}
	if *quiet {
		cfg.Debug.Quiet = true
	}

	opts := sim.Options{
		Classes: [2]cfg.Class{cfg.Class(*p1), cfg.Class(*p2)},
		Bots:    map[cfg.Side]cfg.BotDifficulty{},
		Seed:    cfg.Match.Seed,
	}
	if *seed != 0 {
		opts.Seed = *seed
	}
	for side, name := range map[cfg.Side]string{cfg.Side1: *bot1, cfg.Side2: *bot2} {
		if name == "none" {
			continue
		}
		difficulty, err := cfg.ParseBotDifficulty(name)
		if err != nil {
			log.Fatalf("Side %d: %v", side, err)
		}
		opts.Bots[side] = difficulty
	}

	s, err := sim.New(opts)
	if err != nil {
		log.Fatalf("Failed to start match: %v", err)
	}

	log.Printf("Starting match %s vs %s (tick rate: %d/s, seed: %d)",
		opts.Classes[0], opts.Classes[1], cfg.Match.TickRate, opts.Seed)

	if *realtime {
		runRealtime(s, *seconds)
	} else {
		runFast(s, *seconds)
	}
	report(s)
}

// runFast steps the match back to back.
func runFast(s *sim.Simulation, seconds float64) {
	dt := 1 / float64(cfg.Match.TickRate)
	limit := int(seconds * float64(cfg.Match.TickRate))
	for steps := 0; limit <= 0 || steps < limit; steps++ {
		s.Step(dt, [2]cfg.ActionSet{})
		logEvents(s.Events())
		if s.Winner() != cfg.WinnerNone {
			return
		}
	}
}

// runRealtime drives the match from a GameLoop until it ends, the time
// limit passes or the process is interrupted.
func runRealtime(s *sim.Simulation, seconds float64) {
	loop := sim.NewGameLoop(s, cfg.Match.TickRate)
	loop.OnTick(func(s *sim.Simulation) {
		logEvents(s.Events())
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var timeout <-chan time.Time
	if seconds > 0 {
		timer := time.NewTimer(time.Duration(seconds * float64(time.Second)))
		defer timer.Stop()
		timeout = timer.C
	}

	go loop.Run()
	select {
	case <-loop.Done():
	case <-sigChan:
		log.Println("Shutting down match...")
		loop.Stop()
		<-loop.Done()
	case <-timeout:
		loop.Stop()
		<-loop.Done()
	}
}

func logEvents(events []any) {
	if cfg.Debug.Quiet {
		return
	}
	for _, ev := range events {
		switch ev := ev.(type) {
		case messages.HitEvent:
			log.Printf("[hit] tick %d: side %d %s hit on %s for %.1f", ev.Tick, ev.Attacker, ev.Category, ev.Target, ev.Damage)
		case messages.DeathEvent:
			log.Printf("[death] tick %d: side %d %s down", ev.Tick, ev.Side, ev.Kind)
		case messages.RespawnEvent:
			log.Printf("[respawn] tick %d: side %d back with %.0f hp", ev.Tick, ev.Side, ev.Health)
		case messages.SecondWindEvent:
			log.Printf("[titan] tick %d: side %d second wind (+%.0f hp)", ev.Tick, ev.Side, ev.Healed)
		case messages.SiegeEvent:
			log.Printf("[siege] tick %d: side %d beam %s", ev.Tick, ev.Side, ev.Phase)
		case messages.MatchOverEvent:
			log.Printf("[match] tick %d: winner %s", ev.Tick, ev.Winner)
		}
	}
}

func report(s *sim.Simulation) {
	snap := s.Snapshot()
	seconds := float64(snap.Tick) / float64(cfg.Match.TickRate)
	log.Printf("Result: %s after %d ticks (%.1fs)", snap.Winner, snap.Tick, seconds)
	for _, p := range snap.Players {
		log.Printf("  side %d %s: %.0f/%.0f hp, %d deaths", p.Side, p.Class, p.Health, p.MaxHealth, p.Deaths)
	}
	for _, t := range snap.Titans {
		log.Printf("  side %d titan: %s, %.0f/%.0f hp", t.Side, t.State, t.Health, t.MaxHealth)
	}
	for _, o := range snap.Orbs {
		log.Printf("  side %d orb: %.0f/%.0f hp, %.0f armor", o.Side, o.Health, o.MaxHealth, o.Armor)
	}
}
