package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pxdal/buckshot/internal/bot"
	"github.com/pxdal/buckshot/internal/simulator"
)

type SimulateCmd struct {
	Runs      int           `short:"n" help:"Number of runs (overrides simulation.runs)"`
	Player    string        `short:"p" help:"Player policy: rand, aggro, heuristic, dealer (overrides simulation.player)"`
	Seed      int64         `help:"Base seed (overrides simulation.seed)"`
	Random    bool          `help:"Use a time-based base seed"`
	Workers   int           `short:"w" help:"Concurrent runs (overrides simulation.workers)"`
	MaxRounds int           `help:"Abandon a run after this many rounds (overrides simulation.max_rounds)"`
	Timeout   time.Duration `help:"Per-run timeout (overrides simulation.timeout)"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	logger := g.logger(cfg.Simulation.LogLevel)

	sim := &cfg.Simulation
	if c.Runs > 0 {
		sim.Runs = c.Runs
	}
	if c.Player != "" {
		sim.Player = c.Player
	}
	if c.Seed != 0 {
		sim.Seed = c.Seed
	}
	if c.Random {
		sim.Seed = time.Now().UnixNano()
	}
	if c.Workers > 0 {
		sim.Workers = c.Workers
	}
	if c.MaxRounds > 0 {
		sim.MaxRounds = c.MaxRounds
	}
	if c.Timeout > 0 {
		sim.Timeout = c.Timeout
	}
	if !bot.Valid(sim.Player) {
		return fmt.Errorf("unknown player %q (want one of %s)", sim.Player, strings.Join(bot.Names, ", "))
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	logger.Info("Starting simulation",
		"runs", sim.Runs,
		"player", sim.Player,
		"seed", sim.Seed,
		"workers", sim.Workers)

	start := time.Now()
	stats, err := simulator.New(simulator.FromConfig(cfg, logger)).Run(ctx)
	if err != nil {
		return err
	}

	simulator.PrintSummary(os.Stdout, stats, sim.Player)
	fmt.Printf("Seed: %d, elapsed %s\n", sim.Seed, time.Since(start).Round(time.Millisecond))
	return nil
}
