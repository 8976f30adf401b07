package main

import (
	"context"
	"errors"
	"os"

	"github.com/pxdal/buckshot/internal/bot"
	"github.com/pxdal/buckshot/internal/console"
	"github.com/pxdal/buckshot/internal/game"
	"github.com/pxdal/buckshot/internal/randutil"
)

// dealerSeedSalt keeps the dealer's coin flips off the run's stream.
const dealerSeedSalt = 0x0dea1e12

type PlayCmd struct {
	Seed        int64  `help:"RNG seed (0 for time-seeded)"`
	Name        string `default:"You" help:"Name shown for the player"`
	DealerFirst bool   `help:"Dealer holds the gun after every reload"`
	MaxRounds   int    `help:"Walk away after winning this many rounds (0 = never)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	// interactive play stays quiet unless asked
	logger := g.logger("error")

	// Ctrl-C keeps its default behaviour here; the console may be blocked
	// reading stdin. quit and EOF cancel through ctx.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rng, seed := randutil.NewTimeSeeded()
	if c.Seed != 0 {
		rng, seed = randutil.New(c.Seed), c.Seed
	}

	con := console.New(os.Stdin, os.Stdout,
		console.WithQuit(cancel),
		console.WithLogger(logger),
		console.WithNames(c.Name, "Dealer"))

	opts := []game.RunOption{
		game.WithLogger(logger),
		game.WithSubscriber(con),
		game.WithNames(c.Name, "Dealer"),
	}
	if c.DealerFirst {
		opts = append(opts, game.WithFirstTurn(game.Dealer))
	}
	run := game.NewRun(rng, cfg.Rules, opts...)
	logger.Info("Run started", "run", run.ID(), "seed", seed)

	human := game.NewHumanAgent(con.Prompt, con.Rejected)
	dealer := bot.NewDealerBot(randutil.New(seed^dealerSeedSalt), logger)

	engine := game.NewEngine(run, human, dealer, logger, game.WithMaxRounds(c.MaxRounds))
	res, err := engine.Play(ctx)
	con.Summary(res)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
