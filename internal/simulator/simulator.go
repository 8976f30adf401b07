package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/pxdal/buckshot/internal/bot"
	"github.com/pxdal/buckshot/internal/config"
	"github.com/pxdal/buckshot/internal/game"
	"github.com/pxdal/buckshot/internal/randutil"
	"github.com/pxdal/buckshot/internal/runid"
	"github.com/pxdal/buckshot/internal/statistics"
)

// Seed offsets so the player's and dealer's policies never share a stream
// with the run itself.
const (
	playerSeedSalt = 0x5ca1ab1e
	dealerSeedSalt = 0x0dea1e12
)

// ErrTimeout is returned when a single run exceeds Config.Timeout.
var ErrTimeout = errors.New("run timed out")

// PlayerFactory builds the player's agent for one run.
type PlayerFactory func(rng randutil.Source, logger *log.Logger) (game.Agent, error)

// Config holds configuration for running simulations
type Config struct {
	Runs      int
	Seed      int64
	Workers   int
	MaxRounds int
	Timeout   time.Duration
	Player    string        // bot name, see bot.Names
	NewPlayer PlayerFactory // overrides Player when set
	Rules     config.Rules
	Logger    *log.Logger
	Clock     quartz.Clock
}

// FromConfig builds a simulator Config from the loaded file.
func FromConfig(cfg *config.Config, logger *log.Logger) Config {
	return Config{
		Runs:      cfg.Simulation.Runs,
		Seed:      cfg.Simulation.Seed,
		Workers:   cfg.Simulation.Workers,
		MaxRounds: cfg.Simulation.MaxRounds,
		Timeout:   cfg.Simulation.Timeout,
		Player:    cfg.Simulation.Player,
		Rules:     cfg.Rules,
		Logger:    logger,
	}
}

// Simulator plays many independent runs and aggregates the results.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.NewPlayer == nil {
		name := config.Player
		config.NewPlayer = func(rng randutil.Source, logger *log.Logger) (game.Agent, error) {
			return bot.New(name, rng, logger)
		}
	}
	return &Simulator{config: config}
}

// Run executes the simulation. Run i uses seed Seed+i, so results do not
// depend on the number of workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([]statistics.RunResult, s.config.Runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Runs {
		seed := s.config.Seed + int64(i)
		g.Go(func() error {
			res, err := s.playRunWithTimeout(ctx, seed)
			if err != nil {
				return fmt.Errorf("run %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete",
		"runs", stats.Runs,
		"mean_rounds", stats.Mean(),
		"deaths", stats.Deaths)
	return stats, nil
}

// playRunWithTimeout runs a single playthrough with timeout protection
func (s *Simulator) playRunWithTimeout(ctx context.Context, seed int64) (statistics.RunResult, error) {
	if s.config.Timeout <= 0 {
		return s.playRun(ctx, seed)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var timedOut atomic.Bool
	timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
		timedOut.Store(true)
		cancel()
	})
	defer timer.Stop()

	res, err := s.playRun(ctx, seed)
	if err != nil && timedOut.Load() {
		return res, fmt.Errorf("%w after %v (seed: %d)", ErrTimeout, s.config.Timeout, seed)
	}
	return res, err
}

// playRun simulates one playthrough
func (s *Simulator) playRun(ctx context.Context, seed int64) (statistics.RunResult, error) {
	logger := s.config.Logger.With("seed", seed)

	player, err := s.config.NewPlayer(randutil.New(seed^playerSeedSalt), logger)
	if err != nil {
		return statistics.RunResult{}, err
	}
	dealer := bot.NewDealerBot(randutil.New(seed^dealerSeedSalt), logger)

	ids := runid.NewGenerator(s.config.Clock, randutil.New(seed))
	run := game.NewRun(randutil.New(seed), s.config.Rules,
		game.WithLogger(logger),
		game.WithClock(s.config.Clock),
		game.WithIDGenerator(ids))

	engine := game.NewEngine(run, player, dealer, logger, game.WithMaxRounds(s.config.MaxRounds))
	res, err := engine.Play(ctx)
	if err != nil {
		return statistics.RunResult{}, err
	}

	return toStatistics(res, seed), nil
}

func toStatistics(res *game.RunResult, seed int64) statistics.RunResult {
	t := res.Tally
	return statistics.RunResult{
		RoundsWon:  res.RoundsWon,
		MatchesWon: res.MatchesWon,
		Seed:       seed,
		Died:       res.Died,
		Abandoned:  res.Abandoned,
		Shots:      t.Shots[game.Player],
		SelfShots:  t.SelfShots[game.Player],
		LiveHits:   t.LiveShots[game.Player],
		ItemsUsed:  t.TotalItemsUsed(game.Player),
		Sets:       t.Sets + 1, // the opening load precedes the tally
		Turns:      res.Turns,
	}
}

// RunSimulation is a convenience function for running a simulation with basic parameters
func RunSimulation(ctx context.Context, runs int, player string, seed int64, rules config.Rules, logger *log.Logger) (*statistics.Statistics, error) {
	sim := New(Config{
		Runs:      runs,
		Seed:      seed,
		Workers:   1,
		MaxRounds: config.DefaultSimulation().MaxRounds,
		Timeout:   config.DefaultSimulation().Timeout,
		Player:    player,
		Rules:     rules,
		Logger:    logger,
	})
	return sim.Run(ctx)
}

// PrintSummary prints a summary of simulation results
func PrintSummary(w io.Writer, stats *statistics.Statistics, player string) {
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== FINAL RESULTS for %s-bot ===\n", player)
	fmt.Fprintf(w, "Runs played: %d (%d died, %d hit the round cap)\n", stats.Runs, stats.Deaths, stats.Abandoned)

	fmt.Fprintf(w, "\n=== ROUNDS WON ===\n")
	fmt.Fprintf(w, "Mean: %.3f rounds/run\n", stats.Mean())
	fmt.Fprintf(w, "Median: %.1f\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.3f\n", stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.3f, %.3f]\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	fmt.Fprintf(w, "Best run: %d rounds (seed %d)\n", stats.MaxRounds, stats.MaxRoundsSeed)
	fmt.Fprintf(w, "Matches won: %d\n", stats.MatchesWon)

	fmt.Fprintf(w, "\n=== PLAY ===\n")
	fmt.Fprintf(w, "Shots: %d (%.1f%% live, %d at self)\n", stats.Shots, stats.HitRate()*100, stats.SelfShots)
	fmt.Fprintf(w, "Items used: %d (%.2f per run)\n", stats.ItemsUsed, float64(stats.ItemsUsed)/float64(max(stats.Runs, 1)))
	fmt.Fprintf(w, "Loads: %d, turns: %d\n", stats.Sets, stats.Turns)

	fmt.Fprintf(w, "\n=== SURVIVAL ===\n")
	for _, n := range []int{1, 3, 6, 9} {
		fmt.Fprintf(w, "Won >= %d rounds: %.1f%%\n", n, stats.SurvivalRate(n)*100)
	}
}
