package simulator

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pxdal/buckshot/internal/config"
	"github.com/pxdal/buckshot/internal/game"
	"github.com/pxdal/buckshot/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func testConfig(t *testing.T) Config {
	return Config{
		Runs:      12,
		Seed:      12345,
		Workers:   1,
		MaxRounds: 8,
		Timeout:   5 * time.Second,
		Player:    "rand",
		Rules:     config.DefaultRules(),
		Logger:    quietLogger(),
		Clock:     quartz.NewMock(t),
	}
}

func TestNew_Defaults(t *testing.T) {
	sim := New(Config{Runs: 3, Player: "aggro"})
	require.NotNil(t, sim)
	assert.Equal(t, 1, sim.config.Workers)
	assert.NotNil(t, sim.config.Logger)
	assert.NotNil(t, sim.config.Clock)
	assert.NotNil(t, sim.config.NewPlayer)
}

func TestSimulator_Run(t *testing.T) {
	sim := New(testConfig(t))
	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, stats.Runs)
	assert.Equal(t, stats.Runs, stats.Deaths+stats.Abandoned)
	assert.LessOrEqual(t, stats.MaxRounds, 8)
	assert.Positive(t, stats.Shots)
	assert.GreaterOrEqual(t, stats.Sets, stats.Runs)
}

func TestSimulator_WorkersDoNotChangeResults(t *testing.T) {
	serial := testConfig(t)
	parallel := testConfig(t)
	parallel.Workers = 4

	a, err := New(serial).Run(context.Background())
	require.NoError(t, err)
	b, err := New(parallel).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.Values, b.Values)
	assert.Equal(t, a.Shots, b.Shots)
	assert.Equal(t, a.ItemsUsed, b.ItemsUsed)
	assert.Equal(t, a.MaxRoundsSeed, b.MaxRoundsSeed)
}

func TestSimulator_UnknownPlayer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Player = "maniac"

	_, err := New(cfg).Run(context.Background())
	assert.ErrorContains(t, err, "unknown bot")
}

// blockingAgent stalls on its first decision until released.
type blockingAgent struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (a *blockingAgent) MakeDecision(view game.View, validActions []game.Action) game.Action {
	a.once.Do(func() {
		close(a.started)
		<-a.release
	})
	return game.FireAt(game.Opponent)
}

func TestSimulator_Timeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mClock := quartz.NewMock(t)
	agent := &blockingAgent{started: make(chan struct{}), release: make(chan struct{})}

	cfg := testConfig(t)
	cfg.Runs = 1
	cfg.Timeout = time.Second
	cfg.Clock = mClock
	cfg.NewPlayer = func(randutil.Source, *log.Logger) (game.Agent, error) { return agent, nil }

	errCh := make(chan error, 1)
	go func() {
		_, err := New(cfg).Run(ctx)
		errCh <- err
	}()

	<-agent.started
	mClock.Advance(time.Second).MustWait(ctx)
	close(agent.release)

	err := <-errCh
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Simulation.Runs = 7
	cfg.Simulation.Player = "heuristic"

	sc := FromConfig(cfg, quietLogger())
	assert.Equal(t, 7, sc.Runs)
	assert.Equal(t, "heuristic", sc.Player)
	assert.Equal(t, cfg.Rules.ItemCap, sc.Rules.ItemCap)
}

func TestPrintSummary(t *testing.T) {
	stats, err := RunSimulation(context.Background(), 3, "heuristic", 99, config.DefaultRules(), quietLogger())
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintSummary(&buf, stats, "heuristic")
	out := buf.String()
	assert.Contains(t, out, "FINAL RESULTS for heuristic-bot")
	assert.Contains(t, out, "Runs played: 3")
	assert.Contains(t, out, "Won >= 1 rounds")
}
