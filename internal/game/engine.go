package game

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// Engine drives a Run by asking each side's Agent for decisions until the
// player dies, the context is cancelled, or a round cap is reached. It can be
// shared between interactive play and simulation.
type Engine struct {
	run         *Run
	agents      [2]Agent
	logger      *log.Logger
	tally       *Tally
	maxRounds   int
	maxAttempts int
	turns       int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMaxRounds abandons the run once the player has won n rounds. Zero
// means no cap.
func WithMaxRounds(n int) EngineOption {
	return func(e *Engine) { e.maxRounds = n }
}

// WithMaxAttempts sets how many rejected decisions an agent gets per action
// before the engine substitutes the first valid action. Default 3.
func WithMaxAttempts(n int) EngineOption {
	return func(e *Engine) { e.maxAttempts = max(n, 1) }
}

// RunResult summarises a finished or abandoned run.
type RunResult struct {
	RunID      string
	RoundsWon  int
	MatchesWon int
	Died       bool
	Abandoned  bool
	Turns      int
	Tally      *Tally
}

// TurnResult records one turn: every action the side took and how the last
// one resolved.
type TurnResult struct {
	Side    Side
	Actions []Action
	Result  Result
}

// NewEngine creates an engine for run. The tally is subscribed to the run's
// event bus immediately.
func NewEngine(run *Run, player, dealer Agent, logger *log.Logger, opts ...EngineOption) *Engine {
	e := &Engine{
		run:         run,
		agents:      [2]Agent{player, dealer},
		logger:      logger.WithPrefix("engine"),
		tally:       NewTally(),
		maxAttempts: 3,
	}
	for _, opt := range opts {
		opt(e)
	}
	run.EventBus().Subscribe(e.tally)
	return e
}

// Run returns the run being driven
func (e *Engine) Run() *Run { return e.run }

// Tally returns counts gathered so far
func (e *Engine) Tally() *Tally { return e.tally }

// Play runs turns until the run ends or is abandoned.
func (e *Engine) Play(ctx context.Context) (*RunResult, error) {
	e.logger.Debug("Starting run", "run", e.run.ID())

	abandoned := false
	for !e.run.IsOver() {
		if e.maxRounds > 0 && e.run.RoundsWon() >= e.maxRounds {
			abandoned = true
			e.logger.Debug("Round cap reached", "rounds", e.run.RoundsWon())
			break
		}
		if _, err := e.PlayTurn(ctx); err != nil {
			return e.result(true), err
		}
	}

	res := e.result(abandoned)
	e.logger.Debug("Run complete",
		"run", res.RunID,
		"rounds_won", res.RoundsWon,
		"matches_won", res.MatchesWon,
		"died", res.Died)
	return res, nil
}

// PlayTurn lets the side holding the gun act until it fires, its turn ends
// early, or the gun changes hands.
func (e *Engine) PlayTurn(ctx context.Context) (*TurnResult, error) {
	side := e.run.Turn()
	agent := e.agents[side]
	tr := &TurnResult{Side: side}

	e.turns++
	for !e.run.IsOver() {
		if err := ctx.Err(); err != nil {
			return tr, err
		}

		valid := e.run.ValidActions(side)
		if len(valid) == 0 {
			return tr, fmt.Errorf("no valid actions for %s", side)
		}

		action, res, err := e.decide(ctx, side, agent, valid)
		if err != nil {
			return tr, err
		}
		tr.Actions = append(tr.Actions, action)
		tr.Result = res

		if res.EndsTurn() || e.run.Turn() != side {
			break
		}
	}
	return tr, nil
}

func (e *Engine) decide(ctx context.Context, side Side, agent Agent, valid []Action) (Action, Result, error) {
	for attempt := 0; attempt < e.maxAttempts; attempt++ {
		action := agent.MakeDecision(e.run.View(side), valid)
		// decisions that arrive after cancellation are dropped
		if err := ctx.Err(); err != nil {
			return action, ResultInvalidAction, err
		}
		res, err := e.run.Apply(side, action)
		if err == nil {
			e.logger.Debug("Action",
				"side", side,
				"action", action,
				"result", res,
				"reasoning", action.Reasoning)
			return action, res, nil
		}
		if res == ResultGameOver {
			return action, res, err
		}

		e.logger.Warn("Rejected agent decision", "side", side, "action", action, "error", err)
		if ra, ok := agent.(RejectionAware); ok {
			ra.Rejected(action, err)
		}
	}

	fallback := valid[0]
	fallback.Reasoning = "fallback due to invalid decision"
	res, err := e.run.Apply(side, fallback)
	if err != nil {
		e.logger.Error("Fallback decision also failed", "side", side, "error", err)
		return fallback, res, fmt.Errorf("fallback %s for %s: %w", fallback, side, err)
	}
	return fallback, res, nil
}

func (e *Engine) result(abandoned bool) *RunResult {
	return &RunResult{
		RunID:      e.run.ID(),
		RoundsWon:  e.run.RoundsWon(),
		MatchesWon: e.run.MatchesWon(),
		Died:       e.run.IsOver(),
		Abandoned:  abandoned && !e.run.IsOver(),
		Turns:      e.turns,
		Tally:      e.tally,
	}
}
