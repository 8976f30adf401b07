package game

import (
	"testing"

	"github.com/pxdal/buckshot/internal/chamber"
	"github.com/pxdal/buckshot/internal/config"
	"github.com/pxdal/buckshot/internal/item"
	"github.com/pxdal/buckshot/internal/randutil"
)

// testRules draws nothing at creation except the two-shell shuffle: fixed
// health, fixed chamber size, no items.
func testRules() config.Rules {
	r := config.DefaultRules()
	r.HealthMin, r.HealthMax = 3, 3
	r.ShellsMin, r.ShellsMax = 2, 2
	r.ItemsMin, r.ItemsMax = 0, 0
	return r
}

func newTestRun(t *testing.T, rules config.Rules, opts ...RunOption) *Run {
	t.Helper()
	opts = append([]RunOption{WithID("test-run")}, opts...)
	return NewRun(randutil.New(42), rules, opts...)
}

// newScriptedRun returns a run whose RNG can be scripted after creation.
func newScriptedRun(t *testing.T, rules config.Rules, opts ...RunOption) (*Run, *randutil.Scripted) {
	t.Helper()
	rng := randutil.NewScripted(randutil.New(1))
	opts = append([]RunOption{WithID("test-run")}, opts...)
	return NewRun(rng, rules, opts...), rng
}

// load replaces the chamber and resets both known vectors.
func load(r *Run, shells ...chamber.Shell) {
	r.chamber = chamber.FromShells(shells...)
	live, blank := r.ShellsLeft()
	for _, p := range r.participants {
		p.resetKnowledge(live, blank)
	}
}

func give(r *Run, side Side, kinds ...item.Kind) {
	r.participants[side].giveItems(kinds)
}

const (
	B = chamber.Blank
	L = chamber.Live
)

// eventRecorder captures published events in order
type eventRecorder struct {
	events []GameEvent
}

func (e *eventRecorder) OnEvent(event GameEvent) {
	e.events = append(e.events, event)
}

func (e *eventRecorder) types() []EventType {
	out := make([]EventType, len(e.events))
	for i, ev := range e.events {
		out[i] = ev.EventType()
	}
	return out
}

func (e *eventRecorder) count(t EventType) int {
	n := 0
	for _, ev := range e.events {
		if ev.EventType() == t {
			n++
		}
	}
	return n
}

// ScriptedAgent plays a fixed list of actions, then fires at the opponent.
type ScriptedAgent struct {
	actions  []Action
	index    int
	rejected []error
}

func NewScriptedAgent(actions ...Action) *ScriptedAgent {
	return &ScriptedAgent{actions: actions}
}

func (s *ScriptedAgent) MakeDecision(view View, validActions []Action) Action {
	if s.index >= len(s.actions) {
		return FireAt(Opponent)
	}
	a := s.actions[s.index]
	s.index++
	return a
}

func (s *ScriptedAgent) Rejected(action Action, err error) {
	s.rejected = append(s.rejected, err)
}

// randomAgent picks uniformly among valid actions.
type randomAgent struct {
	rng randutil.Source
}

func (a *randomAgent) MakeDecision(view View, validActions []Action) Action {
	return validActions[a.rng.IntN(len(validActions))]
}
