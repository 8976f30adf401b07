package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/pxdal/buckshot/internal/chamber"
	"github.com/pxdal/buckshot/internal/config"
	"github.com/pxdal/buckshot/internal/item"
	"github.com/pxdal/buckshot/internal/randutil"
	"github.com/pxdal/buckshot/internal/runid"
)

// Run is one playthrough: from the first load until the player dies.
//
// Run owns the chamber, both participants and every turn flag. All mutation
// goes through Fire and UseItem; each call either fully applies or is
// rejected before anything changes. Events raised while an action resolves
// are published only once it has finished, so subscribers never observe a
// half-applied action. Run is not safe for concurrent use.
type Run struct {
	id     string
	rules  config.Rules
	rng    randutil.Source
	clock  quartz.Clock
	logger *log.Logger
	bus    EventBus

	chamber      *chamber.Chamber
	participants [2]*Participant

	turn       Side
	firstTurn  Side
	handcuffed Side
	sawedOff   bool

	round      int
	matchesWon int
	roundsWon  int
	sets       int

	lastFired    chamber.Shell
	hasFired     bool
	pendingSteal item.Kind
	over         bool

	pending []GameEvent
	history []Entry
}

// RunOption configures a Run during creation.
type RunOption func(*runConfig)

type runConfig struct {
	logger     *log.Logger
	bus        EventBus
	clock      quartz.Clock
	ids        *runid.Generator
	id         string
	names      [2]string
	firstTurn  Side
	subscriber []EventSubscriber
}

// WithLogger sets the run's logger. Default discards output.
func WithLogger(logger *log.Logger) RunOption {
	return func(c *runConfig) { c.logger = logger }
}

// WithEventBus publishes run events on bus instead of a private one.
func WithEventBus(bus EventBus) RunOption {
	return func(c *runConfig) { c.bus = bus }
}

// WithSubscriber subscribes s before the first set is loaded, so it sees
// the opening SetLoadedEvent.
func WithSubscriber(s EventSubscriber) RunOption {
	return func(c *runConfig) { c.subscriber = append(c.subscriber, s) }
}

// WithClock sets the clock used for event timestamps and the run ID.
func WithClock(clock quartz.Clock) RunOption {
	return func(c *runConfig) { c.clock = clock }
}

// WithIDGenerator draws the run ID from g.
func WithIDGenerator(g *runid.Generator) RunOption {
	return func(c *runConfig) { c.ids = g }
}

// WithID fixes the run ID.
func WithID(id string) RunOption {
	return func(c *runConfig) { c.id = id }
}

// WithNames sets display names for both participants.
func WithNames(player, dealer string) RunOption {
	return func(c *runConfig) { c.names = [2]string{player, dealer} }
}

// WithFirstTurn sets who holds the gun after every reload. Default Player.
func WithFirstTurn(side Side) RunOption {
	return func(c *runConfig) { c.firstTurn = side }
}

// NewRun starts a playthrough: both sides get the same random health and
// the first set is loaded. The RNG is the only source of randomness the run
// will ever use; it is required.
//
//	rng := randutil.New(42)
//	r := game.NewRun(rng, config.DefaultRules(), game.WithLogger(logger))
func NewRun(rng randutil.Source, rules config.Rules, opts ...RunOption) *Run {
	if rng == nil {
		panic("rng is required for run creation")
	}

	cfg := &runConfig{
		names:     [2]string{"Player", "Dealer"},
		firstTurn: Player,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.firstTurn.valid() {
		panic("first turn must be Player or Dealer")
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.logger == nil {
		cfg.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.bus == nil {
		cfg.bus = NewEventBus()
	}
	if cfg.id == "" {
		if cfg.ids == nil {
			// the run's own RNG stays reserved for game draws
			cfg.ids = runid.NewGenerator(cfg.clock, nil)
		}
		cfg.id = cfg.ids.Generate()
	}
	for _, s := range cfg.subscriber {
		cfg.bus.Subscribe(s)
	}

	rules.ItemLimits = rules.ItemLimits.Clone()

	r := &Run{
		id:         cfg.id,
		rules:      rules,
		rng:        rng,
		clock:      cfg.clock,
		logger:     cfg.logger.WithPrefix("run").With("run", cfg.id),
		bus:        cfg.bus,
		chamber:    chamber.FromShells(),
		firstTurn:  cfg.firstTurn,
		handcuffed: Nobody,
		round:      1,
	}
	r.participants[Player] = newParticipant(cfg.names[Player], rules.ItemCap)
	r.participants[Dealer] = newParticipant(cfg.names[Dealer], rules.ItemCap)

	r.rollHealth()
	r.onSetEnd()
	r.flush()

	return r
}

// ID returns the run identifier
func (r *Run) ID() string { return r.id }

// Rules returns the rules this run was created with
func (r *Run) Rules() config.Rules { return r.rules }

// EventBus returns the bus events are published on
func (r *Run) EventBus() EventBus { return r.bus }

// Participant returns the record for side.
func (r *Run) Participant(side Side) *Participant { return r.participants[side] }

// Health returns the current health of side.
func (r *Run) Health(side Side) int { return r.participants[side].health }

// Items returns side's item counts.
func (r *Run) Items(side Side) map[item.Kind]int { return r.participants[side].Items() }

// Known returns side's known-shell vector. Views only ever carry their own
// side's vector.
func (r *Run) Known(side Side) []Knowledge { return r.participants[side].Known() }

// Turn returns who holds the gun.
func (r *Run) Turn() Side { return r.turn }

// Handcuffed returns the handcuffed side, or Nobody.
func (r *Run) Handcuffed() Side { return r.handcuffed }

// SawedOff reports whether the next live shot deals sawed-off damage.
func (r *Run) SawedOff() bool { return r.sawedOff }

// Round returns the 1-based round index within the current match.
func (r *Run) Round() int { return r.round }

// MatchesWon returns completed matches.
func (r *Run) MatchesWon() int { return r.matchesWon }

// RoundsWon returns every round the player has won across all matches.
func (r *Run) RoundsWon() int { return r.roundsWon }

// Sets returns how many times the chamber has been loaded.
func (r *Run) Sets() int { return r.sets }

// IsOver reports whether the player has died.
func (r *Run) IsOver() bool { return r.over }

// LastFired returns the most recently fired shell, if any shot was fired.
func (r *Run) LastFired() (chamber.Shell, bool) { return r.lastFired, r.hasFired }

// ShellsLeft returns how many live and blank shells remain.
func (r *Run) ShellsLeft() (live, blank int) {
	return r.chamber.Count(chamber.Live), r.chamber.Count(chamber.Blank)
}

// History returns every accepted action in order.
func (r *Run) History() []Entry {
	out := make([]Entry, len(r.history))
	copy(out, r.history)
	return out
}

func (r *Run) now() time.Time {
	return r.clock.Now()
}

func (r *Run) emit(e GameEvent) {
	r.pending = append(r.pending, e)
}

func (r *Run) flush() {
	events := r.pending
	r.pending = nil
	for _, e := range events {
		r.bus.Publish(e)
	}
}

func (r *Run) rollHealth() int {
	h := randutil.IntRange(r.rng, r.rules.HealthMin, r.rules.HealthMax)
	r.participants[Player].setHealth(h)
	r.participants[Dealer].setHealth(h)
	return h
}
