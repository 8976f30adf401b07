// Package config loads the duel rules and simulation settings from HCL.
//
// A missing file yields DefaultConfig; attributes left out of the file keep
// their default values. The resulting Rules value is treated as immutable and
// threaded through the engine.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/pxdal/buckshot/internal/item"
)

// Rules holds every tunable game constant.
type Rules struct {
	HealthMin      int
	HealthMax      int
	ShellsMin      int
	ShellsMax      int
	ItemsMin       int // items granted per participant per set, lower bound
	ItemsMax       int
	ItemCap        int
	RoundsPerMatch int
	LiveDamage     int
	SawedDamage    int
	ItemLimits     item.Limits // default per-allotment draw limits
}

// Simulation configures batch playthroughs.
type Simulation struct {
	Runs      int
	Seed      int64
	Workers   int
	MaxRounds int // abandon a playthrough after this many rounds; 0 = unbounded
	Timeout   time.Duration
	Player    string
	LogLevel  string
}

// Config is the complete file.
type Config struct {
	Rules      Rules
	Simulation Simulation
}

// DefaultRules returns the stock rules.
func DefaultRules() Rules {
	return Rules{
		HealthMin:      2,
		HealthMax:      4,
		ShellsMin:      2,
		ShellsMax:      8,
		ItemsMin:       1,
		ItemsMax:       4,
		ItemCap:        item.DefaultCap,
		RoundsPerMatch: 3,
		LiveDamage:     1,
		SawedDamage:    2,
		ItemLimits:     item.DefaultLimits(),
	}
}

// DefaultSimulation returns the stock simulation settings.
func DefaultSimulation() Simulation {
	return Simulation{
		Runs:      1000,
		Workers:   4,
		MaxRounds: 30,
		Timeout:   5 * time.Second,
		Player:    "rand",
		LogLevel:  "warn",
	}
}

// DefaultConfig returns default rules and simulation settings.
func DefaultConfig() *Config {
	return &Config{
		Rules:      DefaultRules(),
		Simulation: DefaultSimulation(),
	}
}

type fileConfig struct {
	Rules      *rulesBlock      `hcl:"rules,block"`
	Simulation *simulationBlock `hcl:"simulation,block"`
}

type rulesBlock struct {
	HealthMin      *int           `hcl:"health_min,optional"`
	HealthMax      *int           `hcl:"health_max,optional"`
	ShellsMin      *int           `hcl:"shells_min,optional"`
	ShellsMax      *int           `hcl:"shells_max,optional"`
	ItemsMin       *int           `hcl:"items_min,optional"`
	ItemsMax       *int           `hcl:"items_max,optional"`
	ItemCap        *int           `hcl:"item_cap,optional"`
	RoundsPerMatch *int           `hcl:"rounds_per_match,optional"`
	LiveDamage     *int           `hcl:"live_damage,optional"`
	SawedDamage    *int           `hcl:"sawed_damage,optional"`
	ItemLimits     map[string]int `hcl:"item_limits,optional"`
}

type simulationBlock struct {
	Runs      *int    `hcl:"runs,optional"`
	Seed      *int64  `hcl:"seed,optional"`
	Workers   *int    `hcl:"workers,optional"`
	MaxRounds *int    `hcl:"max_rounds,optional"`
	Timeout   *string `hcl:"timeout,optional"`
	Player    *string `hcl:"player,optional"`
	LogLevel  *string `hcl:"log_level,optional"`
}

// Load reads configuration from an HCL file. A missing file is not an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	return decode(file.Body)
}

// Parse decodes configuration from in-memory HCL source.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var fc fileConfig
	if diags := gohcl.DecodeBody(body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := DefaultConfig()
	if fc.Rules != nil {
		if err := fc.Rules.apply(&cfg.Rules); err != nil {
			return nil, err
		}
	}
	if fc.Simulation != nil {
		if err := fc.Simulation.apply(&cfg.Simulation); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func (b *rulesBlock) apply(r *Rules) error {
	setInt(&r.HealthMin, b.HealthMin)
	setInt(&r.HealthMax, b.HealthMax)
	setInt(&r.ShellsMin, b.ShellsMin)
	setInt(&r.ShellsMax, b.ShellsMax)
	setInt(&r.ItemsMin, b.ItemsMin)
	setInt(&r.ItemsMax, b.ItemsMax)
	setInt(&r.ItemCap, b.ItemCap)
	setInt(&r.RoundsPerMatch, b.RoundsPerMatch)
	setInt(&r.LiveDamage, b.LiveDamage)
	setInt(&r.SawedDamage, b.SawedDamage)

	// listed limits override the defaults one kind at a time
	for name, limit := range b.ItemLimits {
		kind, err := item.ParseKind(name)
		if err != nil {
			return fmt.Errorf("item_limits: %w", err)
		}
		r.ItemLimits[kind] = limit
	}
	return nil
}

func (b *simulationBlock) apply(s *Simulation) error {
	setInt(&s.Runs, b.Runs)
	setInt(&s.Workers, b.Workers)
	setInt(&s.MaxRounds, b.MaxRounds)
	if b.Seed != nil {
		s.Seed = *b.Seed
	}
	if b.Timeout != nil {
		d, err := time.ParseDuration(*b.Timeout)
		if err != nil {
			return fmt.Errorf("simulation timeout: %w", err)
		}
		s.Timeout = d
	}
	if b.Player != nil {
		s.Player = *b.Player
	}
	if b.LogLevel != nil {
		s.LogLevel = *b.LogLevel
	}
	return nil
}

// Validate validates the complete configuration
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	return c.Simulation.Validate()
}

// Validate checks that every range is well formed.
func (r Rules) Validate() error {
	if r.HealthMin < 1 {
		return fmt.Errorf("health_min must be at least 1, got %d", r.HealthMin)
	}
	if r.HealthMax < r.HealthMin {
		return fmt.Errorf("health_max (%d) must not be below health_min (%d)", r.HealthMax, r.HealthMin)
	}
	if r.ShellsMin < 1 {
		return fmt.Errorf("shells_min must be at least 1, got %d", r.ShellsMin)
	}
	if r.ShellsMax < r.ShellsMin {
		return fmt.Errorf("shells_max (%d) must not be below shells_min (%d)", r.ShellsMax, r.ShellsMin)
	}
	if r.ItemsMin < 0 || r.ItemsMax < r.ItemsMin {
		return fmt.Errorf("invalid items per set range [%d,%d]", r.ItemsMin, r.ItemsMax)
	}
	if r.ItemCap < 0 {
		return fmt.Errorf("item_cap must not be negative, got %d", r.ItemCap)
	}
	if r.RoundsPerMatch < 1 {
		return fmt.Errorf("rounds_per_match must be at least 1, got %d", r.RoundsPerMatch)
	}
	if r.LiveDamage < 0 || r.SawedDamage < 0 {
		return fmt.Errorf("damage values must not be negative")
	}
	for kind := range r.ItemLimits {
		if !kind.Valid() {
			return fmt.Errorf("item_limits: invalid item %s", kind)
		}
	}
	return nil
}

// Validate checks the simulation settings.
func (s Simulation) Validate() error {
	if s.Runs < 0 {
		return fmt.Errorf("simulation runs must not be negative, got %d", s.Runs)
	}
	if s.Workers < 1 {
		return fmt.Errorf("simulation workers must be at least 1, got %d", s.Workers)
	}
	if s.MaxRounds < 0 {
		return fmt.Errorf("simulation max_rounds must not be negative, got %d", s.MaxRounds)
	}
	return nil
}
