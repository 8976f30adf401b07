package config

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Encode renders cfg as HCL that Parse reads back to the same values. Every
// attribute is written, so the output doubles as a fully spelled-out
// starting point for a config file.
func Encode(cfg *Config) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	r := cfg.Rules
	rules := root.AppendNewBlock("rules", nil).Body()
	setInt := func(b *hclwrite.Body, name string, v int) {
		b.SetAttributeValue(name, cty.NumberIntVal(int64(v)))
	}
	setInt(rules, "health_min", r.HealthMin)
	setInt(rules, "health_max", r.HealthMax)
	setInt(rules, "shells_min", r.ShellsMin)
	setInt(rules, "shells_max", r.ShellsMax)
	setInt(rules, "items_min", r.ItemsMin)
	setInt(rules, "items_max", r.ItemsMax)
	setInt(rules, "item_cap", r.ItemCap)
	setInt(rules, "rounds_per_match", r.RoundsPerMatch)
	setInt(rules, "live_damage", r.LiveDamage)
	setInt(rules, "sawed_damage", r.SawedDamage)

	limits := make(map[string]cty.Value, len(r.ItemLimits))
	for kind, n := range r.ItemLimits {
		limits[kind.String()] = cty.NumberIntVal(int64(n))
	}
	if len(limits) > 0 {
		rules.SetAttributeValue("item_limits", cty.ObjectVal(limits))
	}

	root.AppendNewline()

	s := cfg.Simulation
	sim := root.AppendNewBlock("simulation", nil).Body()
	setInt(sim, "runs", s.Runs)
	sim.SetAttributeValue("seed", cty.NumberIntVal(s.Seed))
	setInt(sim, "workers", s.Workers)
	setInt(sim, "max_rounds", s.MaxRounds)
	sim.SetAttributeValue("timeout", cty.StringVal(s.Timeout.String()))
	sim.SetAttributeValue("player", cty.StringVal(s.Player))
	sim.SetAttributeValue("log_level", cty.StringVal(s.LogLevel))

	return f.Bytes()
}
