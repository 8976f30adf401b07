// Package game implements the rules of a two-sided shotgun duel between a
// player and a dealer.
//
// The main type is Run, which owns one playthrough from the first load until
// the player dies: the chamber, both participants' health and inventories,
// the turn flags and the round/match counters.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	r := game.NewRun(rng, config.DefaultRules())
//	res, err := r.Fire(game.Player, game.Opponent)
//	res, err = r.UseItem(game.Dealer, item.Magnifier, item.None)
//
// # Deterministic Testing
//
// Every random draw goes through the randutil.Source given to NewRun, so a
// fixed seed reproduces a run exactly and Replay can verify a recorded
// history. randutil.Scripted lets tests dictate individual draws.
//
// # Architecture
//
//   - Run: turn state, Fire and UseItem, set and round lifecycle
//   - Participant: health, inventory, bugged draw counters, known shells
//   - Engine: drives a Run by asking an Agent per side for decisions
//   - EventBus: publishes events after each action has fully resolved
package game
