package game

import (
	"fmt"

	"github.com/pxdal/buckshot/internal/chamber"
	"github.com/pxdal/buckshot/internal/item"
)

// ActionType distinguishes shooting from using an item
type ActionType int

const (
	ActionFire ActionType = iota
	ActionUseItem
)

// String returns the string representation of an action type
func (t ActionType) String() string {
	if t == ActionFire {
		return "fire"
	}
	return "use"
}

// Action is one move by the participant holding the gun.
type Action struct {
	Type      ActionType
	Target    Target    // ActionFire only
	Item      item.Kind // ActionUseItem only
	Steal     item.Kind // adrenaline only: what to take from the opponent
	Reasoning string    // free text from the deciding agent, not replayed
}

// FireAt returns a fire action.
func FireAt(target Target) Action {
	return Action{Type: ActionFire, Target: target}
}

// Use returns an item action.
func Use(kind item.Kind) Action {
	return Action{Type: ActionUseItem, Item: kind}
}

// StealWith returns an adrenaline action that takes kind from the opponent.
func StealWith(kind item.Kind) Action {
	return Action{Type: ActionUseItem, Item: item.Adrenaline, Steal: kind}
}

// String returns the string representation of an action
func (a Action) String() string {
	switch {
	case a.Type == ActionFire:
		return "fire " + a.Target.String()
	case a.Item == item.Adrenaline && a.Steal != item.None:
		return fmt.Sprintf("use adrenaline (steal %s)", a.Steal)
	default:
		return "use " + a.Item.String()
	}
}

// Same reports whether two actions are the same move, ignoring reasoning.
func (a Action) Same(b Action) bool {
	a.Reasoning, b.Reasoning = "", ""
	return a == b
}

// Entry is one accepted action in a run's history.
type Entry struct {
	Side   Side
	Action Action
	Result Result
	Shell  chamber.Shell // fired shell, for ActionFire
}

// Apply routes an action to Fire or UseItem.
func (r *Run) Apply(side Side, a Action) (Result, error) {
	switch a.Type {
	case ActionFire:
		if _, err := r.Fire(side, a.Target); err != nil {
			return resultFor(err), err
		}
		return ResultFired, nil
	case ActionUseItem:
		return r.UseItem(side, a.Item, a.Steal)
	default:
		return ResultInvalidAction, fmt.Errorf("%w: unknown action type %d", ErrInvalidAction, a.Type)
	}
}

// Fire shoots the front shell at target. Live shells deal LiveDamage, or
// SawedDamage while sawed off; blanks deal nothing. Sawed-off is cleared by
// every shot.
//
// The gun passes to the opponent unless the opponent is handcuffed, in which
// case the cuffs come off and the shooter goes again. A blank fired at
// oneself keeps the turn without touching the cuffs.
func (r *Run) Fire(who Side, target Target) (chamber.Shell, error) {
	if err := r.checkActor(who); err != nil {
		return chamber.Blank, err
	}
	if target != Self && target != Opponent {
		return chamber.Blank, fmt.Errorf("%w: unknown target %d", ErrInvalidAction, target)
	}

	shell, err := r.chamber.Pop()
	if err != nil {
		return chamber.Blank, fmt.Errorf("fire: %w", err)
	}
	for _, p := range r.participants {
		p.observe(shell)
	}

	damage := 0
	if shell == chamber.Live {
		damage = r.rules.LiveDamage
		if r.sawedOff {
			damage = r.rules.SawedDamage
		}
	}

	victim := who
	if target == Opponent {
		victim = who.Other()
	}
	r.participants[victim].takeDamage(damage)

	if target == Opponent || shell == chamber.Live {
		r.passTurn(who)
	}

	r.sawedOff = false
	r.lastFired = shell
	r.hasFired = true
	r.history = append(r.history, Entry{Side: who, Action: FireAt(target), Result: ResultFired, Shell: shell})

	r.logger.Debug("Shot fired",
		"shooter", who,
		"victim", victim,
		"shell", shell,
		"damage", damage,
		"health", r.participants[victim].health)
	r.emit(ShotFiredEvent{
		Shooter:     who,
		Victim:      victim,
		Shell:       shell,
		Damage:      damage,
		HealthAfter: r.participants[victim].health,
		timestamp:   r.now(),
	})

	if !r.settleDeath(victim) && r.chamber.IsEmpty() {
		r.onSetEnd()
	}

	r.flush()
	return shell, nil
}

// UseItem consumes kind from who's inventory and applies its effect. steal
// names the item to take when kind is adrenaline and is ignored otherwise.
//
// Rejections come back as ResultNoItem, ResultInvalidAction or
// ResultGameOver together with an error wrapping the matching sentinel;
// state is untouched.
// ResultEarlyTurnEnd means the turn is over without a shot, and the caller
// must not fire for this turn.
func (r *Run) UseItem(who Side, kind item.Kind, steal item.Kind) (Result, error) {
	if err := r.checkActor(who); err != nil {
		return resultFor(err), err
	}
	if err := r.validateUse(who, kind, steal); err != nil {
		return resultFor(err), err
	}

	if kind == item.Adrenaline {
		r.pendingSteal = steal
	} else {
		steal = item.None
	}
	out := r.useItem(who, kind)

	action := Action{Type: ActionUseItem, Item: kind, Steal: steal}
	r.history = append(r.history, Entry{Side: who, Action: action, Result: out.result})

	r.logger.Debug("Item used", "side", who, "item", kind, "stolen", out.stolen, "result", out.result)
	r.emit(ItemUsedEvent{
		Side:      who,
		Item:      kind,
		Stolen:    out.stolen,
		Result:    out.result,
		Ejected:   out.ejected,
		timestamp: r.now(),
	})

	r.flush()
	return out.result, nil
}

func (r *Run) checkActor(who Side) error {
	switch {
	case r.over:
		return ErrGameOver
	case !who.valid():
		return fmt.Errorf("%w: unknown side %d", ErrInvalidAction, who)
	case who != r.turn:
		return fmt.Errorf("%s: %w", who, ErrNotYourTurn)
	}
	return nil
}

// validateUse performs every check an item use can fail, including those of
// the item adrenaline would steal and immediately use.
func (r *Run) validateUse(who Side, kind, steal item.Kind) error {
	user, opp := r.participants[who], r.participants[who.Other()]

	if !kind.Valid() {
		return fmt.Errorf("%w: unknown item %s", ErrInvalidAction, kind)
	}
	if !user.Has(kind) {
		return fmt.Errorf("%s has no %s: %w", user.Name, kind, ErrNoItem)
	}
	if kind != item.Adrenaline {
		return r.validateEffect(who, kind)
	}

	switch {
	case steal == item.None:
		return fmt.Errorf("%w: adrenaline needs a steal target", ErrInvalidAction)
	case steal == item.Adrenaline:
		return fmt.Errorf("%w: adrenaline cannot steal adrenaline", ErrInvalidAction)
	case !steal.Valid():
		return fmt.Errorf("%w: unknown item %s", ErrInvalidAction, steal)
	}
	if !opp.Has(steal) {
		return fmt.Errorf("%s has no %s to steal: %w", opp.Name, steal, ErrNoItem)
	}
	return r.validateEffect(who, steal)
}

func (r *Run) validateEffect(who Side, kind item.Kind) error {
	if kind == item.Handcuffs && r.handcuffed == who.Other() {
		return fmt.Errorf("%w: %s is already handcuffed", ErrInvalidAction, who.Other())
	}
	return nil
}

func (r *Run) passTurn(holder Side) {
	opp := holder.Other()
	if r.handcuffed == opp {
		r.handcuffed = Nobody
		return
	}
	r.turn = opp
}

// ValidActions lists every action side could take right now without being
// rejected. It is empty when side does not hold the gun.
func (r *Run) ValidActions(side Side) []Action {
	if r.checkActor(side) != nil {
		return nil
	}

	actions := []Action{FireAt(Opponent), FireAt(Self)}
	user, opp := r.participants[side], r.participants[side.Other()]

	for _, kind := range item.All {
		if !user.Has(kind) {
			continue
		}
		if kind != item.Adrenaline {
			if r.validateEffect(side, kind) == nil {
				actions = append(actions, Use(kind))
			}
			continue
		}
		for _, steal := range item.All {
			if steal == item.Adrenaline || !opp.Has(steal) {
				continue
			}
			if r.validateEffect(side, steal) == nil {
				actions = append(actions, StealWith(steal))
			}
		}
	}
	return actions
}
