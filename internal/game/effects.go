package game

import (
	"fmt"

	"github.com/pxdal/buckshot/internal/chamber"
	"github.com/pxdal/buckshot/internal/item"
	"github.com/pxdal/buckshot/internal/randutil"
)

type effectOutcome struct {
	result  Result
	stolen  item.Kind
	ejected *chamber.Shell
}

// useItem consumes one kind from who and applies it. Callers validate first;
// nothing here can be rejected, and a missing item panics.
func (r *Run) useItem(who Side, kind item.Kind) effectOutcome {
	if err := r.participants[who].consumeItem(kind); err != nil {
		panic(fmt.Sprintf("game: %s used unvalidated %s: %v", who, kind, err))
	}

	out := r.applyEffect(who, kind)
	if r.settleDeath(who) {
		out.result = ResultEarlyTurnEnd
	}
	return out
}

// applyEffect is the item dispatch table. Every item.Kind must have a case.
func (r *Run) applyEffect(who Side, kind item.Kind) effectOutcome {
	user := r.participants[who]
	out := effectOutcome{result: ResultEffected}

	switch kind {
	case item.Knife:
		r.sawedOff = true

	case item.Cigarettes:
		user.heal(1)

	case item.Medicine:
		if randutil.CoinFlip(r.rng) {
			user.heal(2)
		} else {
			user.takeDamage(1)
		}

	case item.Magnifier:
		if shell, err := r.chamber.Peek(); err == nil {
			user.reveal(0, shell)
		}

	case item.Inverter:
		if r.chamber.InvertFront() == nil {
			for _, p := range r.participants {
				p.observeInversion()
			}
		}

	case item.Phone:
		r.callPhone(who)

	case item.Beer:
		shell, err := r.chamber.Pop()
		if err != nil {
			break
		}
		for _, p := range r.participants {
			p.observe(shell)
		}
		out.ejected = &shell
		if r.chamber.IsEmpty() {
			r.onSetEnd()
			out.result = ResultEarlyTurnEnd
		}

	case item.Handcuffs:
		r.handcuffed = who.Other()

	case item.Adrenaline:
		steal := r.pendingSteal
		r.pendingSteal = item.None
		if err := r.participants[who.Other()].consumeItem(steal); err != nil {
			panic(fmt.Sprintf("game: %s stole unvalidated %s: %v", who, steal, err))
		}
		// stolen goods skip the thief's draw bookkeeping on the way in,
		// but using them below still decrements it
		user.inventory.Add(steal, 1)
		inner := r.useItem(who, steal)
		out = inner
		out.stolen = steal

	default:
		panic(fmt.Sprintf("game: unhandled item %s", kind))
	}

	return out
}

// callPhone reveals one random non-front shell. The dealer is never shown
// the final shell.
func (r *Run) callPhone(who Side) {
	n := r.chamber.Len()
	if n < 2 {
		return
	}
	if who == Dealer && n == 2 {
		return
	}

	offset := 1 + r.rng.IntN(n-1)
	for who == Dealer && offset == n-1 {
		offset = 1 + r.rng.IntN(n-1)
	}

	shell, _ := r.chamber.At(offset)
	r.participants[who].reveal(offset, shell)
}
