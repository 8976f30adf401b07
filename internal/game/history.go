package game

import (
	"fmt"

	"github.com/pxdal/buckshot/internal/config"
	"github.com/pxdal/buckshot/internal/randutil"
)

// Replay rebuilds a run from its seed and accepted actions. Because every
// draw goes through the seeded RNG, the rebuilt run must produce the same
// result and fired shell for every entry; a mismatch is reported as an error
// naming the first divergent step.
func Replay(seed int64, rules config.Rules, entries []Entry, opts ...RunOption) (*Run, error) {
	r := NewRun(randutil.New(seed), rules, opts...)

	for i, e := range entries {
		res, err := r.Apply(e.Side, e.Action)
		if err != nil {
			return r, fmt.Errorf("replay step %d (%s %s): %w", i, e.Side, e.Action, err)
		}
		if res != e.Result {
			return r, fmt.Errorf("replay step %d (%s %s): result %s, recorded %s", i, e.Side, e.Action, res, e.Result)
		}
		if e.Action.Type == ActionFire {
			if shell, _ := r.LastFired(); shell != e.Shell {
				return r, fmt.Errorf("replay step %d (%s %s): fired %s, recorded %s", i, e.Side, e.Action, shell, e.Shell)
			}
		}
	}

	return r, nil
}
