package statistics

import (
	"fmt"
	"math"
	"sort"
)

// RunResult represents the outcome of a single playthrough
type RunResult struct {
	RoundsWon  int   // rounds the player won before dying or being cut off
	MatchesWon int   // completed matches
	Seed       int64 // RNG seed for this run (for replay)
	Died       bool  // player died
	Abandoned  bool  // hit the round cap or was cut short
	Shots      int   // shots fired by the player
	SelfShots  int   // of which at self
	LiveHits   int   // live shots fired by the player
	ItemsUsed  int   // items used by the player, stolen ones included
	Sets       int   // chamber loads
	Turns      int
}

// Statistics tracks aggregate simulation statistics. The per-run sample is
// rounds won.
type Statistics struct {
	Runs   int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	Deaths    int
	Abandoned int

	MatchesWon int
	Shots      int
	SelfShots  int
	LiveHits   int
	ItemsUsed  int
	Sets       int
	Turns      int

	// Best run observed, for replay
	MaxRounds     int
	MaxRoundsSeed int64

	// Runs bucketed by rounds won
	RoundsHistogram map[int]int
}

// Mean returns the arithmetic mean of rounds won per run
func (s *Statistics) Mean() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.Sum / float64(s.Runs)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Runs < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Runs)*mean*mean) / float64(s.Runs-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Runs))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a new run result into the statistics
func (s *Statistics) Add(result RunResult) {
	v := float64(result.RoundsWon)
	s.Runs++
	s.Sum += v
	s.Sum2 += v * v
	s.Values = append(s.Values, v)

	if result.Died {
		s.Deaths++
	} else {
		s.Abandoned++
	}

	s.MatchesWon += result.MatchesWon
	s.Shots += result.Shots
	s.SelfShots += result.SelfShots
	s.LiveHits += result.LiveHits
	s.ItemsUsed += result.ItemsUsed
	s.Sets += result.Sets
	s.Turns += result.Turns

	if s.Runs == 1 || result.RoundsWon > s.MaxRounds {
		s.MaxRounds = result.RoundsWon
		s.MaxRoundsSeed = result.Seed
	}

	if s.RoundsHistogram == nil {
		s.RoundsHistogram = make(map[int]int)
	}
	s.RoundsHistogram[result.RoundsWon]++
}

// Merge folds other into s, as if every run of other had been added to s.
func (s *Statistics) Merge(other *Statistics) {
	if other == nil || other.Runs == 0 {
		return
	}
	if s.Runs == 0 || other.MaxRounds > s.MaxRounds {
		s.MaxRounds = other.MaxRounds
		s.MaxRoundsSeed = other.MaxRoundsSeed
	}

	s.Runs += other.Runs
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
	s.Values = append(s.Values, other.Values...)
	s.Deaths += other.Deaths
	s.Abandoned += other.Abandoned
	s.MatchesWon += other.MatchesWon
	s.Shots += other.Shots
	s.SelfShots += other.SelfShots
	s.LiveHits += other.LiveHits
	s.ItemsUsed += other.ItemsUsed
	s.Sets += other.Sets
	s.Turns += other.Turns

	if s.RoundsHistogram == nil {
		s.RoundsHistogram = make(map[int]int)
	}
	for k, v := range other.RoundsHistogram {
		s.RoundsHistogram[k] += v
	}
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// SurvivalRate returns the fraction of runs that reached at least n rounds won
func (s *Statistics) SurvivalRate(n int) float64 {
	if s.Runs == 0 {
		return 0
	}
	reached := 0
	for rounds, count := range s.RoundsHistogram {
		if rounds >= n {
			reached += count
		}
	}
	return float64(reached) / float64(s.Runs)
}

// HitRate returns the fraction of the player's shots that were live
func (s *Statistics) HitRate() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.LiveHits) / float64(s.Shots)
}

// Validate performs consistency checks on the aggregated data
func (s *Statistics) Validate() error {
	if s.Runs <= 0 {
		return fmt.Errorf("invalid runs count: %d", s.Runs)
	}
	if len(s.Values) != s.Runs {
		return fmt.Errorf("values array length (%d) does not match runs count (%d)",
			len(s.Values), s.Runs)
	}
	if s.Deaths+s.Abandoned != s.Runs {
		return fmt.Errorf("deaths (%d) + abandoned (%d) does not match runs (%d)",
			s.Deaths, s.Abandoned, s.Runs)
	}
	if s.LiveHits > s.Shots || s.SelfShots > s.Shots {
		return fmt.Errorf("shot breakdown exceeds total shots (%d)", s.Shots)
	}

	histTotal := 0
	for _, n := range s.RoundsHistogram {
		histTotal += n
	}
	if histTotal != s.Runs {
		return fmt.Errorf("histogram total (%d) does not match runs (%d)", histTotal, s.Runs)
	}
	return nil
}
