package statistics

import (
	"math"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.SurvivalRate(1) != 0 {
		t.Errorf("Expected survival of 0 for empty stats, got %f", stats.SurvivalRate(1))
	}
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error for empty stats")
	}
}

func TestStatistics_SingleValue(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RunResult{RoundsWon: 4, MatchesWon: 1, Seed: 12345, Died: true, Shots: 6, LiveHits: 3, SelfShots: 2})

	if stats.Runs != 1 {
		t.Errorf("Expected 1 run, got %d", stats.Runs)
	}
	if stats.Mean() != 4 {
		t.Errorf("Expected mean of 4, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", stats.Variance())
	}
	if stats.Median() != 4 {
		t.Errorf("Expected median of 4, got %f", stats.Median())
	}
	if stats.MaxRoundsSeed != 12345 {
		t.Errorf("Expected best seed 12345, got %d", stats.MaxRoundsSeed)
	}
	if stats.HitRate() != 0.5 {
		t.Errorf("Expected hit rate 0.5, got %f", stats.HitRate())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
}

func TestStatistics_MultipleValues(t *testing.T) {
	stats := &Statistics{}
	for i, rounds := range []int{0, 1, 2, 3, 4} {
		stats.Add(RunResult{RoundsWon: rounds, Seed: int64(i), Died: rounds < 4, Abandoned: rounds == 4})
	}

	if stats.Mean() != 2 {
		t.Errorf("Expected mean of 2, got %f", stats.Mean())
	}
	if math.Abs(stats.Variance()-2.5) > 1e-9 {
		t.Errorf("Expected variance of 2.5, got %f", stats.Variance())
	}
	if stats.Median() != 2 {
		t.Errorf("Expected median of 2, got %f", stats.Median())
	}
	if stats.Percentile(0.25) != 1 {
		t.Errorf("Expected p25 of 1, got %f", stats.Percentile(0.25))
	}
	if stats.Percentile(1) != 4 {
		t.Errorf("Expected p100 of 4, got %f", stats.Percentile(1))
	}
	if stats.Deaths != 4 || stats.Abandoned != 1 {
		t.Errorf("Expected 4 deaths and 1 abandoned, got %d/%d", stats.Deaths, stats.Abandoned)
	}
	if stats.MaxRounds != 4 || stats.MaxRoundsSeed != 4 {
		t.Errorf("Expected best run 4 from seed 4, got %d from %d", stats.MaxRounds, stats.MaxRoundsSeed)
	}
	if got := stats.SurvivalRate(3); got != 0.4 {
		t.Errorf("Expected survival to 3 rounds of 0.4, got %f", got)
	}

	lo, hi := stats.ConfidenceInterval95()
	if lo >= stats.Mean() || hi <= stats.Mean() {
		t.Errorf("Confidence interval [%f, %f] should straddle the mean", lo, hi)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
}

func TestStatistics_Merge(t *testing.T) {
	a, b, all := &Statistics{}, &Statistics{}, &Statistics{}
	results := []RunResult{
		{RoundsWon: 1, Seed: 1, Died: true, Shots: 3},
		{RoundsWon: 5, Seed: 2, Died: true, Shots: 9},
		{RoundsWon: 2, Seed: 3, Abandoned: true, Shots: 4},
	}
	a.Add(results[0])
	b.Add(results[1])
	b.Add(results[2])
	for _, r := range results {
		all.Add(r)
	}

	a.Merge(b)

	if a.Runs != all.Runs || a.Sum != all.Sum || a.Sum2 != all.Sum2 {
		t.Errorf("merged totals differ: %+v vs %+v", a, all)
	}
	if a.MaxRounds != 5 || a.MaxRoundsSeed != 2 {
		t.Errorf("Expected best run 5 from seed 2, got %d from %d", a.MaxRounds, a.MaxRoundsSeed)
	}
	if a.Shots != 16 {
		t.Errorf("Expected 16 shots, got %d", a.Shots)
	}
	if a.Median() != all.Median() {
		t.Errorf("Expected median %f, got %f", all.Median(), a.Median())
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
}

func TestStatistics_ValidateCatchesMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RunResult{RoundsWon: 1, Died: true})
	stats.Deaths++

	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error for unbalanced deaths")
	}
}
