package randutil

import "fmt"

// Scripted replays a fixed list of IntN results before handing over to a
// fallback source. Shuffle is a Fisher-Yates pass driven by IntN, so scripted
// values also pin down permutations. Intended for tests that need an exact
// chamber or coin flip.
type Scripted struct {
	values   []int
	fallback Source
}

// NewScripted returns a Scripted source. A nil fallback is replaced with a
// seed-zero generator.
func NewScripted(fallback Source, values ...int) *Scripted {
	if fallback == nil {
		fallback = New(0)
	}
	return &Scripted{values: values, fallback: fallback}
}

// Push appends more scripted values.
func (s *Scripted) Push(values ...int) {
	s.values = append(s.values, values...)
}

// Remaining reports how many scripted values have not been consumed yet.
func (s *Scripted) Remaining() int {
	return len(s.values)
}

func (s *Scripted) IntN(n int) int {
	if len(s.values) == 0 {
		return s.fallback.IntN(n)
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("randutil: scripted value %d out of range [0,%d)", v, n))
	}
	return v
}

func (s *Scripted) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, s.IntN(i+1))
	}
}
