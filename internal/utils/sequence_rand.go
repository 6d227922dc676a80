package utils

import "sync"

// SequenceRand replays fixed values so tests can script random outcomes.
// Each sequence repeats its last value once exhausted; an empty sequence yields zero.
type SequenceRand struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	fi, ii int
}

// NewSequenceRand builds a SequenceRand. ints are returned from IntN modulo n.
func NewSequenceRand(floats []float64, ints []int) *SequenceRand {
	return &SequenceRand{floats: floats, ints: ints}
}

func (s *SequenceRand) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[min(s.fi, len(s.floats)-1)]
	s.fi++
	return v
}

func (s *SequenceRand) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 || n <= 0 {
		return 0
	}
	v := s.ints[min(s.ii, len(s.ints)-1)]
	s.ii++
	return v % n
}
