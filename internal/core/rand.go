package core

import "math/rand"

// Rand is the random source games draw from. Every random choice a game
// makes (2048 tile values, Memory deck shuffle, mole spawn cells, AI
// column weighting, bomb drops) goes through this interface so tests can
// substitute a scripted sequence and assert exact outcomes.
//
// *math/rand.Rand satisfies Rand directly.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded math/rand source for deterministic replay.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// ScriptRand replays predetermined values for tests that need exact
// random outcomes.
//
// Intn pops from Ints (reduced modulo n), Float64 pops from Floats, and
// Shuffle applies Swaps in order. An exhausted script yields zero values,
// and an empty Swaps list keeps the identity order.
type ScriptRand struct {
	Ints   []int
	Floats []float64
	Swaps  [][2]int
}

func (s *ScriptRand) Intn(n int) int {
	if n <= 0 || len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 {
		v = -v
	}
	return v % n
}

func (s *ScriptRand) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

func (s *ScriptRand) Shuffle(n int, swap func(i, j int)) {
	for _, sw := range s.Swaps {
		if sw[0] >= 0 && sw[0] < n && sw[1] >= 0 && sw[1] < n {
			swap(sw[0], sw[1])
		}
	}
}
