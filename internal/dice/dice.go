// Package dice wraps the random source shared by world generation, the
// battle resolver and the location tables so tests can script every roll.
package dice

import (
	"math/rand"
	"time"
)

// Rand is the subset of *rand.Rand the game consumes.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// New returns a seeded *rand.Rand. A zero seed uses the wall clock.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Between returns a uniform integer in [lo, hi] (inclusive on both ends).
func Between(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Chance reports whether a roll lands under p (0.0–1.0).
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// Scripted replays fixed rolls. Intn values are clamped into [0, n) and
// Float64 values are returned as-is; an exhausted script repeats its last
// value, and an empty one returns 0.
type Scripted struct {
	Ints   []int
	Floats []float64
	ni, nf int
}

// Intn returns the next scripted integer, clamped to [0, n).
func (s *Scripted) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	v := 0
	if len(s.Ints) > 0 {
		i := min(s.ni, len(s.Ints)-1)
		v = s.Ints[i]
		s.ni++
	}
	if v < 0 {
		v = 0
	}
	if v >= n {
		v = n - 1
	}
	return v
}

// Float64 returns the next scripted float.
func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	i := min(s.nf, len(s.Floats)-1)
	s.nf++
	return s.Floats[i]
}
