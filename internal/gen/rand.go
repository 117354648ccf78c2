package gen

import (
	"math"
	"math/rand/v2"
)

// Source is the single random stream a generator draws from. Two sources
// built from the same seed produce the same sequence.
type Source struct {
	r *rand.Rand
}

func NewSource(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Source) Float64() float64 { return s.r.Float64() }

func (s *Source) Intn(n int) int { return s.r.IntN(n) }

// IntRange returns an int in [lo, hi], both inclusive.
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Uniform returns a float in [lo, hi].
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// Jitter returns v shifted by a uniform offset in [-d, d].
func (s *Source) Jitter(v, d float64) float64 {
	return v + s.Uniform(-d, d)
}

// Sample2 returns two distinct indices in [0, n). n must be >= 2.
func (s *Source) Sample2(n int) (int, int) {
	i := s.r.IntN(n)
	j := s.r.IntN(n - 1)
	if j >= i {
		j++
	}
	return i, j
}

// Weighted picks an index with probability proportional to its weight.
func (s *Source) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	x := s.r.Float64() * total
	for i, w := range weights {
		if x < w {
			return i
		}
		x -= w
	}
	return len(weights) - 1
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](s *Source, items []T) T {
	return items[s.r.IntN(len(items))]
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
