package vmath

import "time"

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand seeds the generator, zero selects a time-derived seed
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		if seed == 0 {
			seed = 1
		}
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Range returns an int in [lo, hi), lo when the range is empty
func (r *FastRand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// Float64 returns a value in [0, 1]
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53-1)
}

// RangeF returns a float in [a, b] regardless of argument order
func (r *FastRand) RangeF(a, b float64) float64 {
	return a + (b-a)*r.Float64()
}
