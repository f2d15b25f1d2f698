package common

import "time"

// Source is the random source consumed by the quote selector and the drone.
// Float64 returns a value in [0, 1).
type Source interface {
	Float64() float64
}

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// The same seed always yields the same sequence.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// NewClockRNG seeds a generator from the wall clock.
func NewClockRNG() *SeededRNG {
	return NewSeededRNG(ClockSeed(time.Now()))
}

// Reset rewinds the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Seed returns the seed the generator was created with.
func (r *SeededRNG) Seed() uint32 {
	return r.initialSeed
}

// Float64 returns the next value in [0, 1).
func (r *SeededRNG) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (r *SeededRNG) Intn(n int) int {
	return Intn(r, n)
}

// Range returns a value in [min, max).
func (r *SeededRNG) Range(min, max float64) float64 {
	return Range(r, min, max)
}

// Intn draws an index in [0, n) from src.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Range draws a value in [min, max) from src.
func Range(src Source, min, max float64) float64 {
	return src.Float64()*(max-min) + min
}

// ClockSeed folds a timestamp into a 32-bit seed.
func ClockSeed(t time.Time) uint32 {
	n := uint64(t.UnixNano())
	seed := uint32(n) ^ uint32(n>>32)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}
