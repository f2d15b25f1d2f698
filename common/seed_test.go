package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSeededRNG_SameSeedSameSequence(t *testing.T) {
	a := NewSeededRNG(42)
	b := NewSeededRNG(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
	}
}

func TestSeededRNG_Reset(t *testing.T) {
	r := NewSeededRNG(7)
	first := r.Float64()
	r.Float64()
	r.Reset()
	assert.Equal(t, first, r.Float64())
	assert.Equal(t, uint32(7), r.Seed())
}

func TestSeededRNG_Float64InUnitInterval(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := NewSeededRNG(rapid.Uint32().Draw(t, "seed"))
		for i := 0; i < 50; i++ {
			v := r.Float64()
			if v < 0 || v >= 1 {
				t.Fatalf("draw %d out of range: %f", i, v)
			}
		}
	})
}

func TestIntn_Bounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 1000).Draw(t, "n")
		r := NewSeededRNG(rapid.Uint32().Draw(t, "seed"))
		v := r.Intn(n)
		if v < 0 || v >= n {
			t.Fatalf("Intn(%d) = %d", n, v)
		}
	})
}

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestIntn_ClampsUpperEdge(t *testing.T) {
	assert.Equal(t, 2, Intn(fixedSource(0.9999999999), 3))
	assert.Equal(t, 0, Intn(fixedSource(0.5), 0))
}

func TestRange(t *testing.T) {
	assert.InDelta(t, 0.1, Range(fixedSource(0), 0.1, 0.3), 1e-12)
	assert.InDelta(t, 0.2, Range(fixedSource(0.5), 0.1, 0.3), 1e-12)
}

func TestClockSeed_VariesWithTime(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	assert.NotEqual(t, ClockSeed(now), ClockSeed(now.Add(time.Millisecond)))
}
