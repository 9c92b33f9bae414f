package abundance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackends_Agree(t *testing.T) {
	gamma := NewGammaTail()
	series := NewSeriesTail()

	for _, mean := range []float64{0.05, 0.5, 1, 3, 8} {
		for reads := 1; reads <= 15; reads++ {
			g := gamma.Tail(reads, mean)
			s := series.Tail(reads, mean)
			assert.InDelta(t, g, s, 1e-10,
				"backends disagree at reads=%d mean=%g: %v vs %v", reads, mean, g, s)
		}
	}
}

func TestTail_Boundaries(t *testing.T) {
	for _, backend := range []TailBackend{NewGammaTail(), NewSeriesTail()} {
		// P(X >= 0) is certain.
		assert.Equal(t, 1.0, backend.Tail(0, 2.5), backend.Name())
		// P(X >= 1) = 1 - e^(-mean).
		assert.InDelta(t, 1-math.Exp(-2.5), backend.Tail(1, 2.5), 1e-12, backend.Name())
	}
}

func TestPValue_MonotoneInReads(t *testing.T) {
	backend := NewGammaTail()
	prev := math.Inf(1)
	for reads := 1; reads <= 20; reads++ {
		p := PValue(reads, 3.0, backend)
		if p > prev+1e-15 {
			t.Fatalf("p-value increased at reads=%d: %v -> %v", reads, prev, p)
		}
		if p < 0 || p > 1+1e-12 {
			t.Fatalf("p-value out of range at reads=%d: %v", reads, p)
		}
		prev = p
	}
}

func TestPValue_MonotoneInExpected(t *testing.T) {
	backend := NewGammaTail()
	prev := 0.0
	for _, mean := range []float64{0.01, 0.1, 0.5, 1, 2, 5, 10} {
		p := PValue(3, mean, backend)
		if p < prev-1e-15 {
			t.Fatalf("p-value decreased at mean=%g: %v -> %v", mean, prev, p)
		}
		prev = p
	}
}

func TestPValue_ReadsOneIsCertain(t *testing.T) {
	// Conditioned on the variant being observed, a single read is no
	// evidence at all: tail and norm are the same quantity.
	backend := NewSeriesTail()
	for _, mean := range []float64{0.2, 1, 4} {
		assert.InDelta(t, 1.0, PValue(1, mean, backend), 1e-9, "mean=%g", mean)
	}
}

func TestPValue_TaylorNormalization(t *testing.T) {
	backend := NewGammaTail()

	// Below the cutoff the norm switches to expected - expected^2/2; the
	// reads=1 identity must survive the switch.
	tiny := 1e-9
	p := PValue(1, tiny, NewSeriesTail())
	assert.InDelta(t, 1.0, p, 1e-6)

	// And multi-read p-values stay finite and tiny.
	p2 := PValue(2, tiny, backend)
	assert.False(t, math.IsNaN(p2) || math.IsInf(p2, 0))
	assert.GreaterOrEqual(t, p2, 0.0)
	assert.Less(t, p2, 1e-6)
}
