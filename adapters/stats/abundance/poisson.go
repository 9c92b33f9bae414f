// Package abundance computes the abundance p-value: the Poisson right-tail
// probability of a family's read count given its expected read count,
// conditioned on the variant having been observed at all.
package abundance

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// TailApproxCutoff is the normalization threshold below which
// 1 - exp(-expected) is replaced by its second-order Taylor expansion to
// avoid catastrophic cancellation. At this cutoff the discarded third-order
// term is below 1e-24, well under double precision of the retained terms.
const TailApproxCutoff = 1e-8

// TailBackend computes the Poisson right tail P(X >= reads | mean). The
// exact numerical routine is a replaceable dependency, not part of the core
// contract, so it is injected rather than hard-wired.
type TailBackend interface {
	Name() string
	Tail(reads int, mean float64) float64
}

// GammaTail is the exact backend: the Poisson survival function via the
// regularized incomplete gamma function (gonum distuv).
type GammaTail struct{}

// NewGammaTail creates the gamma-based tail backend.
func NewGammaTail() GammaTail {
	return GammaTail{}
}

func (GammaTail) Name() string {
	return "regularized_gamma"
}

// Tail returns P(X >= reads) = 1 - CDF(reads - 1).
func (GammaTail) Tail(reads int, mean float64) float64 {
	if reads <= 0 {
		return 1.0
	}
	dist := distuv.Poisson{Lambda: mean}
	return dist.Survival(float64(reads - 1))
}

// SeriesTail sums the Poisson mass function directly. It exists as an
// independent cross-check for the gamma backend and stays accurate for the
// small read counts this core sees.
type SeriesTail struct{}

// NewSeriesTail creates the term-summation tail backend.
func NewSeriesTail() SeriesTail {
	return SeriesTail{}
}

func (SeriesTail) Name() string {
	return "series_summation"
}

// Tail returns 1 - sum_{k<reads} e^(-mean) mean^k / k!.
func (SeriesTail) Tail(reads int, mean float64) float64 {
	if reads <= 0 {
		return 1.0
	}
	term := math.Exp(-mean)
	head := term
	for k := 1; k < reads; k++ {
		term *= mean / float64(k)
		head += term
	}
	tail := 1.0 - head
	if tail < 0 {
		// head can overshoot 1 by rounding when the tail is negligible.
		tail = 0
	}
	return tail
}

// PValue is the abundance p-value for a family seen `reads` times with
// `expected` expected reads: the right tail divided by
// norm = 1 - e^(-expected), conditioning on the variant existing, since the
// model is built only for variants that were observed. Near-zero norms use
// the Taylor form expected - expected^2/2.
func PValue(reads int, expected float64, backend TailBackend) float64 {
	norm := 1.0 - math.Exp(-expected)
	if norm < TailApproxCutoff {
		norm = expected - 0.5*expected*expected
	}
	return backend.Tail(reads, expected) / norm
}
