// Package errormodel normalizes a raw nucleotide transition matrix into the
// per-type relative error rates and the self (no-error) probability baseline
// consumed by the partition enumeration and the lambda calculation.
package errormodel

import (
	"math"

	"denoise/domain/core"
	"denoise/domain/nucleotide"
)

// ErrorModel holds row-normalized substitution rates for one reference.
//
// Errs[i] is the rate of directed substitution type i (three types per origin
// base, in nucleotide.Substitution.TypeIndex order), conditioned on an error
// having occurred at that base: each raw off-diagonal entry is divided by
// 1 - p_b, where p_b is the row's total off-diagonal mass. The enumeration
// counts error events explicitly and multiplies by Self separately, which is
// why the conditioning is factored out here.
type ErrorModel struct {
	Errs   [nucleotide.NumSubTypes]float64
	Self   float64
	Counts nucleotide.BaseCounts
}

// Build validates the raw matrix and computes the normalized model for a
// reference with the given base counts. On error no partial model is
// returned.
func Build(matrix nucleotide.TransitionMatrix, counts nucleotide.BaseCounts) (*ErrorModel, error) {
	if err := matrix.Validate(); err != nil {
		return nil, err
	}
	for _, n := range counts {
		if n < 0 {
			return nil, core.ErrMalformedCounts
		}
	}

	em := &ErrorModel{Self: 1.0, Counts: counts}
	k := 0
	for from := nucleotide.Base(0); from < nucleotide.NumBases; from++ {
		pb := matrix.OffDiagonalSum(from)
		em.Self *= math.Pow(1-pb, float64(counts[from]))
		for to := nucleotide.Base(0); to < nucleotide.NumBases; to++ {
			if to == from {
				continue
			}
			em.Errs[k] = matrix.At(from, to) / (1 - pb)
			k++
		}
	}
	return em, nil
}

// MaxErr returns the largest relative error rate, the base of the table
// truncation bound maxErr^(maxD+1).
func (m *ErrorModel) MaxErr() float64 {
	max := 0.0
	for _, e := range m.Errs {
		if e > max {
			max = e
		}
	}
	return max
}

// RelativeRate returns the normalized rate of one directed substitution.
func (m *ErrorModel) RelativeRate(s nucleotide.Substitution) float64 {
	return m.Errs[s.TypeIndex()]
}

// OriginBase returns the base at which substitution type i originates.
func OriginBase(i int) nucleotide.Base {
	return nucleotide.Base(i / 3)
}
