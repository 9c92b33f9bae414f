package errormodel

import (
	"fmt"

	"denoise/domain/evidence"
	"denoise/domain/nucleotide"
)

// Self computes the probability that seq is produced with zero substitutions
// under the transition matrix: the product of the diagonal entry for every
// canonical base in seq. Ambiguous and gap symbols contribute no factor.
// An exact-zero result is recorded as a self-underflow anomaly; the zero is
// still returned.
func Self(seq string, matrix nucleotide.TransitionMatrix, diag *evidence.Collector) float64 {
	self := 1.0
	for i := 0; i < len(seq); i++ {
		if b, ok := nucleotide.BaseFrom(seq[i]); ok {
			self *= matrix.At(b, b)
		}
	}
	if self == 0 {
		diag.Record(evidence.DiagSelfUnderflow,
			fmt.Sprintf("self-transition product underflowed to zero over %d bases", len(seq)), 0)
	}
	return self
}

// Lambda computes a candidate's expected relative production rate: starting
// from the reference's self probability, each substitution (from, to)
// multiplies by matrix[from][to] / matrix[from][from]. The result does not
// depend on substitution order.
//
// A nil substitution list is the outside-comparability sentinel and yields
// 0.0 with no anomaly. A result outside [0,1] is impossible under a valid
// model and is recorded as an anomaly, as is an exact-zero underflow with
// substitutions present; in both cases the computed value is returned
// unchanged, since failing hard would abort an otherwise valid denoising
// run over a single variant.
func Lambda(self float64, subs nucleotide.SubstitutionList, matrix nucleotide.TransitionMatrix, diag *evidence.Collector) float64 {
	if !subs.Comparable() {
		return 0.0
	}
	lambda := self
	for _, s := range subs {
		lambda *= matrix.At(s.From, s.To) / matrix.At(s.From, s.From)
	}
	if lambda < 0 || lambda > 1 {
		diag.Record(evidence.DiagLambdaOutOfRange,
			fmt.Sprintf("lambda %g outside [0,1] after %d substitutions", lambda, len(subs)), lambda)
	} else if lambda == 0 {
		diag.Record(evidence.DiagLambdaUnderflow,
			fmt.Sprintf("lambda underflowed to zero after %d substitutions", len(subs)), 0)
	}
	return lambda
}
