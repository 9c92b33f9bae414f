package singleton

import (
	"denoise/domain/evidence"
)

// PValue converts a lambda into its singleton p-value: the probability mass
// of all enumerated substitution patterns at least as probable as the
// observed one. It is the tail-probability analogue of the abundance
// p-value, usable when the read count is too low for Poisson statistics.
//
// Lambdas at or above the top breakpoint score 1.0; lambdas at or below the
// bottom breakpoint score the residual mass beyond the table. In between, a
// binary search finds the index i with lams[i] > lambda >= lams[i+1] (the
// left-bound comparison is strict) and returns 1 - cdf[i].
func PValue(lambda float64, model *evidence.Model) float64 {
	last := model.Len() - 1
	if lambda >= model.Lams[0] {
		return 1.0
	}
	if lambda <= model.Lams[last] {
		return 1.0 - model.CDF[last]
	}
	first := 0
	for last-first > 1 {
		mid := (first + last) / 2
		if model.Lams[mid] > lambda {
			first = mid
		} else {
			last = mid
		}
	}
	return 1.0 - model.CDF[first]
}
