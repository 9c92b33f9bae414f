// Package singleton builds the cumulative-tail probability table over all
// substitution patterns up to a bounded edit distance, and converts a lambda
// into a singleton p-value by lookup.
package singleton

import (
	"math"
	"sort"

	"denoise/adapters/stats/errormodel"
	"denoise/adapters/stats/partition"
	"denoise/domain/core"
	"denoise/domain/evidence"
	"denoise/domain/nucleotide"
)

// ProbEntry pairs the aggregate probability of one substitution-count
// composition with the number of distinct sequences realizing it.
type ProbEntry struct {
	P float64 // probability of any single sequence with this composition
	N float64 // multiplicity: distinct sequences with this composition
}

// Less pins the total order used for the table: probability descending,
// ties broken by multiplicity descending. The tie-break affects only the
// ordering among equal-probability entries, never the cumulative tail
// values, but it is fixed so tables reproduce exactly.
func (e ProbEntry) Less(o ProbEntry) bool {
	if e.P != o.P {
		return e.P > o.P
	}
	return e.N > o.N
}

// Enumerate emits one ProbEntry per composition of each edit distance
// 0..maxD across the twelve directed substitution types.
//
// For a composition (c_1..c_12): p is self times the product of each used
// type's relative rate, and n is a falling-factorial multinomial count that
// draws from the shared pool of the origin base's occurrences. When a
// composition asks for more substitutions at a base than the reference has,
// the pool factor reaches zero and the whole entry collapses to a zero
// contribution; that is never an error.
func Enumerate(em *errormodel.ErrorModel, maxD int) ([]ProbEntry, error) {
	if maxD < 0 {
		return nil, core.ErrInvalidDistance
	}
	var entries []ProbEntry
	for d := 0; d <= maxD; d++ {
		comps := partition.New(d, nucleotide.NumSubTypes)
		for comp, ok := comps.Next(); ok; comp, ok = comps.Next() {
			var open [nucleotide.NumBases]float64
			for b, cnt := range em.Counts {
				open[b] = float64(cnt)
			}
			p := em.Self
			n := 1.0
			for i, ci := range comp {
				base := errormodel.OriginBase(i)
				for j := 0; j < ci; j++ {
					p *= em.Errs[i]
					n *= open[base] / float64(j+1)
					open[base]--
				}
			}
			entries = append(entries, ProbEntry{P: p, N: n})
		}
	}
	return entries, nil
}

// BuildTable aggregates the enumeration into parallel arrays: ps, the
// per-rank probability, and cdf, the cumulative right-tail mass of all
// entries at least as probable. The table is truncated at the first rank
// whose probability drops to or below maxErr^(maxD+1), an upper bound on
// any composition beyond maxD: past that point the table cannot tell
// enumerated mass from truncation error.
func BuildTable(em *errormodel.ErrorModel, maxD int) (ps, cdf []float64, err error) {
	entries, err := Enumerate(em, maxD)
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Less(entries[j])
	})

	// The 15-17 digit significand of a double bounds the resolution of the
	// accumulated tail.
	ps = make([]float64, 0, len(entries))
	cdf = make([]float64, 0, len(entries))
	cum := 0.0
	for _, e := range entries {
		cum += e.P * e.N
		ps = append(ps, e.P)
		cdf = append(cdf, cum)
	}

	minP := math.Pow(em.MaxErr(), float64(maxD+1))
	cut := len(ps)
	for i, p := range ps {
		if p <= minP {
			cut = i
			break
		}
	}
	return ps[:cut], cdf[:cut], nil
}

// BuildModel wraps BuildTable's output in a validated, immutable Model ready
// for concurrent lookups.
func BuildModel(em *errormodel.ErrorModel, maxD int) (*evidence.Model, error) {
	ps, cdf, err := BuildTable(em, maxD)
	if err != nil {
		return nil, err
	}
	return evidence.NewModel(ps, cdf)
}
