// Package read holds the cluster-side records this core scores. Families and
// bins are owned and mutated by the external clustering engine; everything
// here is read-only from the evidence core's perspective, so any concurrent
// mutation must be synchronized by the owner.
package read

import (
	"denoise/domain/nucleotide"
)

// Family is a group of identical reads, with one lambda and one substitution
// list relative to its reference.
type Family struct {
	// Reads is the number of identical reads in the family. May be zero
	// for degenerate input; scoring treats that leniently.
	Reads int `json:"reads"`

	// Lambda is the expected relative production rate of this sequence
	// under the error model.
	Lambda float64 `json:"lambda"`

	// Subs is the substitution list relative to the reference. A nil list
	// means the family is outside the comparability threshold.
	Subs nucleotide.SubstitutionList `json:"subs,omitempty"`
}

// Bin is an aggregate of families sharing a consensus sequence.
type Bin struct {
	// Reads is the total read count across all families in the bin.
	Reads int `json:"reads"`
}

// ExpectedReads is the expected read count of the family inside bin:
// lambda scaled by the bin's total reads.
func (f *Family) ExpectedReads(bin *Bin) float64 {
	return f.Lambda * float64(bin.Reads)
}
