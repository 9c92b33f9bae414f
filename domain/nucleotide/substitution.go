package nucleotide

import (
	"fmt"
)

// Substitution records a single (from, to) base change at a position of a
// candidate sequence relative to its reference.
type Substitution struct {
	From Base `json:"from"`
	To   Base `json:"to"`
	Pos  int  `json:"pos"`
}

func (s Substitution) String() string {
	return fmt.Sprintf("%s%d%s", s.From, s.Pos, s.To)
}

// SubstitutionList is the ordered set of substitutions between a candidate
// and a fixed reference. A nil list is a sentinel meaning the candidate is
// outside the comparability threshold (e.g. beyond a k-mer distance cutoff);
// this is a distinct state from an empty list, which means the candidate is
// identical to the reference.
type SubstitutionList []Substitution

// Comparable reports whether the candidate was within the comparability
// threshold at all.
func (l SubstitutionList) Comparable() bool {
	return l != nil
}

// TypeIndex returns the directed substitution-type index in [0, NumSubTypes)
// used by the error model's relative-rate vector: the three substitutions
// rooted at base b occupy slots 3*b..3*b+2 in (to < from ? to : to-1) order.
func (s Substitution) TypeIndex() int {
	offset := int(s.To)
	if s.To > s.From {
		offset--
	}
	return int(s.From)*3 + offset
}
