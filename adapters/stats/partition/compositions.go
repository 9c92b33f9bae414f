// Package partition enumerates compositions: all ways to distribute a fixed
// number of substitutions across the twelve directed substitution types.
package partition

import (
	"math/big"
)

// Compositions is a lazy, finite, restartable enumerator of every length-k
// vector of non-negative integers summing to total. The order is reverse
// lexicographic starting from (total, 0, ..., 0); any fixed order would do,
// but this one is pinned for reproducibility. The enumeration is iterative
// and terminates after exactly Count(total, k) steps.
type Compositions struct {
	total, k int
	parts    []int
	started  bool
	done     bool
}

// New creates an enumerator of compositions of total into k parts.
// total < 0 or k < 1 yields an empty enumeration.
func New(total, k int) *Compositions {
	c := &Compositions{total: total, k: k}
	c.Reset()
	return c
}

// Reset rewinds the enumeration to its first composition.
func (c *Compositions) Reset() {
	c.started = false
	c.done = c.total < 0 || c.k < 1
	c.parts = make([]int, c.k)
	if !c.done {
		c.parts[0] = c.total
	}
}

// Next returns the next composition, or false when the enumeration is
// exhausted. The returned slice is a copy and may be retained.
func (c *Compositions) Next() ([]int, bool) {
	if c.done {
		return nil, false
	}
	if !c.started {
		c.started = true
		return c.snapshot(), true
	}
	if !c.advance() {
		c.done = true
		return nil, false
	}
	return c.snapshot(), true
}

// advance steps to the successor composition: move the trailing slot's mass
// aside, decrement the rightmost nonzero among the leading slots, and push
// the unit one slot onward. Terminates once the last slot holds everything.
func (c *Compositions) advance() bool {
	last := c.k - 1
	if c.parts[last] == c.total {
		return false
	}
	i := last - 1
	for c.parts[i] == 0 {
		i--
	}
	carried := c.parts[last]
	c.parts[last] = 0
	c.parts[i]--
	c.parts[i+1] = carried + 1
	return true
}

func (c *Compositions) snapshot() []int {
	out := make([]int, c.k)
	copy(out, c.parts)
	return out
}

// Count returns the number of compositions of total into k parts,
// C(total+k-1, k-1). The count grows combinatorially in total, which is why
// callers must treat the maximum edit distance as a cost-controlling knob.
func Count(total, k int) int64 {
	if total < 0 || k < 1 {
		return 0
	}
	n := big.NewInt(0).Binomial(int64(total+k-1), int64(k-1))
	return n.Int64()
}
