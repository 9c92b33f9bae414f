package nucleotide

// Base is one of the four canonical nucleotides, usable directly as an index
// into a TransitionMatrix or a BaseCounts vector.
type Base int8

const (
	A Base = iota
	C
	G
	T

	// NumBases is the size of the canonical alphabet.
	NumBases = 4

	// NumSubTypes is the number of directed substitution types between
	// distinct canonical bases (4 * 3).
	NumSubTypes = 12
)

var baseLetters = [NumBases]byte{'A', 'C', 'G', 'T'}

// String returns the single-letter code for the base.
func (b Base) String() string {
	if b < 0 || b >= NumBases {
		return "?"
	}
	return string(baseLetters[b])
}

// Valid reports whether b is one of the four canonical bases.
func (b Base) Valid() bool {
	return b >= 0 && b < NumBases
}

// BaseFrom maps a sequence character to its canonical base. Lowercase is
// accepted. Ambiguity codes, gaps and anything else return ok == false;
// callers skip such positions rather than rejecting the sequence.
func BaseFrom(ch byte) (Base, bool) {
	switch ch {
	case 'A', 'a':
		return A, true
	case 'C', 'c':
		return C, true
	case 'G', 'g':
		return G, true
	case 'T', 't':
		return T, true
	}
	return -1, false
}

// BaseCounts holds the number of occurrences of each canonical base in a
// reference sequence.
type BaseCounts [NumBases]int

// CountBases tallies the canonical bases of seq, skipping ambiguous and gap
// symbols.
func CountBases(seq string) BaseCounts {
	var counts BaseCounts
	for i := 0; i < len(seq); i++ {
		if b, ok := BaseFrom(seq[i]); ok {
			counts[b]++
		}
	}
	return counts
}

// Total returns the number of counted canonical bases.
func (bc BaseCounts) Total() int {
	n := 0
	for _, c := range bc {
		n += c
	}
	return n
}
