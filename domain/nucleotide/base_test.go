package nucleotide

import (
	"testing"

	"denoise/domain/core"
)

func TestBaseFrom_CanonicalAndAmbiguous(t *testing.T) {
	cases := []struct {
		ch   byte
		want Base
		ok   bool
	}{
		{'A', A, true}, {'c', C, true}, {'G', G, true}, {'t', T, true},
		{'N', 0, false}, {'-', 0, false}, {'U', 0, false}, {' ', 0, false},
	}
	for _, tc := range cases {
		got, ok := BaseFrom(tc.ch)
		if ok != tc.ok {
			t.Errorf("BaseFrom(%q): ok = %v, want %v", tc.ch, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("BaseFrom(%q) = %v, want %v", tc.ch, got, tc.want)
		}
	}
}

func TestCountBases_SkipsNonCanonical(t *testing.T) {
	counts := CountBases("AAAACCCGGT")
	want := BaseCounts{4, 3, 2, 1}
	if counts != want {
		t.Fatalf("CountBases = %v, want %v", counts, want)
	}

	// Ambiguity codes and gaps contribute nothing.
	withJunk := CountBases("AanN-CcXgGtT.")
	want = BaseCounts{2, 2, 2, 2}
	if withJunk != want {
		t.Fatalf("CountBases with junk = %v, want %v", withJunk, want)
	}
	if withJunk.Total() != 8 {
		t.Errorf("Total = %d, want 8", withJunk.Total())
	}
}

func TestTransitionMatrix_Validate(t *testing.T) {
	if err := Symmetric(0.01).Validate(); err != nil {
		t.Fatalf("symmetric matrix should validate, got %v", err)
	}

	short := TransitionMatrix{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}}
	if err := short.Validate(); !core.IsMalformedInput(err) {
		t.Errorf("3-row matrix: err = %v, want malformed input", err)
	}

	ragged := Symmetric(0.01)
	ragged[2] = ragged[2][:3]
	if err := ragged.Validate(); !core.IsMalformedInput(err) {
		t.Errorf("ragged matrix: err = %v, want malformed input", err)
	}

	badEntry := Symmetric(0.01)
	badEntry[1][2] = 1.5
	if err := badEntry.Validate(); !core.IsMalformedInput(err) {
		t.Errorf("entry > 1: err = %v, want malformed input", err)
	}
}

func TestSymmetric_RowSumsToOne(t *testing.T) {
	m := Symmetric(0.01)
	for from := Base(0); from < NumBases; from++ {
		sum := m.At(from, from) + m.OffDiagonalSum(from)
		if diff := sum - 1.0; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("row %v sums to %v, want 1", from, sum)
		}
	}
}

func TestSubstitution_TypeIndexCoversAllTwelve(t *testing.T) {
	seen := make(map[int]Substitution)
	for from := Base(0); from < NumBases; from++ {
		for to := Base(0); to < NumBases; to++ {
			if to == from {
				continue
			}
			s := Substitution{From: from, To: to}
			idx := s.TypeIndex()
			if idx < 0 || idx >= NumSubTypes {
				t.Fatalf("TypeIndex(%v) = %d out of range", s, idx)
			}
			if prev, dup := seen[idx]; dup {
				t.Fatalf("TypeIndex collision: %v and %v both map to %d", prev, s, idx)
			}
			seen[idx] = s
			if idx/3 != int(from) {
				t.Errorf("TypeIndex(%v)/3 = %d, want origin base %d", s, idx/3, from)
			}
		}
	}
	if len(seen) != NumSubTypes {
		t.Fatalf("covered %d type indices, want %d", len(seen), NumSubTypes)
	}
}

func TestSubstitutionList_NilVersusEmpty(t *testing.T) {
	var absent SubstitutionList
	if absent.Comparable() {
		t.Error("nil substitution list must be incomparable")
	}
	empty := SubstitutionList{}
	if !empty.Comparable() {
		t.Error("empty substitution list is a cluster center, not incomparable")
	}
}
