package nucleotide

import (
	"denoise/domain/core"
)

// TransitionMatrix is a raw 4x4 table of substitution probabilities indexed
// by (from, to) base. Diagonal entries are no-error probabilities. Rows are
// not required to sum to exactly 1; normalization downstream is relative to
// 1 - offDiagonalSum(row).
type TransitionMatrix [][]float64

// Validate checks the matrix shape and that every entry lies in [0,1].
func (m TransitionMatrix) Validate() error {
	if len(m) != NumBases {
		return core.NewMatrixShapeError(len(m), 0)
	}
	for i, row := range m {
		if len(row) != NumBases {
			return core.NewMatrixShapeError(len(m), len(row))
		}
		for j, v := range row {
			if v < 0 || v > 1 {
				return core.NewMatrixEntryError(i, j, v)
			}
		}
	}
	return nil
}

// At returns the (from, to) substitution probability. The matrix must have
// been validated.
func (m TransitionMatrix) At(from, to Base) float64 {
	return m[from][to]
}

// OffDiagonalSum returns the total error mass of a row, i.e. the probability
// that the given base is read as any other base.
func (m TransitionMatrix) OffDiagonalSum(from Base) float64 {
	sum := 0.0
	for to := Base(0); to < NumBases; to++ {
		if to != from {
			sum += m[from][to]
		}
	}
	return sum
}

// Symmetric builds a transition matrix with the same off-diagonal
// probability everywhere and 1 - 3*offDiag on the diagonal.
func Symmetric(offDiag float64) TransitionMatrix {
	m := make(TransitionMatrix, NumBases)
	for i := range m {
		m[i] = make([]float64, NumBases)
		for j := range m[i] {
			if i == j {
				m[i][j] = 1 - 3*offDiag
			} else {
				m[i][j] = offDiag
			}
		}
	}
	return m
}
