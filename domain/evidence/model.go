// Package evidence holds the immutable statistical lookup model and the
// structured diagnostics channel shared by the p-value calculators.
package evidence

import (
	"denoise/domain/core"
)

// Model is the singleton lookup table: descending lambda breakpoints and the
// matching cumulative right-tail mass. It is built once per error-rate
// configuration and is read-only afterwards, so it may be shared freely
// across concurrent family evaluations.
type Model struct {
	// Lams holds probability breakpoints, non-increasing.
	Lams []float64 `json:"lams"`
	// CDF holds the cumulative tail mass at each breakpoint, non-decreasing.
	CDF []float64 `json:"cdf"`
}

// NewModel validates the parallel arrays and wraps them in a Model. The
// slices are retained, not copied; callers must not mutate them afterwards.
func NewModel(lams, cdf []float64) (*Model, error) {
	if len(lams) != len(cdf) {
		return nil, core.NewModelLengthError(len(lams), len(cdf))
	}
	if len(lams) == 0 {
		return nil, core.ErrInvalidModel
	}
	for i := range lams {
		if lams[i] < 0 || lams[i] > 1 || cdf[i] < 0 || cdf[i] > 1 {
			return nil, core.ErrInvalidModel
		}
		if i > 0 {
			if lams[i] > lams[i-1] || cdf[i] < cdf[i-1] {
				return nil, core.ErrInvalidModel
			}
		}
	}
	return &Model{Lams: lams, CDF: cdf}, nil
}

// Len returns the number of breakpoints.
func (m *Model) Len() int {
	return len(m.Lams)
}
