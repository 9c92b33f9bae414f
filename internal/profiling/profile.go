// Package profiling summarizes built probability tables and lambda batches
// for inspection and test assertions.
package profiling

import (
	"github.com/montanaflynn/stats"

	"denoise/domain/core"
)

// TableProfile describes the shape of a built probability table.
type TableProfile struct {
	Entries  int     `json:"entries"`
	MaxP     float64 `json:"max_p"`
	MinP     float64 `json:"min_p"`
	MeanP    float64 `json:"mean_p"`
	MedianP  float64 `json:"median_p"`
	TailMass float64 `json:"tail_mass"` // cumulative mass at the last rank
	Residual float64 `json:"residual"`  // 1 - TailMass: mass past the table
}

// ProfileTable computes summary statistics over the parallel (ps, cdf)
// arrays of a probability table.
func ProfileTable(ps, cdf []float64) (TableProfile, error) {
	if len(ps) == 0 || len(ps) != len(cdf) {
		return TableProfile{}, core.ErrInsufficientData
	}

	mean, err := stats.Mean(ps)
	if err != nil {
		return TableProfile{}, err
	}
	median, err := stats.Median(ps)
	if err != nil {
		return TableProfile{}, err
	}
	min, err := stats.Min(ps)
	if err != nil {
		return TableProfile{}, err
	}
	max, err := stats.Max(ps)
	if err != nil {
		return TableProfile{}, err
	}

	last := cdf[len(cdf)-1]
	return TableProfile{
		Entries:  len(ps),
		MaxP:     max,
		MinP:     min,
		MeanP:    mean,
		MedianP:  median,
		TailMass: last,
		Residual: 1 - last,
	}, nil
}

// LambdaProfile describes the spread of lambdas across a batch of families.
type LambdaProfile struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// ProfileLambdas computes descriptive statistics over a batch of lambda
// values.
func ProfileLambdas(lams []float64) (LambdaProfile, error) {
	if len(lams) == 0 {
		return LambdaProfile{}, core.ErrInsufficientData
	}

	p := LambdaProfile{Count: len(lams)}
	var err error
	if p.Mean, err = stats.Mean(lams); err != nil {
		return LambdaProfile{}, err
	}
	if p.Median, err = stats.Median(lams); err != nil {
		return LambdaProfile{}, err
	}
	if p.Q25, err = stats.Percentile(lams, 25); err != nil {
		return LambdaProfile{}, err
	}
	if p.Q75, err = stats.Percentile(lams, 75); err != nil {
		return LambdaProfile{}, err
	}
	if p.Min, err = stats.Min(lams); err != nil {
		return LambdaProfile{}, err
	}
	if p.Max, err = stats.Max(lams); err != nil {
		return LambdaProfile{}, err
	}
	return p, nil
}
