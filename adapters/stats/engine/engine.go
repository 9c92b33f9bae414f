// Package engine ties the evidence calculators together: it applies the
// family/bin scoring policy and evaluates batches of families concurrently
// against one immutable model.
package engine

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/semaphore"

	"denoise/adapters/stats/abundance"
	"denoise/adapters/stats/singleton"
	"denoise/domain/evidence"
	"denoise/domain/read"
)

// Engine scores families against a fixed singleton model with an injected
// Poisson-tail backend. It is stateless apart from its read-only
// configuration and safe for concurrent use.
type Engine struct {
	model   *evidence.Model
	tail    abundance.TailBackend
	workers int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithTailBackend overrides the Poisson-tail backend (default: the exact
// regularized-gamma backend).
func WithTailBackend(tail abundance.TailBackend) Option {
	return func(e *Engine) { e.tail = tail }
}

// WithWorkers bounds the number of concurrent family evaluations in
// EvaluateAll (default: GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = int64(n)
		}
	}
}

// New creates an engine for the given model. The model must already be
// validated and is never mutated.
func New(model *evidence.Model, opts ...Option) *Engine {
	e := &Engine{
		model:   model,
		tail:    abundance.NewGammaTail(),
		workers: int64(runtime.GOMAXPROCS(0)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AbundancePValue applies the abundance scoring policy to one family:
//
//	reads < 1                     -> 1.0, degenerate-count diagnostic
//	reads == 1                    -> 1.0 (singleton evidence handled elsewhere)
//	substitution list absent      -> 0.0 (outside comparability threshold)
//	present, zero substitutions   -> 1.0 (cluster center)
//	lambda == 0                   -> 0.0 (zero expected reads)
//	otherwise                     -> Poisson tail of reads vs lambda*bin.Reads
//
// A singleton family is always scored 1.0 here even when its lambda is
// positive and its substitution list is present; its evidence lives entirely
// in the singleton p-value.
func (e *Engine) AbundancePValue(fam *read.Family, bin *read.Bin, diag *evidence.Collector) float64 {
	switch {
	case fam.Reads < 1:
		diag.Record(evidence.DiagDegenerateReads,
			fmt.Sprintf("no or negative reads (%d) in family", fam.Reads), float64(fam.Reads))
		return 1.0
	case fam.Reads == 1:
		return 1.0
	case !fam.Subs.Comparable():
		return 0.0
	case len(fam.Subs) == 0:
		return 1.0
	case fam.Lambda == 0:
		return 0.0
	}
	return abundance.PValue(fam.Reads, fam.ExpectedReads(bin), e.tail)
}

// SingletonPValue looks the family's lambda up in the model.
func (e *Engine) SingletonPValue(fam *read.Family) float64 {
	return singleton.PValue(fam.Lambda, e.model)
}

// FamilyEvidence is the scored outcome for one family of a batch.
type FamilyEvidence struct {
	Index       int                   `json:"index"`
	AbundanceP  float64               `json:"abundance_p"`
	SingletonP  float64               `json:"singleton_p"`
	Diagnostics []evidence.Diagnostic `json:"diagnostics,omitempty"`
}

// EvaluateAll scores every family of a bin concurrently. The model and the
// families are only read; a weighted semaphore bounds the number of in-flight
// evaluations. Results come back in family order. The context cancels
// outstanding work; families not yet started carry no result in that case.
func (e *Engine) EvaluateAll(ctx context.Context, fams []*read.Family, bin *read.Bin) ([]FamilyEvidence, error) {
	results := make([]FamilyEvidence, len(fams))
	sem := semaphore.NewWeighted(e.workers)

	for i, fam := range fams {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		go func(i int, fam *read.Family) {
			defer sem.Release(1)
			diag := evidence.NewCollector()
			results[i] = FamilyEvidence{
				Index:       i,
				AbundanceP:  e.AbundancePValue(fam, bin, diag),
				SingletonP:  e.SingletonPValue(fam),
				Diagnostics: diag.Events(),
			}
		}(i, fam)
	}

	// Drain the semaphore so every goroutine has finished.
	if err := sem.Acquire(ctx, e.workers); err != nil {
		return nil, err
	}
	sem.Release(e.workers)
	return results, nil
}
