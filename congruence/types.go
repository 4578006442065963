// Package congruence: options, progress collaborator, and sentinel errors.
package congruence

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for congruence computation.
var (
	// ErrAlgebraNil is returned when a nil Algebra is passed.
	ErrAlgebraNil = errors.New("congruence: algebra is nil")

	// ErrPartitionNil is returned when a nil Partition is passed.
	ErrPartitionNil = errors.New("congruence: partition is nil")

	// ErrBadPair indicates a generating pair element outside {0..n-1}.
	ErrBadPair = errors.New("congruence: generating pair element out of range")

	// ErrSizeMismatch indicates a partition over a different universe than
	// the algebra's.
	ErrSizeMismatch = errors.New("congruence: partition size differs from universe")

	// ErrCancelled is returned when the context or the Progress
	// collaborator requested cancellation between closure passes.
	ErrCancelled = errors.New("congruence: computation cancelled")

	// ErrCacheLimitExceeded is returned when storing another principal
	// congruence would grow the cache past the configured MaxCached bound.
	ErrCacheLimitExceeded = errors.New("congruence: cache growth exceeds configured limit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("congruence: invalid option supplied")
)

// Progress is the external progress/cancellation collaborator. A no-op
// implementation is always accepted; see NopProgress.
//
// When PrecomputeAll runs with more than one worker, implementations must
// be safe for concurrent use.
type Progress interface {
	// ReportProgress receives a completion fraction in [0, 1].
	ReportProgress(fraction float64)

	// ShouldCancel is polled between closure passes (and between pairs in
	// bulk precomputation); returning true aborts with ErrCancelled.
	ShouldCancel() bool
}

// NopProgress ignores reports and never cancels.
type NopProgress struct{}

// ReportProgress discards the fraction.
func (NopProgress) ReportProgress(float64) {}

// ShouldCancel always reports false.
func (NopProgress) ShouldCancel() bool { return false }

// Option configures congruence computation via functional arguments.
// Invalid values are recorded internally and surfaced as
// ErrOptionViolation when the computation is invoked.
type Option func(*Options)

// Options holds parameters customizing Generate, Principal and the
// PrincipalCache bulk operations.
type Options struct {
	// Ctx allows cancellation and deadlines; polled between closure passes.
	Ctx context.Context

	// Progress receives completion fractions and may request cancellation.
	Progress Progress

	// Workers bounds the parallelism of PrecomputeAll. 0 means one worker
	// per available CPU. Ignored by Generate and Principal, whose closure
	// loop is single-threaded.
	Workers int

	// MaxCached caps the number of principal congruences the cache may
	// hold. 0 means unbounded (the cache is at most n(n-1)/2 entries, far
	// below the Bell-number growth the lattice budget guards against).
	// Honored by PrincipalCache.Get and PrecomputeAll.
	MaxCached int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - NopProgress (no reporting, no cancellation)
//   - Workers == 0 (one worker per CPU for bulk operations)
//   - MaxCached == 0 (unbounded cache).
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Progress:  NopProgress{},
		Workers:   0,
		MaxCached: 0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithProgress plugs in a Progress collaborator.
func WithProgress(p Progress) Option {
	return func(o *Options) {
		if p != nil {
			o.Progress = p
		}
	}
}

// WithWorkers bounds PrecomputeAll parallelism.
//
//	n > 0 : at most n concurrent pair computations
//	n == 0: one worker per available CPU
//	n < 0 : invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}

// WithMaxCached caps the principal-congruence cache size.
//
//	n > 0 : fail with ErrCacheLimitExceeded before storing entry n+1
//	n == 0: unbounded
//	n < 0 : invalid option → ErrOptionViolation
func WithMaxCached(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCached cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxCached = n
	}
}

// gatherOptions applies opts onto defaults and surfaces recorded errors.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
