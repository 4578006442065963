// Package conlat: options, sentinel errors and the Lattice type.
package conlat

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ualat/algebra"
	"github.com/katalvlaran/ualat/congruence"
	"github.com/katalvlaran/ualat/partition"
)

// DefaultMaxCongruences bounds the congruence universe when no explicit
// budget is configured. Con(A) can be as large as the Bell number of the
// universe size, so growth past this bound fails fast with
// ErrTooManyCongruences instead of exhausting process memory.
const DefaultMaxCongruences = 1 << 16

// Sentinel errors for lattice construction and queries.
var (
	// ErrAlgebraNil is returned when a nil Algebra is passed.
	ErrAlgebraNil = errors.New("conlat: algebra is nil")

	// ErrTooManyCongruences is returned when the congruence universe would
	// exceed the configured MaxCongruences budget.
	ErrTooManyCongruences = errors.New("conlat: congruence universe exceeds configured limit")

	// ErrIndexOutOfBounds indicates an element index outside {0..n-1}.
	ErrIndexOutOfBounds = errors.New("conlat: element index out of range")

	// ErrNotJoinIrreducible indicates PrincipalIndex was asked for a pair
	// whose principal congruence is join-reducible and therefore absent
	// from the join-irreducible list.
	ErrNotJoinIrreducible = errors.New("conlat: principal congruence is not join-irreducible")

	// ErrNotCongruence indicates a partition that was expected to be a
	// congruence of the lattice's algebra but is not.
	ErrNotCongruence = errors.New("conlat: partition is not a congruence")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("conlat: invalid option supplied")
)

// Option configures lattice construction via functional arguments.
type Option func(*Options)

// Options holds parameters customizing BuildUniverse.
type Options struct {
	// Ctx allows cancellation and deadlines; polled between build phases.
	Ctx context.Context

	// Progress receives completion fractions and may request cancellation.
	Progress congruence.Progress

	// Workers bounds parallelism of principal-congruence collection.
	// 0 means one worker per available CPU.
	Workers int

	// MaxCongruences caps the size of the congruence universe.
	MaxCongruences int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no-op progress, per-CPU workers, DefaultMaxCongruences budget.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Progress:       congruence.NopProgress{},
		Workers:        0,
		MaxCongruences: DefaultMaxCongruences,
		err:            nil,
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
func WithProgress(p congruence.Progress) Option {
	return func(o *Options) {
		if p != nil {
			o.Progress = p
		}
	}
}

// WithWorkers bounds principal-congruence collection parallelism.
//
//	n > 0 : at most n concurrent computations
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

// WithMaxCongruences caps the congruence universe size.
//
//	n ≥ 1 : fail with ErrTooManyCongruences past n congruences
//	n < 1 : invalid option → ErrOptionViolation
func WithMaxCongruences(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxCongruences must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxCongruences = n
	}
}

// Lattice is the congruence lattice Con(A) of one finite algebra: the
// join-irreducible congruences, the pair→index side-table, the full
// universe closed under join, and the derived structure (atoms, coatoms,
// covering relation).
//
// A built Lattice is immutable; all accessors are safe for concurrent use.
// Returned partitions are shared — Clone before mutating.
type Lattice struct {
	alg   algebra.Algebra
	cache *congruence.PrincipalCache

	bottom *partition.Partition
	top    *partition.Partition

	// ji is the join-irreducible list, coarsest first (ascending block
	// count, then canonical block string).
	ji []*partition.Partition

	// principalIdx maps each canonical generating pair (a<b) whose θ(a,b)
	// is join-irreducible to its index in ji. Remapped atomically whenever
	// ji is reordered; a stale index here is a correctness bug.
	principalIdx map[[2]int]int

	// universe is every congruence of the algebra, finest first.
	universe []*partition.Partition

	// byKey maps canonical block strings to universe positions, backing
	// Contains and IndexOf.
	byKey map[string]int

	// covers lists the covering relation over ji indices: (i, j) when
	// ji[i] < ji[j] with no join-irreducible strictly between.
	covers [][2]int
}
