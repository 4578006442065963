// Package algebra: interfaces and sentinel errors for finite algebras.
package algebra

import "errors"

// Sentinel errors for algebra construction and evaluation.
var (
	// ErrBadSize indicates a non-positive universe size.
	ErrBadSize = errors.New("algebra: universe size must be positive")

	// ErrNilOperation indicates a nil Operation passed to a constructor.
	ErrNilOperation = errors.New("algebra: nil operation")

	// ErrBadTable indicates a value table whose length or entries do not
	// match the declared arity and universe size.
	ErrBadTable = errors.New("algebra: malformed operation table")

	// ErrArityMismatch indicates Evaluate was called with the wrong number
	// of arguments.
	ErrArityMismatch = errors.New("algebra: argument count differs from arity")

	// ErrIndexOutOfBounds indicates an argument index ≥ universe size.
	ErrIndexOutOfBounds = errors.New("algebra: element index out of range")

	// ErrUndefined indicates a partial operation has no value on the given
	// arguments. Fatal and never silently defaulted: a congruence cannot be
	// computed over operations undefined on required tuples.
	ErrUndefined = errors.New("algebra: operation undefined on arguments")
)

// Undefined marks a missing entry in a partial operation's value table.
const Undefined = -1

// Operation is one finitary operation over element indices.
//
// Implementations must be pure: Evaluate never mutates the operation and
// returns the same value for the same arguments.
type Operation interface {
	// Symbol returns the operation's display name, unique within its algebra.
	Symbol() string

	// Arity returns the number of arguments (0 for constants).
	Arity() int

	// Evaluate applies the operation to args (each in {0..size-1}).
	// Errors: ErrArityMismatch, ErrIndexOutOfBounds, ErrUndefined.
	Evaluate(args []int) (int, error)
}

// Algebra is the minimal view of a finite algebraic structure consumed by
// the congruence engine: a universe {0..n-1} and an ordered operation list.
type Algebra interface {
	// UniverseSize returns n, the number of elements.
	UniverseSize() int

	// Operations returns the operation list in a stable order.
	Operations() []Operation
}
