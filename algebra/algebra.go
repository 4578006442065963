package algebra

import "fmt"

// Basic is the canonical Algebra implementation: a fixed universe size plus
// an ordered, immutable operation list.
type Basic struct {
	size int
	ops  []Operation
}

// New validates and constructs a Basic algebra.
//
// Error conditions:
//   - ErrBadSize      : size < 1.
//   - ErrNilOperation : any op is nil.
//   - ErrBadTable     : a TableOp was built for a different universe size.
//
// Complexity: O(len(ops)).
func New(size int, ops ...Operation) (*Basic, error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	own := make([]Operation, len(ops))
	for i, op := range ops {
		if op == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilOperation, i)
		}
		// Table-backed operations know their universe size; reject mismatches
		// here instead of failing deep inside a closure loop.
		if top, ok := op.(*TableOp); ok && top.Size() != size {
			return nil, fmt.Errorf("%w: %s built for size %d, algebra has %d",
				ErrBadTable, op.Symbol(), top.Size(), size)
		}
		own[i] = op
	}

	return &Basic{size: size, ops: own}, nil
}

// UniverseSize returns n, the number of elements.
func (a *Basic) UniverseSize() int { return a.size }

// Operations returns a copy of the operation list (stable order).
func (a *Basic) Operations() []Operation {
	out := make([]Operation, len(a.ops))
	copy(out, a.ops)

	return out
}

// Namer generates unique operation symbols per arity. It is an explicit
// value, passed to whoever needs generated names; there is no process-wide
// counter, so independent builds never share state.
type Namer struct {
	next map[int]int
}

// NewNamer returns a fresh naming context.
func NewNamer() *Namer {
	return &Namer{next: make(map[int]int)}
}

// Fresh returns the next unused symbol for the given arity, e.g. "f0_2"
// for the first binary symbol, "f1_2" for the second.
func (nm *Namer) Fresh(arity int) string {
	i := nm.next[arity]
	nm.next[arity] = i + 1

	return fmt.Sprintf("f%d_%d", i, arity)
}
