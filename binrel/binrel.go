package binrel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ualat/partition"
)

// Sentinel errors for relation operations.
var (
	// ErrIndexOutOfBounds indicates an element index outside {0..n-1}.
	ErrIndexOutOfBounds = errors.New("binrel: element index out of range")

	// ErrSizeMismatch indicates a binary operation on relations of
	// different sizes.
	ErrSizeMismatch = errors.New("binrel: relation sizes differ")

	// ErrNotEquivalence indicates ToPartition was called on a relation that
	// is not reflexive, symmetric and transitive.
	ErrNotEquivalence = errors.New("binrel: relation is not an equivalence")
)

// Relation is a square boolean relation on {0..n-1}. The zero value is not
// usable; construct with New or FromPartition. Not safe for concurrent
// mutation.
type Relation struct {
	size int
	// cells is row-major: cells[a*size+b] == true iff a is related to b.
	cells []bool
}

// New returns the empty relation on {0..size-1}.
// Panics if size is negative (programmer error).
//
// Complexity: O(size²).
func New(size int) *Relation {
	if size < 0 {
		panic("binrel: New: negative size")
	}

	return &Relation{size: size, cells: make([]bool, size*size)}
}

// FromPartition returns the equivalence relation induced by p: a related to
// b iff they share a block.
//
// Complexity: O(n²) via per-block squares.
func FromPartition(p *partition.Partition) *Relation {
	r := New(p.Size())
	for _, blk := range p.Blocks() {
		for _, a := range blk {
			for _, b := range blk {
				r.cells[a*r.size+b] = true
			}
		}
	}

	return r
}

// Size returns n.
func (r *Relation) Size() int { return r.size }

// check validates one index.
func (r *Relation) check(x int) error {
	if x < 0 || x >= r.size {
		return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfBounds, x, r.size)
	}

	return nil
}

// Set relates a to b.
//
// Errors: ErrIndexOutOfBounds.
func (r *Relation) Set(a, b int) error {
	if err := r.check(a); err != nil {
		return err
	}
	if err := r.check(b); err != nil {
		return err
	}
	r.cells[a*r.size+b] = true

	return nil
}

// Has reports whether a is related to b.
//
// Errors: ErrIndexOutOfBounds.
func (r *Relation) Has(a, b int) (bool, error) {
	if err := r.check(a); err != nil {
		return false, err
	}
	if err := r.check(b); err != nil {
		return false, err
	}

	return r.cells[a*r.size+b], nil
}

// Clone returns an independent copy of r.
func (r *Relation) Clone() *Relation {
	c := New(r.size)
	copy(c.cells, r.cells)

	return c
}

// Equal reports whether r and o contain exactly the same pairs.
func (r *Relation) Equal(o *Relation) bool {
	if o == nil || r.size != o.size {
		return false
	}
	for i, v := range r.cells {
		if v != o.cells[i] {
			return false
		}
	}

	return true
}

// Compose returns the relational composition r∘s:
// (a, c) present iff some b has (a, b) in r and (b, c) in s.
//
// Error conditions:
//   - ErrSizeMismatch : r and s have different sizes.
//
// Complexity: O(n³).
func (r *Relation) Compose(s *Relation) (*Relation, error) {
	if s == nil || r.size != s.size {
		return nil, ErrSizeMismatch
	}

	out := New(r.size)
	for a := 0; a < r.size; a++ {
		for b := 0; b < r.size; b++ {
			if !r.cells[a*r.size+b] {
				continue
			}
			for c := 0; c < r.size; c++ {
				if s.cells[b*r.size+c] {
					out.cells[a*r.size+c] = true
				}
			}
		}
	}

	return out, nil
}
