// Package binrel: in-place closures, structural predicates, and the bridge
// back to partition.
package binrel

import "github.com/katalvlaran/ualat/partition"

// ReflexiveClosure adds every (x, x) pair in place.
//
// Complexity: O(n).
func (r *Relation) ReflexiveClosure() {
	for x := 0; x < r.size; x++ {
		r.cells[x*r.size+x] = true
	}
}

// SymmetricClosure adds (b, a) for every present (a, b), in place.
//
// Complexity: O(n²).
func (r *Relation) SymmetricClosure() {
	for a := 0; a < r.size; a++ {
		for b := 0; b < a; b++ {
			if r.cells[a*r.size+b] || r.cells[b*r.size+a] {
				r.cells[a*r.size+b] = true
				r.cells[b*r.size+a] = true
			}
		}
	}
}

// TransitiveClosure closes r under transitivity in place using Warshall's
// algorithm.
//
// Complexity: O(n³).
func (r *Relation) TransitiveClosure() {
	for k := 0; k < r.size; k++ {
		for a := 0; a < r.size; a++ {
			if !r.cells[a*r.size+k] {
				continue
			}
			for b := 0; b < r.size; b++ {
				if r.cells[k*r.size+b] {
					r.cells[a*r.size+b] = true
				}
			}
		}
	}
}

// EquivalenceClosure closes r into the smallest equivalence relation
// containing it: reflexive, then symmetric, then transitive.
//
// Complexity: O(n³), dominated by the transitive step.
func (r *Relation) EquivalenceClosure() {
	r.ReflexiveClosure()
	r.SymmetricClosure()
	r.TransitiveClosure()
}

// IsReflexive reports whether every (x, x) is present.
func (r *Relation) IsReflexive() bool {
	for x := 0; x < r.size; x++ {
		if !r.cells[x*r.size+x] {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether (a, b) present implies (b, a) present.
func (r *Relation) IsSymmetric() bool {
	for a := 0; a < r.size; a++ {
		for b := 0; b < a; b++ {
			if r.cells[a*r.size+b] != r.cells[b*r.size+a] {
				return false
			}
		}
	}

	return true
}

// IsTransitive reports whether (a, b) and (b, c) present imply (a, c).
//
// Complexity: O(n³).
func (r *Relation) IsTransitive() bool {
	for a := 0; a < r.size; a++ {
		for b := 0; b < r.size; b++ {
			if !r.cells[a*r.size+b] {
				continue
			}
			for c := 0; c < r.size; c++ {
				if r.cells[b*r.size+c] && !r.cells[a*r.size+c] {
					return false
				}
			}
		}
	}

	return true
}

// IsEquivalence reports whether r is reflexive, symmetric and transitive.
func (r *Relation) IsEquivalence() bool {
	return r.IsReflexive() && r.IsSymmetric() && r.IsTransitive()
}

// ToPartition converts an equivalence relation into its Partition.
//
// Error conditions:
//   - ErrNotEquivalence : r fails IsEquivalence.
//
// Complexity: O(n³) for the check, O(n²·α(n)) for the conversion.
func (r *Relation) ToPartition() (*partition.Partition, error) {
	if !r.IsEquivalence() {
		return nil, ErrNotEquivalence
	}

	p := partition.New(r.size)
	for a := 0; a < r.size; a++ {
		for b := a + 1; b < r.size; b++ {
			if r.cells[a*r.size+b] {
				// Indices validated by construction.
				_, _ = p.Union(a, b)
			}
		}
	}

	return p, nil
}
