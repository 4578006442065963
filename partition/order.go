// Package partition: the refinement-lattice operations — Join, Meet,
// IsFinerThan and Equal.
package partition

// Join returns the finest partition coarser than both p and o: a copy of p
// into which every block of o has been merged.
//
// Error conditions:
//   - ErrSizeMismatch : p and o cover different universes.
//
// Complexity: O(n·α(n)).
func (p *Partition) Join(o *Partition) (*Partition, error) {
	if o == nil || p.size != o.size {
		return nil, ErrSizeMismatch
	}

	// 1. Start from a copy of p (never mutate a shared operand).
	out := p.Clone()

	// 2. For every block of o, union all members into the copy.
	for _, blk := range o.Blocks() {
		for _, x := range blk[1:] {
			out.unite(blk[0], x)
		}
	}

	return out, nil
}

// Meet returns the coarsest partition finer than both p and o: elements are
// related in the result iff they are related in p AND in o.
//
// This is the one lattice operation that needs a full block-intersection
// pass instead of plain forest manipulation: each element is keyed by its
// (p-root, o-root) pair, and elements sharing a key are merged.
//
// Error conditions:
//   - ErrSizeMismatch : p and o cover different universes.
//
// Complexity: O(n·α(n)) plus one map pass.
func (p *Partition) Meet(o *Partition) (*Partition, error) {
	if o == nil || p.size != o.size {
		return nil, ErrSizeMismatch
	}

	out := New(p.size)
	// first maps each (p-block, o-block) intersection to the first element
	// seen in it; later elements with the same key join that first element.
	type key struct{ a, b int }
	first := make(map[key]int, p.size)
	for x := 0; x < p.size; x++ {
		k := key{p.root(x), o.root(x)}
		if f, ok := first[k]; ok {
			out.unite(f, x)
		} else {
			first[k] = x
		}
	}

	return out, nil
}

// IsFinerThan reports whether p ≤ o in the refinement order: every block of
// p is a subset of some block of o. The order is reflexive (p ≤ p).
//
// Error conditions:
//   - ErrSizeMismatch : p and o cover different universes.
//
// Complexity: O(n·α(n)).
func (p *Partition) IsFinerThan(o *Partition) (bool, error) {
	if o == nil || p.size != o.size {
		return false, ErrSizeMismatch
	}

	// p ≤ o iff every element is o-related to its p-representative.
	for x := 0; x < p.size; x++ {
		if o.root(x) != o.root(p.root(x)) {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports whether p and o are the same equivalence relation
// (regardless of forest shape). Partitions over different universes are
// never equal.
//
// Complexity: O(n·α(n)).
func (p *Partition) Equal(o *Partition) bool {
	if o == nil || p.size != o.size || p.nBlocks != o.nBlocks {
		return false
	}

	// With equal block counts, mutual refinement reduces to one direction.
	fine, _ := p.IsFinerThan(o)

	return fine
}
