// Package conlat: query façade over a built Lattice.
package conlat

import (
	"fmt"

	"github.com/katalvlaran/ualat/algebra"
	"github.com/katalvlaran/ualat/congruence"
	"github.com/katalvlaran/ualat/order"
	"github.com/katalvlaran/ualat/partition"
)

// refines is the refinement order as an order-package predicate; sizes are
// equal for all partitions inside one lattice.
func refines(a, b *partition.Partition) bool {
	finer, _ := a.IsFinerThan(b)

	return finer
}

// Algebra returns the algebra this lattice was built from.
func (l *Lattice) Algebra() algebra.Algebra { return l.alg }

// Bottom returns the discrete (finest) congruence.
func (l *Lattice) Bottom() *partition.Partition { return l.bottom }

// Top returns the full (coarsest) congruence.
func (l *Lattice) Top() *partition.Partition { return l.top }

// Size returns |Con(A)|, the number of distinct congruences.
func (l *Lattice) Size() int { return len(l.universe) }

// Congruences returns every congruence, finest first. The slice is a copy;
// the partitions are shared and must be treated as read-only.
func (l *Lattice) Congruences() []*partition.Partition {
	out := make([]*partition.Partition, len(l.universe))
	copy(out, l.universe)

	return out
}

// JoinIrreducibles returns the join-irreducible congruences, coarsest
// first. The slice is a copy; the partitions are shared.
func (l *Lattice) JoinIrreducibles() []*partition.Partition {
	out := make([]*partition.Partition, len(l.ji))
	copy(out, l.ji)

	return out
}

// Principal returns θ(a, b) from the underlying cache.
//
// Errors: congruence.ErrBadPair for out-of-range elements.
func (l *Lattice) Principal(a, b int) (*partition.Partition, error) {
	return l.cache.Get(a, b)
}

// PrincipalIndex returns the position of θ(a, b) in JoinIrreducibles().
//
// Error conditions:
//   - ErrIndexOutOfBounds   : a or b outside {0..n-1}.
//   - ErrNotJoinIrreducible : θ(a, b) is join-reducible (or a == b), so it
//     has no join-irreducible position.
func (l *Lattice) PrincipalIndex(a, b int) (int, error) {
	n := l.alg.UniverseSize()
	if a < 0 || a >= n || b < 0 || b >= n {
		return 0, fmt.Errorf("%w: (%d,%d) with universe size %d", ErrIndexOutOfBounds, a, b, n)
	}
	if a > b {
		a, b = b, a
	}
	idx, ok := l.principalIdx[[2]int{a, b}]
	if !ok {
		return 0, fmt.Errorf("%w: θ(%d,%d)", ErrNotJoinIrreducible, a, b)
	}

	return idx, nil
}

// Atoms returns the congruences covering the bottom: the minimal
// join-irreducibles.
func (l *Lattice) Atoms() []*partition.Partition {
	return order.Minimal(l.JoinIrreducibles(), refines)
}

// Coatoms returns the congruences covered by the top: the maximal members
// of the universe below the top.
func (l *Lattice) Coatoms() []*partition.Partition {
	below := make([]*partition.Partition, 0, len(l.universe))
	for _, p := range l.universe {
		if !p.Equal(l.top) {
			below = append(below, p)
		}
	}

	return order.Maximal(below, refines)
}

// CoveringRelation returns the covering pairs (i, j) over join-irreducible
// indices: ji[i] strictly finer than ji[j] with no join-irreducible
// strictly between. The slice is a copy.
func (l *Lattice) CoveringRelation() [][2]int {
	out := make([][2]int, len(l.covers))
	copy(out, l.covers)

	return out
}

// Contains reports whether p is one of this lattice's congruences.
// A partition over a different universe size is never contained.
func (l *Lattice) Contains(p *partition.Partition) bool {
	if p == nil || p.Size() != l.alg.UniverseSize() {
		return false
	}
	_, ok := l.byKey[p.String()]

	return ok
}

// IndexOf returns p's position in Congruences(), or ErrNotCongruence when
// p is not a member.
func (l *Lattice) IndexOf(p *partition.Partition) (int, error) {
	if p == nil || p.Size() != l.alg.UniverseSize() {
		return 0, ErrNotCongruence
	}
	i, ok := l.byKey[p.String()]
	if !ok {
		return 0, ErrNotCongruence
	}

	return i, nil
}

// Join returns a ∨ b, delegating to the partition join and re-verifying
// compatibility. The join of two congruences is always a congruence; the
// verification catches callers feeding partitions that were never
// congruences of this algebra.
//
// Error conditions:
//   - partition.ErrSizeMismatch, ErrNotCongruence, evaluation errors.
func (l *Lattice) Join(a, b *partition.Partition) (*partition.Partition, error) {
	j, err := a.Join(b)
	if err != nil {
		return nil, err
	}

	return l.checked(j)
}

// Meet returns a ∧ b, delegating to the partition meet and re-verifying
// compatibility, as Join does.
func (l *Lattice) Meet(a, b *partition.Partition) (*partition.Partition, error) {
	m, err := a.Meet(b)
	if err != nil {
		return nil, err
	}

	return l.checked(m)
}

// IsCongruence reports whether p is compatible with every operation of the
// lattice's algebra.
func (l *Lattice) IsCongruence(p *partition.Partition) (bool, error) {
	return congruence.IsCongruence(l.alg, p)
}

// checked verifies the congruence property of a freshly derived partition.
func (l *Lattice) checked(p *partition.Partition) (*partition.Partition, error) {
	ok, err := congruence.IsCongruence(l.alg, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotCongruence
	}
	p.Normalize()

	return p, nil
}
