package conlat

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ualat/algebra"
	"github.com/katalvlaran/ualat/congruence"
	"github.com/katalvlaran/ualat/partition"
)

// BuildUniverse constructs the congruence lattice of alg.
//
// Phases:
//  1. Collect θ(a,b) for every unordered pair through a compute-once cache
//     (parallel across pairs; see congruence.PrincipalCache).
//  2. Deduplicate into distinct principal congruences, remembering which
//     pair produced which candidate.
//  3. Filter to the join-irreducibles: a candidate equal to the join of
//     the strictly finer candidates below it is reducible and dropped.
//  4. Finalize: sort the join-irreducibles (coarsest first, canonical
//     tie-break) and remap the pair→index side-table in the same step —
//     no intermediate state ever has a sorted list with stale indices.
//  5. Close the join-irreducibles under join into the full universe,
//     bounded by the MaxCongruences budget.
//  6. Derive the covering relation over join-irreducibles.
//
// Error conditions:
//   - ErrAlgebraNil, ErrOptionViolation, ErrTooManyCongruences;
//   - congruence.ErrCancelled when cancelled between phases or pairs;
//   - evaluation errors propagated from the algebra's operations.
//
// Complexity: O(n²) principal-congruence closures plus a join closure that
// is output-sensitive in |Con(A)|.
func BuildUniverse(alg algebra.Algebra, opts ...Option) (*Lattice, error) {
	// 0. Gather options and validate inputs.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if alg == nil {
		return nil, ErrAlgebraNil
	}

	n := alg.UniverseSize()
	cache, err := congruence.NewPrincipalCache(alg)
	if err != nil {
		return nil, err
	}
	l := &Lattice{
		alg:          alg,
		cache:        cache,
		bottom:       partition.New(n),
		principalIdx: make(map[[2]int]int),
	}

	// Degenerate universes have a one-element lattice and nothing to build.
	if n <= 1 {
		l.top = l.bottom
		l.universe = []*partition.Partition{l.bottom}
		l.byKey = map[string]int{l.bottom.String(): 0}
		o.Progress.ReportProgress(1)

		return l, nil
	}

	// 1. Collect all principal congruences (dominant cost center).
	err = cache.PrecomputeAll(
		congruence.WithContext(o.Ctx),
		congruence.WithProgress(o.Progress),
		congruence.WithWorkers(o.Workers),
	)
	if err != nil {
		return nil, err
	}

	// 2. Deduplicate into distinct candidates; pairCand maps each
	//    canonical pair to its candidate's position.
	if err = checkCancel(&o); err != nil {
		return nil, err
	}
	var cands []*partition.Partition
	pairCand := make(map[[2]int]int)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			th, getErr := cache.Get(a, b)
			if getErr != nil {
				return nil, getErr
			}
			pos := -1
			for i, c := range cands {
				if c.Equal(th) {
					pos = i

					break
				}
			}
			if pos < 0 {
				pos = len(cands)
				cands = append(cands, th)
			}
			pairCand[[2]int{a, b}] = pos
		}
	}

	// 3. Join-irreducible filter: candidate i is reducible iff it equals
	//    the join of the candidates strictly finer than it.
	if err = checkCancel(&o); err != nil {
		return nil, err
	}
	jiPos := make([]int, len(cands)) // candidate index → ji index, -1 when dropped
	for i, th := range cands {
		below := partition.New(n)
		for k, other := range cands {
			if k == i {
				continue
			}
			finer, _ := other.IsFinerThan(th) // sizes match by construction
			if finer && !other.Equal(th) {
				below, _ = below.Join(other)
			}
		}
		if below.Equal(th) {
			jiPos[i] = -1 // join of strictly smaller candidates: reducible

			continue
		}
		jiPos[i] = len(l.ji)
		l.ji = append(l.ji, th)
	}
	for pr, cand := range pairCand {
		if jiPos[cand] >= 0 {
			l.principalIdx[pr] = jiPos[cand]
		}
	}

	// 4. Sort + remap in one atomic step.
	l.finalizeJoinIrreducibles()

	// 5. Close under join into the full universe (budget-checked).
	if err = l.closeUniverse(&o); err != nil {
		return nil, err
	}

	// 6. Covering relation over join-irreducibles.
	l.covers = coveringPairs(l.ji)

	o.Progress.ReportProgress(1)

	return l, nil
}

// finalizeJoinIrreducibles sorts ji coarsest-first (ascending block count,
// canonical block-string tie-break) and remaps principalIdx to the new
// positions in the same step. This is the single place ji is ever
// reordered; callers never observe a sorted list with a stale side-table.
func (l *Lattice) finalizeJoinIrreducibles() {
	perm := make([]int, len(l.ji))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(x, y int) bool {
		a, b := l.ji[perm[x]], l.ji[perm[y]]
		if a.NumBlocks() != b.NumBlocks() {
			return a.NumBlocks() < b.NumBlocks()
		}

		return a.String() < b.String()
	})

	sorted := make([]*partition.Partition, len(l.ji))
	newPos := make([]int, len(l.ji))
	for ni, oi := range perm {
		sorted[ni] = l.ji[oi]
		newPos[oi] = ni
	}
	l.ji = sorted
	for pr, oi := range l.principalIdx {
		l.principalIdx[pr] = newPos[oi]
	}
}

// closeUniverse generates every congruence as a join of join-irreducibles,
// starting from the bottom, and derives the top. Growth past the
// MaxCongruences budget aborts with ErrTooManyCongruences rather than
// allocating further.
func (l *Lattice) closeUniverse(o *Options) error {
	univ := []*partition.Partition{l.bottom}
	seen := map[string]int{l.bottom.String(): 0}

	add := func(p *partition.Partition) error {
		key := p.String()
		if _, ok := seen[key]; ok {
			return nil
		}
		if len(univ) >= o.MaxCongruences {
			return fmt.Errorf("%w: budget %d", ErrTooManyCongruences, o.MaxCongruences)
		}
		p.Normalize()
		seen[key] = len(univ)
		univ = append(univ, p)

		return nil
	}

	for _, j := range l.ji {
		if err := add(j); err != nil {
			return err
		}
	}

	// Worklist closure: joining every discovered congruence with every
	// join-irreducible reaches all joins of join-irreducible subsets,
	// which is all of Con(A).
	for i := 0; i < len(univ); i++ {
		if err := checkCancel(o); err != nil {
			return err
		}
		for _, j := range l.ji {
			jn, err := univ[i].Join(j)
			if err != nil {
				return err
			}
			if err = add(jn); err != nil {
				return err
			}
		}
	}

	// The top is the coarsest member (the join of all join-irreducibles).
	top := univ[0]
	for _, p := range univ {
		if p.NumBlocks() < top.NumBlocks() {
			top = p
		}
	}
	l.top = top

	// Deterministic presentation order: finest first, canonical tie-break.
	sort.SliceStable(univ, func(x, y int) bool {
		if univ[x].NumBlocks() != univ[y].NumBlocks() {
			return univ[x].NumBlocks() > univ[y].NumBlocks()
		}

		return univ[x].String() < univ[y].String()
	})
	l.universe = univ
	l.byKey = make(map[string]int, len(univ))
	for i, p := range univ {
		l.byKey[p.String()] = i
	}

	return nil
}

// coveringPairs derives the covering relation over the join-irreducible
// list: (i, j) when ji[i] is strictly finer than ji[j] and no third
// join-irreducible sits strictly between them.
func coveringPairs(ji []*partition.Partition) [][2]int {
	covers := make([][2]int, 0, len(ji))
	for i := range ji {
		for j := range ji {
			if i == j {
				continue
			}
			// Strict refinement requires a block-count drop.
			if ji[i].NumBlocks() <= ji[j].NumBlocks() {
				continue
			}
			finer, _ := ji[i].IsFinerThan(ji[j])
			if !finer {
				continue
			}
			covered := true
			for k := range ji {
				if k == i || k == j {
					continue
				}
				lo, _ := ji[i].IsFinerThan(ji[k])
				hi, _ := ji[k].IsFinerThan(ji[j])
				if lo && hi && !ji[k].Equal(ji[i]) && !ji[k].Equal(ji[j]) {
					covered = false

					break
				}
			}
			if covered {
				covers = append(covers, [2]int{i, j})
			}
		}
	}

	return covers
}

// checkCancel surfaces context or collaborator cancellation between phases.
func checkCancel(o *Options) error {
	if err := o.Ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", congruence.ErrCancelled, err)
	}
	if o.Progress.ShouldCancel() {
		return congruence.ErrCancelled
	}

	return nil
}
