package congruence

import (
	"fmt"
	"sort"

	pkgerrors "github.com/pkg/errors"
	"github.com/xtgo/set"

	"github.com/katalvlaran/ualat/algebra"
	"github.com/katalvlaran/ualat/partition"
)

// pairSlice orders generating pairs lexicographically for set.Uniq.
type pairSlice [][2]int

func (s pairSlice) Len() int { return len(s) }
func (s pairSlice) Less(i, j int) bool {
	return s[i][0] < s[j][0] || (s[i][0] == s[j][0] && s[i][1] < s[j][1])
}
func (s pairSlice) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Generate computes Cg(pairs): the smallest congruence of alg containing
// every generating pair.
//
// Algorithm (least fixed point):
//  1. Canonicalize pairs (unordered, deduplicated, identities dropped) and
//     union them into a discrete partition.
//  2. Repeat until a full pass makes no new unions: for each operation f of
//     arity k and each argument tuple, perturb one coordinate at a time to
//     an already-related value and union f(args) with f(args′).
//  3. The pass loop terminates because every productive pass strictly
//     decreases the block count, bounded below by 1.
//
// Guarantees: Generate(alg, nil) is the discrete partition; the result is
// the least congruence containing the pairs (monotone in the pair set,
// idempotent under reapplication), returned Normalized so shared reads are
// race-free.
//
// Error conditions:
//   - ErrAlgebraNil         : alg is nil.
//   - ErrBadPair            : a pair element outside {0..n-1}.
//   - ErrOptionViolation    : an invalid Option was supplied.
//   - ErrCancelled          : the context or Progress collaborator
//     cancelled between passes; no partition is returned.
//   - evaluation errors     : propagated from Operation.Evaluate, wrapped
//     with the operation symbol and arguments; fatal for the whole call.
//
// Complexity: O(passes · Σ_f n^arity(f)·arity(f)·n) with passes ≤ n-1.
func Generate(alg algebra.Algebra, pairs [][2]int, opts ...Option) (*partition.Partition, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if alg == nil {
		return nil, ErrAlgebraNil
	}
	n := alg.UniverseSize()
	if n <= 0 {
		return partition.New(0), nil
	}

	// 1. Canonicalize the generating pairs: orient (lo, hi), drop
	//    identities, sort lexicographically and deduplicate.
	canon := make(pairSlice, 0, len(pairs))
	for _, pr := range pairs {
		a, b := pr[0], pr[1]
		if a < 0 || a >= n || b < 0 || b >= n {
			return nil, fmt.Errorf("%w: (%d,%d) with universe size %d", ErrBadPair, a, b, n)
		}
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		canon = append(canon, [2]int{a, b})
	}
	sort.Sort(canon)
	canon = canon[:set.Uniq(canon)]

	// 2. Seed the partition with the generating pairs.
	part := partition.New(n)
	for _, pr := range canon {
		_, _ = part.Union(pr[0], pr[1]) // indices validated above
	}

	// 3. Close under all operations until a fixed point is reached.
	ops := alg.Operations()
	for {
		if err = checkCancel(&o); err != nil {
			return nil, err
		}
		reportCollapse(&o, n, part.NumBlocks())

		changed := false
		for i, op := range ops {
			if op == nil {
				return nil, fmt.Errorf("%w: position %d", algebra.ErrNilOperation, i)
			}
			merged, opErr := closeUnderOp(op, n, part)
			if opErr != nil {
				return nil, opErr
			}
			changed = changed || merged
		}
		if !changed {
			break
		}
	}
	reportCollapse(&o, n, part.NumBlocks())

	// 4. Normalize so the (possibly shared) result supports concurrent reads.
	part.Normalize()

	return part, nil
}

// Principal computes θ(a, b) = Generate(alg, {(a, b)}): the smallest
// congruence relating a and b.
func Principal(alg algebra.Algebra, a, b int, opts ...Option) (*partition.Partition, error) {
	return Generate(alg, [][2]int{{a, b}}, opts...)
}

// closeUnderOp performs one full pass of one-step-neighbor unions for a
// single operation, reporting whether any union changed the partition.
//
// For each tuple args and coordinate i, only values y > args[i] already
// related to args[i] are tried; the y < args[i] cases are covered when the
// odometer reaches the perturbed tuple as a base tuple of its own.
func closeUnderOp(op algebra.Operation, n int, part *partition.Partition) (bool, error) {
	k := op.Arity()
	if k == 0 {
		// Constants relate nothing by themselves.
		return false, nil
	}

	args := make([]int, k)
	changed := false
	for {
		base, err := op.Evaluate(args)
		if err != nil {
			return false, pkgerrors.Wrapf(err, "congruence: evaluating %s on %v", op.Symbol(), args)
		}
		if base < 0 || base >= n {
			return false, fmt.Errorf("%w: %s%v evaluated to %d", algebra.ErrIndexOutOfBounds, op.Symbol(), args, base)
		}

		for i := 0; i < k; i++ {
			orig := args[i]
			for y := orig + 1; y < n; y++ {
				related, _ := part.SameBlock(orig, y) // loop bounds keep indices valid
				if !related {
					continue
				}
				args[i] = y
				alt, evalErr := op.Evaluate(args)
				args[i] = orig
				if evalErr != nil {
					return false, pkgerrors.Wrapf(evalErr, "congruence: evaluating %s with coordinate %d=%d", op.Symbol(), i, y)
				}
				if alt < 0 || alt >= n {
					return false, fmt.Errorf("%w: %s evaluated to %d", algebra.ErrIndexOutOfBounds, op.Symbol(), alt)
				}
				if alt == base {
					continue
				}
				merged, _ := part.Union(base, alt) // both results validated above
				changed = changed || merged
			}
		}

		// Row-major odometer over {0..n-1}^k.
		j := k - 1
		for ; j >= 0; j-- {
			args[j]++
			if args[j] < n {
				break
			}
			args[j] = 0
		}
		if j < 0 {
			break
		}
	}

	return changed, nil
}

// checkCancel surfaces context or collaborator cancellation as ErrCancelled.
func checkCancel(o *Options) error {
	if err := o.Ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	if o.Progress.ShouldCancel() {
		return ErrCancelled
	}

	return nil
}

// reportCollapse reports the collapse fraction (n-blocks)/(n-1) — 0 for the
// discrete partition, 1 for the full one. A heuristic, but monotone across
// passes.
func reportCollapse(o *Options, n, blocks int) {
	if n <= 1 {
		o.Progress.ReportProgress(1)

		return
	}
	o.Progress.ReportProgress(float64(n-blocks) / float64(n-1))
}
