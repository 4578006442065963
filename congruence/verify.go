package congruence

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/ualat/algebra"
	"github.com/katalvlaran/ualat/partition"
)

// IsCongruence reports whether p is compatible with every operation of alg:
// for each operation f and tuple args, f(args) must share a block with
// f applied to the representatives of args.
//
// This is a one-pass verifier, not a generator — it never coarsens p.
//
// Error conditions:
//   - ErrAlgebraNil   : alg is nil.
//   - ErrPartitionNil : p is nil.
//   - ErrSizeMismatch : p covers a different universe than alg.
//   - evaluation errors propagated from Operation.Evaluate (fatal).
//
// Complexity: O(Σ_f n^arity(f) · arity(f)).
func IsCongruence(alg algebra.Algebra, p *partition.Partition) (bool, error) {
	if alg == nil {
		return false, ErrAlgebraNil
	}
	if p == nil {
		return false, ErrPartitionNil
	}
	n := alg.UniverseSize()
	if p.Size() != n {
		return false, ErrSizeMismatch
	}

	for _, op := range alg.Operations() {
		if op == nil {
			return false, algebra.ErrNilOperation
		}
		ok, err := opCompatible(op, n, p)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}

// opCompatible checks one operation against p over every argument tuple.
func opCompatible(op algebra.Operation, n int, p *partition.Partition) (bool, error) {
	k := op.Arity()
	if k == 0 || n == 0 {
		return true, nil
	}

	args := make([]int, k)
	reps := make([]int, k)
	for {
		// 1. Evaluate on the tuple itself.
		v, err := op.Evaluate(args)
		if err != nil {
			return false, pkgerrors.Wrapf(err, "congruence: verifying %s on %v", op.Symbol(), args)
		}
		if v < 0 || v >= n {
			return false, fmt.Errorf("%w: %s%v evaluated to %d", algebra.ErrIndexOutOfBounds, op.Symbol(), args, v)
		}

		// 2. Evaluate on the tuple of block representatives.
		for i, a := range args {
			reps[i], _ = p.Find(a) // size checked by caller
		}
		w, err := op.Evaluate(reps)
		if err != nil {
			return false, pkgerrors.Wrapf(err, "congruence: verifying %s on representatives %v", op.Symbol(), reps)
		}
		if w < 0 || w >= n {
			return false, fmt.Errorf("%w: %s evaluated to %d", algebra.ErrIndexOutOfBounds, op.Symbol(), w)
		}

		// 3. Compatibility demands the two results share a block.
		same, _ := p.SameBlock(v, w) // both results validated above
		if !same {
			return false, nil
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

	return true, nil
}
