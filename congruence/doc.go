// Package congruence computes congruences of finite algebras: equivalence
// relations compatible with every operation.
//
// 🚀 What is Cg?
//
//	Generate (traditionally "Cg") takes an algebra and a set of generating
//	pairs and returns the smallest congruence containing those pairs — the
//	least fixed point of an iterative closure:
//	  1. union all generating pairs into a discrete partition
//	  2. for every operation f and every pair of argument tuples differing
//	     in at most one coordinate whose differing values are already
//	     related, union f(args) with f(args′)
//	  3. repeat until a full pass makes no new unions
//	Checking only single-coordinate perturbations keeps the pass O(n^k·k·n)
//	per operation instead of the full n^k × n^k tuple cross product; the
//	re-scan to fixed point chains multi-coordinate differences one
//	coordinate at a time, so the pruning loses nothing.
//
// ✨ Key features:
//   - Generate / Principal — least congruence of arbitrary or single pairs
//   - IsCongruence — one-pass compatibility verifier (no closure)
//   - PrincipalCache — memoized θ(a,b) with an at-most-one-computation-
//     per-key guarantee under concurrency (singleflight), parallel
//     PrecomputeAll across independent pairs (errgroup), and an optional
//     growth budget (WithMaxCached → ErrCacheLimitExceeded)
//   - cancellation & progress via a pluggable Progress collaborator,
//     polled between closure passes — a cancelled call returns ErrCancelled
//     and never a half-closed partition
//
// ⚙️ Usage:
//
//	theta, err := congruence.Principal(alg, 0, 1)
//	cache, _  := congruence.NewPrincipalCache(alg)
//	_ = cache.PrecomputeAll(congruence.WithWorkers(4))
//
// Guarantees: Generate(alg, nil) is the discrete partition; Generate is
// monotone in its pair set and idempotent; results are Normalized, so
// concurrent reads of a shared result are race-free.
//
// Performance: each closure pass is O(Σ_f n^arity(f)·arity(f)·n); the
// number of passes is bounded by n-1 because every pass that changes
// anything strictly decreases the block count.
package congruence
