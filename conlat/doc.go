// Package conlat builds and queries the congruence lattice Con(A) of a
// finite algebra.
//
// 🚀 What is Con(A)?
//
//	The set of all congruences of A, ordered by refinement. It is a
//	lattice: closed under join and meet, with the discrete partition at
//	the bottom and the one-block partition at the top. BuildUniverse
//	constructs it from principal congruences:
//	  1. collect θ(a,b) for every unordered pair (parallel, memoized)
//	  2. deduplicate and keep the join-irreducible ones — a principal
//	     congruence equal to the join of the strictly smaller principal
//	     congruences below it is reducible and dropped
//	  3. finalize: sort the join-irreducibles (coarsest first) and remap
//	     the pair→index side-table in the same atomic step, so the table
//	     never points at a stale position
//	  4. close the join-irreducibles under join into the full universe,
//	     then derive atoms, coatoms and the covering relation
//
// ✨ Key features:
//   - deterministic ordering everywhere (stable sorts, canonical block keys)
//   - explicit memory budget: the universe can be Bell-number large, so
//     WithMaxCongruences fails fast with ErrTooManyCongruences instead of
//     exhausting memory
//   - cancellation & progress via congruence.Progress, honored across all
//     build phases
//   - Join/Meet on lattice members re-verify compatibility, so a stray
//     non-congruence partition can never masquerade as a lattice element
//
// ⚙️ Usage:
//
//	lat, err := conlat.BuildUniverse(alg, conlat.WithMaxCongruences(10_000))
//	if err != nil { ... }
//	fmt.Println(lat.Size(), len(lat.Atoms()), len(lat.Coatoms()))
//
// Performance: dominated by principal-congruence generation (O(n²) closure
// calls) and the join closure (output-sensitive in |Con(A)|).
package conlat
