// Package partition implements equivalence relations on a fixed universe
// {0..n-1} as a union-find (disjoint-set) forest with path compression and
// union by rank.
//
// 🚀 What is a Partition?
//
//	A grouping of {0..n-1} into disjoint, covering blocks. Partitions of a
//	fixed n form a lattice under the refinement order:
//	  • p ≤ q ("p is finer than q") iff every block of p sits inside a block of q
//	  • Join — the finest partition coarser than both operands
//	  • Meet — the coarsest partition finer than both operands
//
// ✨ Key features:
//   - near-constant-time Find / Union / SameBlock (inverse-Ackermann amortized)
//   - lazily cached, deterministic block enumeration (blocks ordered by least
//     element, elements ascending), invalidated on every merge
//   - Join, Meet, IsFinerThan, Equal — the full refinement-lattice toolkit
//   - strict sentinel errors: out-of-range indices and size mismatches never
//     truncate silently
//
// ⚙️ Usage:
//
//	p := partition.New(4)        // |0|1|2|3|
//	p.Union(0, 1)                // |0 1|2|3|
//	q := partition.New(4)
//	q.Union(2, 3)                // |0|1|2 3|
//	j, _ := p.Join(q)            // |0 1|2 3|
//
// Mutation discipline: once a Partition is shared (cached, stored in a
// lattice), treat it as immutable — refine a Clone instead.
//
// Performance:
//
//   - Find/Union/SameBlock: O(α(n)) amortized
//   - Blocks: O(n) to rebuild after a mutation, O(1) cached
//   - Join:  O(n·α(n)); Meet: O(n·α(n)) plus one map pass
package partition
