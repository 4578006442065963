// Package binrel implements square boolean relations on {0..n-1}: the
// generalization of Partition to arbitrary (not necessarily equivalence)
// binary relations.
//
// 🚀 What is a Relation?
//
//	An n×n boolean matrix: Has(a, b) means "a is related to b". Closures
//	turn arbitrary relations into structured ones:
//	  • ReflexiveClosure  — add every (x, x)
//	  • SymmetricClosure  — add (b, a) for every (a, b)
//	  • TransitiveClosure — Warshall's algorithm, O(n³)
//	  • EquivalenceClosure — all three, yielding the smallest equivalence
//	    relation containing the input
//
// ✨ Key features:
//   - Compose(s): relational composition r∘s
//   - IsReflexive / IsSymmetric / IsTransitive / IsEquivalence predicates
//   - bridges to partition: FromPartition and ToPartition (the latter
//     requires an equivalence relation and fails otherwise)
//
// ⚙️ Usage:
//
//	r := binrel.New(3)
//	_ = r.Set(0, 1)
//	r.EquivalenceClosure()
//	p, _ := r.ToPartition()   // |0 1|2|
//
// Performance: closures are O(n²) except transitive (O(n³)); memory O(n²).
package binrel
