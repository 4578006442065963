// Package algebra defines the finite-algebra view consumed by the whole
// library: a universe {0..n-1} together with an ordered list of finitary
// operations over element indices.
//
// 🚀 What is a finite algebra here?
//
//	A universe size n plus operations f : {0..n-1}^k → {0..n-1}.
//	Everything downstream (congruence generation, lattice building) sees
//	algebras only through two small interfaces:
//	  • Algebra   — UniverseSize() and Operations()
//	  • Operation — Symbol(), Arity() and Evaluate(args)
//
// ✨ Key features:
//   - TableOp: operations backed by a row-major value table, validated on
//     construction, with optional undefined (partial) entries
//   - Convenience constructors: ConstantOp, UnaryOp, BinaryOp
//   - Namer: an explicit naming context for auto-generated operation
//     symbols — no package-global counters, so parallel builds and tests
//     never interfere
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ualat/algebra"
//
//	// the two-element meet-semilattice ({0,1}, ∧)
//	meet, _ := algebra.BinaryOp("meet", [][]int{{0, 0}, {0, 1}})
//	alg, _  := algebra.New(2, meet)
//
// Operations are evaluated purely; Evaluate never mutates the operation.
// A table entry of Undefined marks a partial operation: evaluating it on
// such arguments returns ErrUndefined, which congruence generation treats
// as fatal — a congruence cannot be computed over an algebra whose
// operations are undefined on the tuples the closure must visit.
package algebra
