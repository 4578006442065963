// Package ualat is your in-memory workbench for finite universal algebra —
// from equivalence relations and union-find partitions to full congruence
// lattices with atoms, coatoms and covering diagrams.
//
// 🚀 What is ualat?
//
//	A modern, deterministic library that brings together:
//		• Partitions: union-find equivalence relations with join, meet & refinement order
//		• Binary relations: boolean square relations + reflexive/symmetric/transitive closures
//		• Congruence generation: least congruence Cg(pairs) by one-step-neighbor closure
//		• Principal congruences: a compute-once θ(a,b) cache with parallel precompute
//		• Lattice building: join-irreducibles, atoms, coatoms, covering relation
//
// ✨ Why choose ualat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – strict sentinel errors, deterministic ordering
//   - Pure Go – no cgo, no hidden global state
//   - Extensible – plug in any Algebra view and any Progress reporter
//
// Under the hood, everything is organized under small focused subpackages:
//
//	algebra/    — finite algebras: Operation & Algebra interfaces, table-backed operations
//	partition/  — union-find partitions of {0..n-1} with lattice operations
//	binrel/     — square boolean relations and their closures
//	order/      — generic order-theoretic helpers (maximal elements)
//	congruence/ — Cg closure, compatibility verifier, principal-congruence cache
//	conlat/     — the congruence lattice: join-irreducibles, atoms, coatoms, covers
//
// Quick ASCII example — Con(A) for a 3-element set with no operations:
//
//	        ⊤ (1 block)
//	      / | \
//	  θ01 θ02 θ12
//	      \ | /
//	        ⊥ (3 blocks)
//
//	the five partitions of {0,1,2} ordered by refinement (Bell number B₃ = 5).
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/ualat
package ualat
