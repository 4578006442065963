// Package order provides small generic helpers for partial orders:
// selecting maximal or minimal elements of a slice under a caller-supplied
// "less-or-equal" predicate.
//
// The predicate leq(a, b) must describe a partial order: reflexive,
// transitive, and antisymmetric up to the equality the caller cares about.
// Elements that are mutually leq (duplicates under the order) are collapsed
// to their first occurrence, so the result is an antichain.
//
// Typical use: filtering congruences under the refinement order, where
// leq(p, q) is p.IsFinerThan(q).
package order
