// Package partition: sentinel errors and the Partition type declaration.
package partition

import "errors"

// Sentinel errors for partition operations.
var (
	// ErrIndexOutOfBounds indicates an element index outside {0..n-1}.
	ErrIndexOutOfBounds = errors.New("partition: element index out of range")

	// ErrSizeMismatch indicates a binary operation (Join, Meet, IsFinerThan,
	// Equal) on partitions over different universe sizes.
	ErrSizeMismatch = errors.New("partition: universe sizes differ")

	// ErrBadBlocks indicates FromBlocks input that is not a partition of
	// {0..n-1}: an index out of range, repeated, or missing.
	ErrBadBlocks = errors.New("partition: blocks do not partition the universe")
)

// Partition is an equivalence relation on {0..n-1}, stored as a union-find
// forest. The zero value is not usable; construct with New or FromBlocks.
//
// Partition is not safe for concurrent mutation. Shared instances must be
// treated as read-only; concurrent Find/SameBlock on a shared instance is
// safe only after Normalize (path compression writes otherwise race).
type Partition struct {
	size   int
	parent []int
	rank   []uint8
	// nBlocks tracks the current block count; strictly decreases on merge.
	nBlocks int
	// blocks caches Blocks() output; nil after any mutation.
	blocks [][]int
}
