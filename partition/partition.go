package partition

import (
	"fmt"
	"strings"
)

// New returns the discrete (finest) partition of {0..size-1}: every element
// alone in its own block. A size of 0 yields the empty partition.
//
// Panics if size is negative (programmer error, matching the constructor
// policy for nonsensical parameters).
//
// Complexity: O(size).
func New(size int) *Partition {
	if size < 0 {
		panic("partition: New: negative size")
	}
	p := &Partition{
		size:    size,
		parent:  make([]int, size),
		rank:    make([]uint8, size),
		nBlocks: size,
	}
	for i := range p.parent {
		p.parent[i] = i
	}

	return p
}

// FromBlocks builds the partition of {0..size-1} whose blocks are exactly
// the given element groups. Every element must appear in exactly one block.
//
// Error conditions:
//   - ErrIndexOutOfBounds : an element outside {0..size-1}.
//   - ErrBadBlocks        : an element repeated or missing.
//
// Complexity: O(size + total block length).
func FromBlocks(size int, blocks [][]int) (*Partition, error) {
	p := New(size)
	seen := make([]bool, size)
	count := 0
	for _, blk := range blocks {
		if len(blk) == 0 {
			continue
		}
		first := blk[0]
		for _, x := range blk {
			if x < 0 || x >= size {
				return nil, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfBounds, x, size)
			}
			if seen[x] {
				return nil, fmt.Errorf("%w: element %d repeated", ErrBadBlocks, x)
			}
			seen[x] = true
			count++
			p.unite(first, x)
		}
	}
	if count != size {
		return nil, fmt.Errorf("%w: %d of %d elements covered", ErrBadBlocks, count, size)
	}

	return p, nil
}

// Size returns n, the universe size.
func (p *Partition) Size() int { return p.size }

// root returns x's representative with iterative path compression
// (grandparent pointer hopping). Callers must have validated x.
//
// The write is skipped when the grandparent hop would not move the pointer;
// on a Normalized partition root therefore never writes, which is what
// makes shared reads race-free.
func (p *Partition) root(x int) int {
	for p.parent[x] != x {
		if g := p.parent[p.parent[x]]; g != p.parent[x] {
			p.parent[x] = g
		}
		x = p.parent[x]
	}

	return x
}

// unite merges the blocks of x and y by rank, returning true when a merge
// happened. Callers must have validated both indices.
func (p *Partition) unite(x, y int) bool {
	rx, ry := p.root(x), p.root(y)
	if rx == ry {
		return false
	}
	// Attach the shallower tree under the deeper root.
	if p.rank[rx] < p.rank[ry] {
		rx, ry = ry, rx
	}
	p.parent[ry] = rx
	if p.rank[rx] == p.rank[ry] {
		p.rank[rx]++
	}
	p.nBlocks--
	p.blocks = nil // invalidate the block cache on every mutation

	return true
}

// Find returns the representative of x's block, compressing paths as it goes.
//
// Errors: ErrIndexOutOfBounds if x is outside {0..n-1}.
// Complexity: O(α(n)) amortized.
func (p *Partition) Find(x int) (int, error) {
	if x < 0 || x >= p.size {
		return 0, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfBounds, x, p.size)
	}

	return p.root(x), nil
}

// Union merges the blocks containing x and y. It reports whether the
// partition changed (false when x and y were already related), which is
// what fixed-point loops key on.
//
// Errors: ErrIndexOutOfBounds.
// Complexity: O(α(n)) amortized.
func (p *Partition) Union(x, y int) (bool, error) {
	if x < 0 || x >= p.size {
		return false, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfBounds, x, p.size)
	}
	if y < 0 || y >= p.size {
		return false, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfBounds, y, p.size)
	}

	return p.unite(x, y), nil
}

// SameBlock reports whether a and b are related (share a block).
//
// Errors: ErrIndexOutOfBounds.
func (p *Partition) SameBlock(a, b int) (bool, error) {
	if a < 0 || a >= p.size {
		return false, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfBounds, a, p.size)
	}
	if b < 0 || b >= p.size {
		return false, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfBounds, b, p.size)
	}

	return p.root(a) == p.root(b), nil
}

// NumBlocks returns the current number of blocks. Monotonically
// non-increasing under Union; n for the discrete partition, 1 for the full.
//
// Complexity: O(1).
func (p *Partition) NumBlocks() int { return p.nBlocks }

// Block returns the block containing x, elements ascending.
// The returned slice is shared with the block cache; do not mutate it.
//
// Errors: ErrIndexOutOfBounds.
// Complexity: O(n) on a cold cache, O(α(n)) cached.
func (p *Partition) Block(x int) ([]int, error) {
	if x < 0 || x >= p.size {
		return nil, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfBounds, x, p.size)
	}
	for _, blk := range p.Blocks() {
		// Blocks are sorted ascending, so membership is a scan; the block
		// holding x is found once per call.
		if p.root(blk[0]) == p.root(x) {
			return blk, nil
		}
	}
	// Unreachable: every element belongs to exactly one block.
	return nil, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, x)
}

// Blocks returns all blocks, ordered by least element, each block's
// elements ascending. The result is cached until the next mutation; do not
// mutate the returned slices.
//
// Complexity: O(n·α(n)) to rebuild, O(1) cached.
func (p *Partition) Blocks() [][]int {
	if p.blocks != nil {
		return p.blocks
	}

	// Ascending element order makes both the within-block order and the
	// block order (by least element) deterministic.
	idx := make(map[int]int, p.nBlocks)
	out := make([][]int, 0, p.nBlocks)
	for x := 0; x < p.size; x++ {
		r := p.root(x)
		i, ok := idx[r]
		if !ok {
			i = len(out)
			idx[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], x)
	}
	p.blocks = out

	return out
}

// Clone returns an independent copy sharing no state with p.
//
// Complexity: O(n).
func (p *Partition) Clone() *Partition {
	c := &Partition{
		size:    p.size,
		parent:  make([]int, p.size),
		rank:    make([]uint8, p.size),
		nBlocks: p.nBlocks,
	}
	copy(c.parent, p.parent)
	copy(c.rank, p.rank)

	return c
}

// Normalize fully compresses the forest so every element points directly at
// the least element of its block. After Normalize, concurrent reads
// (Find, SameBlock) are race-free because no further compression writes
// occur until the next Union.
//
// Complexity: O(n·α(n)).
func (p *Partition) Normalize() {
	// Two passes: record every element's root and each block's least
	// element first, then repoint — compressing while repointing would read
	// half-rewritten parent chains.
	roots := make([]int, p.size)
	least := make(map[int]int, p.nBlocks)
	for x := 0; x < p.size; x++ {
		r := p.root(x)
		roots[x] = r
		if _, ok := least[r]; !ok {
			least[r] = x // first visit in ascending order is the minimum
		}
	}
	for x := 0; x < p.size; x++ {
		p.parent[x] = least[roots[x]]
		p.rank[x] = 0
	}
}

// String renders the partition as |-separated blocks, e.g. "|0 1|2|".
func (p *Partition) String() string {
	var sb strings.Builder
	for _, blk := range p.Blocks() {
		sb.WriteByte('|')
		for i, x := range blk {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", x)
		}
	}
	sb.WriteByte('|')

	return sb.String()
}
