package partition_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ualat/partition"
)

// TestNew_Discrete verifies New yields n singleton blocks.
func TestNew_Discrete(t *testing.T) {
	p := partition.New(4)
	assert.Equal(t, 4, p.Size(), "size must match the universe")
	assert.Equal(t, 4, p.NumBlocks(), "discrete partition has n blocks")
	assert.Equal(t, "|0|1|2|3|", p.String())
}

// TestNew_Empty verifies the empty universe is representable.
func TestNew_Empty(t *testing.T) {
	p := partition.New(0)
	assert.Equal(t, 0, p.NumBlocks())
	assert.Empty(t, p.Blocks())
}

// TestFind_OutOfRange ensures index validation never truncates silently.
func TestFind_OutOfRange(t *testing.T) {
	p := partition.New(3)

	_, err := p.Find(3)
	assert.ErrorIs(t, err, partition.ErrIndexOutOfBounds, "x ≥ size must error")

	_, err = p.Find(-1)
	assert.ErrorIs(t, err, partition.ErrIndexOutOfBounds, "negative x must error")

	_, err = p.Union(0, 7)
	assert.ErrorIs(t, err, partition.ErrIndexOutOfBounds)

	_, err = p.SameBlock(-2, 0)
	assert.ErrorIs(t, err, partition.ErrIndexOutOfBounds)

	_, err = p.Block(5)
	assert.ErrorIs(t, err, partition.ErrIndexOutOfBounds)
}

// TestUnion_MergeAndIdempotence checks merge reporting and idempotence.
func TestUnion_MergeAndIdempotence(t *testing.T) {
	p := partition.New(3)

	merged, err := p.Union(0, 1)
	require.NoError(t, err)
	assert.True(t, merged, "first union must merge")
	assert.Equal(t, 2, p.NumBlocks())

	merged, err = p.Union(1, 0)
	require.NoError(t, err)
	assert.False(t, merged, "repeated union is a no-op")
	assert.Equal(t, 2, p.NumBlocks())

	same, err := p.SameBlock(0, 1)
	require.NoError(t, err)
	assert.True(t, same)
}

// TestNumBlocks_MonotoneUnderRandomUnions applies random union sequences
// and checks the block count never increases and stays within [1, n].
func TestNumBlocks_MonotoneUnderRandomUnions(t *testing.T) {
	const n = 32
	rng := rand.New(rand.NewSource(7))
	p := partition.New(n)
	prev := p.NumBlocks()
	for i := 0; i < 200; i++ {
		_, err := p.Union(rng.Intn(n), rng.Intn(n))
		require.NoError(t, err)
		cur := p.NumBlocks()
		assert.LessOrEqual(t, cur, prev, "NumBlocks must be non-increasing")
		assert.GreaterOrEqual(t, cur, 1)
		prev = cur
	}
}

// TestBlocks_DeterministicOrder verifies blocks are ordered by least
// element with ascending members, and that the union of blocks covers the
// universe disjointly.
func TestBlocks_DeterministicOrder(t *testing.T) {
	p := partition.New(6)
	for _, pr := range [][2]int{{4, 2}, {5, 0}, {2, 1}} {
		_, err := p.Union(pr[0], pr[1])
		require.NoError(t, err)
	}

	blocks := p.Blocks()
	assert.Equal(t, [][]int{{0, 5}, {1, 2, 4}, {3}}, blocks)

	seen := make(map[int]bool)
	for _, blk := range blocks {
		for _, x := range blk {
			assert.False(t, seen[x], "blocks must be disjoint")
			seen[x] = true
		}
	}
	assert.Len(t, seen, 6, "blocks must cover the universe")
}

// TestBlock_ReturnsOwningBlock checks Block(x) for several members.
func TestBlock_ReturnsOwningBlock(t *testing.T) {
	p := partition.New(5)
	_, err := p.Union(1, 3)
	require.NoError(t, err)

	blk, err := p.Block(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, blk)

	blk, err = p.Block(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, blk)
}

// TestFromBlocks_RoundTrip builds a partition from explicit blocks.
func TestFromBlocks_RoundTrip(t *testing.T) {
	p, err := partition.FromBlocks(5, [][]int{{0, 2}, {1}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 3, p.NumBlocks())
	assert.Equal(t, "|0 2|1|3 4|", p.String())
}

// TestFromBlocks_Malformed rejects non-partitions.
func TestFromBlocks_Malformed(t *testing.T) {
	_, err := partition.FromBlocks(3, [][]int{{0, 1}})
	assert.ErrorIs(t, err, partition.ErrBadBlocks, "missing element must error")

	_, err = partition.FromBlocks(3, [][]int{{0, 1}, {1, 2}})
	assert.ErrorIs(t, err, partition.ErrBadBlocks, "repeated element must error")

	_, err = partition.FromBlocks(3, [][]int{{0, 1}, {2, 3}})
	assert.ErrorIs(t, err, partition.ErrIndexOutOfBounds, "out-of-range element must error")
}

// TestClone_Independent ensures Clone shares no mutable state.
func TestClone_Independent(t *testing.T) {
	p := partition.New(4)
	_, err := p.Union(0, 1)
	require.NoError(t, err)

	c := p.Clone()
	assert.True(t, p.Equal(c), "clone equals original")

	_, err = c.Union(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.NumBlocks(), "original untouched by clone mutation")
	assert.Equal(t, 2, c.NumBlocks())
	assert.False(t, p.Equal(c))
}

// TestNormalize_PreservesRelation checks Normalize changes forest shape
// only, never the relation.
func TestNormalize_PreservesRelation(t *testing.T) {
	const n = 16
	rng := rand.New(rand.NewSource(11))
	p := partition.New(n)
	for i := 0; i < 40; i++ {
		_, err := p.Union(rng.Intn(n), rng.Intn(n))
		require.NoError(t, err)
	}
	before := p.Clone()

	p.Normalize()
	assert.True(t, p.Equal(before), "relation preserved")

	// After Normalize every element's representative is its block minimum.
	for _, blk := range p.Blocks() {
		for _, x := range blk {
			r, err := p.Find(x)
			require.NoError(t, err)
			assert.Equal(t, blk[0], r, "representative is the block minimum")
		}
	}
}

// TestEqual_IgnoresForestShape builds the same relation two ways.
func TestEqual_IgnoresForestShape(t *testing.T) {
	a := partition.New(4)
	for _, pr := range [][2]int{{0, 1}, {1, 2}} {
		_, err := a.Union(pr[0], pr[1])
		require.NoError(t, err)
	}

	b := partition.New(4)
	for _, pr := range [][2]int{{2, 1}, {0, 2}} {
		_, err := b.Union(pr[0], pr[1])
		require.NoError(t, err)
	}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(partition.New(4)))
	assert.False(t, a.Equal(partition.New(5)), "different sizes are never equal")
}
