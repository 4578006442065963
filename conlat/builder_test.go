package conlat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ualat/algebra"
	"github.com/katalvlaran/ualat/congruence"
	"github.com/katalvlaran/ualat/conlat"
)

// setAlgebra is a bare set: n elements, no operations. Its congruence
// lattice is the full partition lattice (Bell-number sized).
func setAlgebra(t *testing.T, n int) *algebra.Basic {
	t.Helper()
	alg, err := algebra.New(n)
	require.NoError(t, err)

	return alg
}

// kleinAlgebra is Z2×Z2 via XOR; Con is the diamond M3.
func kleinAlgebra(t *testing.T) *algebra.Basic {
	t.Helper()
	rows := make([][]int, 4)
	for x := 0; x < 4; x++ {
		rows[x] = make([]int, 4)
		for y := 0; y < 4; y++ {
			rows[x][y] = x ^ y
		}
	}
	op, err := algebra.BinaryOp("xor", rows)
	require.NoError(t, err)
	alg, err := algebra.New(4, op)
	require.NoError(t, err)

	return alg
}

// collapseAlgebra is {0,1,2} with unary f = (0,1,1); Con is the 2×2
// diamond and θ(0,2) = ⊤ is join-reducible.
func collapseAlgebra(t *testing.T) *algebra.Basic {
	t.Helper()
	op, err := algebra.UnaryOp("f", []int{0, 1, 1})
	require.NoError(t, err)
	alg, err := algebra.New(3, op)
	require.NoError(t, err)

	return alg
}

// chainAlgebra is {0,1,2} with unary f = (0,0,1); Con is the 3-chain
// ⊥ < |0 1|2| < ⊤, whose middle element sits strictly below another
// join-irreducible.
func chainAlgebra(t *testing.T) *algebra.Basic {
	t.Helper()
	op, err := algebra.UnaryOp("f", []int{0, 0, 1})
	require.NoError(t, err)
	alg, err := algebra.New(3, op)
	require.NoError(t, err)

	return alg
}

// TestBuildUniverse_BellThree checks the bare 3-element scenario: the
// lattice is the full partition lattice with B₃ = 5 members, and the three
// atoms are the principal congruences of the three distinct pairs.
func TestBuildUniverse_BellThree(t *testing.T) {
	lat, err := conlat.BuildUniverse(setAlgebra(t, 3))
	require.NoError(t, err)

	assert.Equal(t, 5, lat.Size())
	assert.Equal(t, 3, lat.Bottom().NumBlocks())
	assert.Equal(t, 1, lat.Top().NumBlocks())

	atoms := lat.Atoms()
	require.Len(t, atoms, 3)
	seenPairs := make(map[[2]int]bool)
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 3; b++ {
			theta, thErr := lat.Principal(a, b)
			require.NoError(t, thErr)
			for _, atom := range atoms {
				if atom.Equal(theta) {
					seenPairs[[2]int{a, b}] = true
				}
			}
		}
	}
	assert.Len(t, seenPairs, 3, "each atom is the principal congruence of a distinct pair")
}

// TestBuildUniverse_KleinM3: Con(Z2×Z2) is M3 — three incomparable
// mid-elements that are simultaneously atoms and coatoms.
func TestBuildUniverse_KleinM3(t *testing.T) {
	lat, err := conlat.BuildUniverse(kleinAlgebra(t))
	require.NoError(t, err)

	assert.Equal(t, 5, lat.Size())
	assert.Len(t, lat.JoinIrreducibles(), 3)
	assert.Len(t, lat.Atoms(), 3)
	assert.Len(t, lat.Coatoms(), 3)
	assert.Empty(t, lat.CoveringRelation(), "the three join-irreducibles are pairwise incomparable")
}

// TestBuildUniverse_Chain: the 3-chain exposes a join-irreducible lying
// strictly below another one — it must be retained, not filtered away.
func TestBuildUniverse_Chain(t *testing.T) {
	lat, err := conlat.BuildUniverse(chainAlgebra(t))
	require.NoError(t, err)

	assert.Equal(t, 3, lat.Size())
	ji := lat.JoinIrreducibles()
	require.Len(t, ji, 2)
	assert.Equal(t, 1, ji[0].NumBlocks(), "coarsest join-irreducible first")
	assert.Equal(t, "|0 1|2|", ji[1].String())

	assert.Len(t, lat.Atoms(), 1)
	assert.Len(t, lat.Coatoms(), 1)
	assert.Equal(t, [][2]int{{1, 0}}, lat.CoveringRelation(),
		"the middle element is covered by the top")
}

// TestBuildUniverse_ReducibleTheta: in the collapse fixture θ(0,2) is the
// join of θ(0,1) and θ(1,2), so it carries no join-irreducible index.
func TestBuildUniverse_ReducibleTheta(t *testing.T) {
	lat, err := conlat.BuildUniverse(collapseAlgebra(t))
	require.NoError(t, err)

	assert.Equal(t, 4, lat.Size())
	assert.Len(t, lat.JoinIrreducibles(), 2)

	_, err = lat.PrincipalIndex(0, 2)
	assert.ErrorIs(t, err, conlat.ErrNotJoinIrreducible)

	idx, err := lat.PrincipalIndex(0, 1)
	require.NoError(t, err)
	theta, err := lat.Principal(0, 1)
	require.NoError(t, err)
	assert.True(t, lat.JoinIrreducibles()[idx].Equal(theta))
}

// TestBuildUniverse_IndexIntegrity: after the finalize sort, every
// side-table entry still points at the congruence its pair generated.
func TestBuildUniverse_IndexIntegrity(t *testing.T) {
	for name, alg := range map[string]*algebra.Basic{
		"set4":     setAlgebra(t, 4),
		"klein":    kleinAlgebra(t),
		"collapse": collapseAlgebra(t),
		"chain":    chainAlgebra(t),
	} {
		lat, err := conlat.BuildUniverse(alg)
		require.NoError(t, err, name)
		ji := lat.JoinIrreducibles()
		n := alg.UniverseSize()
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				idx, idxErr := lat.PrincipalIndex(a, b)
				if idxErr != nil {
					assert.ErrorIs(t, idxErr, conlat.ErrNotJoinIrreducible, name)

					continue
				}
				theta, thErr := lat.Principal(a, b)
				require.NoError(t, thErr, name)
				assert.True(t, ji[idx].Equal(theta),
					"%s: index for θ(%d,%d) must survive the sort", name, a, b)
			}
		}
	}
}

// TestBuildUniverse_BellFour: the bare 4-element set has B₄ = 15
// congruences, 6 atoms and 7 coatoms.
func TestBuildUniverse_BellFour(t *testing.T) {
	lat, err := conlat.BuildUniverse(setAlgebra(t, 4))
	require.NoError(t, err)

	assert.Equal(t, 15, lat.Size())
	assert.Len(t, lat.Atoms(), 6)
	assert.Len(t, lat.Coatoms(), 7)
}

// TestBuildUniverse_MemoryBudget: growth past MaxCongruences fails fast
// with ErrTooManyCongruences instead of materializing the universe.
func TestBuildUniverse_MemoryBudget(t *testing.T) {
	_, err := conlat.BuildUniverse(setAlgebra(t, 4), conlat.WithMaxCongruences(10))
	assert.ErrorIs(t, err, conlat.ErrTooManyCongruences)
}

// TestBuildUniverse_Degenerate: one-element universes have the trivial
// one-point lattice.
func TestBuildUniverse_Degenerate(t *testing.T) {
	lat, err := conlat.BuildUniverse(setAlgebra(t, 1))
	require.NoError(t, err)

	assert.Equal(t, 1, lat.Size())
	assert.True(t, lat.Bottom().Equal(lat.Top()))
	assert.Empty(t, lat.Atoms())
	assert.Empty(t, lat.Coatoms())
	assert.Empty(t, lat.JoinIrreducibles())
}

// TestBuildUniverse_Validation: nil algebra and bad options.
func TestBuildUniverse_Validation(t *testing.T) {
	_, err := conlat.BuildUniverse(nil)
	assert.ErrorIs(t, err, conlat.ErrAlgebraNil)

	_, err = conlat.BuildUniverse(setAlgebra(t, 2), conlat.WithMaxCongruences(0))
	assert.ErrorIs(t, err, conlat.ErrOptionViolation)

	_, err = conlat.BuildUniverse(setAlgebra(t, 2), conlat.WithWorkers(-2))
	assert.ErrorIs(t, err, conlat.ErrOptionViolation)
}

// TestBuildUniverse_Cancelled: a dead context aborts the build.
func TestBuildUniverse_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conlat.BuildUniverse(kleinAlgebra(t), conlat.WithContext(ctx))
	assert.ErrorIs(t, err, congruence.ErrCancelled)
}
