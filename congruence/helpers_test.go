package congruence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ualat/algebra"
)

// setAlgebra is a bare set: n elements, no operations.
func setAlgebra(t *testing.T, n int) *algebra.Basic {
	t.Helper()
	alg, err := algebra.New(n)
	require.NoError(t, err)

	return alg
}

// kleinAlgebra is the group Z2×Z2 reduced to its binary operation:
// elements 0..3 as bit pairs, f(x, y) = x XOR y. Its congruences are the
// coset partitions of the three 2-element subgroups, giving the lattice M3.
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

// projectionAlgebra is {0,1} with the first projection f(x, y) = x.
func projectionAlgebra(t *testing.T) *algebra.Basic {
	t.Helper()
	op, err := algebra.BinaryOp("p1", [][]int{{0, 0}, {1, 1}})
	require.NoError(t, err)
	alg, err := algebra.New(2, op)
	require.NoError(t, err)

	return alg
}

// collapseAlgebra is {0,1,2} with the unary map f = (0, 1, 1): f fixes 0
// and 1 and sends 2 to 1. Its congruence lattice is the 2×2 diamond
// {⊥, |0 1|2|, |0|1 2|, ⊤} and θ(0,2) = ⊤ is join-reducible.
func collapseAlgebra(t *testing.T) *algebra.Basic {
	t.Helper()
	op, err := algebra.UnaryOp("f", []int{0, 1, 1})
	require.NoError(t, err)
	alg, err := algebra.New(3, op)
	require.NoError(t, err)

	return alg
}
