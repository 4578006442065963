package congruence_test

import (
	"testing"

	"github.com/katalvlaran/ualat/algebra"
	"github.com/katalvlaran/ualat/congruence"
)

// cyclicAlgebra is Z_n with addition mod n.
func cyclicAlgebra(b *testing.B, n int) *algebra.Basic {
	b.Helper()
	rows := make([][]int, n)
	for x := 0; x < n; x++ {
		rows[x] = make([]int, n)
		for y := 0; y < n; y++ {
			rows[x][y] = (x + y) % n
		}
	}
	add, err := algebra.BinaryOp("add", rows)
	if err != nil {
		b.Fatal(err)
	}
	alg, err := algebra.New(n, add)
	if err != nil {
		b.Fatal(err)
	}

	return alg
}

// BenchmarkGenerate_Cyclic12 measures one principal-congruence closure on
// Z_12 (binary operation, 144 tuples per pass).
func BenchmarkGenerate_Cyclic12(b *testing.B) {
	alg := cyclicAlgebra(b, 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := congruence.Principal(alg, 0, 4); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPrecomputeAll_Cyclic8 measures the full θ table of Z_8.
func BenchmarkPrecomputeAll_Cyclic8(b *testing.B) {
	alg := cyclicAlgebra(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache, err := congruence.NewPrincipalCache(alg)
		if err != nil {
			b.Fatal(err)
		}
		if err = cache.PrecomputeAll(congruence.WithWorkers(1)); err != nil {
			b.Fatal(err)
		}
	}
}
