package partition_test

import (
	"fmt"

	"github.com/katalvlaran/ualat/partition"
)

// ExamplePartition demonstrates basic union-find usage and block output.
func ExamplePartition() {
	p := partition.New(5)
	_, _ = p.Union(0, 3)
	_, _ = p.Union(1, 4)

	fmt.Println(p)
	fmt.Println("blocks:", p.NumBlocks())
	// Output:
	// |0 3|1 4|2|
	// blocks: 3
}

// ExamplePartition_Join shows the refinement-lattice join of two partitions.
func ExamplePartition_Join() {
	p := partition.New(4)
	_, _ = p.Union(0, 1)

	q := partition.New(4)
	_, _ = q.Union(1, 2)

	j, _ := p.Join(q)
	fmt.Println(j)
	// Output: |0 1 2|3|
}
