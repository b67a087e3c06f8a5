package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/nputil/matrix"
)

// ExampleBlockDiag assembles a 1×1 and a 2×2 block into a 3×3 matrix.
func ExampleBlockDiag() {
	a, _ := matrix.NewDenseFrom(1, 1, []float64{1})
	b, _ := matrix.NewDenseFrom(2, 2, []float64{2, 3, 4, 5})

	m, err := matrix.BlockDiag(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(m)
	// Output:
	// [1, 0, 0]
	// [0, 2, 3]
	// [0, 4, 5]
}
