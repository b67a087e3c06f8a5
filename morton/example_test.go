package morton_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/nputil/morton"
)

// ExampleEncode64 orders the cells of a 4×4 grid along the Z curve.
func ExampleEncode64() {
	var cells [][]uint8
	for y := uint8(0); y < 4; y++ {
		for x := uint8(0); x < 4; x++ {
			cells = append(cells, []uint8{x, y})
		}
	}

	codes, err := morton.Encode64(cells, []uint8{3, 3})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	order := make([]int, len(cells))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return codes[order[a]] < codes[order[b]] })
	for _, i := range order[:8] {
		fmt.Print(cells[i], " ")
	}
	fmt.Println()
	// Output:
	// [0 0] [1 0] [0 1] [1 1] [2 0] [3 0] [2 1] [3 1]
}

// ExampleDecode recovers the coordinates behind a code.
func ExampleDecode() {
	xyz, _ := morton.Decode(511, 3, morton.Width32)
	fmt.Println(xyz)
	// Output:
	// [7 7 7]
}
