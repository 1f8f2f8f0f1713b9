package ratio_test

import (
	"fmt"

	"github.com/matzehuels/ratiosplit/pkg/ratio"
)

func ExampleResolve() {
	// A 3-column fixed gutter; the rest is shared 1:2.
	sizes, err := ratio.Resolve(10, []ratio.Edge{
		ratio.Flex(1),
		ratio.Flex(2),
		ratio.Fixed(3),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sizes)
	// Output: [2 5 3]
}

func ExampleResolve_minimum() {
	// The narrow pane would get 20 cells; its minimum of 30 pins it and the
	// wide pane takes what is left.
	sizes, _ := ratio.Resolve(80, []ratio.Edge{
		ratio.Flex(1).WithMinimum(30),
		ratio.Flex(3),
	})
	fmt.Println(sizes)
	// Output: [30 50]
}

func ExampleReduce() {
	// Take 10 columns away from two 10-wide columns; the first may only
	// give up 2.
	values, _ := ratio.Reduce(10, []int{1, 1}, []int{2, 20}, []int{10, 10})
	fmt.Println(values)
	// Output: [8 2]
}

func ExampleDistribute() {
	parts, _ := ratio.Distribute(7, []int{1, 1, 1}, nil)
	fmt.Println(parts)
	// Output: [3 2 2]
}

func ExampleDistribute_invalid() {
	_, err := ratio.Distribute(7, []int{0, 0}, nil)
	fmt.Println(err)
	// Output: INVALID_CONFIGURATION: sum of ratios must be > 0
}
