package flats_test

import (
	"fmt"
	"iter"

	"github.com/viant/flats"
)

func ExampleFlatten() {
	values, _ := flats.Flatten([]any{[]any{1, 2, 3}, []any{4, 5, 6, 7}}).Collect()
	fmt.Println(values)
	// Output: [1 2 3 4 5 6 7]
}

func ExampleFlattenDepth() {
	input := []any{[]any{[]any{1, 2}, 3}, []any{4, 5, 6, 7}}

	sequence, _ := flats.FlattenDepth(input, 1)
	values, _ := sequence.Collect()
	fmt.Println(values)

	sequence, _ = flats.FlattenDepth(input, 2)
	values, _ = sequence.Collect()
	fmt.Println(values)
	// Output:
	// [[1 2] 3 4 5 6 7]
	// [1 2 3 4 5 6 7]
}

func ExampleSequence_First() {
	naturals := iter.Seq[any](func(yield func(any) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	})

	values, _ := flats.Flatten(naturals).First(5)
	fmt.Println(values)
	// Output: [0 1 2 3 4]
}

func ExampleIsContainer() {
	fmt.Println(flats.IsContainer([]int{1, 2}))
	fmt.Println(flats.IsContainer("abc"))
	fmt.Println(flats.IsContainer(42))
	// Output:
	// true
	// false
	// false
}
