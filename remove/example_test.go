package remove_test

import (
	"fmt"

	"github.com/coregx/lazyregex/remove"
)

func ExampleAll() {
	it := remove.NewSliceIterator(
		remove.Span{Start: 0, End: 6},
		remove.Span{Start: 12, End: 17},
	)
	res := remove.All(it, "154681string63731")
	fmt.Println(res.Text(), res.Borrowed())
	// Output: string true
}

func ExampleAllBytes() {
	it := remove.NewSliceIterator(
		remove.Span{Start: 1, End: 2},
		remove.Span{Start: 3, End: 4},
	)
	res := remove.AllBytes(it, []byte("a1b2c"))
	fmt.Println(string(res.Text()), res.Owned())
	// Output: abc true
}

func ExampleFirst() {
	it := remove.NewSliceIterator(remove.Span{Start: 6, End: 12})
	res := remove.First(it, "154681string63731")
	fmt.Println(res.Text(), res.Owned())
	// Output: 15468163731 true
}
