package ordset_test

import (
	"fmt"
	"slices"

	"github.com/anacrolix/ordset"
)

func Example() {
	s := ordset.FromSeq(slices.Values([]int{3, 1, 4, 1, 5, 9, 2, 6}))
	fmt.Println(s.Len(), s.Values())
	fmt.Println(s.At(3), s.Rank(5))
	fmt.Println(s.PopByRank(0).Unwrap(), s.Values())
	// Output:
	// 7 [1 2 3 4 5 6 9]
	// 4 4
	// 1 [2 3 4 5 6 9]
}

func ExampleSet_Range() {
	s := ordset.FromSeq(slices.Values([]string{"apple", "banana", "cherry", "date", "elderberry"}))
	for v := range s.Range(ordset.Included("b"), ordset.Excluded("d")).Seq() {
		fmt.Println(v)
	}
	// Output:
	// banana
	// cherry
}

func ExampleSet_Union() {
	a := ordset.FromSeq(slices.Values([]int{1, 3, 5, 7}))
	b := ordset.FromSeq(slices.Values([]int{3, 4, 5, 6}))
	fmt.Println(slices.Collect(a.Union(b).Seq()))
	fmt.Println(slices.Collect(a.Intersection(b).Seq()))
	fmt.Println(slices.Collect(a.Difference(b).Seq()))
	fmt.Println(slices.Collect(a.SymmetricDifference(b).Seq()))
	// Output:
	// [1 3 4 5 6 7]
	// [3 5]
	// [1 7]
	// [1 4 6 7]
}

func ExampleCursor() {
	s := ordset.FromSeq(slices.Values([]int{10, 20, 30}))
	c := s.Cursor(0)
	c.MovePrev()
	fmt.Println(c.Rank(), c.IsGhost())
	c.MovePrev()
	fmt.Println(c.Rank(), c.Current().Unwrap())
	// Output:
	// 3 true
	// 2 30
}
