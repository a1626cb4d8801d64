package ordset

import (
	"slices"
	"testing"

	g "github.com/anacrolix/generics"
	"github.com/go-quicktest/qt"
)

func rangeOf(lo, hi int) (ret []int) {
	for i := lo; i < hi; i++ {
		ret = append(ret, i)
	}
	return
}

func TestIterEndsMeet(t *testing.T) {
	for _, capacity := range []int{2, 3, 4, 16} {
		s := newTestSetOf(capacity, rangeOf(0, 10)...)
		it := s.Iter()
		qt.Assert(t, qt.Equals(it.Len(), 10))
		var front, back []int
		for {
			v := it.Next()
			if !v.Ok {
				break
			}
			front = append(front, v.Value)
			v = it.NextBack()
			if !v.Ok {
				break
			}
			back = append(back, v.Value)
		}
		qt.Assert(t, qt.DeepEquals(front, []int{0, 1, 2, 3, 4}))
		qt.Assert(t, qt.DeepEquals(back, []int{9, 8, 7, 6, 5}))
		qt.Assert(t, qt.Equals(it.Len(), 0))
		qt.Assert(t, qt.Equals(it.Next(), g.None[int]()))
		qt.Assert(t, qt.Equals(it.NextBack(), g.None[int]()))
	}
}

func TestIterEmptySet(t *testing.T) {
	s := newTestSet(4)
	it := s.Iter()
	qt.Assert(t, qt.Equals(it.Len(), 0))
	qt.Assert(t, qt.Equals(it.Next(), g.None[int]()))
	qt.Assert(t, qt.Equals(it.NextBack(), g.None[int]()))
}

func TestIterPanicsAfterMutation(t *testing.T) {
	s := newTestSetOf(4, 1, 2, 3)
	it := s.Iter()
	qt.Assert(t, qt.Equals(it.Next(), g.Some(1)))
	s.Insert(4)
	qt.Assert(t, qt.IsTrue(panics(func() { it.Next() })))
	qt.Assert(t, qt.IsTrue(panics(func() { it.NextBack() })))
	// A fresh iterator is fine.
	assertValues(t, s, []int{1, 2, 3, 4})
}

func TestIterSurvivesNoOpInsert(t *testing.T) {
	s := newTestSetOf(8, 1, 2, 3)
	it := s.Iter()
	// Nothing changed, so the iterator stays valid.
	qt.Assert(t, qt.IsFalse(s.Insert(2)))
	qt.Assert(t, qt.DeepEquals(slices.Collect(it.Seq()), []int{1, 2, 3}))
}

func TestIterSeqStopsEarly(t *testing.T) {
	s := newTestSetOf(2, rangeOf(0, 10)...)
	var got []int
	for v := range s.All() {
		if v == 4 {
			break
		}
		got = append(got, v)
	}
	qt.Assert(t, qt.DeepEquals(got, []int{0, 1, 2, 3}))
	got = nil
	for v := range s.Backward() {
		if v == 6 {
			break
		}
		got = append(got, v)
	}
	qt.Assert(t, qt.DeepEquals(got, []int{9, 8, 7}))
}

func TestRange(t *testing.T) {
	// Evens, so odd bounds fall between elements.
	var evens []int
	for i := range 20 {
		evens = append(evens, i*2)
	}
	for _, capacity := range []int{2, 3, 5, 64} {
		s := newTestSetOf(capacity, evens...)
		collect := func(lo, hi Bound[int]) []int {
			return slices.Collect(s.Range(lo, hi).Seq())
		}
		qt.Check(t, qt.DeepEquals(collect(Unbounded[int](), Unbounded[int]()), evens))
		qt.Check(t, qt.DeepEquals(collect(Included(4), Included(10)), []int{4, 6, 8, 10}))
		qt.Check(t, qt.DeepEquals(collect(Excluded(4), Excluded(10)), []int{6, 8}))
		qt.Check(t, qt.DeepEquals(collect(Included(3), Excluded(9)), []int{4, 6, 8}))
		qt.Check(t, qt.DeepEquals(collect(Excluded(3), Included(9)), []int{4, 6, 8}))
		qt.Check(t, qt.DeepEquals(collect(Unbounded[int](), Excluded(6)), []int{0, 2, 4}))
		qt.Check(t, qt.DeepEquals(collect(Excluded(32), Unbounded[int]()), []int{34, 36, 38}))
		qt.Check(t, qt.DeepEquals(collect(Included(-5), Included(2)), []int{0, 2}))
		qt.Check(t, qt.DeepEquals(collect(Included(38), Included(100)), []int{38}))
		qt.Check(t, qt.HasLen(collect(Included(100), Unbounded[int]()), 0))
		qt.Check(t, qt.HasLen(collect(Included(4), Excluded(4)), 0))
		qt.Check(t, qt.HasLen(collect(Excluded(4), Excluded(6)), 0))
		// Reversed bounds are just empty.
		qt.Check(t, qt.HasLen(collect(Included(10), Included(4)), 0))
		it := s.Range(Included(10), Included(20))
		qt.Check(t, qt.Equals(it.Len(), 6))
		qt.Check(t, qt.DeepEquals(slices.Collect(it.Backward()), []int{20, 18, 16, 14, 12, 10}))
	}
}

func TestRangeByRank(t *testing.T) {
	s := newTestSetOf(3, rangeOf(100, 120)...)
	collect := func(lo, hi int) []int {
		return slices.Collect(s.RangeByRank(lo, hi).Seq())
	}
	qt.Check(t, qt.DeepEquals(collect(0, 3), []int{100, 101, 102}))
	qt.Check(t, qt.DeepEquals(collect(3, 6), []int{103, 104, 105}))
	qt.Check(t, qt.DeepEquals(collect(17, 100), []int{117, 118, 119}))
	qt.Check(t, qt.DeepEquals(collect(-5, 2), []int{100, 101}))
	qt.Check(t, qt.HasLen(collect(5, 5), 0))
	qt.Check(t, qt.HasLen(collect(6, 2), 0))
	qt.Check(t, qt.HasLen(collect(20, 30), 0))
	qt.Check(t, qt.DeepEquals(collect(0, 20), rangeOf(100, 120)))
	for lo := range 21 {
		for hi := lo; hi <= 20; hi++ {
			it := s.RangeByRank(lo, hi)
			qt.Assert(t, qt.Equals(it.Len(), hi-lo))
			got := slices.Collect(it.Backward())
			slices.Reverse(got)
			qt.Assert(t, qt.DeepEquals(got, rangeOf(100+lo, 100+hi)))
		}
	}
}
