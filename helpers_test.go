package ordset

import (
	"slices"
	"testing"

	"github.com/go-quicktest/qt"
)

// Whether f panics. Guards from panicif don't promise a particular panic value.
func panics(f func()) (panicked bool) {
	defer func() {
		panicked = recover() != nil
	}()
	f()
	return
}

func newTestSet(chunkCapacity int) *Set[int] {
	cfg := NewDefaultConfig()
	cfg.ChunkCapacity = chunkCapacity
	cfg.Paranoid = true
	return New[int](cfg)
}

func newTestSetOf(chunkCapacity int, vs ...int) *Set[int] {
	s := newTestSet(chunkCapacity)
	s.Extend(slices.Values(vs))
	return s
}

func assertValues[T any](t *testing.T, s *Set[T], want []T) {
	t.Helper()
	if want == nil {
		want = []T{}
	}
	got := append([]T{}, s.Values()...)
	qt.Assert(t, qt.DeepEquals(got, want))
	qt.Assert(t, qt.Equals(s.Len(), len(want)))
	backward := append([]T{}, slices.Collect(s.Backward())...)
	slices.Reverse(backward)
	qt.Assert(t, qt.DeepEquals(backward, want))
}
