package ordset

import (
	"math/bits"
	"slices"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/missinggo/v2/panicif"
)

type CompareFunc[T any] func(a, b T) int

// A sorted run of distinct elements, never longer than capacity. The owning Set decides when to
// split and when to drop empty chunks.
type chunk[T any] struct {
	items []T
	// Always the last element, if there is one.
	max      g.Option[T]
	capacity int
	// Enough halvings to narrow any run of up to capacity elements down to a single position.
	searchBudget int
}

func newChunk[T any](capacity int) chunk[T] {
	return chunk[T]{
		capacity:     capacity,
		searchBudget: bits.Len(uint(capacity)),
	}
}

func (me *chunk[T]) len() int {
	return len(me.items)
}

func (me *chunk[T]) full() bool {
	return len(me.items) >= me.capacity
}

func (me *chunk[T]) refreshMax() {
	if len(me.items) == 0 {
		me.max.SetNone()
	} else {
		me.max.Set(me.items[len(me.items)-1])
	}
}

// Returns the position of the first element not less than v, or with strict, the first element
// greater than v. found reports whether the element at pos equals v.
func (me *chunk[T]) search(cmp CompareFunc[T], v T, strict bool) (pos int, found bool) {
	lo, hi := 0, len(me.items)
	for range me.searchBudget {
		if lo >= hi {
			break
		}
		mid := int(uint(lo+hi) >> 1)
		c := cmp(me.items[mid], v)
		if c < 0 || strict && c == 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	panicif.NotEq(lo, hi)
	found = lo < len(me.items) && cmp(me.items[lo], v) == 0
	return lo, found
}

// Inserts v in order. Returns false and leaves the chunk alone if an equal element is present.
func (me *chunk[T]) insert(cmp CompareFunc[T], v T) bool {
	pos, found := me.search(cmp, v, false)
	if found {
		return false
	}
	panicif.True(me.full())
	me.items = slices.Insert(me.items, pos, v)
	if pos == len(me.items)-1 {
		me.max.Set(v)
	}
	return true
}

// Removes and returns the element at a chunk-local position.
func (me *chunk[T]) delete(pos int) (v T) {
	v = me.items[pos]
	me.items = slices.Delete(me.items, pos, pos+1)
	if pos == len(me.items) {
		me.refreshMax()
	}
	return
}

// Keeps [0, cutoff) and returns a new chunk holding [cutoff, len).
func (me *chunk[T]) splitOff(cutoff int) (tail chunk[T]) {
	panicif.LessThan(cutoff, 0)
	panicif.GreaterThan(cutoff, len(me.items))
	tail = newChunk[T](me.capacity)
	tail.items = make([]T, len(me.items)-cutoff, max(len(me.items)-cutoff, me.capacity/2))
	copy(tail.items, me.items[cutoff:])
	clear(me.items[cutoff:])
	me.items = me.items[:cutoff]
	me.refreshMax()
	tail.refreshMax()
	return
}

func (me *chunk[T]) halve() chunk[T] {
	return me.splitOff(me.capacity / 2)
}
