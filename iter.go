package ordset

import (
	"iter"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/missinggo/v2/panicif"
)

// A double-ended iterator over a contiguous span of a Set. Progress from each end is kept as a
// global rank, and the iterator is exhausted when the two meet, even if both ends are partway
// through the same chunk. Chunk-local slices are only re-derived when one runs dry.
type Iter[T any] struct {
	set     *Set[T]
	version int
	// Ranks of the next element from the front, and one past the next element from the back.
	front, back int
	frontChunk  int
	backChunk   int
	frontItems  []T
	backItems   []T
}

func (me *Set[T]) Iter() *Iter[T] {
	return me.iterBetween(0, 0, 0, me.len, len(me.chunks)-1, me.chunks[len(me.chunks)-1].len())
}

// Iterates [startRank, endRank), given the chunk positions of each end.
func (me *Set[T]) iterBetween(startRank, startChunk, startPos, endRank, endChunk, endPos int) *Iter[T] {
	ret := &Iter[T]{
		set:     me,
		version: me.version,
		front:   startRank,
		back:    max(startRank, endRank),
	}
	if ret.front == ret.back {
		return ret
	}
	ret.frontChunk = startChunk
	ret.frontItems = me.chunks[startChunk].items[startPos:]
	ret.backChunk = endChunk
	ret.backItems = me.chunks[endChunk].items[:endPos]
	return ret
}

// Iterates the ranks [start, end), which must be in range.
func (me *Set[T]) iterRanks(start, end int) *Iter[T] {
	if start >= end {
		return me.iterBetween(start, 0, 0, start, 0, 0)
	}
	sc, sp := me.locateByRank(start)
	ec, ep := me.locateByRank(end)
	return me.iterBetween(start, sc, sp, end, ec, ep)
}

func (me *Iter[T]) checkVersion() {
	panicif.NotEq(me.version, me.set.version)
}

// The number of elements remaining.
func (me *Iter[T]) Len() int {
	return me.back - me.front
}

func (me *Iter[T]) Next() (ret g.Option[T]) {
	if me.front >= me.back {
		return
	}
	me.checkVersion()
	for len(me.frontItems) == 0 {
		me.frontChunk++
		me.frontItems = me.set.chunks[me.frontChunk].items
	}
	ret.Set(me.frontItems[0])
	me.frontItems = me.frontItems[1:]
	me.front++
	return
}

func (me *Iter[T]) NextBack() (ret g.Option[T]) {
	if me.front >= me.back {
		return
	}
	me.checkVersion()
	for len(me.backItems) == 0 {
		me.backChunk--
		me.backItems = me.set.chunks[me.backChunk].items
	}
	last := len(me.backItems) - 1
	ret.Set(me.backItems[last])
	me.backItems = me.backItems[:last]
	me.back--
	return
}

// Drains the iterator from the front.
func (me *Iter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := me.Next(); v.Ok; v = me.Next() {
			if !yield(v.Value) {
				return
			}
		}
	}
}

// Drains the iterator from the back.
func (me *Iter[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := me.NextBack(); v.Ok; v = me.NextBack() {
			if !yield(v.Value) {
				return
			}
		}
	}
}

func (me *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range me.Iter().Seq() {
			if !yield(v) {
				return
			}
		}
	}
}

func (me *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range me.Iter().Backward() {
			if !yield(v) {
				return
			}
		}
	}
}
