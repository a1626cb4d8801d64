package ordset

import (
	g "github.com/anacrolix/generics"
)

// A movable position in a Set. Positions are ranks in [0, Len()], where Len() is a ghost position
// with no current element. Movement wraps around through the ghost in both directions.
type Cursor[T any] struct {
	set  *Set[T]
	rank int
}

// Returns a cursor at rank, clamped to [0, Len()].
func (me *Set[T]) Cursor(rank int) *Cursor[T] {
	return &Cursor[T]{
		set:  me,
		rank: min(max(rank, 0), me.len),
	}
}

// The set may have shrunk since the cursor last moved.
func (me *Cursor[T]) clamp() {
	me.rank = min(me.rank, me.set.len)
}

func (me *Cursor[T]) wrap(rank int) int {
	n := me.set.len + 1
	return ((rank % n) + n) % n
}

func (me *Cursor[T]) Rank() int {
	me.clamp()
	return me.rank
}

func (me *Cursor[T]) IsGhost() bool {
	return me.Rank() == me.set.len
}

func (me *Cursor[T]) Current() g.Option[T] {
	return me.set.GetByRank(me.Rank())
}

func (me *Cursor[T]) MoveNext() {
	me.rank = me.wrap(me.Rank() + 1)
}

func (me *Cursor[T]) MovePrev() {
	me.rank = me.wrap(me.Rank() - 1)
}

// The element MoveNext would make current. Doesn't move the cursor.
func (me *Cursor[T]) PeekNext() g.Option[T] {
	return me.set.GetByRank(me.wrap(me.Rank() + 1))
}

// The element MovePrev would make current. Doesn't move the cursor.
func (me *Cursor[T]) PeekPrev() g.Option[T] {
	return me.set.GetByRank(me.wrap(me.Rank() - 1))
}
