package ordset

import (
	"iter"

	g "github.com/anacrolix/generics"
)

// Filters merge steps down to a set-algebra result. Single pass: once drained it stays drained.
type setOp[T any] struct {
	merge Merge[T]
	pick  func(MergeStep[T]) g.Option[T]
}

func (me *setOp[T]) Next() g.Option[T] {
	for step := me.merge.Next(); step.Ok; step = me.merge.Next() {
		if v := me.pick(step.Value); v.Ok {
			return v
		}
	}
	return g.None[T]()
}

func (me *setOp[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := me.Next(); v.Ok; v = me.Next() {
			if !yield(v.Value) {
				return
			}
		}
	}
}

func (me *Set[T]) newSetOp(other *Set[T], pick func(MergeStep[T]) g.Option[T]) setOp[T] {
	return setOp[T]{
		merge: newMerge(me.cmp, me.Iter(), other.Iter()),
		pick:  pick,
	}
}

type Union[T any] struct {
	setOp[T]
}

type Intersection[T any] struct {
	setOp[T]
}

type Difference[T any] struct {
	setOp[T]
}

type SymmetricDifference[T any] struct {
	setOp[T]
}

// Elements in either set. Where both have an equal element, the receiver's is used.
func (me *Set[T]) Union(other *Set[T]) *Union[T] {
	return &Union[T]{me.newSetOp(other, func(s MergeStep[T]) g.Option[T] {
		if s.A.Ok {
			return s.A
		}
		return s.B
	})}
}

func (me *Set[T]) Intersection(other *Set[T]) *Intersection[T] {
	return &Intersection[T]{me.newSetOp(other, func(s MergeStep[T]) (_ g.Option[T]) {
		if s.A.Ok && s.B.Ok {
			return s.A
		}
		return
	})}
}

// Elements of the receiver not in other.
func (me *Set[T]) Difference(other *Set[T]) *Difference[T] {
	return &Difference[T]{me.newSetOp(other, func(s MergeStep[T]) (_ g.Option[T]) {
		if s.A.Ok && !s.B.Ok {
			return s.A
		}
		return
	})}
}

func (me *Set[T]) SymmetricDifference(other *Set[T]) *SymmetricDifference[T] {
	return &SymmetricDifference[T]{me.newSetOp(other, func(s MergeStep[T]) (_ g.Option[T]) {
		if s.A.Ok != s.B.Ok {
			if s.A.Ok {
				return s.A
			}
			return s.B
		}
		return
	})}
}

// Whether any merge step satisfies f. Stops at the first that does.
func (me *Set[T]) anyMergeStep(other *Set[T], f func(MergeStep[T]) bool) bool {
	m := newMerge(me.cmp, me.Iter(), other.Iter())
	for step := m.Next(); step.Ok; step = m.Next() {
		if f(step.Value) {
			return true
		}
	}
	return false
}

func (me *Set[T]) IsDisjoint(other *Set[T]) bool {
	return !me.anyMergeStep(other, func(s MergeStep[T]) bool {
		return s.A.Ok && s.B.Ok
	})
}

// Whether every element of the receiver is in other.
func (me *Set[T]) IsSubset(other *Set[T]) bool {
	if me.len > other.len {
		return false
	}
	return !me.anyMergeStep(other, func(s MergeStep[T]) bool {
		return !s.B.Ok
	})
}

func (me *Set[T]) IsSuperset(other *Set[T]) bool {
	if me.len < other.len {
		return false
	}
	return !me.anyMergeStep(other, func(s MergeStep[T]) bool {
		return !s.A.Ok
	})
}

func (me *Set[T]) Equal(other *Set[T]) bool {
	return me.len == other.len && me.IsSubset(other)
}
