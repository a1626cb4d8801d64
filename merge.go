package ordset

import (
	g "github.com/anacrolix/generics"
)

// What a Merge consumed in one step: the lesser head of the two sides, or both heads if they
// compared equal.
type MergeStep[T any] struct {
	A, B g.Option[T]
}

// Walks two ascending iterators in lock-step without collecting either. Heads are pulled lazily,
// on the first call to Next.
type Merge[T any] struct {
	cmp          CompareFunc[T]
	a, b         *Iter[T]
	aHead, bHead g.Option[T]
	started      bool
}

func newMerge[T any](cmp CompareFunc[T], a, b *Iter[T]) Merge[T] {
	return Merge[T]{cmp: cmp, a: a, b: b}
}

// Merges the receiver's elements (side A) with other's (side B), ordered by the receiver.
func (me *Set[T]) Merge(other *Set[T]) *Merge[T] {
	m := newMerge(me.cmp, me.Iter(), other.Iter())
	return &m
}

func (me *Merge[T]) Next() (ret g.Option[MergeStep[T]]) {
	if !me.started {
		me.aHead = me.a.Next()
		me.bHead = me.b.Next()
		me.started = true
	}
	var step MergeStep[T]
	switch {
	case !me.aHead.Ok && !me.bHead.Ok:
		return
	case !me.bHead.Ok:
		step.A = me.takeA()
	case !me.aHead.Ok:
		step.B = me.takeB()
	default:
		c := me.cmp(me.aHead.Value, me.bHead.Value)
		if c <= 0 {
			step.A = me.takeA()
		}
		if c >= 0 {
			step.B = me.takeB()
		}
	}
	ret.Set(step)
	return
}

func (me *Merge[T]) takeA() (ret g.Option[T]) {
	ret = me.aHead
	me.aHead = me.a.Next()
	return
}

func (me *Merge[T]) takeB() (ret g.Option[T]) {
	ret = me.bHead
	me.bHead = me.b.Next()
	return
}
