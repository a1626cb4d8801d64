package ordset

type boundKind int

const (
	unbounded boundKind = iota
	included
	excluded
)

// One end of a range of values.
type Bound[T any] struct {
	value T
	kind  boundKind
}

func Unbounded[T any]() Bound[T] {
	return Bound[T]{}
}

func Included[T any](v T) Bound[T] {
	return Bound[T]{v, included}
}

func Excluded[T any](v T) Bound[T] {
	return Bound[T]{v, excluded}
}

// Resolves a bound to a rank and its chunk position. For the lower end, the position is the first
// element in range, for the upper end, the first element past the range.
func (me *Set[T]) resolveBound(b Bound[T], upper bool) (rank, ci, pos int) {
	switch b.kind {
	case unbounded:
		if !upper {
			return 0, 0, 0
		}
		ci = len(me.chunks) - 1
		return me.len, ci, me.chunks[ci].len()
	case included:
		// An included upper bound ends after any equal element.
		ci, pos, _ = me.locateValue(b.value, upper)
	case excluded:
		ci, pos, _ = me.locateValue(b.value, !upper)
	default:
		panic(b.kind)
	}
	return me.rankOf(ci, pos), ci, pos
}

// Iterates the elements between lo and hi. The iterator is empty if lo is past hi.
func (me *Set[T]) Range(lo, hi Bound[T]) *Iter[T] {
	startRank, sc, sp := me.resolveBound(lo, false)
	endRank, ec, ep := me.resolveBound(hi, true)
	return me.iterBetween(startRank, sc, sp, endRank, ec, ep)
}

// Iterates the elements with ranks in [lo, hi), after clamping both to [0, Len()].
func (me *Set[T]) RangeByRank(lo, hi int) *Iter[T] {
	lo = min(max(lo, 0), me.len)
	hi = min(max(hi, lo), me.len)
	return me.iterRanks(lo, hi)
}
