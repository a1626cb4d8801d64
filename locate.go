package ordset

import (
	"sort"
)

// Returns the first chunk whose max is not less than v, or with strict, greater than v. Clamps to
// the last chunk when v is beyond every element.
func (me *Set[T]) locateChunk(v T, strict bool) int {
	n := len(me.chunks)
	i := sort.Search(n, func(i int) bool {
		m := me.chunks[i].max
		if !m.Ok {
			// Only the sole chunk can be empty.
			return true
		}
		c := me.cmp(m.Value, v)
		return c > 0 || !strict && c == 0
	})
	return min(i, n-1)
}

// Returns the chunk and chunk-local position of the first element not less than v (greater than v
// with strict). pos is the chunk's length if there's no such element.
func (me *Set[T]) locateValue(v T, strict bool) (ci, pos int, found bool) {
	ci = me.locateChunk(v, strict)
	pos, found = me.chunks[ci].search(me.cmp, v, strict)
	found = found && !strict
	return
}

// Maps a global rank in [0, Len()] to a chunk and chunk-local position. A position that would be
// one past the end of a chunk is moved to the start of the next chunk, if there is one, so each
// rank has exactly one location. Len() maps to one past the end of the last chunk.
func (me *Set[T]) locateByRank(rank int) (ci, pos int) {
	ci = me.index.IndexOf(rank)
	pos = rank - me.index.PrefixSum(ci, 0)
	if pos == me.chunks[ci].len() && ci+1 < len(me.chunks) {
		ci++
		pos = 0
	}
	return
}

// The global rank of a chunk-local position.
func (me *Set[T]) rankOf(ci, pos int) int {
	return me.index.PrefixSum(ci, pos)
}
