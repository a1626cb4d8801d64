package ordset

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/log"
	"github.com/anacrolix/missinggo/v2/panicif"
	"golang.org/x/exp/constraints"

	"github.com/anacrolix/ordset/internal/amortize"
	"github.com/anacrolix/ordset/internal/fenwick"
)

type Set[T any] struct {
	// Ordered by each chunk's max, never empty.
	chunks []chunk[T]
	// Lengths of chunks, always with one entry per chunk.
	index  fenwick.Tree
	len    int
	cmp    CompareFunc[T]
	cfg    Config
	logger log.Logger
	// Bumped by every mutation so iterators can detect they've been invalidated.
	version   int
	checkGate amortize.Gate
}

// A Set ordered by T's natural ordering. cfg may be nil for the defaults.
func New[T constraints.Ordered](cfg *Config) *Set[T] {
	return NewFunc(cmp.Compare[T], cfg)
}

// A Set ordered by an arbitrary comparison function. Elements comparing equal are the same element
// as far as the Set is concerned.
func NewFunc[T any](cmp CompareFunc[T], cfg *Config) *Set[T] {
	panicif.True(cmp == nil)
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	me := &Set[T]{
		cmp:    cmp,
		cfg:    cfg.normalized(),
		logger: cfg.Logger,
	}
	me.reset()
	return me
}

func FromSeq[T constraints.Ordered](seq iter.Seq[T]) *Set[T] {
	return FromSeqFunc(cmp.Compare[T], seq)
}

func FromSeqFunc[T any](cmp CompareFunc[T], seq iter.Seq[T]) *Set[T] {
	me := NewFunc(cmp, nil)
	me.Extend(seq)
	return me
}

func (me *Set[T]) reset() {
	me.chunks = []chunk[T]{newChunk[T](me.cfg.ChunkCapacity)}
	me.len = 0
	me.rebuildIndex()
	// Checks are cheap again, so do them often for a while.
	me.checkGate.Reset()
}

func (me *Set[T]) Len() int {
	return me.len
}

func (me *Set[T]) IsEmpty() bool {
	return me.len == 0
}

func (me *Set[T]) Clear() {
	me.reset()
	me.mutated()
}

func (me *Set[T]) Clone() *Set[T] {
	ret := &Set[T]{
		chunks: make([]chunk[T], len(me.chunks)),
		len:    me.len,
		cmp:    me.cmp,
		cfg:    me.cfg,
		logger: me.logger,
	}
	for i, c := range me.chunks {
		c.items = slices.Clone(c.items)
		ret.chunks[i] = c
	}
	ret.rebuildIndex()
	return ret
}

func (me *Set[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		me.Insert(v)
	}
}

// Adds v. Returns false, changing nothing, if an equal element is already present.
func (me *Set[T]) Insert(v T) (added bool) {
	ci := me.locateChunk(v, false)
	if me.chunks[ci].full() {
		ci = me.splitChunk(ci, v)
		added = me.chunks[ci].insert(me.cmp, v)
		me.rebuildIndex()
	} else {
		added = me.chunks[ci].insert(me.cmp, v)
		if !added {
			return
		}
		me.index.Add(ci, 1)
	}
	if added {
		me.len++
	}
	me.mutated()
	return
}

// Splits the full chunk at ci in two, and returns the index of the half that v belongs in. The
// caller must rebuild the index.
func (me *Set[T]) splitChunk(ci int, v T) int {
	tail := me.chunks[ci].splitOff(me.cfg.SplitCutoff)
	me.chunks = slices.Insert(me.chunks, ci+1, tail)
	me.logger.Levelf(log.Debug, "split chunk %v, %v chunks", ci, len(me.chunks))
	head := me.chunks[ci].max
	if head.Ok && me.cmp(v, head.Value) > 0 {
		return ci + 1
	}
	return ci
}

func (me *Set[T]) Remove(v T) bool {
	return me.Take(v).Ok
}

// Removes and returns the element equal to v, if there is one.
func (me *Set[T]) Take(v T) (_ g.Option[T]) {
	ci, pos, found := me.locateValue(v, false)
	if !found {
		return
	}
	return g.Some(me.removeAt(ci, pos))
}

// Puts v in the set, returning the equal element it displaced, if any.
func (me *Set[T]) Replace(v T) (old g.Option[T]) {
	old = me.Take(v)
	me.Insert(v)
	return
}

func (me *Set[T]) removeAt(ci, pos int) (v T) {
	v = me.chunks[ci].delete(pos)
	me.len--
	if me.chunks[ci].len() == 0 && len(me.chunks) > 1 {
		me.chunks = slices.Delete(me.chunks, ci, ci+1)
		me.logger.Levelf(log.Debug, "dropped empty chunk %v, %v chunks", ci, len(me.chunks))
		me.rebuildIndex()
	} else {
		me.index.Sub(ci, 1)
	}
	me.mutated()
	return
}

// Returns the element with the given zero-based rank.
func (me *Set[T]) GetByRank(i int) (_ g.Option[T]) {
	if i < 0 || i >= me.len {
		return
	}
	ci, pos := me.locateByRank(i)
	return g.Some(me.chunks[ci].items[pos])
}

// Like GetByRank, but panics if i is out of range.
func (me *Set[T]) At(i int) T {
	if i < 0 || i >= me.len {
		panic(fmt.Sprintf("rank %v out of range [0, %v)", i, me.len))
	}
	ci, pos := me.locateByRank(i)
	return me.chunks[ci].items[pos]
}

// Returns the number of elements less than v. This is v's rank if it's present, and where it
// would be inserted otherwise.
func (me *Set[T]) Rank(v T) int {
	ci, pos, _ := me.locateValue(v, false)
	return me.index.PrefixSum(ci, pos)
}

func (me *Set[T]) Contains(v T) bool {
	_, _, found := me.locateValue(v, false)
	return found
}

// Returns the stored element equal to v.
func (me *Set[T]) Get(v T) (_ g.Option[T]) {
	ci, pos, found := me.locateValue(v, false)
	if !found {
		return
	}
	return g.Some(me.chunks[ci].items[pos])
}

// Returns the least element not less than v.
func (me *Set[T]) LowerBound(v T) g.Option[T] {
	return me.elementAt(me.locateValue(v, false))
}

// Returns the least element greater than v.
func (me *Set[T]) UpperBound(v T) g.Option[T] {
	return me.elementAt(me.locateValue(v, true))
}

func (me *Set[T]) elementAt(ci, pos int, _ bool) (_ g.Option[T]) {
	items := me.chunks[ci].items
	if pos >= len(items) {
		return
	}
	return g.Some(items[pos])
}

func (me *Set[T]) First() (_ g.Option[T]) {
	if me.len == 0 {
		return
	}
	return g.Some(me.chunks[0].items[0])
}

func (me *Set[T]) Last() g.Option[T] {
	return me.chunks[len(me.chunks)-1].max
}

func (me *Set[T]) PopFirst() (_ g.Option[T]) {
	if me.len == 0 {
		return
	}
	return g.Some(me.removeAt(0, 0))
}

func (me *Set[T]) PopLast() (_ g.Option[T]) {
	if me.len == 0 {
		return
	}
	ci := len(me.chunks) - 1
	return g.Some(me.removeAt(ci, me.chunks[ci].len()-1))
}

func (me *Set[T]) PopByRank(i int) (_ g.Option[T]) {
	if i < 0 || i >= me.len {
		return
	}
	return g.Some(me.removeAt(me.locateByRank(i)))
}

// Moves every element of other into the receiver, leaving other empty.
func (me *Set[T]) Append(other *Set[T]) {
	if other == me {
		return
	}
	for v := other.PopFirst(); v.Ok; v = other.PopFirst() {
		me.Insert(v.Value)
	}
}

type position struct {
	chunk, pos int
}

// Removes every element for which keep returns false.
func (me *Set[T]) Retain(keep func(T) bool) {
	var doomed []position
	for ci := range me.chunks {
		for pos, v := range me.chunks[ci].items {
			if !keep(v) {
				doomed = append(doomed, position{ci, pos})
			}
		}
	}
	if len(doomed) == 0 {
		return
	}
	// Back to front, so each position is still valid when we get to it.
	for _, p := range slices.Backward(doomed) {
		me.chunks[p.chunk].delete(p.pos)
	}
	me.len -= len(doomed)
	me.chunks = slices.DeleteFunc(me.chunks, func(c chunk[T]) bool {
		return c.len() == 0
	})
	if len(me.chunks) == 0 {
		me.chunks = append(me.chunks, newChunk[T](me.cfg.ChunkCapacity))
	}
	me.logger.Levelf(log.Debug, "retain removed %v elements, %v chunks", len(doomed), len(me.chunks))
	me.rebuildIndex()
	me.mutated()
}

func (me *Set[T]) Values() []T {
	return slices.Collect(me.All())
}

func (me *Set[T]) rebuildIndex() {
	lens := make([]int, len(me.chunks))
	for i := range me.chunks {
		lens[i] = me.chunks[i].len()
	}
	me.index = fenwick.Build(lens)
}

func (me *Set[T]) mutated() {
	me.version++
	if me.cfg.Paranoid || me.checkGate.Try() {
		me.checkInvariants()
	}
}

type Stats struct {
	Len           int
	ChunkCapacity int
	SplitCutoff   int
	ChunkLens     []int
}

func (me *Set[T]) Stats() (ret Stats) {
	ret.Len = me.len
	ret.ChunkCapacity = me.cfg.ChunkCapacity
	ret.SplitCutoff = me.cfg.SplitCutoff
	for i := range me.chunks {
		ret.ChunkLens = append(ret.ChunkLens, me.chunks[i].len())
	}
	return
}
