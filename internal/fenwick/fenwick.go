// Package fenwick implements a zero-based binary indexed tree over non-negative lengths. Bucket i
// holds the sum of the logical values in [i&(i+1), i].
package fenwick

import (
	"math/bits"
)

type Tree struct {
	buf []int
}

// Builds the tree in linear time by pushing each bucket into its parent.
func Build(lengths []int) (ret Tree) {
	ret.buf = make([]int, len(lengths))
	copy(ret.buf, lengths)
	for i := range ret.buf {
		if parent := i | (i + 1); parent < len(ret.buf) {
			ret.buf[parent] += ret.buf[i]
		}
	}
	return
}

// The number of logical values (chunks) tracked.
func (me *Tree) Len() int {
	return len(me.buf)
}

// Returns seed plus the sum of the logical values in [0, index).
func (me *Tree) PrefixSum(index, seed int) int {
	for index > 0 {
		seed += me.buf[index-1]
		index &= index - 1
	}
	return seed
}

func (me *Tree) Total() int {
	return me.PrefixSum(len(me.buf), 0)
}

func (me *Tree) Add(index, delta int) {
	for index < len(me.buf) {
		me.buf[index] += delta
		index |= index + 1
	}
}

func (me *Tree) Sub(index, delta int) {
	for index < len(me.buf) {
		me.buf[index] -= delta
		index |= index + 1
	}
}

// Returns the logical value at index.
func (me *Tree) Get(index int) int {
	return me.PrefixSum(index+1, 0) - me.PrefixSum(index, 0)
}

// Returns the smallest index whose inclusive prefix sum exceeds target. Returns 0 if the tree is
// empty, and the last index if target is not less than the total.
func (me *Tree) IndexOf(target int) int {
	n := len(me.buf)
	if n == 0 {
		return 0
	}
	pos := 0
	for step := 1 << (bits.Len(uint(n)) - 1); step > 0; step >>= 1 {
		next := pos + step
		if next > n {
			continue
		}
		// buf[next-1] covers exactly [pos, next) because pos only has bits above step.
		if me.buf[next-1] <= target {
			target -= me.buf[next-1]
			pos = next
		}
	}
	return min(pos, n-1)
}
