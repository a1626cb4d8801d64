package ordset

import (
	"fmt"

	"github.com/anacrolix/missinggo/v2/panicif"
	"github.com/google/go-cmp/cmp"
)

// Walks the whole structure, so callers should gate it.
func (me *Set[T]) checkInvariants() {
	panicif.LessThan(len(me.chunks), 1)
	panicif.NotEq(me.index.Len(), len(me.chunks))
	var chunkLens, indexLens []int
	total := 0
	for i := range me.chunks {
		c := &me.chunks[i]
		chunkLens = append(chunkLens, c.len())
		indexLens = append(indexLens, me.index.Get(i))
		panicif.GreaterThan(c.len(), c.capacity)
		if c.len() == 0 {
			panicif.NotEq(len(me.chunks), 1)
			panicif.True(c.max.Ok)
			continue
		}
		panicif.False(c.max.Ok)
		panicif.NotZero(me.cmp(c.max.Value, c.items[c.len()-1]))
		for j := 1; j < c.len(); j++ {
			panicif.True(me.cmp(c.items[j-1], c.items[j]) >= 0)
		}
		if i > 0 {
			panicif.True(me.cmp(me.chunks[i-1].max.Value, c.items[0]) >= 0)
		}
		total += c.len()
	}
	if diff := cmp.Diff(chunkLens, indexLens); diff != "" {
		panic(fmt.Sprintf("index doesn't match chunk lengths (-chunks +index):\n%s", diff))
	}
	panicif.NotEq(total, me.len)
}
