// Package amortize spreads expensive checks out so their total cost stays proportional to the work
// being checked.
package amortize

import (
	"math/bits"
)

// Passes on the 1st, 2nd, 4th, 8th... attempt, after any warmup attempts which always pass. The
// zero value has no warmup.
type Gate struct {
	attempts uint
	Warmup   uint
}

func (me *Gate) Try() bool {
	me.attempts++
	return me.attempts <= me.Warmup || bits.OnesCount(me.attempts) == 1
}

func (me *Gate) Attempts() uint {
	return me.attempts
}

// Forgets previous attempts, so the gate passes frequently again. Useful after a structural change
// large enough that earlier checks say little about the new state.
func (me *Gate) Reset() {
	me.attempts = 0
}
