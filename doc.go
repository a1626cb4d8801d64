// Package ordset implements an ordered set with positional (order statistic) access.
//
// Elements live in a sequence of sorted, fixed-capacity chunks. A Fenwick tree over the chunk
// lengths maps global ranks to chunks, so lookups by value and by rank are both logarithmic in the
// number of chunks plus a binary search within one chunk. Full chunks are split in two before an
// insert lands in them, and chunks emptied by removals are dropped, except for the last remaining
// one.
//
// A Set isn't safe for concurrent use. Iterators and cursors borrow the Set and must not outlive
// a mutation of it: iterators panic if they notice one.
package ordset
