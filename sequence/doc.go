/*
Package sequence implements a generic dynamic array. It defines the type
Sequence, a resizable run of elements with constant-time indexed access and
amortized constant-time append, and the type Cursor, a forward position in a
Sequence.

A Sequence owns a buffer whose capacity is never less than 1. When an append
finds the buffer full, the capacity is doubled, so n appends starting from an
empty sequence copy O(n) elements in total:

	s := sequence.New[int]()
	for i := 0; i < 10; i++ {
		_ = s.PushBack(i) // capacity 1, 2, 4, 8, 16
	}

Reallocation is atomic: the new buffer is allocated before the old one is
released, and a failed allocation leaves the sequence untouched and returns
ErrAllocation.

Element access comes in two flavours. Index and Ref perform no validation
against the size of the sequence, while At, AtRef, Set, Front and Back return
ErrOutOfRange for positions outside [0, Size()).

Cursors hold an index and the generation of their sequence. Any operation that
reallocates or changes the size of a sequence invalidates its cursors, which
then report ErrInvalidated instead of reading stale memory.

A Sequence is not safe for concurrent use.
*/
package sequence
