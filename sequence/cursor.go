package sequence

import (
	"fmt"
	"iter"
)

// A Cursor is a forward position in a Sequence. It holds an index rather than
// a memory address, together with the generation of the sequence it was taken
// from: any operation that reallocates the sequence or changes its size
// invalidates every outstanding cursor.
//
// Cursors are values; Next returns an advanced copy.
type Cursor[T any] struct {
	s   *Sequence[T]
	pos int
	gen uint64
}

// Begin returns a cursor to the first element.
func (s *Sequence[T]) Begin() Cursor[T] {
	return Cursor[T]{s: s, pos: 0, gen: s.gen}
}

// End returns a cursor one past the last element.
func (s *Sequence[T]) End() Cursor[T] {
	return Cursor[T]{s: s, pos: s.size, gen: s.gen}
}

// All returns an iterator over the index and value of each element, in
// storage order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(i, s.buf.data[i]) {
				return
			}
		}
	}
}

// Valid reports whether the sequence has not been reallocated or resized
// since the cursor was obtained.
func (c Cursor[T]) Valid() bool {
	return c.s != nil && c.gen == c.s.gen
}

// Done reports whether the cursor is at or past the end of the sequence.
func (c Cursor[T]) Done() bool {
	return c.s == nil || c.pos >= c.s.size
}

// Index returns the position of the cursor.
func (c Cursor[T]) Index() int {
	return c.pos
}

// Value returns the element under the cursor. It returns ErrInvalidated if
// the cursor is stale and ErrOutOfRange if it is at the end.
func (c Cursor[T]) Value() (T, error) {
	var zero T
	if !c.Valid() {
		return zero, ErrInvalidated
	}
	if c.pos >= c.s.size {
		return zero, fmt.Errorf("%w: cursor at end, size %d", ErrOutOfRange, c.s.size)
	}
	return c.s.buf.data[c.pos], nil
}

// Next returns a cursor to the following element. A cursor at the end, or an
// invalidated one, is returned unchanged.
func (c Cursor[T]) Next() Cursor[T] {
	if c.Valid() && c.pos < c.s.size {
		c.pos++
	}
	return c
}

// Equal reports whether c and other refer to the same position of the same
// sequence.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.s == other.s && c.pos == other.pos
}
