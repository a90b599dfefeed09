package sequence

import (
	"fmt"

	"github.com/go-logr/logr"
	"golang.org/x/exp/slices"
)

// A Sequence is a resizable array of elements of type T. It owns a buffer of
// Capacity() slots of which the first Size() hold live elements. The capacity
// never drops below 1.
//
// The zero value is an empty sequence ready to use. A Sequence must not be
// copied after first use; use Clone or Move instead. A Sequence is not safe
// for concurrent use, except that methods which do not modify it, such as
// Size, Capacity, At or Data, may run concurrently with each other.
type Sequence[T any] struct {
	buf  buffer[T]
	size int
	gen  uint64
	log  logr.Logger
}

// New creates and initializes an empty Sequence with a capacity of 1.
func New[T any](opts ...Option) *Sequence[T] {
	o := newOptions(opts)
	return &Sequence[T]{
		buf: buffer[T]{data: make([]T, 1)},
		log: o.log,
	}
}

// NewFilled creates a Sequence holding count copies of value. It panics if
// count is negative or cannot be allocated, like the make built-in.
func NewFilled[T any](count int, value T, opts ...Option) *Sequence[T] {
	s := New[T](opts...)
	if err := s.ResizeWith(count, value); err != nil {
		panic(err)
	}
	return s
}

// NewFromValues creates a Sequence holding a copy of values. Its capacity is
// the length of values, or 1 if values is empty.
func NewFromValues[T any](values []T, opts ...Option) *Sequence[T] {
	s := New[T](opts...)
	if len(values) == 0 {
		return s
	}
	s.buf = buffer[T]{data: slices.Clone(values)}
	s.size = len(values)
	return s
}

// lazyInit gives a zero value Sequence its initial buffer. Only mutating
// methods call it, so reading a zero value Sequence never writes to it.
func (s *Sequence[T]) lazyInit() {
	if s.buf.data == nil {
		s.buf = buffer[T]{data: make([]T, 1)}
	}
}

// Empty reports whether the sequence holds no elements.
func (s *Sequence[T]) Empty() bool {
	return s.size == 0
}

// Capacity returns the number of elements the sequence can hold without
// reallocating.
func (s *Sequence[T]) Capacity() int {
	return max(s.buf.capacity(), 1)
}

// Size returns the number of elements in the sequence.
func (s *Sequence[T]) Size() int {
	return s.size
}

// MaxSize returns the largest number of elements a sequence of T can
// describe.
func (s *Sequence[T]) MaxSize() int {
	return maxSize[T]()
}

// Reserve sets the capacity to exactly n, preserving all elements. It returns
// ErrInvalidArgument if n is less than Size(). A request for a zero capacity
// on an empty sequence is treated as a request for 1. If the new buffer cannot
// be allocated the sequence is left unchanged.
func (s *Sequence[T]) Reserve(n int) error {
	s.lazyInit()
	if n < s.size {
		return fmt.Errorf("%w: capacity %d is less than size %d", ErrInvalidArgument, n, s.size)
	}
	if n == 0 {
		n = 1
	}
	if n == s.buf.capacity() {
		return nil
	}
	return s.realloc(n)
}

// ShrinkToFit reduces the capacity to Size(), or to 1 if the sequence is
// empty.
func (s *Sequence[T]) ShrinkToFit() error {
	s.lazyInit()
	n := max(s.size, 1)
	if n == s.buf.capacity() {
		return nil
	}
	return s.realloc(n)
}

// Clear removes all elements. The capacity is unchanged.
func (s *Sequence[T]) Clear() {
	s.lazyInit()
	clear(s.buf.data[:s.size])
	s.size = 0
	s.gen++
}

// PushBack appends value, doubling the capacity first if the sequence is
// full.
func (s *Sequence[T]) PushBack(value T) error {
	if err := s.reserveOne(); err != nil {
		return err
	}
	s.buf.data[s.size] = value
	s.size++
	s.gen++
	return nil
}

// PushBackMove appends the value pointed to by value and resets it to the
// zero value of T. On error *value is left untouched.
func (s *Sequence[T]) PushBackMove(value *T) error {
	if value == nil {
		return fmt.Errorf("%w: nil value", ErrInvalidArgument)
	}
	if err := s.PushBack(*value); err != nil {
		return err
	}
	var zero T
	*value = zero
	return nil
}

// EmplaceBack appends the element returned by construct. construct runs
// before the sequence is touched, so it may itself use the sequence. The
// growth policy is the one of PushBack.
func (s *Sequence[T]) EmplaceBack(construct func() T) error {
	v := construct()
	if err := s.reserveOne(); err != nil {
		return err
	}
	s.buf.data[s.size] = v
	s.size++
	s.gen++
	return nil
}

// PopBack removes the last element. It returns ErrUnderflow if the sequence
// is empty.
func (s *Sequence[T]) PopBack() error {
	if s.size == 0 {
		return ErrUnderflow
	}
	s.size--
	var zero T
	s.buf.data[s.size] = zero
	s.gen++
	return nil
}

// Resize sets the size to count. New elements are the zero value of T.
func (s *Sequence[T]) Resize(count int) error {
	var zero T
	return s.ResizeWith(count, zero)
}

// ResizeWith sets the size to count. If count exceeds the capacity, the
// capacity is first grown to twice count. Growing fills exactly the slots
// [Size(), count) with value; shrinking truncates without releasing memory.
func (s *Sequence[T]) ResizeWith(count int, value T) error {
	s.lazyInit()
	if count < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidArgument, count)
	}
	if count > s.buf.capacity() {
		if err := s.realloc(resizeCapacity(count, s.MaxSize())); err != nil {
			return err
		}
	}
	if count > s.size {
		for i := s.size; i < count; i++ {
			s.buf.data[i] = value
		}
	} else {
		clear(s.buf.data[count:s.size])
	}
	s.size = count
	s.gen++
	return nil
}

// Swap exchanges the contents of s and other without copying elements.
func (s *Sequence[T]) Swap(other *Sequence[T]) {
	if s == other {
		return
	}
	s.lazyInit()
	other.lazyInit()
	s.buf, other.buf = other.buf, s.buf
	s.size, other.size = other.size, s.size
	s.gen++
	other.gen++
}

// Index returns the element at pos without checking it against Size(). The
// caller is responsible for validating pos.
func (s *Sequence[T]) Index(pos int) T {
	return s.buf.data[pos]
}

// Ref returns a pointer to the element at pos without checking it against
// Size(). The pointer is valid until the next reallocation.
func (s *Sequence[T]) Ref(pos int) *T {
	return &s.buf.data[pos]
}

// At returns the element at pos, or ErrOutOfRange if pos is not in
// [0, Size()).
func (s *Sequence[T]) At(pos int) (T, error) {
	if err := s.check(pos); err != nil {
		var zero T
		return zero, err
	}
	return s.buf.data[pos], nil
}

// AtRef returns a pointer to the element at pos, or ErrOutOfRange if pos is
// not in [0, Size()).
func (s *Sequence[T]) AtRef(pos int) (*T, error) {
	if err := s.check(pos); err != nil {
		return nil, err
	}
	return &s.buf.data[pos], nil
}

// Set replaces the element at pos, or returns ErrOutOfRange if pos is not in
// [0, Size()).
func (s *Sequence[T]) Set(pos int, value T) error {
	if err := s.check(pos); err != nil {
		return err
	}
	s.buf.data[pos] = value
	return nil
}

// Front returns the first element.
func (s *Sequence[T]) Front() (T, error) {
	return s.At(0)
}

// Back returns the last element.
func (s *Sequence[T]) Back() (T, error) {
	return s.At(s.size - 1)
}

// Data returns a view of the live elements. The view shares memory with the
// sequence until the next reallocation; appending to it never writes into
// the sequence.
func (s *Sequence[T]) Data() []T {
	return s.buf.data[:s.size:s.size]
}

// Values returns a copy of the live elements.
func (s *Sequence[T]) Values() []T {
	return slices.Clone(s.Data())
}

// Clone returns a deep copy of s with the same size and capacity.
func (s *Sequence[T]) Clone() *Sequence[T] {
	return &Sequence[T]{
		buf:  s.buf.clone(),
		size: s.size,
		log:  s.log,
	}
}

// CopyFrom replaces the contents of s with a deep copy of src. The copy is
// built before s is modified.
func (s *Sequence[T]) CopyFrom(src *Sequence[T]) {
	if s == src {
		return
	}
	s.buf = src.buf.clone()
	s.size = src.size
	s.gen++
}

// Move returns a new Sequence that takes over the buffer of s. s is left
// empty with a capacity of 1.
func (s *Sequence[T]) Move() *Sequence[T] {
	x := &Sequence[T]{log: s.log}
	x.MoveFrom(s)
	return x
}

// MoveFrom transfers the buffer of src to s, releasing the previous buffer of
// s. src is left empty with a capacity of 1.
func (s *Sequence[T]) MoveFrom(src *Sequence[T]) {
	if s == src {
		return
	}
	src.lazyInit()
	s.buf, s.size = src.buf, src.size
	s.gen++
	src.buf = buffer[T]{data: make([]T, 1)}
	src.size = 0
	src.gen++
}

// Equal reports whether a and b hold the same elements in the same order.
// Capacities are not compared.
func Equal[T comparable](a, b *Sequence[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// check returns an error if pos is not the index of a live element.
func (s *Sequence[T]) check(pos int) error {
	if pos < 0 || pos >= s.size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, pos, s.size)
	}
	return nil
}

// reserveOne makes room for one more element, doubling the capacity when the
// sequence is full. The capacity is clamped to MaxSize().
func (s *Sequence[T]) reserveOne() error {
	s.lazyInit()
	c := s.buf.capacity()
	if s.size < c {
		return nil
	}
	n, ok := growCapacity(c, s.MaxSize())
	if !ok {
		err := fmt.Errorf("%w: size %d is the maximum", ErrAllocation, s.size)
		s.log.Error(err, "cannot grow buffer", "size", s.size)
		return err
	}
	return s.realloc(n)
}

// growCapacity returns twice c, clamped to limit. It returns false if c has
// already reached limit.
func growCapacity(c, limit int) (int, bool) {
	if c >= limit {
		return c, false
	}
	if c > limit/2 {
		return limit, true
	}
	return c * 2, true
}

// resizeCapacity returns the capacity used to hold count elements after a
// resize: twice count, or count itself when doubling would exceed limit.
func resizeCapacity(count, limit int) int {
	if count > limit/2 {
		return count
	}
	return count * 2
}

// realloc moves the live elements to a new buffer of capacity n. The current
// buffer is only released once the new one is allocated.
func (s *Sequence[T]) realloc(n int) error {
	from := s.buf.capacity()
	b, err := s.buf.realloc(n, s.size)
	if err != nil {
		s.log.Error(err, "cannot reallocate buffer", "from", from, "to", n, "size", s.size)
		return err
	}
	s.buf = b
	s.gen++
	s.log.V(1).Info("reallocated buffer", "from", from, "to", n, "size", s.size)
	return nil
}
