package sequence

import (
	"fmt"
	"math"
	"runtime"
	"unsafe"

	"golang.org/x/exp/slices"
)

// buffer is the storage owned by a Sequence. Its capacity is len(data) and
// slots past the live elements always hold the zero value.
type buffer[T any] struct {
	data []T
}

// maxSize returns the largest number of elements of type T a buffer can
// describe.
func maxSize[T any]() int {
	var zero T
	if n := unsafe.Sizeof(zero); n > 0 {
		return math.MaxInt / int(n)
	}
	return math.MaxInt
}

// allocate returns a zeroed buffer of capacity n. Requests the runtime
// refuses to satisfy are reported as ErrAllocation instead of panicking.
func allocate[T any](n int) (b buffer[T], err error) {
	if n < 1 || n > maxSize[T]() {
		return buffer[T]{}, fmt.Errorf("%w: capacity %d", ErrAllocation, n)
	}
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			b, err = buffer[T]{}, fmt.Errorf("%w: capacity %d: %s", ErrAllocation, n, re)
		}
	}()
	return buffer[T]{data: make([]T, n)}, nil
}

// capacity returns the number of slots in the buffer.
func (b buffer[T]) capacity() int {
	return len(b.data)
}

// realloc returns a new buffer of capacity n holding the first size elements
// of b. On error b is returned unchanged and still valid.
func (b buffer[T]) realloc(n, size int) (buffer[T], error) {
	x, err := allocate[T](n)
	if err != nil {
		return b, err
	}
	copy(x.data, b.data[:size])
	return x, nil
}

// clone returns a deep copy of b with the same capacity.
func (b buffer[T]) clone() buffer[T] {
	return buffer[T]{data: slices.Clone(b.data)}
}
