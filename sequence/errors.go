package sequence

import "errors"

// Errors returned by Sequence and Cursor operations. Returned errors wrap
// one of these values and can be matched with errors.Is.
var (
	// ErrUnderflow indicates a removal was requested on an empty sequence.
	ErrUnderflow = errors.New("sequence is empty")

	// ErrOutOfRange indicates a checked access outside [0, size).
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument indicates an invalid count, capacity or source.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAllocation indicates the buffer could not be allocated. The sequence
	// is left as it was before the call. It is only returned for requests
	// above MaxSize or that the runtime rejects as too large; running out of
	// memory below that ceiling is fatal to the program and is not reported.
	ErrAllocation = errors.New("cannot allocate buffer")

	// ErrInvalidated indicates a cursor was used after its sequence was
	// reallocated or resized.
	ErrInvalidated = errors.New("cursor invalidated")
)
