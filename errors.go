package geodarray

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when the arrays passed to a mapping do not
	// share a common logical length.
	ErrShapeMismatch = errors.New("array shape mismatch")

	// ErrReadOnly is returned when a read-only view is used as an output.
	ErrReadOnly = errors.New("array is read-only")

	// ErrNilArray is returned when a nil array is passed to a mapping.
	ErrNilArray = errors.New("nil array")

	// ErrOutOfRange is returned when an array view does not fit in its
	// backing slice.
	ErrOutOfRange = errors.New("array view out of range")

	// ErrEmptyPath is returned by path operations given fewer than two points.
	ErrEmptyPath = errors.New("path needs at least two points")
)

// ShapeError describes which argument of an operation had the wrong length.
//
// errors.Is(err, ErrShapeMismatch) reports true for every ShapeError.
type ShapeError struct {
	Op       string
	Arg      string
	Expected int
	Actual   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s has length %d, expected %d",
		e.Op, e.Arg, e.Actual, e.Expected)
}

func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

// ArrayError reports an invalid array view.
type ArrayError struct {
	Offset int
	Stride int
	Len    int
	Cap    int
	cause  error
}

func (e *ArrayError) Error() string {
	return fmt.Sprintf("invalid view (offset %d, stride %d, len %d) over %d values: %v",
		e.Offset, e.Stride, e.Len, e.Cap, e.cause)
}

func (e *ArrayError) Unwrap() error { return e.cause }

// argError tags an attach failure with the operation and argument name.
func argError(op, arg string, err error) error {
	return fmt.Errorf("%s: %s: %w", op, arg, err)
}
