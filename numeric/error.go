package numeric

import "errors"

var (
	// ErrNotANumber text is not an integer
	ErrNotANumber = errors.New("not a number")

	// ErrDivisionByZero divisor is zero
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow result does not fit in an int
	ErrOverflow = errors.New("integer overflow")
)
