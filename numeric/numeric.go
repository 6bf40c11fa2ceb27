package numeric

import (
	"fmt"
	"math"
	"strconv"
)

// ToEven parses s and rounds it toward zero to an even number.
func ToEven(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return n - n%2, nil
}

// Divide returns x/y truncated toward zero.
// math.MinInt / -1 does not fit in an int and fails with ErrOverflow.
func Divide(x, y int) (int, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	if x == math.MinInt && y == -1 {
		return 0, ErrOverflow
	}
	return x / y, nil
}
