package line

import "errors"

var (
	// ErrLineNil ProductionLine arg is nil
	ErrLineNil = errors.New("production line is nil")

	// ErrNegativeCount a line cannot run a negative number of times
	ErrNegativeCount = errors.New("count is negative")
)
