package category

import "fmt"

// ErrCapacityExceeded indicates that the store already holds the maximum
// number of categories.
type ErrCapacityExceeded struct {
	Max int
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("maximum categories (%d) reached", e.Max)
}

// ErrDimensionMismatch indicates a pattern/store length mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
