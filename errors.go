package artgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/artgo/category"
)

var (
	// ErrInvalidMaxCategories is returned when MaxCategories is not positive.
	ErrInvalidMaxCategories = errors.New("max categories must be positive")

	// ErrInvalidVigilance is returned when the vigilance parameter is
	// outside [0, 1].
	ErrInvalidVigilance = errors.New("vigilance must be in [0, 1]")

	// ErrInvalidLearningRate is returned when the learning rate is outside
	// [0, 1].
	ErrInvalidLearningRate = errors.New("learning rate must be in [0, 1]")

	// ErrNoCategory indicates corrupted search bookkeeping: the search
	// exhausted an empty store at full capacity. It is unreachable in
	// correct operation and signals a programming error, not a recoverable
	// runtime condition.
	ErrNoCategory = errors.New("no category available and capacity reached")
)

// ErrCapacityExceeded indicates that the network already holds the maximum
// number of categories.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrCapacityExceeded struct {
	Max   int
	cause error
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("maximum categories (%d) reached", e.Max)
}

func (e *ErrCapacityExceeded) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates a pattern/network length mismatch. It is
// raised at the input boundary, before the search loop runs.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidInputSize indicates an invalid configured input size.
type ErrInvalidInputSize struct {
	InputSize int
}

func (e *ErrInvalidInputSize) Error() string {
	return fmt.Sprintf("invalid input size: %d", e.InputSize)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ce *category.ErrCapacityExceeded
	if errors.As(err, &ce) {
		return &ErrCapacityExceeded{Max: ce.Max, cause: err}
	}
	var dm *category.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}

	return err
}
