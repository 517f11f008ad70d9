package kiddo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when New is called with zero points.
	ErrEmptyInput = errors.New("point set must not be empty")
)

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrDimensionMismatch indicates a point or query row whose coordinate count
// differs from the tree's declared dimensionality.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
	Row      int // Offending input row
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch at row %d: expected %d, got %d", e.Row, e.Expected, e.Actual)
}

// ErrNonFiniteCoordinate indicates a NaN or infinite coordinate in a point or
// query row.
type ErrNonFiniteCoordinate struct {
	Row   int
	Dim   int
	Value float32
}

func (e *ErrNonFiniteCoordinate) Error() string {
	return fmt.Sprintf("non-finite coordinate at row %d, dim %d: %v", e.Row, e.Dim, e.Value)
}

// ErrNegativeRadius indicates a negative search radius.
type ErrNegativeRadius struct {
	Radius float32
}

func (e *ErrNegativeRadius) Error() string {
	return fmt.Sprintf("radius must be >= 0, got %v", e.Radius)
}
