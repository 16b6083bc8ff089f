package matrix

import "errors"

// Sentinel errors. Callers match them with errors.Is; boundaries may wrap
// them with fmt.Errorf("ctx: %w", err).
var (
	// ErrDimensionMismatch is returned by Multiply when a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadShape is returned for a nil or empty matrix, or a row with no cells.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRagged is returned when rows have different lengths.
	ErrRagged = errors.New("matrix: rows have different lengths")
)
