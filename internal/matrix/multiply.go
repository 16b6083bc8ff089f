package matrix

import "fmt"

// Multiply returns the product a×b.
//
// Both operands must be non-empty rectangles and a.Cols() must equal
// b.Rows(); otherwise no computation is performed and the returned error
// matches ErrBadShape, ErrRagged or ErrDimensionMismatch. Arithmetic uses
// native int semantics, so overflow wraps. Inputs are not modified.
// Complexity: O(r_a·c_a·c_b).
func Multiply(a, b Matrix) (Matrix, error) {
	if err := Validate(a); err != nil {
		return nil, fmt.Errorf("multiply: left operand: %w", err)
	}
	if err := Validate(b); err != nil {
		return nil, fmt.Errorf("multiply: right operand: %w", err)
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("multiply %s by %s: %w", a.Dims(), b.Dims(), ErrDimensionMismatch)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out := make(Matrix, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]int, cols)
		for j := 0; j < cols; j++ {
			sum := 0
			for k := 0; k < inner; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out, nil
}

// CanMultiply reports whether shapes a and b are compatible for a×b.
func CanMultiply(a, b Dims) bool {
	return a.Cols == b.Rows
}
