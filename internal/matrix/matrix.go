package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is a rectangular grid of integers stored row-major.
type Matrix [][]int

// Dims is the row and column count of one matrix.
type Dims struct {
	Rows int
	Cols int
}

func (d Dims) String() string {
	return fmt.Sprintf("%d×%d", d.Rows, d.Cols)
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the length of the first row, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Dims returns the shape of m.
func (m Matrix) Dims() Dims { return Dims{Rows: m.Rows(), Cols: m.Cols()} }

// Validate reports whether m is a non-empty rectangle.
func Validate(m Matrix) error {
	if len(m) == 0 {
		return ErrBadShape
	}
	cols := len(m[0])
	if cols == 0 {
		return ErrBadShape
	}
	for i, row := range m {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), cols, ErrRagged)
		}
	}
	return nil
}

// Zeros allocates an r×c matrix of zeros.
func Zeros(r, c int) (Matrix, error) {
	if r < 1 || c < 1 {
		return nil, fmt.Errorf("zeros %d×%d: %w", r, c, ErrBadShape)
	}
	m := make(Matrix, r)
	for i := range m {
		m[i] = make([]int, c)
	}
	return m, nil
}

// Identity allocates an n×n identity matrix.
func Identity(n int) (Matrix, error) {
	m, err := Zeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := range m {
		m[i][i] = 1
	}
	return m, nil
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether a and b have the same shape and cells.
func Equal(a, b Matrix) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders m in the literal form accepted by ParseLiteral.
func (m Matrix) String() string {
	var b strings.Builder
	for i, row := range m {
		if i > 0 {
			b.WriteByte(';')
		}
		for j, v := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(v))
		}
	}
	return b.String()
}
