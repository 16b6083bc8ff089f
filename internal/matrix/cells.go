package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCell converts the text of a single cell to an integer. Text that does
// not parse becomes 0 so one bad cell never aborts a calculation.
func ParseCell(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// CollectCells builds a Matrix from a grid of raw cell strings using the
// ParseCell policy. The grid itself must be a non-empty rectangle.
func CollectCells(cells [][]string) (Matrix, error) {
	m := make(Matrix, len(cells))
	for i, row := range cells {
		m[i] = make([]int, len(row))
		for j, raw := range row {
			m[i][j] = ParseCell(raw)
		}
	}
	if err := Validate(m); err != nil {
		return nil, fmt.Errorf("collect cells: %w", err)
	}
	return m, nil
}

// ParseLiteral parses the compact text form "1,2;3,4". Rows are separated by
// ';' or newlines, cells by ',' or whitespace.
func ParseLiteral(s string) (Matrix, error) {
	rows := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' })
	grid := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := strings.FieldsFunc(row, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		if len(cells) == 0 {
			continue
		}
		grid = append(grid, cells)
	}
	m, err := CollectCells(grid)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", s, err)
	}
	return m, nil
}
