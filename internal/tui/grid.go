package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/devtracer/matrixcalc/internal/matrix"
)

const cellCharLimit = 12

// cellGrid is the set of entry fields for one operand. A zero cellGrid means
// nothing has been generated yet.
type cellGrid struct {
	name  string
	color lipgloss.Color
	cells [][]textinput.Model
}

func newCellGrid(name string, color lipgloss.Color, d matrix.Dims, width int) cellGrid {
	cells := make([][]textinput.Model, d.Rows)
	for i := range cells {
		cells[i] = make([]textinput.Model, d.Cols)
		for j := range cells[i] {
			cells[i][j] = newCellInput(width)
		}
	}
	return cellGrid{name: name, color: color, cells: cells}
}

func newCellInput(width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "0"
	ti.CharLimit = cellCharLimit
	ti.Width = width
	return ti
}

func (g cellGrid) empty() bool { return len(g.cells) == 0 }

func (g cellGrid) dims() matrix.Dims {
	if g.empty() {
		return matrix.Dims{}
	}
	return matrix.Dims{Rows: len(g.cells), Cols: len(g.cells[0])}
}

// values snapshots the raw text of every cell.
func (g cellGrid) values() [][]string {
	out := make([][]string, len(g.cells))
	for i, row := range g.cells {
		out[i] = make([]string, len(row))
		for j := range row {
			out[i][j] = row[j].Value()
		}
	}
	return out
}

// view renders the grid. focusRow/focusCol of -1 means no cell is focused.
func (g cellGrid) view(width, focusRow, focusCol int) string {
	title := lipgloss.NewStyle().Foreground(g.color).Bold(true).
		Render(g.name + " " + g.dims().String())
	lines := []string{title}
	for i, row := range g.cells {
		parts := make([]string, 0, len(row))
		for j := range row {
			style := cellStyle
			if i == focusRow && j == focusCol {
				style = focusedCellStyle
			}
			parts = append(parts, style.Render("["+fitWidth(row[j].View(), width)+"]"))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

// newResultTable renders a product as a read-only table: it is never focused
// and has no selected-row highlight.
func newResultTable(m matrix.Matrix, minWidth int) table.Model {
	width := minWidth
	for _, row := range m {
		for _, v := range row {
			width = max(width, len(strconv.Itoa(v)))
		}
	}
	cols := make([]table.Column, m.Cols())
	for j := range cols {
		cols[j] = table.Column{Title: "c" + strconv.Itoa(j+1), Width: width}
	}
	rows := make([]table.Row, m.Rows())
	for i, row := range m {
		r := make(table.Row, len(row))
		for j, v := range row {
			r[j] = strconv.Itoa(v)
		}
		rows[i] = r
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(m.Rows()+2),
		table.WithFocused(false),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSurface2).
		BorderBottom(true).
		Foreground(colorSubtext0)
	styles.Cell = styles.Cell.Foreground(colorSuccess)
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)
	return t
}
