package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// centerModal draws box over the middle of the first height rows of view.
// Rows from height on (status line and footer) are never covered.
func centerModal(view, box string, width, height int) string {
	rows := strings.Split(view, "\n")
	boxRows := strings.Split(box, "\n")
	boxWidth := lipgloss.Width(box)

	x := max((width-boxWidth)/2, 0)
	top := max((min(height, len(rows))-len(boxRows))/2, 0)
	for i, seg := range boxRows {
		r := top + i
		if r >= height || r >= len(rows) {
			break
		}
		rows[r] = spliceRow(rows[r], seg, x, boxWidth, width)
	}
	return strings.Join(rows, "\n")
}

// spliceRow replaces cells [x, x+w) of row with seg, keeping the row width.
func spliceRow(row, seg string, x, w, width int) string {
	row = fitWidth(row, max(width, x+w))
	return ansi.Truncate(row, x, "") + fitWidth(seg, w) + ansi.TruncateLeft(row, x+w, "")
}

// fitWidth truncates or pads s to exactly w cells.
func fitWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = ansi.Truncate(s, w, "…")
	if gap := w - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}
