package asciichart

import "strings"

// grid is the character buffer a chart is painted into. Cells hold strings
// rather than runes because a cell may carry a multi-rune axis label or a
// glyph wrapped in color sequences. Row 0 is the top line of the chart.
type grid struct {
	cells [][]string
	width int
}

func newGrid(rows, width int) *grid {
	cells := make([][]string, rows)
	for i := range cells {
		row := make([]string, width)
		for j := range row {
			row[j] = " "
		}
		cells[i] = row
	}
	return &grid{cells: cells, width: width}
}

// set overwrites one cell. Writes outside the grid are dropped.
func (g *grid) set(row, col int, s string) {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= g.width {
		return
	}
	g.cells[row][col] = s
}

// render joins the cells into the final text block. Trailing spaces are
// trimmed per line; leading spaces stay, they carry the axis indentation.
func (g *grid) render() string {
	lines := make([]string, len(g.cells))
	for i, row := range g.cells {
		lines[i] = strings.TrimRight(strings.Join(row, ""), " ")
	}
	return strings.Join(lines, "\n")
}
