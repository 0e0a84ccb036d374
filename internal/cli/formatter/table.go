package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const colGap = 2

// RenderTable renders rows under a header and a single rule, with no outer
// border. Short rows are padded with empty cells.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	padded := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		padded[i] = cells
	}

	last := len(headers) - 1
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		Headers(headers...).
		Rows(padded...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle()
			if row == table.HeaderRow {
				s = StyleHeader
			}
			if col < last {
				s = s.PaddingRight(colGap)
			}
			return s
		})

	return t.String() + "\n"
}
