package cliui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

// heat shades a confusion cell from dim (0) to bright (1).
var heat = []lipgloss.Style{
	CellStyle.Foreground(lipgloss.Color("238")),
	CellStyle.Foreground(lipgloss.Color("244")),
	CellStyle.Foreground(lipgloss.Color("250")),
	CellStyle.Foreground(lipgloss.Color("229")),
	CellStyle.Foreground(lipgloss.Color("214")),
	CellStyle.Foreground(lipgloss.Color("202")).Bold(true),
}

func heatStyle(v float64) lipgloss.Style {
	i := int(v * float64(len(heat)-1))
	i = max(0, min(i, len(heat)-1))
	return heat[i]
}

// Table renders headers and rows with the shared charnn look.
func Table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(DimStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return CellStyle
		}).
		String()
}

// ConfusionTable renders a square matrix of row-normalized values with the
// actual category down the side and the guess across the top.
func ConfusionTable(labels []string, at func(row, col int) float64) string {
	headers := make([]string, 0, len(labels)+1)
	headers = append(headers, "actual \\ guess")
	headers = append(headers, labels...)

	values := make([][]float64, len(labels))
	rows := make([][]string, len(labels))
	for i, label := range labels {
		values[i] = make([]float64, len(labels))
		row := make([]string, 0, len(labels)+1)
		row = append(row, label)
		for j := range labels {
			values[i][j] = at(i, j)
			row = append(row, fmt.Sprintf("%.2f", values[i][j]))
		}
		rows[i] = row
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(DimStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == 0:
				return KeyStyle.Padding(0, 1)
			default:
				return heatStyle(values[row][col-1])
			}
		}).
		String()
}
