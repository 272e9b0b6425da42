package viz

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/san-kum/spectre/internal/analysis"
)

// DegeneracyTol is the gap below which neighbouring levels share a group.
const DegeneracyTol = 1e-8

// LevelTable renders the spectrum with spacings and degeneracies. The row
// for selected, if in range, is highlighted.
func LevelTable(values []float64, selected int, t Theme) string {
	styles := NewStyles(t)
	spacings := analysis.LevelSpacings(values)

	degen := make([]int, len(values))
	for _, g := range analysis.Degeneracies(values, DegeneracyTol) {
		for _, i := range g {
			degen[i] = len(g)
		}
	}

	rows := make([][]string, len(values))
	for i, e := range values {
		gap := "-"
		if i < len(spacings) {
			gap = fmt.Sprintf("%.6f", spacings[i])
		}
		rows[i] = []string{strconv.Itoa(i), fmt.Sprintf("%.8f", e), gap, strconv.Itoa(degen[i])}
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers("n", "E", "ΔE", "g").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Inherit(styles.Title)
			case row == selected:
				return base.Inherit(styles.Selected)
			case col == 1:
				return base.Inherit(styles.Value)
			}
			return base.Foreground(t.Text)
		})

	return tbl.Render()
}
