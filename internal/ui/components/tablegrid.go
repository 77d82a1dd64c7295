package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a single column for TableGrid. Width is the content
// width excluding separators; zero columns share the remaining space.
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

var (
	gridLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#273540"))

	gridHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#436b77")).
			Bold(true)

	gridActiveRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d7d9da")).
				Background(lipgloss.Color("#1f2530")).
				Bold(true)
)

// TableGrid renders rows under a header rule. activeRow highlights one row
// by index; pass -1 to disable highlighting. Every line is tableWidth wide.
func TableGrid(columns []TableColumn, rows [][]string, tableWidth, activeRow int) string {
	if tableWidth <= 0 || len(columns) == 0 {
		return ""
	}
	border := lipgloss.RoundedBorder()
	sep := " " + border.Left + " "
	cols := fitColumns(columns, lipgloss.Width(sep), tableWidth)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}

	out := []string{gridHeaderStyle.Render(gridLine(cols, headers, sep, tableWidth))}
	rule := make([]string, len(cols))
	for i, c := range cols {
		rule[i] = strings.Repeat(border.Top, c.Width)
	}
	out = append(out, gridLineStyle.Render(padRight(strings.Join(rule, border.Top+border.Middle+border.Top), tableWidth)))

	for i, row := range rows {
		line := gridLine(cols, row, sep, tableWidth)
		if i == activeRow {
			line = gridActiveRowStyle.Render(line)
		} else {
			line = valueStyle.Render(line)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func gridLine(cols []TableColumn, cells []string, sep string, width int) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = alignCell(ClampTextWidth(cell, c.Width), c.Width, c.Align)
	}
	return clampRaw(padRight(strings.Join(parts, sep), width), width)
}

func clampRaw(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncateRunes(s, width)
}

func alignCell(s string, width int, align lipgloss.Position) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", gap) + s
	case lipgloss.Center:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// fitColumns hands the width left after fixed columns and separators to
// the flexible ones, shrinking fixed columns when the table is too narrow.
func fitColumns(columns []TableColumn, sepWidth, tableWidth int) []TableColumn {
	cols := make([]TableColumn, len(columns))
	copy(cols, columns)

	avail := tableWidth - sepWidth*(len(cols)-1)
	fixed, flex := 0, 0
	for _, c := range cols {
		if c.Width > 0 {
			fixed += c.Width
		} else {
			flex++
		}
	}

	for fixed > avail-flex && fixed > 0 {
		widest := 0
		for i := range cols {
			if cols[i].Width > cols[widest].Width {
				widest = i
			}
		}
		if cols[widest].Width <= 1 {
			break
		}
		cols[widest].Width--
		fixed--
	}

	if flex > 0 {
		rest := avail - fixed
		share := rest / flex
		if share < 1 {
			share = 1
		}
		extra := rest - share*flex
		for i := range cols {
			if columns[i].Width > 0 {
				continue
			}
			cols[i].Width = share
			if extra > 0 {
				cols[i].Width++
				extra--
			}
		}
	}
	return cols
}
