package components

import "github.com/charmbracelet/lipgloss"

var (
	keyCapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#888ba4")).
			Bold(true).
			Padding(0, 1)
	segmentStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(0, 1).
			MarginRight(1)
)

// Hint formats a single keybind hint like "Save ctrl+s".
func Hint(key, desc string) string {
	return mutedStyle.Render(desc+" ") + keyCapStyle.Render(key)
}

// StatusBar renders hints as bordered segments, wrapping rows to width.
func StatusBar(hints []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, h := range hints {
		seg := segmentStyle.Render(h)
		w := lipgloss.Width(seg)
		if width > 0 && rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, seg)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
