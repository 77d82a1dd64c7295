package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const fieldLabelWidth = 14

var (
	focusedValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d7d9da")).
				Background(lipgloss.Color("#1f2530"))

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06c75"))
)

// FieldRow renders one labelled form input with its error label beneath.
// An empty errText renders no error line.
func FieldRow(label, value, errText string, focused bool, width int) string {
	valueWidth := width - fieldLabelWidth - 2
	if valueWidth < 4 {
		valueWidth = 4
	}

	marker := "  "
	if focused {
		marker = "> "
	}
	shown := padRight(ClampTextWidth(value, valueWidth), valueWidth)
	if focused {
		shown = focusedValueStyle.Render(shown)
	} else {
		shown = valueStyle.Render(shown)
	}

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(labelStyle.Render(padRight(ClampTextWidth(label, fieldLabelWidth-1), fieldLabelWidth)))
	b.WriteString(shown)
	if errText != "" {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", fieldLabelWidth+2))
		b.WriteString(fieldErrorStyle.Render(SanitizeOneLine(errText)))
	}
	return b.String()
}
