package components

import "github.com/charmbracelet/lipgloss"

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(1, 2).
			Width(44)

	alertStyle = dialogStyle.
			BorderForeground(lipgloss.Color("#7a2f3a"))

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)
)

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(title, message string) string {
	return dialogStyle.Render(
		dialogTitleStyle.Render(SanitizeOneLine(title)) + "\n\n" +
			valueStyle.Render(SanitizeText(message)) + "\n\n" +
			mutedStyle.Render("y: confirm | n: cancel"),
	)
}

// AlertDialog renders an error alert that is dismissed with any key.
func AlertDialog(title, message string) string {
	return alertStyle.Render(
		errorTitleStyle.Render(SanitizeOneLine(title)) + "\n\n" +
			errorBodyStyle.Render(SanitizeText(message)) + "\n\n" +
			mutedStyle.Render("press any key"),
	)
}
