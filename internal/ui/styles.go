package ui

import "github.com/charmbracelet/lipgloss"

// Palette: a ledger green brand on a slate background, amber for focus and
// a soft red reserved for save and delete failures.
var (
	colorBrand  = lipgloss.Color("#5fa67f")
	colorSlate  = lipgloss.Color("#14181f")
	colorDim    = lipgloss.Color("#8c93a8")
	colorAmber  = lipgloss.Color("#d9a55b")
	colorAlert  = lipgloss.Color("#e06c75")
	colorRuling = lipgloss.Color("#2b3a44")
)

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(colorSlate).
			Background(colorBrand).
			Bold(true).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Padding(0, 1)

	// HintStyle is for counts, loading lines and help text.
	HintStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	// PlaceholderStyle marks an empty choice in a form.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorAmber).
				Italic(true)

	// FormFailureStyle shows a form's own failure below its fields.
	FormFailureStyle = lipgloss.NewStyle().
				Foreground(colorAlert).
				Bold(true)

	RuleStyle = lipgloss.NewStyle().
			Foreground(colorRuling)
)
