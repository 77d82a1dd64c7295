package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	bannerTitle    = "s a l e s d e s k"
	bannerSubtitle = "Departments and sellers"
)

// RenderBanner returns the title block shown above the tabs.
func RenderBanner() string {
	width := lipgloss.Width(bannerSubtitle)
	if w := lipgloss.Width(bannerTitle); w > width {
		width = w
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	title := center.Inherit(BannerStyle).Render(bannerTitle)
	subtitle := center.Inherit(HintStyle).Render(bannerSubtitle)
	underline := center.Inherit(RuleStyle).Render(strings.Repeat("─", width))
	return "\n" + title + "\n" + subtitle + "\n" + underline + "\n"
}
