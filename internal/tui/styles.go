package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/avelorn/chronline/internal/cli/formatter"
	"github.com/avelorn/chronline/internal/domain"
)

// The TUI shares the formatter palette so reports look the same whether they
// come from `chronline report` or the dashboard.
var (
	colorPrimary = formatter.ColorOrange
	colorMuted   = formatter.ColorDim
	colorSuccess = formatter.ColorGreen
	colorWarning = formatter.ColorYellow
	colorError   = formatter.ColorRed
	colorInfo    = formatter.ColorBlue
	colorFg      = formatter.ColorFg
	colorSubtle  = lipgloss.Color("#3c3836")
)

var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	scorePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)
)

// categoryColors keeps chart bars recognizable across refreshes. Labels not
// listed here (user-supplied categories) fall back to blue.
var categoryColors = map[string]lipgloss.Color{
	domain.CategorySocialMedia:  formatter.ColorRed,
	"Entertainment":             formatter.ColorOrange,
	"Gaming":                    formatter.ColorPurple,
	"News":                      formatter.ColorYellow,
	domain.CategoryProductivity: formatter.ColorGreen,
	domain.CategoryOther:        formatter.ColorDim,
}

func categoryStyle(label string) lipgloss.Style {
	if c, ok := categoryColors[label]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle().Foreground(colorInfo)
}
