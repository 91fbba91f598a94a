package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avelorn/chronline/internal/cli/formatter"
	"github.com/avelorn/chronline/internal/contract"
)

const dashboardBarWidth = 24

type dashboardModel struct {
	report *contract.Report
	width  int
	height int
}

func newDashboardModel() dashboardModel {
	return dashboardModel{}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d *dashboardModel) setReport(r *contract.Report) {
	d.report = r
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}
	if d.report == nil {
		return mutedStyle.Render("  Crunching the numbers...")
	}

	w := d.width - 4
	scorePanel := d.renderScorePanel(w)

	if d.report.EntryCount == 0 {
		empty := panelStyle.Width(w).Render(
			mutedStyle.Render("No entries yet. Press 4 to add one, or run 'chronline import'."),
		)
		return lipgloss.JoinVertical(lipgloss.Left, scorePanel, empty)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		scorePanel,
		d.renderMetricsPanel(w),
		d.renderTopAppsPanel(w),
	)
}

func (d dashboardModel) renderScorePanel(w int) string {
	score := d.report.ChronicScore
	level := formatter.LevelColor(score.Level)

	headline := lipgloss.JoinHorizontal(lipgloss.Center,
		level.Bold(true).Render(fmt.Sprintf("%d/100", score.Score)),
		"  ",
		formatter.LevelBadge(score.Level),
	)

	rows := []string{
		headline,
		formatter.RenderProgress(float64(score.Score)/100, dashboardBarWidth),
		mutedStyle.Render(score.Description),
	}

	if d.report.EntryCount > 0 {
		b := score.Breakdown
		rows = append(rows, "",
			fmt.Sprintf("  %-14s %s  %s", "Screen time",
				titleStyle.Render(fmt.Sprintf("%2d/40", b.TimeScore)),
				mutedStyle.Render(fmt.Sprintf("%.1fh per day", b.AvgHoursPerDay))),
			fmt.Sprintf("  %-14s %s  %s", "Doomscrolling",
				titleStyle.Render(fmt.Sprintf("%2d/30", b.DoomscrollScore)),
				mutedStyle.Render(fmt.Sprintf("%.1f%% of screen time", b.DoomscrollPercentage))),
			fmt.Sprintf("  %-14s %s", "Pickups",
				titleStyle.Render(fmt.Sprintf("%2d/30", b.PickupScore))),
		)
	}

	return scorePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderMetricsPanel(w int) string {
	m := d.report.Metrics

	rows := []string{
		titleStyle.Render("Metrics"),
		fmt.Sprintf("  Screen time   %s across %d days (%d entries)",
			formatter.FormatHours(m.TotalScreenTimeHours), m.DaysTracked, d.report.EntryCount),
		fmt.Sprintf("  Doomscrolling %s", formatter.FormatHours(m.DoomscrollHours)),
		fmt.Sprintf("  Pickups       %d total, %.1f per day", m.TotalPickups, m.AvgPickupsPerDay),
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderTopAppsPanel(w int) string {
	rows := []string{titleStyle.Render("Top Apps")}

	if len(d.report.Metrics.TopApps) == 0 {
		rows = append(rows, mutedStyle.Render("  No app usage recorded"))
	}
	for i, app := range d.report.Metrics.TopApps {
		rows = append(rows, fmt.Sprintf("  %d. %-20s %s",
			i+1, app.App, formatter.FormatHours(app.Hours)))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
