package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/avelorn/chronline/internal/cli/formatter"
	"github.com/avelorn/chronline/internal/contract"
)

type chartsModel struct {
	report *contract.Report
	width  int
	height int

	categoryChart barchart.Model
	dailyChart    barchart.Model
}

func newChartsModel() chartsModel {
	return chartsModel{
		categoryChart: barchart.New(60, 8),
		dailyChart:    barchart.New(60, 8),
	}
}

func (c *chartsModel) setSize(w, h int) {
	c.width = w
	c.height = h
	c.build()
}

func (c *chartsModel) setReport(r *contract.Report) {
	c.report = r
	c.build()
}

func (c *chartsModel) build() {
	if c.report == nil || c.report.EntryCount == 0 {
		return
	}

	chartWidth := c.width - 10
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := (c.height - 12) / 2
	if chartHeight < 6 {
		chartHeight = 6
	}

	c.categoryChart = barchart.New(chartWidth, chartHeight)
	c.categoryChart.PushAll(c.categoryBars())
	c.categoryChart.Draw()

	c.dailyChart = barchart.New(chartWidth, chartHeight)
	c.dailyChart.PushAll(c.dailyBars())
	c.dailyChart.Draw()
}

// categoryBars orders categories by hours descending so the heaviest sink
// sits leftmost.
func (c chartsModel) categoryBars() []barchart.BarData {
	breakdown := c.report.Metrics.CategoryBreakdown

	labels := make([]string, 0, len(breakdown))
	for label := range breakdown {
		labels = append(labels, label)
	}
	sort.SliceStable(labels, func(i, j int) bool {
		if breakdown[labels[i]] != breakdown[labels[j]] {
			return breakdown[labels[i]] > breakdown[labels[j]]
		}
		return labels[i] < labels[j]
	})

	bars := make([]barchart.BarData, 0, len(labels))
	for _, label := range labels {
		bars = append(bars, barchart.BarData{
			Label: shortLabel(label),
			Values: []barchart.BarValue{{
				Name:  label,
				Value: breakdown[label],
				Style: categoryStyle(label),
			}},
		})
	}
	return bars
}

func (c chartsModel) dailyBars() []barchart.BarData {
	totals := c.report.Metrics.DailyTotals

	bars := make([]barchart.BarData, 0, len(totals))
	for _, day := range totals {
		label := day.Date
		if t, err := time.Parse("2006-01-02", day.Date); err == nil {
			label = t.Format("Mon 02")
		}
		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{{
				Name:  day.Date,
				Value: day.TimeHours,
				Style: burdenStyle(day.TimeHours),
			}},
		})
	}
	return bars
}

// burdenStyle colors a daily-hours bar the alarming way, same thresholds the
// score engine treats as light, heavy, and chronic daily usage.
func burdenStyle(hours float64) lipgloss.Style {
	switch {
	case hours < 3:
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case hours < 6:
		return lipgloss.NewStyle().Foreground(colorWarning)
	default:
		return lipgloss.NewStyle().Foreground(colorError)
	}
}

// shortLabel fits category names under narrow bars.
func shortLabel(label string) string {
	if len(label) <= 8 {
		return label
	}
	return label[:7] + "…"
}

func (c chartsModel) view() string {
	if c.width < 20 {
		return "Terminal too small"
	}
	w := c.width - 4

	if c.report == nil || c.report.EntryCount == 0 {
		return panelStyle.Width(w).Render(
			mutedStyle.Render("Nothing to chart yet. Press 4 to add an entry."),
		)
	}

	categoryPanel := panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Hours by Category"),
		"",
		c.categoryChart.View(),
		"",
		c.renderLegend(),
	))

	dailyPanel := panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Daily Hours"),
		"",
		c.dailyChart.View(),
	))

	return lipgloss.JoinVertical(lipgloss.Left, categoryPanel, dailyPanel)
}

func (c chartsModel) renderLegend() string {
	breakdown := c.report.Metrics.CategoryBreakdown

	labels := make([]string, 0, len(breakdown))
	for label := range breakdown {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	items := make([]string, 0, len(labels))
	for _, label := range labels {
		dot := categoryStyle(label).Render("●")
		items = append(items, fmt.Sprintf("%s %s %s",
			dot, label, mutedStyle.Render(formatter.FormatHours(breakdown[label]))))
	}
	return "  " + strings.Join(items, "  ")
}
