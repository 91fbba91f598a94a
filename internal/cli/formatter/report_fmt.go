package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/avelorn/chronline/internal/contract"
)

const (
	scoreBarWidth    = 20
	categoryBarWidth = 10
)

// FormatScoreLine renders the one-line score summary printed after a submit.
func FormatScoreLine(score contract.ChronicScore) string {
	return fmt.Sprintf("%s %s  %s",
		Bold("Score:"),
		LevelColor(score.Level).Render(fmt.Sprintf("%d/100", score.Score)),
		LevelBadge(score.Level),
	)
}

// FormatReport formats a full report into a styled CLI dashboard string.
func FormatReport(report *contract.Report) string {
	var b strings.Builder

	writeScoreSection(&b, report.ChronicScore)

	if report.EntryCount == 0 {
		b.WriteString("\n")
		b.WriteString(Dim("No entries yet. Add some with 'chronline add' or import a file."))
		b.WriteString("\n")
		return RenderBox("Screen Time Report", b.String())
	}

	b.WriteString("\n")
	writeBreakdownSection(&b, report.ChronicScore.Breakdown)
	b.WriteString("\n")
	writeMetricsSection(&b, report.Metrics, report.EntryCount)

	if len(report.Metrics.CategoryBreakdown) > 0 {
		b.WriteString("\n")
		writeCategorySection(&b, report.Metrics)
	}
	if len(report.Metrics.TopApps) > 0 {
		b.WriteString("\n")
		writeTopAppsSection(&b, report.Metrics.TopApps)
	}
	if len(report.Tips) > 0 {
		b.WriteString("\n")
		writeTipsSection(&b, report.Tips)
	}

	return RenderBox("Screen Time Report", b.String())
}

func writeScoreSection(b *strings.Builder, score contract.ChronicScore) {
	b.WriteString(fmt.Sprintf("%s  %s\n",
		LevelColor(score.Level).Bold(true).Render(fmt.Sprintf("%d/100", score.Score)),
		LevelBadge(score.Level),
	))
	b.WriteString(RenderProgress(float64(score.Score)/100, scoreBarWidth) + "\n")
	b.WriteString(Dim(score.Description) + "\n")
}

func writeBreakdownSection(b *strings.Builder, br contract.ScoreBreakdown) {
	b.WriteString(Header("Score Breakdown") + "\n")
	rows := [][]string{
		{"Screen time", fmt.Sprintf("%d/40", br.TimeScore), Dim(fmt.Sprintf("%.1fh per day", br.AvgHoursPerDay))},
		{"Doomscrolling", fmt.Sprintf("%d/30", br.DoomscrollScore), Dim(fmt.Sprintf("%.1f%% of screen time", br.DoomscrollPercentage))},
		{"Pickups", fmt.Sprintf("%d/30", br.PickupScore), ""},
	}
	b.WriteString(RenderTable([]string{"FACTOR", "POINTS", ""}, rows))
}

func writeMetricsSection(b *strings.Builder, m contract.Metrics, entryCount int) {
	b.WriteString(Header("Metrics") + "\n")
	lines := []string{
		fmt.Sprintf("%s %s across %d days (%d entries)",
			Dim("Screen time:"), Bold(FormatHours(m.TotalScreenTimeHours)), m.DaysTracked, entryCount),
		fmt.Sprintf("%s %s", Dim("Doomscrolling:"), Bold(FormatHours(m.DoomscrollHours))),
		fmt.Sprintf("%s %s total, %.1f per day",
			Dim("Pickups:"), Bold(fmt.Sprintf("%d", m.TotalPickups)), m.AvgPickupsPerDay),
	}
	b.WriteString(strings.Join(lines, "\n") + "\n")
}

func writeCategorySection(b *strings.Builder, m contract.Metrics) {
	b.WriteString(Header("Categories") + "\n")

	type categoryHours struct {
		label string
		hours float64
	}
	categories := make([]categoryHours, 0, len(m.CategoryBreakdown))
	for label, hours := range m.CategoryBreakdown {
		categories = append(categories, categoryHours{label, hours})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].hours != categories[j].hours {
			return categories[i].hours > categories[j].hours
		}
		return categories[i].label < categories[j].label
	})

	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		share := 0.0
		if m.TotalScreenTimeHours > 0 {
			share = c.hours / m.TotalScreenTimeHours
		}
		rows = append(rows, []string{
			c.label,
			FormatHours(c.hours),
			RenderProgress(share, categoryBarWidth),
		})
	}
	b.WriteString(RenderTable([]string{"CATEGORY", "TIME", "SHARE"}, rows))
}

func writeTopAppsSection(b *strings.Builder, apps []contract.AppUsage) {
	b.WriteString(Header("Top Apps") + "\n")
	rows := make([][]string, 0, len(apps))
	for i, app := range apps {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d.", i+1)),
			Bold(app.App),
			FormatHours(app.Hours),
		})
	}
	b.WriteString(RenderTable([]string{"#", "APP", "TIME"}, rows))
}

func writeTipsSection(b *strings.Builder, tips []contract.Tip) {
	b.WriteString(Header("Tips") + "\n")
	for i, tip := range tips {
		b.WriteString(fmt.Sprintf("%s %s\n", PriorityBadge(tip.Priority), Bold(tip.Title)))
		b.WriteString("  " + Dim(tip.Description) + "\n")
		if i < len(tips)-1 {
			b.WriteString("\n")
		}
	}
}
