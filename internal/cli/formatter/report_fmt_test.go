package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelorn/chronline/internal/contract"
	"github.com/avelorn/chronline/internal/domain"
)

// ansiPattern matches ANSI escape sequences so assertions can run on plain
// text regardless of the terminal profile the test runs under.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func fullReport() *contract.Report {
	return &contract.Report{
		Metrics: contract.Metrics{
			TotalScreenTimeHours:   6.5,
			TotalScreenTimeMinutes: 390,
			DoomscrollHours:        2.25,
			TotalPickups:           185,
			AvgPickupsPerDay:       61.7,
			DaysTracked:            3,
			CategoryBreakdown:      map[string]float64{"Social Media": 4.25, "Productivity": 2.25},
			DailyTotals:            []contract.DayTotal{{Date: "2024-01-20", TimeHours: 6.5, Pickups: 185}},
			WeeklyTotals:           []contract.WeekTotal{{Week: "2024-W03", TimeHours: 6.5, Pickups: 185}},
			TopApps: []contract.AppUsage{
				{App: "Instagram", Hours: 4.25},
				{App: "Slack", Hours: 2.25},
			},
		},
		ChronicScore: contract.ChronicScore{
			Score:       65,
			Level:       domain.LevelPrettyOnline,
			Description: "You're pretty online. Your screen time is above average, and it might be affecting other areas of your life.",
			Breakdown: contract.ScoreBreakdown{
				TimeScore:            25,
				DoomscrollScore:      20,
				PickupScore:          20,
				AvgHoursPerDay:       3.3,
				DoomscrollPercentage: 34.6,
			},
		},
		Tips: []contract.Tip{
			{Title: "Reduce Daily Screen Time", Description: "Try setting app limits.", Priority: domain.PriorityHigh, Category: "general"},
			{Title: "Practice Mindful Usage", Description: "Ask yourself why.", Priority: domain.PriorityLow, Category: "mindfulness"},
		},
		EntryCount: 5,
	}
}

func TestFormatScoreLine(t *testing.T) {
	out := stripANSI(FormatScoreLine(contract.ChronicScore{Score: 72, Level: domain.LevelVeryOnline}))

	assert.Contains(t, out, "72/100")
	assert.Contains(t, out, "● VERY ONLINE")
}

func TestFormatReport_FullReport(t *testing.T) {
	out := stripANSI(FormatReport(fullReport()))

	assert.Contains(t, out, "SCREEN TIME REPORT")
	assert.Contains(t, out, "65/100")
	assert.Contains(t, out, "● PRETTY ONLINE")
	assert.Contains(t, out, "You're pretty online.")

	assert.Contains(t, out, "SCORE BREAKDOWN")
	assert.Contains(t, out, "25/40")
	assert.Contains(t, out, "3.3h per day")
	assert.Contains(t, out, "34.6% of screen time")

	assert.Contains(t, out, "METRICS")
	assert.Contains(t, out, "6h 30m")
	assert.Contains(t, out, "(5 entries)")
	assert.Contains(t, out, "2h 15m")
	assert.Contains(t, out, "185")

	assert.Contains(t, out, "CATEGORIES")
	assert.Contains(t, out, "Social Media")
	assert.Contains(t, out, "4h 15m")

	assert.Contains(t, out, "TOP APPS")
	assert.Contains(t, out, "Instagram")

	assert.Contains(t, out, "TIPS")
	assert.Contains(t, out, "▲ HIGH")
	assert.Contains(t, out, "Reduce Daily Screen Time")
	assert.Contains(t, out, "○ LOW")
}

func TestFormatReport_CategoriesSortedByHoursDescending(t *testing.T) {
	out := stripANSI(FormatReport(fullReport()))

	social := strings.Index(out, "Social Media")
	productivity := strings.Index(out, "Productivity")
	require.Positive(t, social)
	require.Positive(t, productivity)
	assert.Less(t, social, productivity)
}

func TestFormatReport_Empty(t *testing.T) {
	report := &contract.Report{
		ChronicScore: contract.ChronicScore{
			Score:       0,
			Level:       domain.LevelCasuallyOnline,
			Description: "You have a healthy relationship with your devices! Keep it up.",
		},
	}

	out := stripANSI(FormatReport(report))

	assert.Contains(t, out, "0/100")
	assert.Contains(t, out, "● CASUALLY ONLINE")
	assert.Contains(t, out, "No entries yet.")
	assert.NotContains(t, out, "METRICS")
	assert.NotContains(t, out, "TIPS")
}

func TestLevelBadge(t *testing.T) {
	assert.Equal(t, "● CHRONICALLY ONLINE", stripANSI(LevelBadge(domain.LevelChronicallyOnline)))
	assert.Equal(t, "● CASUALLY ONLINE", stripANSI(LevelBadge(domain.LevelCasuallyOnline)))
	assert.Equal(t, "● UNKNOWN", stripANSI(LevelBadge(domain.Level("nonsense"))))
}

func TestPriorityBadge(t *testing.T) {
	assert.Equal(t, "▲ HIGH", stripANSI(PriorityBadge(domain.PriorityHigh)))
	assert.Equal(t, "● MEDIUM", stripANSI(PriorityBadge(domain.PriorityMedium)))
	assert.Equal(t, "○ LOW", stripANSI(PriorityBadge(domain.PriorityLow)))
}

func TestHeader_UppercasesAndUnderlines(t *testing.T) {
	out := stripANSI(Header("Top Apps"))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "TOP APPS", lines[0])
	assert.Equal(t, strings.Repeat("─", len("TOP APPS")), lines[1])
}

func TestRenderProgress_ClampsAndFills(t *testing.T) {
	assert.Contains(t, stripANSI(RenderProgress(-0.5, 10)), "  0%")
	assert.Contains(t, stripANSI(RenderProgress(1.7, 10)), "100%")

	full := stripANSI(RenderProgress(1.0, 10))
	assert.Contains(t, full, strings.Repeat("█", 10))
	assert.NotContains(t, full, "░")

	half := stripANSI(RenderProgress(0.5, 10))
	assert.Contains(t, half, strings.Repeat("█", 5)+strings.Repeat("░", 5))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"APP", "TIME"},
		[][]string{
			{"Instagram", "2h"},
			{"TikTok", "45m"},
		},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "APP")
	assert.Contains(t, lines[1], "─")
	// TIME column starts at the same offset in every row.
	assert.Equal(t, strings.Index(lines[0], "TIME"), strings.Index(lines[2], "2h"))
	assert.Equal(t, strings.Index(lines[0], "TIME"), strings.Index(lines[3], "45m"))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "0m", FormatMinutes(-5))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "2h 30m", FormatHours(2.5))
	assert.Equal(t, "30m", FormatHours(0.5))
	assert.Equal(t, "0m", FormatHours(0))
	assert.Equal(t, "1h", FormatHours(1.0))
}
