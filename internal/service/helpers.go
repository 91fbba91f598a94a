package service

import (
	"strings"

	"github.com/avelorn/chronline/internal/analytics"
	"github.com/avelorn/chronline/internal/contract"
	"github.com/avelorn/chronline/internal/domain"
)

// parseEntries validates and converts a submitted batch. Every violation
// across the whole batch is collected, keyed by entry index and field; when
// any issue is returned the batch must be rejected in full.
func parseEntries(inputs []contract.EntryInput) ([]domain.Entry, []contract.ValidationIssue) {
	entries := make([]domain.Entry, 0, len(inputs))
	var issues []contract.ValidationIssue

	for i, in := range inputs {
		ok := true
		fail := func(field, message string) {
			issues = append(issues, contract.ValidationIssue{Index: i, Field: field, Message: message})
			ok = false
		}

		date, err := domain.ParseDate(in.Date)
		if err != nil {
			fail("date", err.Error())
		}
		app := strings.TrimSpace(in.App)
		if app == "" {
			fail("app", "app name is required")
		}
		if in.TimeMinutes <= 0 {
			fail("time_minutes", "must be greater than 0")
		}
		if in.Pickups < 0 {
			fail("pickups", "must not be negative")
		}

		if ok {
			entries = append(entries, domain.Entry{
				Date:     date,
				App:      app,
				Minutes:  in.TimeMinutes,
				Category: strings.TrimSpace(in.Category),
				Pickups:  in.Pickups,
			})
		}
	}
	return entries, issues
}

// buildReport maps a pipeline result onto the wire contract.
func buildReport(a analytics.Analysis) contract.Report {
	m := contract.Metrics{
		TotalScreenTimeHours:   a.Metrics.TotalHours,
		TotalScreenTimeMinutes: int(a.Metrics.TotalMinutes),
		DoomscrollHours:        a.Metrics.DoomscrollHours,
		TotalPickups:           a.Metrics.TotalPickups,
		AvgPickupsPerDay:       a.Metrics.AvgPickupsPerDay,
		DaysTracked:            a.Metrics.DaysTracked,
		CategoryBreakdown:      a.Metrics.CategoryBreakdown,
		DailyTotals:            make([]contract.DayTotal, 0, len(a.Metrics.DailyTotals)),
		WeeklyTotals:           make([]contract.WeekTotal, 0, len(a.Metrics.WeeklyTotals)),
		TopApps:                make([]contract.AppUsage, 0, len(a.Metrics.TopApps)),
	}
	for _, d := range a.Metrics.DailyTotals {
		m.DailyTotals = append(m.DailyTotals, contract.DayTotal{Date: d.Date, TimeHours: d.Hours, Pickups: d.Pickups})
	}
	for _, w := range a.Metrics.WeeklyTotals {
		m.WeeklyTotals = append(m.WeeklyTotals, contract.WeekTotal{Week: w.Week, TimeHours: w.Hours, Pickups: w.Pickups})
	}
	for _, app := range a.Metrics.TopApps {
		m.TopApps = append(m.TopApps, contract.AppUsage{App: app.App, Hours: app.Hours})
	}

	tips := make([]contract.Tip, 0, len(a.Tips))
	for _, tip := range a.Tips {
		tips = append(tips, contract.Tip{
			Title:       tip.Title,
			Description: tip.Description,
			Priority:    tip.Priority,
			Category:    tip.Category,
		})
	}

	return contract.Report{
		Metrics: m,
		ChronicScore: contract.ChronicScore{
			Score:       a.ChronicScore.Score,
			Level:       a.ChronicScore.Level,
			Description: a.ChronicScore.Description,
			Breakdown: contract.ScoreBreakdown{
				TimeScore:            a.ChronicScore.Breakdown.TimeScore,
				DoomscrollScore:      a.ChronicScore.Breakdown.DoomscrollScore,
				PickupScore:          a.ChronicScore.Breakdown.PickupScore,
				AvgHoursPerDay:       a.ChronicScore.Breakdown.AvgHoursPerDay,
				DoomscrollPercentage: a.ChronicScore.Breakdown.DoomscrollPercentage,
			},
		},
		Tips:       tips,
		EntryCount: a.EntryCount,
	}
}
