package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/avelorn/chronline/internal/domain"
)

// topAppLimit caps the per-app ranking carried in Metrics.
const topAppLimit = 10

// Aggregate computes Metrics over one entry snapshot. Entries may arrive
// uncategorized; they are categorized on the fly so the caller never has to
// pre-process. An empty snapshot yields zero Metrics with empty collections,
// never an error. Inputs are assumed non-negative (validated at the boundary).
func Aggregate(rules []CategoryRule, entries []domain.Entry) Metrics {
	m := Metrics{
		CategoryBreakdown: map[string]float64{},
		DailyTotals:       []DayTotal{},
		WeeklyTotals:      []WeekTotal{},
		TopApps:           []AppUsage{},
	}
	if len(entries) == 0 {
		return m
	}

	type rollup struct {
		minutes float64
		pickups int
	}
	days := map[string]*rollup{}
	weeks := map[string]*rollup{}
	categoryMin := map[string]float64{}
	appMin := map[string]float64{}
	appFirstSeen := map[string]int{}

	var totalMinutes, doomscrollMin float64
	totalPickups := 0

	for i, e := range entries {
		category := Categorize(rules, e)

		totalMinutes += e.Minutes
		totalPickups += e.Pickups
		if category == domain.CategorySocialMedia {
			doomscrollMin += e.Minutes
		}
		categoryMin[category] += e.Minutes

		day := e.DateKey()
		if days[day] == nil {
			days[day] = &rollup{}
		}
		days[day].minutes += e.Minutes
		days[day].pickups += e.Pickups

		week := isoWeekLabel(e)
		if weeks[week] == nil {
			weeks[week] = &rollup{}
		}
		weeks[week].minutes += e.Minutes
		weeks[week].pickups += e.Pickups

		if _, seen := appFirstSeen[e.App]; !seen {
			appFirstSeen[e.App] = i
		}
		appMin[e.App] += e.Minutes
	}

	m.TotalMinutes = totalMinutes
	m.TotalHours = round2(totalMinutes / 60)
	m.DoomscrollHours = round2(doomscrollMin / 60)
	m.TotalPickups = totalPickups
	m.DaysTracked = len(days)
	if m.DaysTracked > 0 {
		m.AvgPickupsPerDay = round2(float64(totalPickups) / float64(m.DaysTracked))
	}

	for category, minutes := range categoryMin {
		m.CategoryBreakdown[category] = round2(minutes / 60)
	}

	for day, r := range days {
		m.DailyTotals = append(m.DailyTotals, DayTotal{Date: day, Hours: round2(r.minutes / 60), Pickups: r.pickups})
	}
	sort.Slice(m.DailyTotals, func(i, j int) bool { return m.DailyTotals[i].Date < m.DailyTotals[j].Date })

	for week, r := range weeks {
		m.WeeklyTotals = append(m.WeeklyTotals, WeekTotal{Week: week, Hours: round2(r.minutes / 60), Pickups: r.pickups})
	}
	sort.Slice(m.WeeklyTotals, func(i, j int) bool { return m.WeeklyTotals[i].Week < m.WeeklyTotals[j].Week })

	for app, minutes := range appMin {
		m.TopApps = append(m.TopApps, AppUsage{App: app, Hours: round2(minutes / 60)})
	}
	sort.SliceStable(m.TopApps, func(i, j int) bool {
		a, b := m.TopApps[i], m.TopApps[j]
		if a.Hours != b.Hours {
			return a.Hours > b.Hours
		}
		return appFirstSeen[a.App] < appFirstSeen[b.App]
	})
	if len(m.TopApps) > topAppLimit {
		m.TopApps = m.TopApps[:topAppLimit]
	}

	return m
}

// isoWeekLabel formats the ISO week of an entry date as a sortable label,
// e.g. 2024-W03. The ISO year is used, so early January days can belong to
// the previous year's final week.
func isoWeekLabel(e domain.Entry) string {
	year, week := e.Date.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
