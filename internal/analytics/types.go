package analytics

import "github.com/avelorn/chronline/internal/domain"

// Metrics is the aggregation result over one entry snapshot. Every field is
// recomputed from scratch on each call; nothing is carried between runs.
type Metrics struct {
	TotalMinutes     float64
	TotalHours       float64
	DoomscrollHours  float64
	TotalPickups     int
	AvgPickupsPerDay float64
	DaysTracked      int

	// CategoryBreakdown maps category label to hours. Categories with no
	// recorded time are absent.
	CategoryBreakdown map[string]float64

	// DailyTotals is ordered ascending by date, WeeklyTotals ascending by
	// ISO week label, TopApps descending by hours (max topAppLimit).
	DailyTotals  []DayTotal
	WeeklyTotals []WeekTotal
	TopApps      []AppUsage
}

type DayTotal struct {
	Date    string
	Hours   float64
	Pickups int
}

type WeekTotal struct {
	Week    string
	Hours   float64
	Pickups int
}

type AppUsage struct {
	App   string
	Hours float64
}

// ScoreBreakdown carries the three sub-scores and the raw ratios they were
// derived from.
type ScoreBreakdown struct {
	TimeScore            int
	DoomscrollScore      int
	PickupScore          int
	AvgHoursPerDay       float64
	DoomscrollPercentage float64
}

type ChronicScore struct {
	Score       int
	Level       domain.Level
	Description string
	Breakdown   ScoreBreakdown
}

type Tip struct {
	Title       string
	Description string
	Priority    domain.TipPriority
	Category    string
}

// Analysis is the composed output of the full pipeline over one snapshot.
type Analysis struct {
	Metrics      Metrics
	ChronicScore ChronicScore
	Tips         []Tip
	EntryCount   int
}
