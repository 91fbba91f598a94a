package contract

import (
	"time"

	"github.com/avelorn/chronline/internal/domain"
)

// EntryInput is one submitted usage record, before validation. Category is
// optional (the categorizer fills it) and Pickups defaults to 0.
type EntryInput struct {
	Date        string  `json:"date"`
	App         string  `json:"app"`
	TimeMinutes float64 `json:"time_minutes"`
	Category    string  `json:"category,omitempty"`
	Pickups     int     `json:"pickups,omitempty"`
}

type SubmitRequest struct {
	Entries []EntryInput `json:"entries"`
}

type SubmitResult struct {
	Message      string `json:"message"`
	Added        int    `json:"added"`
	TotalEntries int    `json:"total_entries"`
	Report       Report `json:"report"`
}

// Entry is a stored usage record on the wire.
type Entry struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	App         string    `json:"app"`
	TimeMinutes float64   `json:"time_minutes"`
	Category    string    `json:"category"`
	Pickups     int       `json:"pickups"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewEntry(e domain.Entry) Entry {
	return Entry{
		ID:          e.ID,
		Date:        e.DateKey(),
		App:         e.App,
		TimeMinutes: e.Minutes,
		Category:    e.Category,
		Pickups:     e.Pickups,
		CreatedAt:   e.CreatedAt,
	}
}

type Report struct {
	Metrics      Metrics      `json:"metrics"`
	ChronicScore ChronicScore `json:"chronic_score"`
	Tips         []Tip        `json:"tips"`
	EntryCount   int          `json:"entry_count"`
}

type Metrics struct {
	TotalScreenTimeHours   float64            `json:"total_screen_time_hours"`
	TotalScreenTimeMinutes int                `json:"total_screen_time_minutes"`
	DoomscrollHours        float64            `json:"doomscroll_hours"`
	TotalPickups           int                `json:"total_pickups"`
	AvgPickupsPerDay       float64            `json:"avg_pickups_per_day"`
	DaysTracked            int                `json:"days_tracked"`
	CategoryBreakdown      map[string]float64 `json:"category_breakdown"`
	DailyTotals            []DayTotal         `json:"daily_totals"`
	WeeklyTotals           []WeekTotal        `json:"weekly_totals"`
	TopApps                []AppUsage         `json:"top_apps"`
}

type DayTotal struct {
	Date      string  `json:"date"`
	TimeHours float64 `json:"time_hours"`
	Pickups   int     `json:"pickups"`
}

type WeekTotal struct {
	Week      string  `json:"week"`
	TimeHours float64 `json:"time_hours"`
	Pickups   int     `json:"pickups"`
}

// AppUsage rows are carried as an ordered array so the descending ranking
// survives serialization.
type AppUsage struct {
	App   string  `json:"app"`
	Hours float64 `json:"hours"`
}

type ChronicScore struct {
	Score       int            `json:"score"`
	Level       domain.Level   `json:"level"`
	Description string         `json:"description"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
}

type ScoreBreakdown struct {
	TimeScore            int     `json:"time_score"`
	DoomscrollScore      int     `json:"doomscroll_score"`
	PickupScore          int     `json:"pickup_score"`
	AvgHoursPerDay       float64 `json:"avg_hours_per_day"`
	DoomscrollPercentage float64 `json:"doomscroll_percentage"`
}

type Tip struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Priority    domain.TipPriority `json:"priority"`
	Category    string             `json:"category"`
}
