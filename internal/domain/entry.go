package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for entry dates.
const DateLayout = "2006-01-02"

// Entry is one observed slice of app usage on a calendar day.
// ID and CreatedAt are assigned by the store on append; Category is filled by
// the categorizer when the submitter left it empty and is never overwritten
// once set.
type Entry struct {
	ID        string
	Date      time.Time
	App       string
	Minutes   float64
	Category  string
	Pickups   int
	CreatedAt time.Time
}

// DateKey returns the entry date in YYYY-MM-DD form, the key used for
// per-day grouping.
func (e *Entry) DateKey() string {
	return e.Date.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a UTC date with no time component.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
