package testutil

import (
	"time"

	"github.com/avelorn/chronline/internal/domain"
)

// Entry options
type EntryOption func(*domain.Entry)

func WithDate(d time.Time) EntryOption {
	return func(e *domain.Entry) {
		e.Date = d
	}
}

func WithDay(year int, month time.Month, day int) EntryOption {
	return WithDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func WithMinutes(m float64) EntryOption {
	return func(e *domain.Entry) {
		e.Minutes = m
	}
}

func WithCategory(c string) EntryOption {
	return func(e *domain.Entry) {
		e.Category = c
	}
}

func WithPickups(n int) EntryOption {
	return func(e *domain.Entry) {
		e.Pickups = n
	}
}

// NewTestEntry builds an uncategorized one-hour entry for the given app on a
// fixed default date.
func NewTestEntry(app string, opts ...EntryOption) domain.Entry {
	e := domain.Entry{
		Date:    time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		App:     app,
		Minutes: 60,
		Pickups: 10,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
