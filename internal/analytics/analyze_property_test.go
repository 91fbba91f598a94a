package analytics

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avelorn/chronline/internal/domain"
)

// TestAnalyze_Invariants property-tests the pipeline over random snapshots:
// score bounds, factor additivity, day counting, conservation of minutes and
// pickups, and output ordering.
func TestAnalyze_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rules := DefaultRules()
	apps := []string{"Instagram", "TikTok", "Slack", "Netflix", "Roblox", "Terminal", "Kindle"}

	for trial := 0; trial < 200; trial++ {
		numEntries := rng.Intn(20)
		entries := make([]domain.Entry, numEntries)
		wantMinutes := 0.0
		wantPickups := 0
		distinctDays := map[string]bool{}
		for i := range entries {
			entries[i] = domain.Entry{
				Date:    time.Date(2024, 3, rng.Intn(14)+1, 0, 0, 0, 0, time.UTC),
				App:     apps[rng.Intn(len(apps))],
				Minutes: float64(rng.Intn(300) + 1),
				Pickups: rng.Intn(80),
			}
			wantMinutes += entries[i].Minutes
			wantPickups += entries[i].Pickups
			distinctDays[entries[i].DateKey()] = true
		}

		result := Analyze(rules, entries)
		m := result.Metrics
		score := result.ChronicScore

		// Score stays in [0,100] and is exactly the sum of its factors.
		assert.GreaterOrEqual(t, score.Score, 0, "trial %d", trial)
		assert.LessOrEqual(t, score.Score, 100, "trial %d", trial)
		assert.Equal(t, score.Breakdown.TimeScore+score.Breakdown.DoomscrollScore+score.Breakdown.PickupScore,
			score.Score, "trial %d: score must equal the sum of its factors", trial)

		// Nothing is lost or invented during aggregation.
		assert.Equal(t, numEntries, result.EntryCount, "trial %d", trial)
		assert.Equal(t, wantMinutes, m.TotalMinutes, "trial %d", trial)
		assert.Equal(t, wantPickups, m.TotalPickups, "trial %d", trial)
		assert.Equal(t, len(distinctDays), m.DaysTracked, "trial %d", trial)
		assert.Len(t, m.DailyTotals, m.DaysTracked, "trial %d", trial)

		dayPickups := 0
		for _, d := range m.DailyTotals {
			dayPickups += d.Pickups
		}
		assert.Equal(t, wantPickups, dayPickups, "trial %d: daily totals must conserve pickups", trial)

		// Category hours are each rounded, so the sum only approximates.
		categorySum := 0.0
		for _, hours := range m.CategoryBreakdown {
			categorySum += hours
		}
		assert.InDelta(t, m.TotalHours, categorySum, 0.05,
			"trial %d: category breakdown must cover all hours", trial)

		assert.True(t, sort.SliceIsSorted(m.DailyTotals, func(i, j int) bool {
			return m.DailyTotals[i].Date < m.DailyTotals[j].Date
		}), "trial %d: daily totals sorted by date", trial)

		assert.LessOrEqual(t, len(m.TopApps), topAppLimit, "trial %d", trial)
		for j := 1; j < len(m.TopApps); j++ {
			assert.GreaterOrEqual(t, m.TopApps[j-1].Hours, m.TopApps[j].Hours,
				"trial %d: top apps ranked by hours", trial)
		}

		// The habit tips always fire, and priority ordering never regresses.
		assert.NotNil(t, findTip(result.Tips, "Practice Mindful Phone Use"), "trial %d", trial)
		assert.NotNil(t, findTip(result.Tips, "Review Your Progress Weekly"), "trial %d", trial)
		for j := 1; j < len(result.Tips); j++ {
			assert.LessOrEqual(t, result.Tips[j-1].Priority.Rank(), result.Tips[j].Priority.Rank(),
				"trial %d: tips ordered high to low", trial)
		}

		assert.Equal(t, result, Analyze(rules, entries), "trial %d: pipeline must be deterministic", trial)
	}
}

// TestScore_FactorsMonotonic checks that no factor ever decreases when its
// driving metric increases.
func TestScore_FactorsMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		lo := rng.Float64() * 200
		hi := lo + rng.Float64()*200

		assert.LessOrEqual(t, scoreTime(lo), scoreTime(hi), "trial %d: time factor", trial)
		assert.LessOrEqual(t, scoreDoomscroll(lo), scoreDoomscroll(hi), "trial %d: doomscroll factor", trial)
		assert.LessOrEqual(t, scorePickups(lo), scorePickups(hi), "trial %d: pickup factor", trial)
	}
}
