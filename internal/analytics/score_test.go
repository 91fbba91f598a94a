package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avelorn/chronline/internal/domain"
)

func TestScore_ZeroMetrics(t *testing.T) {
	result := Score(Metrics{})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, domain.LevelCasuallyOnline, result.Level)
	assert.Contains(t, result.Description, "healthy relationship")
	assert.Equal(t, ScoreBreakdown{}, result.Breakdown)
}

func TestScore_TimeBands(t *testing.T) {
	cases := []struct {
		avgHours float64
		want     int
	}{
		{1.99, 0}, {2, 10}, {3.99, 10}, {4, 20}, {5.99, 20},
		{6, 30}, {7.99, 30}, {8, 40}, {14, 40},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, scoreTime(c.avgHours), "avg %.2f h/day", c.avgHours)
	}
}

func TestScore_DoomscrollBands(t *testing.T) {
	cases := []struct {
		pct  float64
		want int
	}{
		{0, 0}, {19.9, 0}, {20, 10}, {39.9, 10}, {40, 20}, {59.9, 20}, {60, 30}, {100, 30},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, scoreDoomscroll(c.pct), "doomscroll %.1f%%", c.pct)
	}
}

func TestScore_PickupBands(t *testing.T) {
	cases := []struct {
		perDay float64
		want   int
	}{
		{0, 0}, {49, 0}, {50, 10}, {99, 10}, {100, 20}, {149, 20}, {150, 30}, {400, 30},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, scorePickups(c.perDay), "%.0f pickups/day", c.perDay)
	}
}

func TestScore_LevelBoundaries(t *testing.T) {
	cases := []struct {
		total int
		want  domain.Level
	}{
		{0, domain.LevelCasuallyOnline},
		{19, domain.LevelCasuallyOnline},
		{20, domain.LevelModeratelyOnline},
		{39, domain.LevelModeratelyOnline},
		{40, domain.LevelPrettyOnline},
		{59, domain.LevelPrettyOnline},
		{60, domain.LevelVeryOnline},
		{79, domain.LevelVeryOnline},
		{80, domain.LevelChronicallyOnline},
		{100, domain.LevelChronicallyOnline},
	}
	for _, c := range cases {
		level, description := levelFor(c.total)
		assert.Equal(t, c.want, level, "total %d", c.total)
		assert.NotEmpty(t, description)
	}
}

func TestScore_ModerateDay(t *testing.T) {
	// 2.5 h in one day, a fifth of it social: 10 time + 10 doomscroll points.
	result := Score(Metrics{
		TotalHours:       2.5,
		DoomscrollHours:  0.5,
		DaysTracked:      1,
		AvgPickupsPerDay: 30,
	})

	assert.Equal(t, 20, result.Score)
	assert.Equal(t, domain.LevelModeratelyOnline, result.Level)
	assert.Contains(t, result.Description, "reasonable")
	assert.Equal(t, 10, result.Breakdown.TimeScore)
	assert.Equal(t, 10, result.Breakdown.DoomscrollScore)
	assert.Equal(t, 0, result.Breakdown.PickupScore)
}

func TestScore_MaxedFactors(t *testing.T) {
	result := Score(Metrics{
		TotalHours:       9,
		DoomscrollHours:  6,
		DaysTracked:      1,
		AvgPickupsPerDay: 160,
	})

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, domain.LevelChronicallyOnline, result.Level)
	assert.Equal(t, 40, result.Breakdown.TimeScore)
	assert.Equal(t, 30, result.Breakdown.DoomscrollScore)
	assert.Equal(t, 30, result.Breakdown.PickupScore)
	assert.Equal(t, 9.0, result.Breakdown.AvgHoursPerDay)
	assert.Equal(t, 66.7, result.Breakdown.DoomscrollPercentage)
}

func TestScore_BreakdownRounding(t *testing.T) {
	result := Score(Metrics{
		TotalHours:      10,
		DoomscrollHours: 1,
		DaysTracked:     3,
	})

	assert.Equal(t, 3.33, result.Breakdown.AvgHoursPerDay)
	assert.Equal(t, 10.0, result.Breakdown.DoomscrollPercentage)
}

func TestScore_AveragesOverTrackedDaysOnly(t *testing.T) {
	// 12 hours spread over 6 tracked days is light use, not heavy.
	result := Score(Metrics{
		TotalHours:  12,
		DaysTracked: 6,
	})

	assert.Equal(t, 10, result.Breakdown.TimeScore)
	assert.Equal(t, 2.0, result.Breakdown.AvgHoursPerDay)
}
