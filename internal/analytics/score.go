package analytics

import "github.com/avelorn/chronline/internal/domain"

// Scoring policy. Three independently capped factors are summed and the total
// clamped to [0,100]. Every band boundary is a named constant so the policy
// can be retuned without touching aggregation or the banding logic. Each
// factor is monotonic non-decreasing in its driving metric.
const (
	// Time factor (0-40 points) over average hours per tracked day.
	timeBandLow      = 2.0
	timeBandModerate = 4.0
	timeBandHigh     = 6.0
	timeBandSevere   = 8.0

	// Doomscroll factor (0-30 points) over social media share of total time.
	doomBandLowPct  = 20.0
	doomBandMidPct  = 40.0
	doomBandHighPct = 60.0

	// Pickup factor (0-30 points) over average pickups per tracked day.
	pickupBandLow  = 50.0
	pickupBandMid  = 100.0
	pickupBandHigh = 150.0

	// Level thresholds over the clamped total.
	levelModerateAt = 20
	levelPrettyAt   = 40
	levelVeryAt     = 60
	levelChronicAt  = 80

	maxScore = 100
)

// Score maps aggregated metrics to a chronic online score. Total over its
// whole input domain: a zero-day snapshot produces score 0 at the mildest
// level rather than an error or a sentinel.
func Score(m Metrics) ChronicScore {
	avgHours := avgHoursPerDay(m)
	doomPct := doomscrollShare(m)

	breakdown := ScoreBreakdown{
		TimeScore:            scoreTime(avgHours),
		DoomscrollScore:      scoreDoomscroll(doomPct),
		PickupScore:          scorePickups(m.AvgPickupsPerDay),
		AvgHoursPerDay:       round2(avgHours),
		DoomscrollPercentage: round1(doomPct),
	}

	total := breakdown.TimeScore + breakdown.DoomscrollScore + breakdown.PickupScore
	total = min(max(total, 0), maxScore)

	level, description := levelFor(total)
	return ChronicScore{
		Score:       total,
		Level:       level,
		Description: description,
		Breakdown:   breakdown,
	}
}

func avgHoursPerDay(m Metrics) float64 {
	return m.TotalHours / float64(max(m.DaysTracked, 1))
}

// doomscrollShare reports social media time as a percentage of all screen
// time, 0 when nothing has been tracked.
func doomscrollShare(m Metrics) float64 {
	if m.TotalHours <= 0 {
		return 0
	}
	return m.DoomscrollHours / m.TotalHours * 100
}

func scoreTime(avgHours float64) int {
	switch {
	case avgHours < timeBandLow:
		return 0
	case avgHours < timeBandModerate:
		return 10
	case avgHours < timeBandHigh:
		return 20
	case avgHours < timeBandSevere:
		return 30
	default:
		return 40
	}
}

func scoreDoomscroll(pct float64) int {
	switch {
	case pct < doomBandLowPct:
		return 0
	case pct < doomBandMidPct:
		return 10
	case pct < doomBandHighPct:
		return 20
	default:
		return 30
	}
}

func scorePickups(avgPerDay float64) int {
	switch {
	case avgPerDay < pickupBandLow:
		return 0
	case avgPerDay < pickupBandMid:
		return 10
	case avgPerDay < pickupBandHigh:
		return 20
	default:
		return 30
	}
}

func levelFor(total int) (domain.Level, string) {
	switch {
	case total < levelModerateAt:
		return domain.LevelCasuallyOnline,
			"You have a healthy relationship with your devices! Keep it up."
	case total < levelPrettyAt:
		return domain.LevelModeratelyOnline,
			"You're spending a reasonable amount of time online. Some small adjustments could help."
	case total < levelVeryAt:
		return domain.LevelPrettyOnline,
			"You're spending quite a bit of time on your devices. Consider setting some boundaries."
	case total < levelChronicAt:
		return domain.LevelVeryOnline,
			"You're spending a lot of time online. It might be time to reassess your digital habits."
	default:
		return domain.LevelChronicallyOnline,
			"You're spending excessive time online. Consider implementing significant changes to your digital routine."
	}
}
