package analytics

import (
	"fmt"
	"sort"

	"github.com/avelorn/chronline/internal/domain"
)

// Advisory thresholds. Orthogonal to the scoring bands on purpose: a tip can
// fire well before its metric moves the score into the next band.
const (
	tipHeavyHoursPerDay    = 6.0
	tipModerateHoursPerDay = 4.0
	tipDoomscrollPct       = 40.0
	tipPickupsPerDay       = 100.0
	tipTopAppHours         = 2.0
	tipSocialOverWorkRatio = 2.0
)

// tipRule inspects the aggregated metrics and the computed score and returns
// a tip when its condition holds, nil otherwise.
type tipRule func(m Metrics, score ChronicScore) *Tip

// tipRules is evaluated in order. The two low-priority habit tips are
// unconditional so even an empty dataset yields actionable advice.
var tipRules = []tipRule{
	tipDailyLimit,
	tipReduceDoomscroll,
	tipReducePickups,
	tipLimitTopApp,
	tipPhoneFreeZones,
	tipRebalance,
	tipMindfulUse,
	tipWeeklyReview,
}

// Advise runs every rule and returns the fired tips ordered by priority,
// high first. Ties keep rule order, so output is deterministic for a given
// input.
func Advise(m Metrics, score ChronicScore) []Tip {
	tips := make([]Tip, 0, len(tipRules))
	for _, rule := range tipRules {
		if tip := rule(m, score); tip != nil {
			tips = append(tips, *tip)
		}
	}
	sort.SliceStable(tips, func(i, j int) bool {
		return tips[i].Priority.Rank() < tips[j].Priority.Rank()
	})
	return tips
}

func tipDailyLimit(m Metrics, _ ChronicScore) *Tip {
	avg := avgHoursPerDay(m)
	if avg < tipHeavyHoursPerDay {
		return nil
	}
	return &Tip{
		Title:       "Set Daily Screen Time Limits",
		Description: fmt.Sprintf("You're averaging %.1f hours per day. Try setting a daily limit (e.g., 4-5 hours) and use your phone's built-in screen time controls to enforce it.", avg),
		Priority:    domain.PriorityHigh,
		Category:    "general",
	}
}

func tipReduceDoomscroll(m Metrics, _ ChronicScore) *Tip {
	pct := doomscrollShare(m)
	if pct < tipDoomscrollPct {
		return nil
	}
	return &Tip{
		Title:       "Reduce Social Media Consumption",
		Description: fmt.Sprintf("Social media accounts for %.0f%% of your screen time (%.1f hours). Try: (1) Delete apps from your home screen, (2) Set app timers, (3) Use grayscale mode to reduce appeal.", pct, m.DoomscrollHours),
		Priority:    domain.PriorityHigh,
		Category:    "social_media",
	}
}

func tipReducePickups(m Metrics, _ ChronicScore) *Tip {
	if m.AvgPickupsPerDay < tipPickupsPerDay {
		return nil
	}
	return &Tip{
		Title:       "Reduce Phone Pickups",
		Description: fmt.Sprintf("You're picking up your phone %.0f times per day on average. Try: (1) Turn off non-essential notifications, (2) Keep your phone in another room, (3) Use 'Do Not Disturb' during focused work.", m.AvgPickupsPerDay),
		Priority:    domain.PriorityHigh,
		Category:    "pickups",
	}
}

func tipLimitTopApp(m Metrics, _ ChronicScore) *Tip {
	if len(m.TopApps) == 0 {
		return nil
	}
	top := m.TopApps[0]
	if top.Hours < tipTopAppHours {
		return nil
	}
	return &Tip{
		Title:       fmt.Sprintf("Limit Time on %s", top.App),
		Description: fmt.Sprintf("You've spent %.1f hours on %s. Consider setting a daily limit for this app specifically, or try replacing some of this time with offline activities.", top.Hours, top.App),
		Priority:    domain.PriorityMedium,
		Category:    "specific_app",
	}
}

func tipPhoneFreeZones(m Metrics, _ ChronicScore) *Tip {
	if avgHoursPerDay(m) < tipModerateHoursPerDay {
		return nil
	}
	return &Tip{
		Title:       "Create Phone-Free Zones",
		Description: "Designate certain times or places as phone-free: (1) First hour after waking, (2) During meals, (3) One hour before bed. This helps break the constant checking habit.",
		Priority:    domain.PriorityMedium,
		Category:    "boundaries",
	}
}

func tipRebalance(m Metrics, _ ChronicScore) *Tip {
	social := m.CategoryBreakdown[domain.CategorySocialMedia]
	productive := m.CategoryBreakdown[domain.CategoryProductivity]
	if social <= 0 || productive <= 0 || social <= productive*tipSocialOverWorkRatio {
		return nil
	}
	return &Tip{
		Title:       "Balance Entertainment with Productivity",
		Description: fmt.Sprintf("You spend %.1f hours on social media vs %.1f hours on productivity. Try the '2-minute rule': when you open a social app, spend 2 minutes on a productive task first.", social, productive),
		Priority:    domain.PriorityMedium,
		Category:    "balance",
	}
}

func tipMindfulUse(Metrics, ChronicScore) *Tip {
	return &Tip{
		Title:       "Practice Mindful Phone Use",
		Description: "Before picking up your phone, ask yourself: 'What do I need to do?' If you can't answer, put it down. This simple pause can prevent mindless scrolling.",
		Priority:    domain.PriorityLow,
		Category:    "mindfulness",
	}
}

func tipWeeklyReview(Metrics, ChronicScore) *Tip {
	return &Tip{
		Title:       "Review Your Progress Weekly",
		Description: "Set aside 10 minutes each week to review your screen time data. Notice patterns: Are you using your phone more when stressed? Bored? Use this awareness to make intentional changes.",
		Priority:    domain.PriorityLow,
		Category:    "tracking",
	}
}
