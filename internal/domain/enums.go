package domain

// Level buckets a chronic online score into five ascending severity tiers.
// The values are the display labels carried on the wire.
type Level string

const (
	LevelCasuallyOnline    Level = "Casually Online"
	LevelModeratelyOnline  Level = "Moderately Online"
	LevelPrettyOnline      Level = "Pretty Online"
	LevelVeryOnline        Level = "Very Online"
	LevelChronicallyOnline Level = "Chronically Online"
)

// Rank returns the severity order of the level, 0 for the mildest.
// Unknown levels rank below everything.
func (l Level) Rank() int {
	switch l {
	case LevelCasuallyOnline:
		return 0
	case LevelModeratelyOnline:
		return 1
	case LevelPrettyOnline:
		return 2
	case LevelVeryOnline:
		return 3
	case LevelChronicallyOnline:
		return 4
	}
	return -1
}

func (l Level) Valid() bool {
	return l.Rank() >= 0
}

type TipPriority string

const (
	PriorityHigh   TipPriority = "high"
	PriorityMedium TipPriority = "medium"
	PriorityLow    TipPriority = "low"
)

// Rank returns the sort order of the priority, 0 for the most urgent.
// Unknown priorities sort last.
func (p TipPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

func (p TipPriority) Valid() bool {
	return p.Rank() < 3
}

// Category labels referenced by the engine itself. The full label set is open:
// rules and callers may introduce new categories freely.
const (
	CategorySocialMedia  = "Social Media"
	CategoryProductivity = "Productivity"
	CategoryOther        = "Other"
)
