package analytics

import "github.com/avelorn/chronline/internal/domain"

// Analyze runs the full pipeline over a snapshot of entries: categorize and
// aggregate, score the aggregate, then derive tips. Pure and deterministic,
// so callers may re-run it on every read.
func Analyze(rules []CategoryRule, entries []domain.Entry) Analysis {
	metrics := Aggregate(rules, entries)
	score := Score(metrics)
	return Analysis{
		Metrics:      metrics,
		ChronicScore: score,
		Tips:         Advise(metrics, score),
		EntryCount:   len(entries),
	}
}
