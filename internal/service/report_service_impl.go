package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avelorn/chronline/internal/analytics"
	"github.com/avelorn/chronline/internal/contract"
	"github.com/avelorn/chronline/internal/domain"
	"github.com/avelorn/chronline/internal/notify"
	"github.com/avelorn/chronline/internal/store"
)

type reportService struct {
	entries  store.EntryStore
	rules    []analytics.CategoryRule
	notifier notify.Notifier
	observer UseCaseObserver
}

// NewReportService wires the store, categorization rules, and notifier into
// the use-case layer. Nil rules fall back to the built-in table, a nil
// notifier to the silent one.
func NewReportService(
	entries store.EntryStore,
	rules []analytics.CategoryRule,
	notifier notify.Notifier,
	observers ...UseCaseObserver,
) ReportService {
	if rules == nil {
		rules = analytics.DefaultRules()
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &reportService{
		entries:  entries,
		rules:    rules,
		notifier: notifier,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) Submit(ctx context.Context, inputs []contract.EntryInput) (result *contract.SubmitResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"submitted": len(inputs)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "submit-entries",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if len(inputs) == 0 {
		err = &contract.Error{Code: contract.ErrValidationFailed, Message: "no entries submitted"}
		return nil, err
	}

	parsed, issues := parseEntries(inputs)
	if len(issues) > 0 {
		fields["issues"] = len(issues)
		err = &contract.Error{
			Code:    contract.ErrValidationFailed,
			Message: fmt.Sprintf("%d of %d entries invalid, batch rejected", invalidCount(issues), len(inputs)),
			Details: issues,
		}
		return nil, err
	}

	added, err := s.entries.Append(ctx, parsed)
	if err != nil {
		err = storageError("storing entries", err)
		return nil, err
	}

	report, analysis, err := s.report(ctx)
	if err != nil {
		return nil, err
	}

	if analysis.ChronicScore.Level.Rank() >= domain.LevelVeryOnline.Rank() {
		s.alert(analysis.ChronicScore, fields)
	}

	result = &contract.SubmitResult{
		Message:      fmt.Sprintf("Successfully added %d entries", len(added)),
		Added:        len(added),
		TotalEntries: analysis.EntryCount,
		Report:       report,
	}
	return result, nil
}

func (s *reportService) Analytics(ctx context.Context) (report *contract.Report, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "analytics",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	built, analysis, err := s.report(ctx)
	if err != nil {
		return nil, err
	}
	fields["entries"] = analysis.EntryCount
	fields["score"] = analysis.ChronicScore.Score
	return &built, nil
}

func (s *reportService) Entries(ctx context.Context) (listed []contract.Entry, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "list-entries",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	snapshot, err := s.entries.Snapshot(ctx)
	if err != nil {
		err = storageError("loading entries", err)
		return nil, err
	}

	listed = make([]contract.Entry, 0, len(snapshot))
	for _, e := range snapshot {
		listed = append(listed, contract.NewEntry(e))
	}
	fields["entries"] = len(listed)
	return listed, nil
}

func (s *reportService) Clear(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "clear-entries",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	if err := s.entries.Clear(ctx); err != nil {
		return storageError("clearing entries", err)
	}
	return nil
}

// report runs the pipeline over the current snapshot.
func (s *reportService) report(ctx context.Context) (contract.Report, analytics.Analysis, error) {
	snapshot, err := s.entries.Snapshot(ctx)
	if err != nil {
		return contract.Report{}, analytics.Analysis{}, storageError("loading entries", err)
	}
	analysis := analytics.Analyze(s.rules, snapshot)
	return buildReport(analysis), analysis, nil
}

// alert fires a desktop notification about a worrying score. Delivery
// failures never fail the submit; they are surfaced through the observer.
func (s *reportService) alert(score analytics.ChronicScore, fields map[string]any) {
	message := fmt.Sprintf("Chronic online score %d/100 (%s). Time to log off for a bit.",
		score.Score, score.Level)
	fields["notified"] = true
	if err := s.notifier.Notify("Screen Time Alert", message); err != nil {
		fields["notify_error"] = err.Error()
	}
}

func storageError(action string, err error) *contract.Error {
	return &contract.Error{
		Code:    contract.ErrStorageFailure,
		Message: fmt.Sprintf("%s: %v", action, err),
	}
}

// invalidCount counts distinct entries with at least one issue.
func invalidCount(issues []contract.ValidationIssue) int {
	seen := map[int]bool{}
	for _, issue := range issues {
		seen[issue.Index] = true
	}
	return len(seen)
}
