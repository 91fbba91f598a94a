package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelorn/chronline/internal/contract"
	"github.com/avelorn/chronline/internal/service"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewCharts
	viewTips
	viewAdd
)

var viewNames = []string{"Dashboard", "Charts", "Tips", "Add Entry"}

// --- Messages ---

// reportMsg carries a freshly computed report to every read view.
type reportMsg struct {
	report *contract.Report
	err    error
}

type entrySavedMsg struct {
	app   string
	score int
}

type statusMsg struct {
	text    string
	isError bool
}

type formCancelMsg struct{}

// --- Commands ---

func loadReport(svc service.ReportService) tea.Cmd {
	return func() tea.Msg {
		report, err := svc.Analytics(context.Background())
		return reportMsg{report: report, err: err}
	}
}

// --- Helpers ---

// submitErrorText flattens a service error into a one-line status. For
// validation failures the first issue is the most useful part.
func submitErrorText(err error) string {
	var svcErr *contract.Error
	if errors.As(err, &svcErr) && len(svcErr.Details) > 0 {
		issue := svcErr.Details[0]
		return fmt.Sprintf("%s: %s", issue.Field, issue.Message)
	}
	return err.Error()
}
