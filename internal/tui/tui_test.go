package tui

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelorn/chronline/internal/contract"
	"github.com/avelorn/chronline/internal/service"
	"github.com/avelorn/chronline/internal/teatest"
	"github.com/avelorn/chronline/internal/testutil"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func newTestService(t *testing.T) service.ReportService {
	t.Helper()
	return service.NewReportService(testutil.NewTestStore(t), nil, nil)
}

func newDriver(t *testing.T, svc service.ReportService) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, NewApp(svc), teatest.WithSize(100, 40))
	d.DrainInit()
	return d
}

func seed(t *testing.T, svc service.ReportService, inputs ...contract.EntryInput) {
	t.Helper()
	_, err := svc.Submit(context.Background(), inputs)
	require.NoError(t, err)
}

func input(date, app string, minutes float64, pickups int) contract.EntryInput {
	return contract.EntryInput{Date: date, App: app, TimeMinutes: minutes, Pickups: pickups}
}

func TestApp_StartsOnDashboard(t *testing.T) {
	d := newDriver(t, newTestService(t))

	view := stripANSI(d.View())
	assert.Contains(t, view, "chronline")
	assert.Contains(t, view, "1 Dashboard")
	assert.Contains(t, view, "0/100")
	assert.Contains(t, view, "CASUALLY ONLINE")
	assert.Contains(t, view, "No entries yet")
}

func TestApp_DashboardShowsReport(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc,
		input("2024-01-15", "Instagram", 240, 90),
		input("2024-01-15", "Slack", 60, 10),
		input("2024-01-16", "Instagram", 180, 60),
	)
	d := newDriver(t, svc)

	view := stripANSI(d.View())
	assert.Contains(t, view, "/100")
	assert.Contains(t, view, "Screen time")
	assert.Contains(t, view, "Doomscrolling")
	assert.Contains(t, view, "Metrics")
	assert.Contains(t, view, "Top Apps")
	assert.Contains(t, view, "Instagram")
	assert.Contains(t, view, "Slack")
}

func TestApp_TabSwitching(t *testing.T) {
	d := newDriver(t, newTestService(t))

	d.PressKey('2')
	assert.Contains(t, stripANSI(d.View()), "Nothing to chart yet")

	d.PressKey('3')
	assert.Contains(t, stripANSI(d.View()), "Tips")

	d.PressKey('1')
	assert.Contains(t, stripANSI(d.View()), "No entries yet")

	// Tab cycles forward from the current view.
	d.PressTab()
	assert.Equal(t, viewCharts, d.Model.(App).activeView)
	d.PressTab()
	assert.Equal(t, viewTips, d.Model.(App).activeView)
}

func TestApp_ChartsRenderCategoryAndDaily(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc,
		input("2024-01-15", "Instagram", 240, 90),
		input("2024-01-16", "Slack", 120, 10),
	)
	d := newDriver(t, svc)

	d.PressKey('2')
	view := stripANSI(d.View())
	assert.Contains(t, view, "Hours by Category")
	assert.Contains(t, view, "Daily Hours")
	assert.Contains(t, view, "Social Media")
	assert.Contains(t, view, "Productivity")
	assert.Contains(t, view, "Mon 15")
}

func TestApp_TipsAlwaysPresent(t *testing.T) {
	d := newDriver(t, newTestService(t))

	d.PressKey('3')
	view := stripANSI(d.View())
	assert.Contains(t, view, "Practice Mindful Phone Use")
	assert.Contains(t, view, "Review Your Progress Weekly")
	assert.Contains(t, view, "○ LOW")
}

func TestApp_TipsHeavyUsageShowsHighPriority(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc, input("2024-01-15", "TikTok", 600, 150))
	d := newDriver(t, svc)

	d.PressKey('3')
	view := stripANSI(d.View())
	assert.Contains(t, view, "▲ HIGH")
	assert.Contains(t, view, "Set Daily Screen Time Limits")
}

func TestApp_AddEntryFormSubmits(t *testing.T) {
	svc := newTestService(t)
	d := newDriver(t, svc)

	d.PressKey('4')
	assert.Contains(t, stripANSI(d.View()), "Add Entry")

	// Walk the fields in order: accept today's date, type the app name and
	// minutes, keep the category on auto-detect, leave pickups blank.
	d.PressEnter()
	d.Type("Instagram")
	d.PressEnter()
	d.Type("120")
	d.PressEnter()
	d.PressEnter()
	d.PressEnter()

	view := stripANSI(d.View())
	assert.Contains(t, view, "Added Instagram. Score is now")

	entries, err := svc.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Instagram", entries[0].App)
	assert.Equal(t, 120.0, entries[0].TimeMinutes)
	assert.Equal(t, 0, entries[0].Pickups)
	assert.Empty(t, entries[0].Category)
}

func TestApp_FormValidationBlocksAdvance(t *testing.T) {
	d := newDriver(t, newTestService(t))

	// Feed a non-numeric minutes value; the field refuses to advance and
	// shows its error inline.
	d.PressKey('4')
	d.PressEnter()
	d.Type("Zoom")
	d.PressEnter()
	d.Type("abc")
	d.PressEnter()

	assert.Contains(t, stripANSI(d.View()), "want a number of minutes")
}

func TestApp_FormEscReturnsToDashboard(t *testing.T) {
	d := newDriver(t, newTestService(t))

	d.PressKey('4')
	d.Type("partial")
	d.PressEsc()

	app := d.Model.(App)
	assert.Equal(t, viewDashboard, app.activeView)

	// Re-entering starts the form fresh.
	d.PressKey('4')
	assert.NotContains(t, stripANSI(d.View()), "partial")
}

func TestApp_RefreshPicksUpNewEntries(t *testing.T) {
	svc := newTestService(t)
	d := newDriver(t, svc)
	assert.Contains(t, stripANSI(d.View()), "No entries yet")

	seed(t, svc, input("2024-01-15", "Instagram", 90, 30))

	d.PressKey('r')
	view := stripANSI(d.View())
	assert.Contains(t, view, "Instagram")
	assert.NotContains(t, view, "No entries yet")
}

func TestApp_QuitKey(t *testing.T) {
	d := newDriver(t, newTestService(t))

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestApp_CtrlCQuitsFromForm(t *testing.T) {
	d := newDriver(t, newTestService(t))

	d.PressKey('4')
	d.PressKey('q') // types into the date field instead of quitting
	assert.False(t, d.Quitting)

	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

func TestSubmitErrorText(t *testing.T) {
	withDetails := &contract.Error{
		Code:    contract.ErrValidationFailed,
		Message: "validation failed",
		Details: []contract.ValidationIssue{
			{Index: 0, Field: "time_minutes", Message: "must be greater than 0"},
		},
	}
	assert.Equal(t, "time_minutes: must be greater than 0", submitErrorText(withDetails))

	plain := errors.New("disk full")
	assert.Equal(t, "disk full", submitErrorText(plain))
}

func TestShortLabel(t *testing.T) {
	assert.Equal(t, "Gaming", shortLabel("Gaming"))
	assert.Equal(t, "Product…", shortLabel("Productivity"))
}
