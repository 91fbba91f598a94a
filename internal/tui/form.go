package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/avelorn/chronline/internal/contract"
	"github.com/avelorn/chronline/internal/domain"
	"github.com/avelorn/chronline/internal/service"
)

// entryCategories are the labels the categorizer itself can assign, offered
// as explicit overrides next to auto-detect.
var entryCategories = []string{
	domain.CategorySocialMedia,
	domain.CategoryProductivity,
	"Entertainment",
	"Gaming",
	"News",
	domain.CategoryOther,
}

// formModel wraps a huh form for one entry. Field values live behind pointers
// so they survive the value copies bubbletea makes on every Update.
type formModel struct {
	service service.ReportService
	width   int
	height  int

	form *huh.Form

	date     *string
	app      *string
	minutes  *string
	category *string
	pickups  *string
}

func newFormModel(svc service.ReportService) formModel {
	f := formModel{service: svc}
	return f.reset()
}

// reset rebuilds the form with empty fields and today's date.
func (f formModel) reset() formModel {
	date := time.Now().Format("2006-01-02")
	app, minutes, category, pickups := "", "", "", ""

	f.date = &date
	f.app = &app
	f.minutes = &minutes
	f.category = &category
	f.pickups = &pickups
	f.form = buildEntryForm(f.date, f.app, f.minutes, f.category, f.pickups)
	return f
}

func (f formModel) init() tea.Cmd {
	return f.form.Init()
}

func (f *formModel) setSize(w, h int) {
	f.width = w
	f.height = h
}

func buildEntryForm(date, app, minutes, category, pickups *string) *huh.Form {
	categoryOptions := make([]huh.Option[string], 0, len(entryCategories)+1)
	categoryOptions = append(categoryOptions, huh.NewOption("Auto-detect", ""))
	for _, c := range entryCategories {
		categoryOptions = append(categoryOptions, huh.NewOption(c, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(date).
				Validate(validateDate),
			huh.NewInput().
				Title("App").
				Placeholder("Instagram").
				Value(app).
				Validate(validateApp),
			huh.NewInput().
				Title("Minutes").
				Placeholder("90").
				Value(minutes).
				Validate(validateMinutes),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(category),
			huh.NewInput().
				Title("Pickups").
				Placeholder("0").
				Value(pickups).
				Validate(validatePickups),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		f = f.reset()
		return f, func() tea.Msg { return formCancelMsg{} }
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		// Capture the submission before reset repoints the field pointers.
		submit := f.submitCmd()
		f = f.reset()
		return f, tea.Batch(submit, f.form.Init())
	}

	return f, cmd
}

// submitCmd snapshots the field values eagerly and sends them through the
// service off the update loop.
func (f formModel) submitCmd() tea.Cmd {
	input := contract.EntryInput{
		Date:     strings.TrimSpace(*f.date),
		App:      strings.TrimSpace(*f.app),
		Category: *f.category,
	}
	input.TimeMinutes, _ = strconv.ParseFloat(strings.TrimSpace(*f.minutes), 64)
	if p := strings.TrimSpace(*f.pickups); p != "" {
		input.Pickups, _ = strconv.Atoi(p)
	}

	svc := f.service
	return func() tea.Msg {
		result, err := svc.Submit(context.Background(), []contract.EntryInput{input})
		if err != nil {
			return statusMsg{text: submitErrorText(err), isError: true}
		}
		return entrySavedMsg{app: input.App, score: result.Report.ChronicScore.Score}
	}
}

func (f formModel) view() string {
	if f.width < 20 {
		return "Terminal too small"
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Add Entry"),
		"",
		f.form.View(),
		"",
		mutedStyle.Render("enter: next field  esc: cancel"),
	)
	return panelStyle.Width(f.width - 4).Render(content)
}

// Field validators give immediate feedback while typing. The service
// revalidates the whole batch on submit either way.

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("want YYYY-MM-DD")
	}
	return nil
}

func validateApp(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("app name is required")
	}
	return nil
}

func validateMinutes(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("want a number of minutes")
	}
	if v <= 0 {
		return fmt.Errorf("must be greater than 0")
	}
	return nil
}

func validatePickups(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("want a non-negative count")
	}
	return nil
}
