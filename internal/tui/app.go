// Package tui is the interactive dashboard. It is a tabbed bubbletea app over
// the same report service the CLI and HTTP API use, so every view renders the
// exact numbers a `chronline report` would print.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avelorn/chronline/internal/service"
)

// App is the root model. Child views are value models updated in place;
// report data flows to them through reportMsg, never by direct store access.
type App struct {
	service service.ReportService

	width  int
	height int

	activeView viewState
	dashboard  dashboardModel
	charts     chartsModel
	tips       tipsModel
	form       formModel

	help          help.Model
	status        string
	statusIsError bool
}

func NewApp(svc service.ReportService) App {
	return App{
		service:   svc,
		dashboard: newDashboardModel(),
		charts:    newChartsModel(),
		tips:      newTipsModel(),
		form:      newFormModel(svc),
		help:      help.New(),
	}
}

func (a App) Init() tea.Cmd {
	return loadReport(a.service)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		contentHeight := a.height - 4
		a.dashboard.setSize(msg.Width, contentHeight)
		a.charts.setSize(msg.Width, contentHeight)
		a.tips.setSize(msg.Width, contentHeight)
		a.form.setSize(msg.Width, contentHeight)
		a.help.Width = msg.Width
		return a, nil

	case reportMsg:
		if msg.err != nil {
			a.status = "Error: " + msg.err.Error()
			a.statusIsError = true
			return a, nil
		}
		a.dashboard.setReport(msg.report)
		a.charts.setReport(msg.report)
		a.tips.setReport(msg.report)
		return a, nil

	case entrySavedMsg:
		a.status = fmt.Sprintf("Added %s. Score is now %d/100.", msg.app, msg.score)
		a.statusIsError = false
		return a, loadReport(a.service)

	case statusMsg:
		a.status = msg.text
		a.statusIsError = msg.isError
		return a, nil

	case formCancelMsg:
		a.activeView = viewDashboard
		return a, nil

	case tea.KeyMsg:
		// While the form has focus every key belongs to it, so typing
		// "q" or "1" into an input works. Ctrl+C still quits.
		if a.activeView == viewAdd {
			if msg.Type == tea.KeyCtrlC {
				return a, tea.Quit
			}
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		case key.Matches(msg, keys.Refresh):
			return a, loadReport(a.service)
		case key.Matches(msg, keys.Tab):
			return a.switchView((a.activeView + 1) % viewState(len(viewNames)))
		case key.Matches(msg, keys.Tab1):
			return a.switchView(viewDashboard)
		case key.Matches(msg, keys.Tab2):
			return a.switchView(viewCharts)
		case key.Matches(msg, keys.Tab3):
			return a.switchView(viewTips)
		case key.Matches(msg, keys.Tab4):
			return a.switchView(viewAdd)
		}
		return a, nil
	}

	return a.updateActiveView(msg)
}

// switchView changes the active tab. Entering the form always starts it
// fresh with today's date.
func (a App) switchView(v viewState) (tea.Model, tea.Cmd) {
	a.activeView = v
	if v == viewAdd {
		a.form = a.form.reset()
		return a, a.form.init()
	}
	return a, nil
}

// updateActiveView forwards a message to the focused child. Only the form
// consumes messages directly; the read views are fed through reportMsg.
func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if a.activeView == viewAdd {
		a.form, cmd = a.form.update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()

	var body string
	switch a.activeView {
	case viewCharts:
		body = a.charts.view()
	case viewTips:
		body = a.tips.view()
	case viewAdd:
		body = a.form.view()
	default:
		body = a.dashboard.view()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, a.renderFooter())
}

func (a App) renderHeader() string {
	tabs := make([]string, 0, len(viewNames)+1)
	tabs = append(tabs, brandStyle.Render("chronline"))
	for i, name := range viewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...))
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)
	if a.status == "" {
		return footerStyle.Render(helpView)
	}
	style := statusBarStyle
	if a.statusIsError {
		style = errorStyle
	}
	return footerStyle.Render(style.Render(a.status) + "\n" + helpView)
}
