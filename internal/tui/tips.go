package tui

import (
	"fmt"
	"strings"

	"github.com/avelorn/chronline/internal/cli/formatter"
	"github.com/avelorn/chronline/internal/contract"
)

type tipsModel struct {
	report *contract.Report
	width  int
	height int
}

func newTipsModel() tipsModel {
	return tipsModel{}
}

func (t *tipsModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t *tipsModel) setReport(r *contract.Report) {
	t.report = r
}

func (t tipsModel) view() string {
	if t.width < 20 {
		return "Terminal too small"
	}
	w := t.width - 4

	if t.report == nil {
		return panelStyle.Width(w).Render(mutedStyle.Render("Loading tips..."))
	}

	rows := []string{titleStyle.Render("Tips"), ""}
	for _, tip := range t.report.Tips {
		rows = append(rows,
			fmt.Sprintf("%s %s", formatter.PriorityBadge(tip.Priority), titleStyle.Render(tip.Title)),
			"   "+mutedStyle.Render(tip.Description),
			"",
		)
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
