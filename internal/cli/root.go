package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/avelorn/chronline/internal/config"
	"github.com/avelorn/chronline/internal/contract"
	"github.com/avelorn/chronline/internal/service"
)

// App holds everything CLI commands need after main has wired the stack.
type App struct {
	Reports service.ReportService
	Config  *config.Config
	Logger  *slog.Logger

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command launches the TUI only when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "chronline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "chronline",
		Short: "Screen time tracking and chronic-online scoring",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	// Values are read by ParseGlobalFlags before the tree runs; registered
	// here so cobra accepts and documents them.
	root.PersistentFlags().String("config", "", "Config file path")
	root.PersistentFlags().String("db", "", "Database path (overrides config)")
	root.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error (overrides config)")

	root.AddCommand(
		newServeCmd(app),
		newReportCmd(app),
		newAddCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newClearCmd(app),
		newTUICmd(app),
	)

	return root
}

// printValidationIssues lists per-entry violations on stderr so a rejected
// batch names every bad row.
func printValidationIssues(cmd *cobra.Command, err error) {
	var cErr *contract.Error
	if !errors.As(err, &cErr) || len(cErr.Details) == 0 {
		return
	}
	for _, issue := range cErr.Details {
		fmt.Fprintf(cmd.ErrOrStderr(), "  entry %d: %s: %s\n", issue.Index, issue.Field, issue.Message)
	}
}
