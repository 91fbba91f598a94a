package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelorn/chronline/internal/cli/formatter"
)

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the current screen time report",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Reports.Analytics(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReport(report))
			return nil
		},
	}
}
