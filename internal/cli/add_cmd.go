package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avelorn/chronline/internal/cli/formatter"
	"github.com/avelorn/chronline/internal/contract"
)

func newAddCmd(app *App) *cobra.Command {
	var date, appName, category string
	var minutes float64
	var pickups int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a single screen time entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			result, err := app.Reports.Submit(context.Background(), []contract.EntryInput{{
				Date:        date,
				App:         appName,
				TimeMinutes: minutes,
				Category:    category,
				Pickups:     pickups,
			}})
			if err != nil {
				printValidationIssues(cmd, err)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScoreLine(result.Report.ChronicScore))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&appName, "app", "", "App name")
	cmd.Flags().Float64Var(&minutes, "minutes", 0, "Minutes spent")
	cmd.Flags().StringVar(&category, "category", "", "Category (auto-detected when empty)")
	cmd.Flags().IntVar(&pickups, "pickups", 0, "Times the app was opened")
	_ = cmd.MarkFlagRequired("app")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}
