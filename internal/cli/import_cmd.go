package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelorn/chronline/internal/cli/formatter"
	"github.com/avelorn/chronline/internal/importer"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Bulk-import entries from a JSON file",
		Long: "Import entries from a JSON file holding either a submit request " +
			"({\"entries\": [...]}), a bare entry array, or a previously exported report. " +
			"The batch is stored whole or not at all.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := importer.Load(args[0])
			if err != nil {
				return err
			}

			result, err := app.Reports.Submit(context.Background(), inputs)
			if err != nil {
				printValidationIssues(cmd, err)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScoreLine(result.Report.ChronicScore))
			return nil
		},
	}
}
