package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelorn/chronline/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	var out, format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the report and entries to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entries, err := app.Reports.Entries(ctx)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				report, err := app.Reports.Analytics(ctx)
				if err != nil {
					return err
				}
				if err := export.ToJSON(*report, entries, out); err != nil {
					return err
				}
			case "csv":
				if err := export.ToCSV(entries, out); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (want json or csv)", format)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(entries), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file path")
	cmd.Flags().StringVar(&format, "format", "json", "Export format (json|csv)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
