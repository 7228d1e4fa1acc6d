package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/firmos/internal/core/metrics"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	var (
		window string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the weekly report as an Excel workbook",
		Long: `Write the weekly P&L, the cash ledger and the week's task logs to an
.xlsx workbook.

Examples:
  firmos export
  firmos export --window calendar --out week.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := metrics.ParseWindowKind(window)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("weekly-%s.xlsx", kind)
			}

			ctx := NewContext(cmd.Context())
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp(a)

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			if err := a.Reports.ExportWeekly(ctx, kind, f); err != nil {
				f.Close()
				os.Remove(out)
				return fmt.Errorf("failed to export weekly report: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&window, "window", "w", string(metrics.WindowFiscal), "Week window: fiscal or calendar")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default weekly-<window>.xlsx)")
	return cmd
}
