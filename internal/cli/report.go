package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/firmos/internal/core/metrics"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/primary"
)

// ReportCmd returns the weekly report command
func ReportCmd() *cobra.Command {
	var (
		window string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the weekly P&L, client mix and staff audit",
		Long: `Show the current week's profit and loss.

The fiscal week runs Wednesday through Tuesday; the calendar week runs
Monday through Sunday.

Examples:
  firmos report
  firmos report --window calendar
  firmos report --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := metrics.ParseWindowKind(window)
			if err != nil {
				return err
			}

			ctx := NewContext(cmd.Context())
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp(a)

			report, err := a.Metrics.WeeklyReport(ctx, kind)
			if err != nil {
				return fmt.Errorf("failed to compute weekly report: %w", err)
			}

			if asJSON {
				return writeIndentedJSON(cmd.OutOrStdout(), report)
			}
			printWeekly(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&window, "window", "w", string(metrics.WindowFiscal), "Week window: fiscal or calendar")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func printWeekly(w io.Writer, r *primary.WeeklyReport) {
	bold := color.New(color.Bold)
	pl := r.PL

	fmt.Fprintf(w, "%s %s to %s (%s)\n\n", bold.Sprint("Week"),
		pl.Window.Start.Format(models.DateLayout), pl.Window.End.Format(models.DateLayout), pl.Window.Kind)

	fmt.Fprintln(w, bold.Sprint("Profit and loss"))
	fmt.Fprintf(w, "  %-20s %12s  (%d entries)\n", "Income", money(pl.Income), pl.IncomeEntries)
	fmt.Fprintf(w, "  %-20s %12s  (%d logs)\n", "Labor", money(pl.LaborCost), pl.TaskLogs)
	fmt.Fprintf(w, "  %-20s %12s\n", "Production", money(pl.ProductionCost))
	fmt.Fprintf(w, "  %-20s %12s\n", "Fixed overhead", money(pl.FixedOverhead))
	fmt.Fprintf(w, "  %-20s %12s\n", "Expenses", money(pl.Expenses))
	fmt.Fprintf(w, "  %-20s %12s\n", "Net", formatNet(pl.Net))
	fmt.Fprintf(w, "  %-20s %11.2fx\n", "Efficiency", pl.EfficiencyRatio)
	fmt.Fprintln(w)

	c := r.Clients
	fmt.Fprintln(w, bold.Sprint("Clients"))
	fmt.Fprintf(w, "  %d total, %d active, %s, %d churned, %d new this week\n",
		c.Total, c.Active, formatAtRisk(c.AtRisk), c.Churned, c.NewThisWeek)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s  %s\n", bold.Sprint("Staff"), formatCapacity(r.Burn.Staff))
	if len(r.Staff) == 0 {
		fmt.Fprintln(w, "  No employees.")
		return
	}
	fmt.Fprintf(w, "  %-20s %7s %12s %12s %7s\n", "Name", "Hours", "Labor", "Production", "ROI")
	for _, s := range r.Staff {
		roi := fmt.Sprintf("%.2fx", s.ROIMultiplier)
		if s.Underperforming {
			roi = color.New(color.FgRed).Sprint(roi)
		}
		fmt.Fprintf(w, "  %-20s %7.1f %12s %12s %7s\n", s.Name, s.Hours, money(s.LaborCost), money(s.ProductionCost), roi)
	}
}

func formatNet(v float64) string {
	if v < 0 {
		return color.New(color.FgRed, color.Bold).Sprint(money(v))
	}
	return color.New(color.FgGreen).Sprint(money(v))
}

func formatAtRisk(n int) string {
	text := fmt.Sprintf("%d at risk", n)
	if n > 0 {
		return color.New(color.FgYellow).Sprint(text)
	}
	return text
}
