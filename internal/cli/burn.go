package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/firmos/internal/core/metrics"
	"github.com/example/firmos/internal/ports/primary"
)

// Runway thresholds in days for coloring.
const (
	runwayCritical = 30
	runwayWarning  = 90
)

// BurnCmd returns the burn command
func BurnCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "burn",
		Short: "Show today's burn, runway and burn health",
		Long: `Show today's daily burn: payroll from today's task logs plus fixed
overhead, the runway left on cash on hand, and the overhead health check.

Examples:
  firmos burn
  firmos burn --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext(cmd.Context())
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp(a)

			report, err := a.Metrics.DailyBurn(ctx)
			if err != nil {
				return fmt.Errorf("failed to compute burn: %w", err)
			}

			if asJSON {
				return writeIndentedJSON(cmd.OutOrStdout(), report)
			}
			printBurn(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func printBurn(w io.Writer, r *primary.BurnReport) {
	bold := color.New(color.Bold)

	fmt.Fprintln(w, bold.Sprint("Daily burn"))
	fmt.Fprintf(w, "  %-22s %s\n", "Total", money(r.Burn.TotalDailyBurn))
	fmt.Fprintf(w, "  %-22s %s\n", "Payroll", money(r.Burn.DailyPayroll))
	fmt.Fprintf(w, "  %-22s %s\n", "Fixed overhead", money(r.Burn.DailyFixedOverhead))
	fmt.Fprintf(w, "  %-22s %.1f\n", "Hours logged", r.Burn.TotalDailyHours)
	if r.Burn.HourlyBurnRate != nil {
		fmt.Fprintf(w, "  %-22s %s\n", "Hourly burn rate", money(*r.Burn.HourlyBurnRate))
	} else {
		fmt.Fprintf(w, "  %-22s %s\n", "Hourly burn rate", "N/A")
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-24s %s\n", bold.Sprint("Cash on hand"), money(r.CashOnHand))
	fmt.Fprintf(w, "%-24s %s\n", bold.Sprint("Runway"), formatRunway(r.Runway))
	fmt.Fprintf(w, "%-24s %s (payroll %.0f%% of burn)\n", bold.Sprint("Health"), formatHealth(r.Health), r.Health.LaborShare)
	fmt.Fprintf(w, "%-24s %s/h\n", bold.Sprint("Hourly overhead"), money(r.Overhead.HourlyOverhead))
	fmt.Fprintf(w, "%-24s %s\n", bold.Sprint("Active staff"), formatCapacity(r.Staff))
}

func formatCapacity(c metrics.StaffCapacity) string {
	return fmt.Sprintf("%d (daily target %s)", c.Count, money(c.DailyBillingTarget))
}

// formatRunway colors the runway by how close the firm is to zero.
func formatRunway(r metrics.Runway) string {
	if r.Unbounded {
		return color.New(color.FgGreen).Sprint("unbounded")
	}
	text := fmt.Sprintf("%d days", r.Days)
	switch {
	case r.Days < runwayCritical:
		return color.New(color.FgRed, color.Bold).Sprint(text)
	case r.Days < runwayWarning:
		return color.New(color.FgYellow).Sprint(text)
	default:
		return color.New(color.FgGreen).Sprint(text)
	}
}

func formatHealth(h metrics.BurnHealth) string {
	if h.OverheadDuplicationRisk {
		return color.New(color.FgRed, color.Bold).Sprint(h.Label)
	}
	return color.New(color.FgGreen).Sprint(h.Label)
}

// money formats an amount as dollars with a sign for negatives.
func money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
