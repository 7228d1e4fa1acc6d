package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/firmos/internal/cli"
	"github.com/example/firmos/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "firmos",
		Short:   "Law Firm OS - firm metrics, ledgers and operations",
		Version: version.String(),
		Long: `firmos runs the operations back office of a small law firm: staff and
task logs, clients and case types, overhead, the cashbox ledger, income,
support tickets and the Firm Metrics Engine (burn, runway, weekly P&L).`,
		SilenceUsage: true,
	}
	cli.AddGlobalFlags(rootCmd)

	// Server
	rootCmd.AddCommand(cli.ServeCmd())

	// Reports
	rootCmd.AddCommand(cli.BurnCmd())
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.ExportCmd())

	// Maintenance
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.LogCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
