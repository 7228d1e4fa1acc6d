package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/firmos/internal/db"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	var fixtures bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store the default case types",
		Long: `Store the default case type templates. Templates already stored are kept.

With --fixtures, also load a small demo firm: staff, clients, a week of
task logs, income and cashbox activity.

Examples:
  firmos seed
  firmos seed --fixtures`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext(cmd.Context())
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp(a)

			if fixtures {
				if err := db.SeedFixtures(ctx, a.DB, time.Now()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "✓ Loaded demo fixtures")
				return nil
			}

			n, err := db.SeedCaseTypes(ctx, a.DB)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Default case types already stored.")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Stored %d default case types\n", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fixtures, "fixtures", false, "Also load demo staff, clients and activity")
	return cmd
}
