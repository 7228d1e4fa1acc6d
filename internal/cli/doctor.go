package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/firmos/internal/adapters/snapshotfile"
	"github.com/example/firmos/internal/config"
	"github.com/example/firmos/internal/db"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/version"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the firmos configuration and storage",
		Long: `Health check for a firmos installation.

Validates:
- Configuration file and environment overrides
- Record store (opens it and checks the schema version)
- Local cache directory and last cached snapshot
- Advisory chat configuration

Examples:
  firmos doctor              # Run full health check
  firmos doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := runChecks(cmd.Context(), globals.configPath)

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				printChecks(cmd.OutOrStdout(), results, hasErrors)
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// runChecks stops after a config failure since every other check reads it.
func runChecks(ctx context.Context, configPath string) []CheckResult {
	cfg, err := config.Load(configPath)
	if err != nil {
		return []CheckResult{{Name: "Config", Status: "✗", Details: "  " + err.Error()}}
	}

	return []CheckResult{
		{Name: "Config", Status: "✓"},
		checkStore(ctx, cfg.Store),
		checkCache(ctx, cfg.Cache),
		checkAdvisor(cfg),
	}
}

func printChecks(w io.Writer, results []CheckResult, hasErrors bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, version.String())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check              Status")
	fmt.Fprintln(w, "─────────────────────────")
	for _, r := range results {
		fmt.Fprintf(w, "%-18s %s\n", r.Name, r.Status)
	}
	fmt.Fprintln(w)

	// Print details for non-passing checks
	hasDetails := false
	for _, r := range results {
		if r.Status != "✓" && r.Details != "" {
			if !hasDetails {
				fmt.Fprintln(w, "Details:")
				hasDetails = true
			}
			fmt.Fprintf(w, "\n%s:\n%s\n", r.Name, r.Details)
		}
	}

	if hasErrors {
		fmt.Fprintln(w, "\n⚠ Issues found.")
	} else {
		fmt.Fprintln(w, "All checks passed.")
	}
}

// checkStore opens the record store, which also applies pending migrations.
func checkStore(ctx context.Context, cfg config.StoreConfig) CheckResult {
	database, err := db.Open(ctx, cfg.Path, zap.NewNop())
	if err != nil {
		return CheckResult{Name: "Store", Status: "✗", Details: "  " + err.Error()}
	}
	defer database.Close()

	current, err := db.CurrentVersion(ctx, database)
	if err != nil {
		return CheckResult{Name: "Store", Status: "✗", Details: "  " + err.Error()}
	}
	if current != db.LatestVersion() {
		return CheckResult{
			Name:    "Store",
			Status:  "⚠",
			Details: fmt.Sprintf("  Schema version %d, expected %d", current, db.LatestVersion()),
		}
	}
	return CheckResult{Name: "Store", Status: "✓"}
}

// checkCache confirms the cache directory is writable and reports the age
// of the last cached snapshot.
func checkCache(ctx context.Context, cfg config.CacheConfig) CheckResult {
	if !cfg.Enabled {
		return CheckResult{Name: "Cache", Status: "⚠", Details: "  Disabled; the dashboard has no fallback if the store fails"}
	}

	cache, err := snapshotfile.NewCache(cfg.DataDir)
	if err != nil {
		return CheckResult{Name: "Cache", Status: "✗", Details: "  " + err.Error()}
	}

	tmp, err := os.CreateTemp(cfg.DataDir, ".doctor-*")
	if err != nil {
		return CheckResult{Name: "Cache", Status: "✗", Details: fmt.Sprintf("  %s is not writable: %v", cfg.DataDir, err)}
	}
	tmp.Close()
	os.Remove(tmp.Name())

	if _, err := cache.Load(ctx); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return CheckResult{
				Name:    "Cache",
				Status:  "⚠",
				Details: fmt.Sprintf("  No snapshot at %s yet; run 'firmos serve' to create one", filepath.Base(cache.Path())),
			}
		}
		return CheckResult{Name: "Cache", Status: "✗", Details: "  " + err.Error()}
	}
	return CheckResult{Name: "Cache", Status: "✓"}
}

func checkAdvisor(cfg *config.Config) CheckResult {
	if !cfg.AdvisorConfigured() {
		return CheckResult{
			Name:    "Advisor",
			Status:  "⚠",
			Details: "  No API key; set GEMINI_API_KEY to enable the advisory chat",
		}
	}
	return CheckResult{Name: "Advisor", Status: "✓"}
}
