package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/firmos/internal/ports/primary"
)

// pollInterval is how often `log tail --follow` checks for new entries.
var pollInterval = time.Second

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the activity log",
	Long:  "View, search, and prune the activity log (who changed which record)",
}

var logTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Show recent activity",
	Long:  "Show recent activity log entries (default 50)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext(cmd.Context())
		limit, _ := cmd.Flags().GetInt("limit")
		actorID, _ := cmd.Flags().GetString("actor")
		entityType, _ := cmd.Flags().GetString("type")
		follow, _ := cmd.Flags().GetBool("follow")

		if limit <= 0 {
			limit = 50
		}

		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeApp(a)

		filters := primary.LogFilters{
			ActorID:    actorID,
			EntityType: entityType,
			Limit:      limit,
		}

		// Initial fetch
		entries, err := a.Logs.ListLogs(ctx, filters)
		if err != nil {
			return fmt.Errorf("failed to fetch logs: %w", err)
		}

		out := cmd.OutOrStdout()
		printLogEntries(out, entries)

		if !follow {
			return nil
		}

		var lastTimestamp string
		if len(entries) > 0 {
			lastTimestamp = entries[0].Timestamp
		}

		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}

			newEntries, err := a.Logs.ListLogs(ctx, filters)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error fetching logs: %v\n", err)
				continue
			}

			// Print only entries newer than lastTimestamp, oldest first
			for i := len(newEntries) - 1; i >= 0; i-- {
				entry := newEntries[i]
				if lastTimestamp == "" || entry.Timestamp > lastTimestamp {
					printLogEntry(out, entry)
					lastTimestamp = entry.Timestamp
				}
			}
		}
	},
}

var logShowCmd = &cobra.Command{
	Use:   "show [entity-id]",
	Short: "Show activity for a specific record",
	Long:  "Show activity history for a specific record (e.g. a client or ticket id)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext(cmd.Context())
		actorID, _ := cmd.Flags().GetString("actor")
		action, _ := cmd.Flags().GetString("action")
		limit, _ := cmd.Flags().GetInt("limit")

		filters := primary.LogFilters{
			ActorID: actorID,
			Action:  action,
			Limit:   limit,
		}

		// If entity ID provided, filter by it
		if len(args) > 0 {
			filters.EntityID = args[0]
		}

		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeApp(a)

		entries, err := a.Logs.ListLogs(ctx, filters)
		if err != nil {
			return fmt.Errorf("failed to fetch logs: %w", err)
		}

		printLogEntries(cmd.OutOrStdout(), entries)
		return nil
	},
}

var logPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old log entries",
	Long:  "Delete log entries older than the specified number of days (default 90)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext(cmd.Context())
		days, _ := cmd.Flags().GetInt("days")

		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeApp(a)

		count, err := a.Logs.PruneLogs(ctx, days)
		if err != nil {
			return fmt.Errorf("failed to prune logs: %w", err)
		}

		if count == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No log entries older than %d days found.\n", days)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d log entries older than %d days.\n", count, days)
		}
		return nil
	},
}

func printLogEntries(w io.Writer, entries []*primary.LogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No log entries found.")
		return
	}

	fmt.Fprintf(w, "Found %d log entries:\n\n", len(entries))

	// Oldest first
	for i := len(entries) - 1; i >= 0; i-- {
		printLogEntry(w, entries[i])
	}
}

func printLogEntry(w io.Writer, entry *primary.LogEntry) {
	// Format: timestamp | actor | action | entity_type/entity_id | field changes
	actorStr := entry.ActorID
	if actorStr == "" {
		actorStr = "-"
	}

	fmt.Fprintf(w, "%s | %-12s | %s %s | %s/%s",
		formatTimestamp(entry.Timestamp),
		actorStr,
		getActionIcon(entry.Action),
		entry.Action,
		entry.EntityType,
		entry.EntityID,
	)

	if entry.Action == "update" && entry.FieldName != "" {
		fmt.Fprintf(w, " | %s: %s -> %s", entry.FieldName, entry.OldValue, entry.NewValue)
	}

	fmt.Fprintln(w)
}

func getActionIcon(action string) string {
	switch action {
	case "create":
		return "+"
	case "update":
		return "~"
	case "delete":
		return "-"
	default:
		return "?"
	}
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// LogCmd returns the log command with all subcommands attached.
func LogCmd() *cobra.Command {
	// log tail
	logTailCmd.Flags().IntP("limit", "n", 50, "Number of entries to show")
	logTailCmd.Flags().String("actor", "", "Filter by actor")
	logTailCmd.Flags().String("type", "", "Filter by entity type (client, ticket, cash_transaction, ...)")
	logTailCmd.Flags().BoolP("follow", "f", false, "Follow mode: poll for new entries")

	// log show
	logShowCmd.Flags().String("actor", "", "Filter by actor")
	logShowCmd.Flags().String("action", "", "Filter by action (create, update, delete)")
	logShowCmd.Flags().IntP("limit", "n", 100, "Maximum entries to show")

	// log prune
	logPruneCmd.Flags().Int("days", 90, "Delete entries older than N days")

	logCmd.AddCommand(logTailCmd)
	logCmd.AddCommand(logShowCmd)
	logCmd.AddCommand(logPruneCmd)

	return logCmd
}
