// Package cli provides the firmos commands.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/firmos/internal/config"
	"github.com/example/firmos/internal/ctxutil"
	"github.com/example/firmos/internal/wire"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	verbose    bool
	actor      string
}

var globals globalFlags

// AddGlobalFlags registers the persistent flags on the root command.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&globals.configPath, "config", "", "Path to a TOML config file (default ./"+config.DefaultFileName+" if present)")
	root.PersistentFlags().BoolVarP(&globals.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&globals.actor, "actor", "", "Name recorded on changes made by this command (default $USER)")
}

// NewContext embeds the invoking actor in ctx. Commands that write records
// use it so the activity log names who made the change.
func NewContext(ctx context.Context) context.Context {
	actor := globals.actor
	if actor == "" {
		actor = os.Getenv("USER")
	}
	if actor == "" {
		return ctx
	}
	return ctxutil.WithActorID(ctx, actor)
}

// openApp loads configuration, builds the logger and wires the services.
// The caller closes the returned App.
func openApp(ctx context.Context) (*wire.App, error) {
	cfg, err := config.Load(globals.configPath)
	if err != nil {
		return nil, err
	}

	logger, err := wire.NewLogger(cfg.Log, globals.verbose)
	if err != nil {
		return nil, err
	}

	a, err := wire.Build(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return a, nil
}

// closeApp releases the store and flushes the logger.
func closeApp(a *wire.App) {
	_ = a.Close()
	_ = a.Logger.Sync()
}
