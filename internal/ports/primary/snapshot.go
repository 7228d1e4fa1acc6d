package primary

import (
	"context"

	"github.com/example/firmos/internal/models"
)

// Snapshot sources
const (
	SourceStore = "store"
	SourceCache = "cache"
)

// SnapshotService defines the primary port for loading all firm records.
type SnapshotService interface {
	// Snapshot loads every collection from the record store, falling back
	// to the local cache when the store fails. Returns the source used.
	Snapshot(ctx context.Context) (*models.Snapshot, string, error)
}
