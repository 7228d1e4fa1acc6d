package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/firmos/internal/observability"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

// CacheSyncer keeps the local durable cache in step with the record store.
// It rewrites the whole cache once at start and again after every burst of
// change events.
type CacheSyncer struct {
	feed      *Feed
	snapshots primary.SnapshotService
	cache     secondary.SnapshotCache
	logger    *zap.Logger
}

// NewCacheSyncer creates a new CacheSyncer.
func NewCacheSyncer(feed *Feed, snapshots primary.SnapshotService, cache secondary.SnapshotCache, logger *zap.Logger) *CacheSyncer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheSyncer{
		feed:      feed,
		snapshots: snapshots,
		cache:     cache,
		logger:    logger,
	}
}

// Run syncs until ctx is cancelled. Sync failures are logged and never
// stop the loop.
func (c *CacheSyncer) Run(ctx context.Context) error {
	events, unsubscribe := c.feed.Subscribe()
	defer unsubscribe()

	c.Sync(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			drain(events)
			c.Sync(ctx)
		}
	}
}

// Sync rewrites the cache from the record store. A snapshot that itself
// came from the cache is not written back.
func (c *CacheSyncer) Sync(ctx context.Context) {
	snap, source, err := c.snapshots.Snapshot(ctx)
	if err != nil {
		observability.CacheWrites.WithLabelValues("error").Inc()
		c.logger.Warn("cache sync skipped: snapshot failed", zap.Error(err))
		return
	}
	if source != primary.SourceStore {
		observability.CacheWrites.WithLabelValues("skipped").Inc()
		return
	}
	if err := c.cache.Save(ctx, snap); err != nil {
		observability.CacheWrites.WithLabelValues("error").Inc()
		c.logger.Warn("cache sync failed", zap.Error(err))
		return
	}
	observability.CacheWrites.WithLabelValues("ok").Inc()
	c.logger.Debug("cache synced",
		zap.Int("employees", len(snap.Employees)),
		zap.Int("task_logs", len(snap.TaskLogs)),
		zap.Int("clients", len(snap.Clients)))
}

// drain discards events already queued so a burst costs one sync.
func drain(events <-chan ChangeEvent) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
