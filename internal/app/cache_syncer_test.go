package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/primary"
)

func waitSave(t *testing.T, saved <-chan struct{}) {
	t.Helper()
	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for cache save")
	}
}

func TestCacheSyncer_SyncsOnStartAndAfterChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	feed := NewFeed(DefaultFeedBuffer)
	snapshots := &mockSnapshotService{snapshot: &models.Snapshot{Employees: []models.Employee{testParalegal}}}
	cache := &mockSnapshotCache{saved: make(chan struct{}, 16)}
	syncer := NewCacheSyncer(feed, snapshots, cache, zaptest.NewLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- syncer.Run(ctx) }()

	waitSave(t, cache.saved)

	feed.Publish(CollectionClients, OpCreate, "c1")
	waitSave(t, cache.saved)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	if cache.saveCount() < 2 {
		t.Errorf("saves = %d, want at least 2", cache.saveCount())
	}
	if feed.Subscribers() != 0 {
		t.Errorf("subscribers = %d after Run returned, want 0", feed.Subscribers())
	}
}

func TestCacheSyncer_SkipsCachedSnapshot(t *testing.T) {
	snapshots := &mockSnapshotService{snapshot: &models.Snapshot{}, source: primary.SourceCache}
	cache := &mockSnapshotCache{}
	syncer := NewCacheSyncer(NewFeed(0), snapshots, cache, nil)

	syncer.Sync(context.Background())

	if cache.saveCount() != 0 {
		t.Errorf("saves = %d, want 0 for a cache-sourced snapshot", cache.saveCount())
	}
}

func TestCacheSyncer_SnapshotErrorKeepsCache(t *testing.T) {
	stored := &models.Snapshot{Employees: []models.Employee{testParalegal}}
	cache := &mockSnapshotCache{stored: stored}
	syncer := NewCacheSyncer(NewFeed(0), &mockSnapshotService{err: errors.New("offline")}, cache, nil)

	syncer.Sync(context.Background())

	if cache.saveCount() != 0 || cache.stored != stored {
		t.Error("failed snapshot must not touch the cache")
	}
}
