// Package snapshotfile implements the local durable cache as one JSON file.
package snapshotfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/secondary"
)

// Key names the single cached blob.
const Key = "law-firm-os-data"

// envelope is the on-disk layout.
type envelope struct {
	Key      string           `json:"key"`
	SavedAt  time.Time        `json:"savedAt"`
	Snapshot *models.Snapshot `json:"snapshot"`
}

// Cache implements secondary.SnapshotCache with a file under a data directory.
type Cache struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewCache creates a cache in dir, creating the directory if needed.
func NewCache(dir string) (*Cache, error) {
	if dir == "" {
		return nil, errors.New("cache directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{path: filepath.Join(dir, Key+".json"), now: time.Now}, nil
}

// Path returns the cache file location.
func (c *Cache) Path() string {
	return c.path
}

// Load returns the cached snapshot, or models.ErrNotFound if none exists.
func (c *Cache) Load(ctx context.Context) (*models.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cache %s: %w", Key, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode cache: %w", err)
	}
	if env.Snapshot == nil {
		return nil, fmt.Errorf("cache %s: %w", Key, models.ErrNotFound)
	}
	return env.Snapshot, nil
}

// Save replaces the cached snapshot. The write goes to a temp file in the
// same directory and is renamed over the old one, so readers never see a
// partial blob.
func (c *Cache) Save(ctx context.Context, snapshot *models.Snapshot) error {
	if snapshot == nil {
		return errors.New("nil snapshot")
	}
	data, err := json.Marshal(envelope{Key: Key, SavedAt: c.now(), Snapshot: snapshot})
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(c.path), Key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cache: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close cache: %w", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		return fmt.Errorf("failed to replace cache: %w", err)
	}
	return nil
}

var _ secondary.SnapshotCache = (*Cache)(nil)
