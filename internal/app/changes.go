package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/firmos/internal/ports/secondary"
)

// ChangeRecorder writes the activity log and announces the change on the
// feed after a successful mutation. Activity log failures never fail the
// mutation that caused them.
type ChangeRecorder struct {
	logWriter secondary.LogWriter
	feed      *Feed
	logger    *zap.Logger
}

// NewChangeRecorder creates a ChangeRecorder. Either collaborator may be nil.
func NewChangeRecorder(logWriter secondary.LogWriter, feed *Feed, logger *zap.Logger) ChangeRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return ChangeRecorder{logWriter: logWriter, feed: feed, logger: logger}
}

func (c ChangeRecorder) created(ctx context.Context, collection, entityType, id string) {
	if c.logWriter != nil {
		c.check(c.logWriter.LogCreate(ctx, entityType, id), entityType, id)
	}
	c.feed.Publish(collection, OpCreate, id)
}

func (c ChangeRecorder) updated(ctx context.Context, collection, entityType, id, field, oldValue, newValue string) {
	if c.logWriter != nil {
		c.check(c.logWriter.LogUpdate(ctx, entityType, id, field, oldValue, newValue), entityType, id)
	}
	c.feed.Publish(collection, OpUpdate, id)
}

func (c ChangeRecorder) deleted(ctx context.Context, collection, entityType, id string) {
	if c.logWriter != nil {
		c.check(c.logWriter.LogDelete(ctx, entityType, id), entityType, id)
	}
	c.feed.Publish(collection, OpDelete, id)
}

func (c ChangeRecorder) check(err error, entityType, id string) {
	if err != nil {
		c.logger.Warn("activity log write failed",
			zap.String("entity_type", entityType),
			zap.String("entity_id", id),
			zap.Error(err))
	}
}
