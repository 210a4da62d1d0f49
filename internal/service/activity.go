package service

import (
	"context"
	"log/slog"

	"github.com/gigwire/identity-go/internal/core"
	"github.com/gigwire/identity-go/internal/domain/model"
)

// Feed paging bounds.
const (
	defaultFeedLimit = 50
	maxFeedLimit     = 200
)

// ActivityServiceOptions groups dependencies for ActivityService.
type ActivityServiceOptions struct {
	Activity core.ActivityRepository
	Logger   *slog.Logger // Optional: structured logger
}

// ActivityService reads the append-only activity log.
type ActivityService struct {
	activity core.ActivityRepository
	logger   *slog.Logger
}

// NewActivityService constructs a new ActivityService.
func NewActivityService(opts ActivityServiceOptions) *ActivityService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityService{
		activity: opts.Activity,
		logger:   logger.With("component", "activity_service"),
	}
}

// Feed returns the person's activity records, newest first. The limit is
// clamped to sane bounds; a zero limit gets the default page size.
func (s *ActivityService) Feed(ctx context.Context, personID string, opts model.ActivityListOptions) ([]*model.ActivityRecord, error) {
	if opts.Limit <= 0 {
		opts.Limit = defaultFeedLimit
	}
	if opts.Limit > maxFeedLimit {
		opts.Limit = maxFeedLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return s.activity.ListByPerson(ctx, personID, opts)
}
