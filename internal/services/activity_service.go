package services

import (
	"context"
	"time"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/tasks"
)

// ActivityRecorderImpl implements domain.ActivityRecorder by queueing
// appends on the background runner. A failed append is logged by the
// runner and never surfaces to the operation that produced it.
type ActivityRecorderImpl struct {
	repo   domain.ActivityRepository
	runner *tasks.Runner
}

// NewActivityRecorder creates a best-effort activity recorder.
func NewActivityRecorder(repo domain.ActivityRepository, runner *tasks.Runner) domain.ActivityRecorder {
	return &ActivityRecorderImpl{repo: repo, runner: runner}
}

// Record implements domain.ActivityRecorder
func (a *ActivityRecorderImpl) Record(action, userID, details string) {
	entry := &domain.ActivityEntry{
		Action:    action,
		UserID:    userID,
		Details:   details,
		Timestamp: time.Now(),
	}
	a.runner.Submit("activity-append", func(ctx context.Context) error {
		return a.repo.Append(ctx, entry)
	})
}
