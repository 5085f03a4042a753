package service

import (
	"context"

	"github.com/crisisops/crisis_response_system/internal/audit"
	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ActivityLogger is the shared audit sink of the pipeline. Writes are
// best-effort: a failed activity write is logged but never aborts the
// operation that produced it.
type ActivityLogger struct {
	repo      ActivityLogRepository
	publisher audit.Publisher
	logger    *logrus.Logger
}

func NewActivityLogger(repo ActivityLogRepository, publisher audit.Publisher, logger *logrus.Logger) *ActivityLogger {
	return &ActivityLogger{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Record appends the entry to the activity log and queues it for audit
// webhook delivery.
func (a *ActivityLogger) Record(ctx context.Context, entry *models.ActivityLogEntry) {
	log := a.logger.WithFields(logrus.Fields{
		"incident_id":   entry.IncidentID,
		"activity_type": entry.ActivityType,
	})

	if err := a.repo.Append(ctx, entry); err != nil {
		log.WithError(err).Warn("Failed to append activity log entry")
	}

	if a.publisher == nil {
		return
	}
	if err := a.publisher.Publish(ctx, entry); err != nil {
		log.WithError(err).Warn("Failed to publish activity entry to audit queue")
	}
}
