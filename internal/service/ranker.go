package service

import (
	"context"
	"fmt"
	"time"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/rules"
	"github.com/sirupsen/logrus"
)

// RankerService recomputes the priority order of all active incidents and
// serves the active incident listing.
type RankerService interface {
	RankActive(ctx context.Context) ([]rules.PriorityResult, error)
	ListActive(ctx context.Context) ([]*models.Incident, error)
}

type rankerService struct {
	incidents IncidentRepository
	activity  *ActivityLogger
	logger    *logrus.Logger
	now       func() time.Time
}

func NewRankerService(incidents IncidentRepository, activity *ActivityLogger, logger *logrus.Logger) RankerService {
	return &rankerService{
		incidents: incidents,
		activity:  activity,
		logger:    logger,
		now:       time.Now,
	}
}

// RankActive scores every active incident and returns the total order.
// Ranking is a pure read-compute-report pass; the only side effect is one
// activity log entry per incident.
func (s *rankerService) RankActive(ctx context.Context) ([]rules.PriorityResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "ranker",
		"method":  "RankActive",
	})
	log.Info("Ranking active incidents")

	incidents, err := s.incidents.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active incidents")
		return nil, fmt.Errorf("service: could not list active incidents: %w", err)
	}

	if len(incidents) == 0 {
		log.Info("No active incidents to rank")
		return []rules.PriorityResult{}, nil
	}

	results := rules.RankIncidents(incidents, s.now())

	for _, result := range results {
		s.activity.Record(ctx, &models.ActivityLogEntry{
			IncidentID:   result.IncidentID,
			ActivityType: models.ActivityPrioritization,
			Description:  fmt.Sprintf("Assigned priority ranking #%d (score: %g)", result.Ranking, result.PriorityScore),
			Metadata: map[string]any{
				"score":   result.PriorityScore,
				"ranking": result.Ranking,
			},
		})
	}

	log.WithField("count", len(results)).Info("Active incidents ranked")
	return results, nil
}

// ListActive returns all active incidents, newest first.
func (s *rankerService) ListActive(ctx context.Context) ([]*models.Incident, error) {
	incidents, err := s.incidents.ListActive(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "ranker",
			"method":  "ListActive",
		}).WithError(err).Error("Failed to list active incidents")
		return nil, fmt.Errorf("service: could not list active incidents: %w", err)
	}
	return incidents, nil
}
