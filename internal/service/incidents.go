package service

import (
	"context"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// fetchIncident reads an incident through the cache. Cache errors are
// logged and treated as misses; the database stays authoritative.
func fetchIncident(ctx context.Context, repo IncidentRepository, id uuid.UUID, log *logrus.Entry) (*models.Incident, error) {
	cached, err := repo.GetFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		return cached, nil
	}

	incident, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := repo.SetCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}
