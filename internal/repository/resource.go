package repository

import (
	"context"
	"fmt"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceRepository struct {
	db *pgxpool.Pool
}

func NewResourceRepository(db *pgxpool.Pool) service.ResourceRepository {
	return &ResourceRepository{db: db}
}

// ListAvailableByTypes returns resources of the given types that are
// available with at least one unit of spare capacity.
func (r *ResourceRepository) ListAvailableByTypes(ctx context.Context, types []models.ResourceType) ([]*models.Resource, error) {
	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = string(t)
	}

	query := `
		SELECT id, resource_type, current_latitude, current_longitude, status, available_capacity
		FROM emergency_resources
		WHERE resource_type = ANY($1)
		  AND status = $2
		  AND available_capacity >= 1;
	`
	rows, err := r.db.Query(ctx, query, typeNames, models.ResourceStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to list available resources: %w", err)
	}
	defer rows.Close()

	resources := make([]*models.Resource, 0)
	for rows.Next() {
		resource := &models.Resource{}
		err := rows.Scan(
			&resource.ID,
			&resource.ResourceType,
			&resource.CurrentLatitude,
			&resource.CurrentLongitude,
			&resource.Status,
			&resource.AvailableCapacity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource row: %w", err)
		}
		resources = append(resources, resource)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during resource iteration: %w", err)
	}
	return resources, nil
}
