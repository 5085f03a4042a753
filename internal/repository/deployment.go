package repository

import (
	"context"
	"fmt"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DeploymentRepository struct {
	db *pgxpool.Pool
}

func NewDeploymentRepository(db *pgxpool.Pool) service.DeploymentRepository {
	return &DeploymentRepository{db: db}
}

// Create persists one resource deployment. The same (incident, resource)
// pair may appear in several batches; no uniqueness is enforced here.
func (r *DeploymentRepository) Create(ctx context.Context, deployment *models.Deployment) error {
	query := `
		INSERT INTO resource_deployments
			(incident_id, resource_id, distance_km, eta_minutes, priority_score, deployment_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		deployment.IncidentID,
		deployment.ResourceID,
		deployment.DistanceKm,
		deployment.EtaMinutes,
		deployment.PriorityScore,
		deployment.DeploymentStatus,
	).Scan(&deployment.ID, &deployment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create deployment: %w", err)
	}
	return nil
}
