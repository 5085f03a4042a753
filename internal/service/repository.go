package service

import (
	"context"
	"time"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// ReportRepository reads citizen reports owned by the reporting app.
type ReportRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	CountActiveInArea(ctx context.Context, minLat, maxLat, minLng, maxLng float64) (int, error)
}

// IncidentRepository persists classified incidents. Insert is keyed by
// report id so classification stays idempotent under retries.
type IncidentRepository interface {
	Insert(ctx context.Context, incident *models.Incident) (bool, error)
	GetByReportID(ctx context.Context, reportID uuid.UUID) (*models.Incident, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListActive(ctx context.Context) ([]*models.Incident, error)
	GetFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetCache(ctx context.Context, incident *models.Incident) error
}

// ResourceRepository reads the emergency resource registry.
type ResourceRepository interface {
	ListAvailableByTypes(ctx context.Context, types []models.ResourceType) ([]*models.Resource, error)
}

// DeploymentRepository persists resource deployments.
type DeploymentRepository interface {
	Create(ctx context.Context, deployment *models.Deployment) error
}

// AlertRepository persists broadcast alerts.
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	MarkSent(ctx context.Context, id uuid.UUID, recipients int, sentAt time.Time) error
}

// ActivityLogRepository appends audit records. Entries are write-once and
// never read by the core.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *models.ActivityLogEntry) error
}
