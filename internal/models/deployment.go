package models

import (
	"time"

	"github.com/google/uuid"
)

type DeploymentStatus string

const (
	DeploymentStatusPending   DeploymentStatus = "pending"
	DeploymentStatusConfirmed DeploymentStatus = "confirmed"
	DeploymentStatusCompleted DeploymentStatus = "completed"
)

// Deployment is a proposed assignment of one resource to one incident.
// The dispatcher creates deployments as pending; confirmation happens
// outside the core.
type Deployment struct {
	ID               uuid.UUID        `json:"id"`
	IncidentID       uuid.UUID        `json:"incident_id"`
	ResourceID       uuid.UUID        `json:"resource_id"`
	DistanceKm       float64          `json:"distance_km"`
	EtaMinutes       int              `json:"eta_minutes"`
	PriorityScore    float64          `json:"priority_score"`
	DeploymentStatus DeploymentStatus `json:"deployment_status"`
	CreatedAt        time.Time        `json:"created_at"`
}
