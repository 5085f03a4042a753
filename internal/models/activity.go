package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity types written by the crisis pipeline.
const (
	ActivityPrioritization   = "prioritization"
	ActivityResourceAssigned = "resource_assigned"
	ActivityAlertSent        = "alert_sent"
)

// ActivityLogEntry is an append-only audit record. The core writes entries
// but never reads them back.
type ActivityLogEntry struct {
	ID           int64          `json:"id"`
	IncidentID   uuid.UUID      `json:"incident_id"`
	ActivityType string         `json:"activity_type"`
	Description  string         `json:"description"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
}
