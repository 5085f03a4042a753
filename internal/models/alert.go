package models

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertEvacuation AlertType = "evacuation"
	AlertShelter    AlertType = "shelter"
	AlertWarning    AlertType = "warning"
)

type BroadcastStatus string

const (
	BroadcastStatusPending BroadcastStatus = "pending"
	BroadcastStatusSent    BroadcastStatus = "sent"
)

// Alert is a geofenced broadcast for one incident. Each broadcast
// invocation creates a new alert record; sent alerts are never mutated
// again.
type Alert struct {
	ID              uuid.UUID       `json:"id"`
	IncidentID      uuid.UUID       `json:"incident_id"`
	AlertType       AlertType       `json:"alert_type"`
	Message         string          `json:"message"`
	TargetLatitude  float64         `json:"target_latitude"`
	TargetLongitude float64         `json:"target_longitude"`
	RadiusKm        float64         `json:"radius_km"`
	BroadcastStatus BroadcastStatus `json:"broadcast_status"`
	RecipientsCount int             `json:"recipients_count"`
	SentAt          *time.Time      `json:"sent_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
