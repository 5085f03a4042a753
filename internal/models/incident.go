package models

import (
	"time"

	"github.com/google/uuid"
)

type IncidentType string

const (
	IncidentFlood            IncidentType = "flood"
	IncidentCyclone          IncidentType = "cyclone"
	IncidentFire             IncidentType = "fire"
	IncidentEarthquake       IncidentType = "earthquake"
	IncidentMedicalEmergency IncidentType = "medical_emergency"
	IncidentAccident         IncidentType = "accident"
	IncidentOther            IncidentType = "other"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

type IncidentStatus string

const (
	IncidentStatusActive    IncidentStatus = "active"
	IncidentStatusResolved  IncidentStatus = "resolved"
	IncidentStatusCancelled IncidentStatus = "cancelled"
)

// Incident is an emergency derived from a citizen report by the classifier.
// Exactly one incident exists per report.
type Incident struct {
	ID                 uuid.UUID      `json:"id"`
	ReportID           uuid.UUID      `json:"report_id"`
	IncidentType       IncidentType   `json:"incident_type"`
	Severity           Severity       `json:"severity"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Latitude           float64        `json:"latitude"`
	Longitude          float64        `json:"longitude"`
	LifeThreatening    bool           `json:"life_threatening"`
	ConfidenceScore    float64        `json:"confidence_score"`
	AffectedPopulation int            `json:"affected_population"`
	Status             IncidentStatus `json:"status"`
	CreatedAt          time.Time      `json:"created_at"`
}
