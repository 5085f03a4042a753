package v1

import (
	"time"

	"github.com/google/uuid"
)

// Field names follow the public crisis API contract (camelCase).

// ClassifyRequest asks for one report to be classified.
// @Description Request to classify a citizen report
type ClassifyRequest struct {
	ReportID string `json:"reportId" validate:"required,uuid"`
}

// DetectionResponse describes the rule-based detection outcome.
// @Description Rule-based emergency detection outcome
type DetectionResponse struct {
	EmergencyType        string  `json:"emergencyType"`
	Severity             string  `json:"severity"`
	LifeThreateningScore float64 `json:"lifeThreateningScore"`
	ConfidenceScore      float64 `json:"confidenceScore"`
	Reasoning            string  `json:"reasoning"`
}

// IncidentResponse is the public shape of an emergency incident.
// @Description Emergency incident
type IncidentResponse struct {
	ID                 uuid.UUID `json:"id"`
	ReportID           uuid.UUID `json:"reportId"`
	IncidentType       string    `json:"incidentType"`
	Severity           string    `json:"severity"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	LifeThreatening    bool      `json:"lifeThreatening"`
	ConfidenceScore    float64   `json:"confidenceScore"`
	AffectedPopulation int       `json:"affectedPopulation"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ClassifyResponse is the classification result.
// @Description Classification result
type ClassifyResponse struct {
	IsEmergency bool              `json:"isEmergency"`
	Incident    *IncidentResponse `json:"incident,omitempty"`
	Detection   DetectionResponse `json:"detection"`
}

// PriorityResponse is one row of a prioritization run.
// @Description One ranked incident
type PriorityResponse struct {
	IncidentID    uuid.UUID `json:"incidentId"`
	PriorityScore float64   `json:"priorityScore"`
	Ranking       int       `json:"ranking"`
	Rationale     string    `json:"rationale"`
}

// PrioritizeResponse is the full ranking of active incidents.
// @Description Ranking of all active incidents
type PrioritizeResponse struct {
	Priorities     []PriorityResponse `json:"priorities"`
	TotalIncidents int                `json:"totalIncidents"`
}

// DispatchRequest asks for resources to be dispatched to an incident.
// @Description Request to dispatch resources to an incident
type DispatchRequest struct {
	IncidentID string `json:"incidentId" validate:"required,uuid"`
}

// AssignmentResponse is one proposed resource assignment.
// @Description Proposed resource assignment
type AssignmentResponse struct {
	ResourceID    uuid.UUID `json:"resourceId"`
	IncidentID    uuid.UUID `json:"incidentId"`
	DistanceKm    float64   `json:"distanceKm"`
	EtaMinutes    int       `json:"etaMinutes"`
	PriorityScore float64   `json:"priorityScore"`
}

// DispatchResponse is the outcome of one dispatch run.
// @Description Dispatch outcome
type DispatchResponse struct {
	IncidentID    uuid.UUID            `json:"incidentId"`
	Assignments   []AssignmentResponse `json:"assignments"`
	TotalAssigned int                  `json:"totalAssigned"`
	Message       string               `json:"message,omitempty"`
}

// BroadcastRequest asks for a geofenced alert broadcast. RadiusKm is a
// pointer so an explicit 0 can be told apart from an omitted field.
// @Description Request to broadcast a geofenced alert
type BroadcastRequest struct {
	IncidentID string   `json:"incidentId" validate:"required,uuid"`
	AlertType  string   `json:"alertType" validate:"required,oneof=evacuation shelter warning"`
	Message    string   `json:"message,omitempty"`
	RadiusKm   *float64 `json:"radiusKm,omitempty" validate:"omitempty,gte=0"`
}

// AlertResponse is the public shape of a broadcast alert.
// @Description Broadcast alert
type AlertResponse struct {
	ID              uuid.UUID  `json:"id"`
	IncidentID      uuid.UUID  `json:"incidentId"`
	AlertType       string     `json:"alertType"`
	Message         string     `json:"message"`
	TargetLatitude  float64    `json:"targetLatitude"`
	TargetLongitude float64    `json:"targetLongitude"`
	RadiusKm        float64    `json:"radiusKm"`
	BroadcastStatus string     `json:"broadcastStatus"`
	RecipientsCount int        `json:"recipientsCount"`
	SentAt          *time.Time `json:"sentAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// BroadcastResponse is the outcome of one broadcast.
// @Description Broadcast outcome
type BroadcastResponse struct {
	Alert          AlertResponse `json:"alert"`
	RecipientCount int           `json:"recipientCount"`
	Message        string        `json:"message"`
}
