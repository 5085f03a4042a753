package models

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses owned by the citizen-reporting collaborator. Only
// "reported" counts as active for alert recipient estimation.
const (
	ReportStatusReported = "reported"
	ReportStatusResolved = "resolved"
)

// Report is a citizen problem report. The reporting app owns this entity;
// the crisis core only reads it.
type Report struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Pincode     string    `json:"pincode"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
