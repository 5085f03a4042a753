package service

import (
	"context"
	"fmt"
	"time"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/rules"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BroadcastInput carries the parameters of one alert broadcast.
type BroadcastInput struct {
	IncidentID uuid.UUID
	AlertType  models.AlertType
	Message    string
	RadiusKm   float64
}

// BroadcastResult is the outcome of one broadcast.
type BroadcastResult struct {
	Alert          *models.Alert
	RecipientCount int
	Message        string
}

// BroadcasterService renders and records geofenced alerts. Recipients are
// estimated, not notified: actual push delivery lives outside the core.
type BroadcasterService interface {
	Broadcast(ctx context.Context, input BroadcastInput) (*BroadcastResult, error)
}

type broadcasterService struct {
	incidents IncidentRepository
	reports   ReportRepository
	alerts    AlertRepository
	activity  *ActivityLogger
	logger    *logrus.Logger
	now       func() time.Time
}

func NewBroadcasterService(incidents IncidentRepository, reports ReportRepository, alerts AlertRepository, activity *ActivityLogger, logger *logrus.Logger) BroadcasterService {
	return &broadcasterService{
		incidents: incidents,
		reports:   reports,
		alerts:    alerts,
		activity:  activity,
		logger:    logger,
		now:       time.Now,
	}
}

// Broadcast creates a pending alert for the incident, estimates recipients
// inside the radius and marks the alert sent. Each invocation creates a new
// alert record.
//
// The recipient count is a bounding-box approximation (radius/111 degrees
// per side), kept deliberately instead of true circle geometry.
func (s *broadcasterService) Broadcast(ctx context.Context, input BroadcastInput) (*BroadcastResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "broadcaster",
		"method":      "Broadcast",
		"incident_id": input.IncidentID,
		"alert_type":  input.AlertType,
	})
	log.Info("Broadcasting alert for incident")

	incident, err := fetchIncident(ctx, s.incidents, input.IncidentID, log)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch incident")
		return nil, fmt.Errorf("service: could not fetch incident: %w", err)
	}

	message := input.Message
	if message == "" {
		message = rules.AlertMessage(incident.IncidentType, input.AlertType)
	}

	alert := &models.Alert{
		IncidentID:      incident.ID,
		AlertType:       input.AlertType,
		Message:         message,
		TargetLatitude:  incident.Latitude,
		TargetLongitude: incident.Longitude,
		RadiusKm:        input.RadiusKm,
		BroadcastStatus: models.BroadcastStatusPending,
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert")
		return nil, fmt.Errorf("service: could not create alert: %w", err)
	}

	delta := rules.BoundingBoxDelta(input.RadiusKm)
	recipients, err := s.reports.CountActiveInArea(ctx,
		incident.Latitude-delta, incident.Latitude+delta,
		incident.Longitude-delta, incident.Longitude+delta,
	)
	if err != nil {
		log.WithError(err).Error("Failed to count recipients in area")
		return nil, fmt.Errorf("service: could not estimate recipients: %w", err)
	}

	sentAt := s.now()
	if err := s.alerts.MarkSent(ctx, alert.ID, recipients, sentAt); err != nil {
		log.WithError(err).Error("Failed to mark alert as sent")
		return nil, fmt.Errorf("service: could not mark alert as sent: %w", err)
	}
	alert.BroadcastStatus = models.BroadcastStatusSent
	alert.RecipientsCount = recipients
	alert.SentAt = &sentAt

	s.activity.Record(ctx, &models.ActivityLogEntry{
		IncidentID:   incident.ID,
		ActivityType: models.ActivityAlertSent,
		Description:  fmt.Sprintf("Emergency alert broadcast to ~%d citizens in %gkm radius", recipients, input.RadiusKm),
		Metadata: map[string]any{
			"alert_type": input.AlertType,
			"recipients": recipients,
			"radius_km":  input.RadiusKm,
		},
	})

	log.WithField("recipients", recipients).Info("Alert broadcast")
	return &BroadcastResult{
		Alert:          alert,
		RecipientCount: recipients,
		Message:        fmt.Sprintf("Alert broadcast to ~%d citizens", recipients),
	}, nil
}
