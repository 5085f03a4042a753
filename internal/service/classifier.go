package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/crisisops/crisis_response_system/internal/apperrors"
	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/rules"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ClassificationResult bundles the detection outcome with the persisted
// incident, when the report is an emergency.
type ClassificationResult struct {
	IsEmergency bool
	Incident    *models.Incident
	Detection   rules.DetectionResult
}

// ClassifierService turns citizen reports into typed emergency incidents.
type ClassifierService interface {
	Classify(ctx context.Context, reportID uuid.UUID) (*ClassificationResult, error)
}

type classifierService struct {
	reports   ReportRepository
	incidents IncidentRepository
	activity  *ActivityLogger
	logger    *logrus.Logger
}

func NewClassifierService(reports ReportRepository, incidents IncidentRepository, activity *ActivityLogger, logger *logrus.Logger) ClassifierService {
	return &classifierService{
		reports:   reports,
		incidents: incidents,
		activity:  activity,
		logger:    logger,
	}
}

// Classify runs keyword detection over the report text and, when it finds
// an emergency, persists an incident keyed by the report id. Re-running on
// the same report never creates a second incident.
func (s *classifierService) Classify(ctx context.Context, reportID uuid.UUID) (*ClassificationResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "classifier",
		"method":    "Classify",
		"report_id": reportID,
	})
	log.Info("Classifying report")

	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch report")
		return nil, fmt.Errorf("service: could not fetch report: %w", err)
	}

	detection := rules.DetectEmergency(report.Title, report.Description)
	if !detection.IsEmergency {
		log.WithField("emergency_type", detection.EmergencyType).Info("Report is not an emergency")
		return &ClassificationResult{IsEmergency: false, Detection: detection}, nil
	}

	incident := &models.Incident{
		ReportID:        report.ID,
		IncidentType:    detection.IncidentType,
		Severity:        detection.Severity,
		Title:           report.Title,
		Description:     report.Description,
		Latitude:        report.Latitude,
		Longitude:       report.Longitude,
		LifeThreatening: detection.LifeThreatening,
		ConfidenceScore: detection.ConfidenceScore,
		Status:          models.IncidentStatusActive,
	}

	inserted, err := s.incidents.Insert(ctx, incident)
	if err != nil {
		log.WithError(err).Error("Failed to insert incident")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}
	if !inserted {
		// The report has already been classified; return the existing
		// incident instead of creating a duplicate.
		existing, err := s.incidents.GetByReportID(ctx, report.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				log.Error("Incident insert conflicted but no incident found for report")
			}
			return nil, fmt.Errorf("service: could not load existing incident: %w", err)
		}
		incident = existing
		log.WithField("incident_id", incident.ID).Info("Report already classified, returning existing incident")
	} else {
		log.WithFields(logrus.Fields{
			"incident_id":   incident.ID,
			"incident_type": incident.IncidentType,
			"severity":      incident.Severity,
		}).Info("Incident created")
	}

	if err := s.incidents.SetCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	return &ClassificationResult{
		IsEmergency: true,
		Incident:    incident,
		Detection:   detection,
	}, nil
}
