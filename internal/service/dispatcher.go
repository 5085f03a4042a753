package service

import (
	"context"
	"fmt"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/rules"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DispatchResult is the outcome of one dispatch run.
type DispatchResult struct {
	IncidentID  uuid.UUID
	Assignments []rules.Assignment
	Message     string
}

// DispatcherService matches available resources to one incident and commits
// the best candidates as pending deployments.
//
// No cross-incident locking is performed: concurrent dispatches may
// recommend the same resource to several incidents, and repeated dispatches
// for one incident create fresh deployment batches.
type DispatcherService interface {
	Dispatch(ctx context.Context, incidentID uuid.UUID) (*DispatchResult, error)
}

type dispatcherService struct {
	incidents   IncidentRepository
	resources   ResourceRepository
	deployments DeploymentRepository
	activity    *ActivityLogger
	logger      *logrus.Logger
}

func NewDispatcherService(incidents IncidentRepository, resources ResourceRepository, deployments DeploymentRepository, activity *ActivityLogger, logger *logrus.Logger) DispatcherService {
	return &dispatcherService{
		incidents:   incidents,
		resources:   resources,
		deployments: deployments,
		activity:    activity,
		logger:      logger,
	}
}

// Dispatch fetches the incident, scores all eligible available resources
// and persists up to five deployments. A deployment insert failure is
// logged and skipped; the result reports only persisted assignments.
func (s *dispatcherService) Dispatch(ctx context.Context, incidentID uuid.UUID) (*DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatcher",
		"method":      "Dispatch",
		"incident_id": incidentID,
	})
	log.Info("Dispatching resources for incident")

	incident, err := fetchIncident(ctx, s.incidents, incidentID, log)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch incident")
		return nil, fmt.Errorf("service: could not fetch incident: %w", err)
	}

	matchingTypes := rules.MatchingResourceTypes(incident.IncidentType)
	candidates, err := s.resources.ListAvailableByTypes(ctx, matchingTypes)
	if err != nil {
		log.WithError(err).Error("Failed to list available resources")
		return nil, fmt.Errorf("service: could not list resources: %w", err)
	}

	if len(candidates) == 0 {
		log.Info("No available resources matching incident type")
		return &DispatchResult{
			IncidentID:  incidentID,
			Assignments: []rules.Assignment{},
			Message:     "No available resources matching incident type",
		}, nil
	}

	assignments := rules.BuildAssignments(incident, candidates)

	persisted := make([]rules.Assignment, 0, len(assignments))
	for _, assignment := range assignments {
		deployment := &models.Deployment{
			IncidentID:       assignment.IncidentID,
			ResourceID:       assignment.ResourceID,
			DistanceKm:       assignment.DistanceKm,
			EtaMinutes:       assignment.EtaMinutes,
			PriorityScore:    assignment.PriorityScore,
			DeploymentStatus: models.DeploymentStatusPending,
		}
		if err := s.deployments.Create(ctx, deployment); err != nil {
			log.WithError(err).WithField("resource_id", assignment.ResourceID).Warn("Failed to create deployment, skipping")
			continue
		}
		persisted = append(persisted, assignment)
	}

	s.activity.Record(ctx, &models.ActivityLogEntry{
		IncidentID:   incidentID,
		ActivityType: models.ActivityResourceAssigned,
		Description:  fmt.Sprintf("%d resources assigned to incident", len(persisted)),
		Metadata: map[string]any{
			"assignments": persisted,
		},
	})

	log.WithField("total_assigned", len(persisted)).Info("Resources dispatched")
	return &DispatchResult{
		IncidentID:  incidentID,
		Assignments: persisted,
	}, nil
}
