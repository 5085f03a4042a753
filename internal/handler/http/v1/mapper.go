package v1

import (
	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/rules"
	"github.com/crisisops/crisis_response_system/internal/service"
)

func toIncidentResponse(incident *models.Incident) *IncidentResponse {
	if incident == nil {
		return nil
	}
	return &IncidentResponse{
		ID:                 incident.ID,
		ReportID:           incident.ReportID,
		IncidentType:       string(incident.IncidentType),
		Severity:           string(incident.Severity),
		Title:              incident.Title,
		Description:        incident.Description,
		Latitude:           incident.Latitude,
		Longitude:          incident.Longitude,
		LifeThreatening:    incident.LifeThreatening,
		ConfidenceScore:    incident.ConfidenceScore,
		AffectedPopulation: incident.AffectedPopulation,
		Status:             string(incident.Status),
		CreatedAt:          incident.CreatedAt,
	}
}

func toClassifyResponse(result *service.ClassificationResult) ClassifyResponse {
	return ClassifyResponse{
		IsEmergency: result.IsEmergency,
		Incident:    toIncidentResponse(result.Incident),
		Detection: DetectionResponse{
			EmergencyType:        result.Detection.EmergencyType,
			Severity:             string(result.Detection.Severity),
			LifeThreateningScore: result.Detection.LifeThreateningScore,
			ConfidenceScore:      result.Detection.ConfidenceScore,
			Reasoning:            result.Detection.Reasoning,
		},
	}
}

func toPrioritizeResponse(results []rules.PriorityResult) PrioritizeResponse {
	priorities := make([]PriorityResponse, 0, len(results))
	for _, result := range results {
		priorities = append(priorities, PriorityResponse{
			IncidentID:    result.IncidentID,
			PriorityScore: result.PriorityScore,
			Ranking:       result.Ranking,
			Rationale:     result.Rationale,
		})
	}
	return PrioritizeResponse{
		Priorities:     priorities,
		TotalIncidents: len(priorities),
	}
}

func toDispatchResponse(result *service.DispatchResult) DispatchResponse {
	assignments := make([]AssignmentResponse, 0, len(result.Assignments))
	for _, assignment := range result.Assignments {
		assignments = append(assignments, AssignmentResponse{
			ResourceID:    assignment.ResourceID,
			IncidentID:    assignment.IncidentID,
			DistanceKm:    assignment.DistanceKm,
			EtaMinutes:    assignment.EtaMinutes,
			PriorityScore: assignment.PriorityScore,
		})
	}
	return DispatchResponse{
		IncidentID:    result.IncidentID,
		Assignments:   assignments,
		TotalAssigned: len(assignments),
		Message:       result.Message,
	}
}

func toAlertResponse(alert *models.Alert) AlertResponse {
	return AlertResponse{
		ID:              alert.ID,
		IncidentID:      alert.IncidentID,
		AlertType:       string(alert.AlertType),
		Message:         alert.Message,
		TargetLatitude:  alert.TargetLatitude,
		TargetLongitude: alert.TargetLongitude,
		RadiusKm:        alert.RadiusKm,
		BroadcastStatus: string(alert.BroadcastStatus),
		RecipientsCount: alert.RecipientsCount,
		SentAt:          alert.SentAt,
		CreatedAt:       alert.CreatedAt,
	}
}

func toBroadcastResponse(result *service.BroadcastResult) BroadcastResponse {
	return BroadcastResponse{
		Alert:          toAlertResponse(result.Alert),
		RecipientCount: result.RecipientCount,
		Message:        result.Message,
	}
}

func toIncidentListResponse(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, 0, len(incidents))
	for _, incident := range incidents {
		responses = append(responses, toIncidentResponse(incident))
	}
	return responses
}
