package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/crisisops/crisis_response_system/internal/apperrors"
	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/rules"
	"github.com/crisisops/crisis_response_system/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDispatcherService(t *testing.T) (*dispatcherService, *mocks.MockIncidentRepository, *mocks.MockResourceRepository, *mocks.MockDeploymentRepository, *mocks.MockActivityLogRepository) {
	ctrl := gomock.NewController(t)
	incidentsMock := mocks.NewMockIncidentRepository(ctrl)
	resourcesMock := mocks.NewMockResourceRepository(ctrl)
	deploymentsMock := mocks.NewMockDeploymentRepository(ctrl)
	activityMock := mocks.NewMockActivityLogRepository(ctrl)

	logger := newTestLogger()
	activity := NewActivityLogger(activityMock, nil, logger)

	service := NewDispatcherService(incidentsMock, resourcesMock, deploymentsMock, activity, logger)
	return service.(*dispatcherService), incidentsMock, resourcesMock, deploymentsMock, activityMock
}

func expectIncidentFetch(incidentsMock *mocks.MockIncidentRepository, ctx context.Context, incident *models.Incident) {
	incidentsMock.EXPECT().
		GetFromCache(ctx, incident.ID).
		Return(nil, nil).
		Times(1)
	incidentsMock.EXPECT().
		GetByID(ctx, incident.ID).
		Return(incident, nil).
		Times(1)
	incidentsMock.EXPECT().
		SetCache(ctx, incident).
		Return(nil).
		Times(1)
}

func TestDispatch_AssignsClosestResources(t *testing.T) {
	service, incidentsMock, resourcesMock, deploymentsMock, activityMock := newTestDispatcherService(t)
	ctx := context.Background()

	incident := &models.Incident{
		ID:           uuid.New(),
		IncidentType: models.IncidentFire,
		Severity:     models.SeverityHigh,
		Latitude:     12.97,
		Longitude:    77.59,
	}
	near := &models.Resource{
		ID:                uuid.New(),
		ResourceType:      models.ResourceFireTeam,
		CurrentLatitude:   12.97,
		CurrentLongitude:  77.59,
		Status:            models.ResourceStatusAvailable,
		AvailableCapacity: 4,
	}
	far := &models.Resource{
		ID:                uuid.New(),
		ResourceType:      models.ResourceAmbulance,
		CurrentLatitude:   13.97,
		CurrentLongitude:  77.59,
		Status:            models.ResourceStatusAvailable,
		AvailableCapacity: 4,
	}

	expectIncidentFetch(incidentsMock, ctx, incident)

	resourcesMock.EXPECT().
		ListAvailableByTypes(ctx, rules.MatchingResourceTypes(models.IncidentFire)).
		Return([]*models.Resource{far, near}, nil).
		Times(1)

	deploymentsMock.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil).
		Times(2)

	activityMock.EXPECT().
		Append(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	result, err := service.Dispatch(ctx, incident.ID)

	require.NoError(t, err)
	require.Len(t, result.Assignments, 2)
	assert.Equal(t, near.ID, result.Assignments[0].ResourceID)
	assert.Equal(t, 0.0, result.Assignments[0].DistanceKm)
	assert.Equal(t, 0, result.Assignments[0].EtaMinutes)
	assert.Equal(t, far.ID, result.Assignments[1].ResourceID)
	assert.Greater(t, result.Assignments[0].PriorityScore, result.Assignments[1].PriorityScore)
}

func TestDispatch_NoAvailableResources(t *testing.T) {
	service, incidentsMock, resourcesMock, _, _ := newTestDispatcherService(t)
	ctx := context.Background()

	incident := &models.Incident{
		ID:           uuid.New(),
		IncidentType: models.IncidentFlood,
		Severity:     models.SeverityCritical,
	}

	expectIncidentFetch(incidentsMock, ctx, incident)

	resourcesMock.EXPECT().
		ListAvailableByTypes(ctx, gomock.Any()).
		Return([]*models.Resource{}, nil).
		Times(1)

	result, err := service.Dispatch(ctx, incident.ID)

	require.NoError(t, err)
	assert.Empty(t, result.Assignments)
	assert.Equal(t, "No available resources matching incident type", result.Message)
}

func TestDispatch_IncidentNotFound(t *testing.T) {
	service, incidentsMock, _, _, _ := newTestDispatcherService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	incidentsMock.EXPECT().
		GetFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)
	incidentsMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, fmt.Errorf("repository: %w", apperrors.ErrNotFound)).
		Times(1)

	result, err := service.Dispatch(ctx, incidentID)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, result)
}

func TestDispatch_DeploymentFailureSkipsAssignment(t *testing.T) {
	service, incidentsMock, resourcesMock, deploymentsMock, activityMock := newTestDispatcherService(t)
	ctx := context.Background()

	incident := &models.Incident{
		ID:           uuid.New(),
		IncidentType: models.IncidentMedicalEmergency,
		Severity:     models.SeverityHigh,
		Latitude:     28.61,
		Longitude:    77.2,
	}
	resource := &models.Resource{
		ID:                uuid.New(),
		ResourceType:      models.ResourceAmbulance,
		CurrentLatitude:   28.61,
		CurrentLongitude:  77.2,
		AvailableCapacity: 2,
	}

	expectIncidentFetch(incidentsMock, ctx, incident)

	resourcesMock.EXPECT().
		ListAvailableByTypes(ctx, gomock.Any()).
		Return([]*models.Resource{resource}, nil).
		Times(1)

	deploymentsMock.EXPECT().
		Create(ctx, gomock.Any()).
		Return(assert.AnError).
		Times(1)

	activityMock.EXPECT().
		Append(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	result, err := service.Dispatch(ctx, incident.ID)

	require.NoError(t, err)
	assert.Empty(t, result.Assignments)
}
