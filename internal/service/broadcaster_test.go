package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/crisisops/crisis_response_system/internal/apperrors"
	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBroadcasterService(t *testing.T) (*broadcasterService, *mocks.MockIncidentRepository, *mocks.MockReportRepository, *mocks.MockAlertRepository, *mocks.MockActivityLogRepository) {
	ctrl := gomock.NewController(t)
	incidentsMock := mocks.NewMockIncidentRepository(ctrl)
	reportsMock := mocks.NewMockReportRepository(ctrl)
	alertsMock := mocks.NewMockAlertRepository(ctrl)
	activityMock := mocks.NewMockActivityLogRepository(ctrl)

	logger := newTestLogger()
	activity := NewActivityLogger(activityMock, nil, logger)

	service := NewBroadcasterService(incidentsMock, reportsMock, alertsMock, activity, logger)
	return service.(*broadcasterService), incidentsMock, reportsMock, alertsMock, activityMock
}

func TestBroadcast_SendsAlertWithTemplateMessage(t *testing.T) {
	service, incidentsMock, reportsMock, alertsMock, activityMock := newTestBroadcasterService(t)
	ctx := context.Background()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	incident := &models.Incident{
		ID:           uuid.New(),
		IncidentType: models.IncidentFlood,
		Severity:     models.SeverityCritical,
		Latitude:     12.97,
		Longitude:    77.59,
	}

	incidentsMock.EXPECT().
		GetFromCache(ctx, incident.ID).
		Return(incident, nil).
		Times(1)

	alertsMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.Alert) error {
			assert.Equal(t, "FLOOD WARNING: Please evacuate to higher ground immediately.", alert.Message)
			assert.Equal(t, models.BroadcastStatusPending, alert.BroadcastStatus)
			assert.Equal(t, incident.Latitude, alert.TargetLatitude)
			alert.ID = uuid.New()
			return nil
		}).
		Times(1)

	// 5 km radius means a bounding box of 5/111 degrees per side.
	delta := 5.0 / 111
	reportsMock.EXPECT().
		CountActiveInArea(ctx,
			incident.Latitude-delta, incident.Latitude+delta,
			incident.Longitude-delta, incident.Longitude+delta,
		).
		Return(42, nil).
		Times(1)

	alertsMock.EXPECT().
		MarkSent(ctx, gomock.Any(), 42, now).
		Return(nil).
		Times(1)

	activityMock.EXPECT().
		Append(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	result, err := service.Broadcast(ctx, BroadcastInput{
		IncidentID: incident.ID,
		AlertType:  models.AlertEvacuation,
		RadiusKm:   5,
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result.RecipientCount)
	assert.Equal(t, models.BroadcastStatusSent, result.Alert.BroadcastStatus)
	assert.Equal(t, 42, result.Alert.RecipientsCount)
	require.NotNil(t, result.Alert.SentAt)
	assert.Equal(t, now, *result.Alert.SentAt)
	assert.Equal(t, "Alert broadcast to ~42 citizens", result.Message)
}

func TestBroadcast_CustomMessageIsKept(t *testing.T) {
	service, incidentsMock, reportsMock, alertsMock, activityMock := newTestBroadcasterService(t)
	ctx := context.Background()

	incident := &models.Incident{
		ID:           uuid.New(),
		IncidentType: models.IncidentFire,
		Latitude:     12.97,
		Longitude:    77.59,
	}

	incidentsMock.EXPECT().
		GetFromCache(ctx, incident.ID).
		Return(incident, nil).
		Times(1)

	alertsMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.Alert) error {
			assert.Equal(t, "Stay indoors until further notice", alert.Message)
			return nil
		}).
		Times(1)

	reportsMock.EXPECT().
		CountActiveInArea(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, nil).
		Times(1)

	alertsMock.EXPECT().
		MarkSent(ctx, gomock.Any(), 0, gomock.Any()).
		Return(nil).
		Times(1)

	activityMock.EXPECT().
		Append(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	result, err := service.Broadcast(ctx, BroadcastInput{
		IncidentID: incident.ID,
		AlertType:  models.AlertWarning,
		Message:    "Stay indoors until further notice",
		RadiusKm:   3,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.RecipientCount)
}

func TestBroadcast_ZeroRadiusCollapsesArea(t *testing.T) {
	service, incidentsMock, reportsMock, alertsMock, activityMock := newTestBroadcasterService(t)
	ctx := context.Background()

	incident := &models.Incident{
		ID:           uuid.New(),
		IncidentType: models.IncidentCyclone,
		Latitude:     19.07,
		Longitude:    72.87,
	}

	incidentsMock.EXPECT().
		GetFromCache(ctx, incident.ID).
		Return(incident, nil).
		Times(1)

	alertsMock.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Radius 0 degenerates to a point query, not an error.
	reportsMock.EXPECT().
		CountActiveInArea(ctx,
			incident.Latitude, incident.Latitude,
			incident.Longitude, incident.Longitude,
		).
		Return(0, nil).
		Times(1)

	alertsMock.EXPECT().
		MarkSent(ctx, gomock.Any(), 0, gomock.Any()).
		Return(nil).
		Times(1)

	activityMock.EXPECT().
		Append(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	result, err := service.Broadcast(ctx, BroadcastInput{
		IncidentID: incident.ID,
		AlertType:  models.AlertShelter,
		RadiusKm:   0,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.RecipientCount)
}

func TestBroadcast_IncidentNotFound(t *testing.T) {
	service, incidentsMock, _, _, _ := newTestBroadcasterService(t)
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

	result, err := service.Broadcast(ctx, BroadcastInput{
		IncidentID: incidentID,
		AlertType:  models.AlertWarning,
		RadiusKm:   5,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, result)
}
