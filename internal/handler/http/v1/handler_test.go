package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/crisisops/crisis_response_system/internal/apperrors"
	"github.com/crisisops/crisis_response_system/internal/config"
	"github.com/crisisops/crisis_response_system/internal/handler/http/v1/mocks"
	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/rules"
	"github.com/crisisops/crisis_response_system/internal/service"
)

type testMocks struct {
	classifier  *mocks.MockClassifierService
	ranker      *mocks.MockRankerService
	dispatcher  *mocks.MockDispatcherService
	broadcaster *mocks.MockBroadcasterService
}

// newTestHandler wires the handler with mocked services and a test router.
func newTestHandler(t *testing.T) (testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	tm := testMocks{
		classifier:  mocks.NewMockClassifierService(ctrl),
		ranker:      mocks.NewMockRankerService(ctrl),
		dispatcher:  mocks.NewMockDispatcherService(ctrl),
		broadcaster: mocks.NewMockBroadcasterService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys:              []string{"test-api-key"},
		DefaultAlertRadiusKm: 5,
	}

	handler := NewHandler(tm.classifier, tm.ranker, tm.dispatcher, tm.broadcaster, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return tm, router
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", "test-api-key")
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestClassifyReport_Success(t *testing.T) {
	tm, router := newTestHandler(t)
	reportID := uuid.New()
	incidentID := uuid.New()

	result := &service.ClassificationResult{
		IsEmergency: true,
		Incident: &models.Incident{
			ID:           incidentID,
			ReportID:     reportID,
			IncidentType: models.IncidentFlood,
			Severity:     models.SeverityCritical,
			Status:       models.IncidentStatusActive,
		},
		Detection: rules.DetectionResult{
			IsEmergency:     true,
			EmergencyType:   "flood",
			Severity:        models.SeverityCritical,
			ConfidenceScore: 0.93,
		},
	}

	tm.classifier.EXPECT().
		Classify(gomock.Any(), reportID).
		Return(result, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/classify",
		jsonBody(t, ClassifyRequest{ReportID: reportID.String()}))

	require.Equal(t, http.StatusOK, w.Code)

	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsEmergency)
	require.NotNil(t, resp.Incident)
	assert.Equal(t, incidentID, resp.Incident.ID)
	assert.Equal(t, "flood", resp.Detection.EmergencyType)
}

func TestClassifyReport_InvalidBody(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/classify",
		bytes.NewReader([]byte("{not json")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyReport_MissingReportID(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/classify",
		jsonBody(t, map[string]string{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyReport_ReportNotFound(t *testing.T) {
	tm, router := newTestHandler(t)
	reportID := uuid.New()

	tm.classifier.EXPECT().
		Classify(gomock.Any(), reportID).
		Return(nil, fmt.Errorf("service: %w", apperrors.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/classify",
		jsonBody(t, ClassifyRequest{ReportID: reportID.String()}))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "report not found")
}

func TestClassifyReport_MethodNotAllowed(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/crisis/classify", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestClassifyReport_Unauthorized(t *testing.T) {
	_, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/crisis/classify", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPrioritizeIncidents_Success(t *testing.T) {
	tm, router := newTestHandler(t)
	first := uuid.New()
	second := uuid.New()

	tm.ranker.EXPECT().
		RankActive(gomock.Any()).
		Return([]rules.PriorityResult{
			{IncidentID: first, PriorityScore: 85, Ranking: 1, Rationale: "Score: critical (500 affected, life-threatening)"},
			{IncidentID: second, PriorityScore: 30, Ranking: 2, Rationale: "Score: medium (0 affected, non-threat)"},
		}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/prioritize", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp PrioritizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalIncidents)
	require.Len(t, resp.Priorities, 2)
	assert.Equal(t, first, resp.Priorities[0].IncidentID)
	assert.Equal(t, 1, resp.Priorities[0].Ranking)
}

func TestPrioritizeIncidents_EmptySet(t *testing.T) {
	tm, router := newTestHandler(t)

	tm.ranker.EXPECT().
		RankActive(gomock.Any()).
		Return([]rules.PriorityResult{}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/prioritize", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp PrioritizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.TotalIncidents)
	assert.NotNil(t, resp.Priorities)
	assert.Empty(t, resp.Priorities)
}

func TestPrioritizeIncidents_ServiceError(t *testing.T) {
	tm, router := newTestHandler(t)

	tm.ranker.EXPECT().
		RankActive(gomock.Any()).
		Return(nil, assert.AnError).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/prioritize", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDispatchResources_Success(t *testing.T) {
	tm, router := newTestHandler(t)
	incidentID := uuid.New()
	resourceID := uuid.New()

	tm.dispatcher.EXPECT().
		Dispatch(gomock.Any(), incidentID).
		Return(&service.DispatchResult{
			IncidentID: incidentID,
			Assignments: []rules.Assignment{
				{ResourceID: resourceID, IncidentID: incidentID, DistanceKm: 2.5, EtaMinutes: 5, PriorityScore: 31.95},
			},
		}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/dispatch",
		jsonBody(t, DispatchRequest{IncidentID: incidentID.String()}))

	require.Equal(t, http.StatusOK, w.Code)

	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incidentID, resp.IncidentID)
	assert.Equal(t, 1, resp.TotalAssigned)
	require.Len(t, resp.Assignments, 1)
	assert.Equal(t, resourceID, resp.Assignments[0].ResourceID)
	assert.Empty(t, resp.Message)
}

func TestDispatchResources_NoResources(t *testing.T) {
	tm, router := newTestHandler(t)
	incidentID := uuid.New()

	tm.dispatcher.EXPECT().
		Dispatch(gomock.Any(), incidentID).
		Return(&service.DispatchResult{
			IncidentID:  incidentID,
			Assignments: []rules.Assignment{},
			Message:     "No available resources matching incident type",
		}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/dispatch",
		jsonBody(t, DispatchRequest{IncidentID: incidentID.String()}))

	require.Equal(t, http.StatusOK, w.Code)

	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.TotalAssigned)
	assert.Equal(t, "No available resources matching incident type", resp.Message)
}

func TestDispatchResources_IncidentNotFound(t *testing.T) {
	tm, router := newTestHandler(t)
	incidentID := uuid.New()

	tm.dispatcher.EXPECT().
		Dispatch(gomock.Any(), incidentID).
		Return(nil, fmt.Errorf("service: %w", apperrors.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/dispatch",
		jsonBody(t, DispatchRequest{IncidentID: incidentID.String()}))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestDispatchResources_InvalidUUID(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/dispatch",
		jsonBody(t, DispatchRequest{IncidentID: "not-a-uuid"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBroadcastAlert_DefaultRadius(t *testing.T) {
	tm, router := newTestHandler(t)
	incidentID := uuid.New()
	sentAt := time.Now().UTC()

	tm.broadcaster.EXPECT().
		Broadcast(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input service.BroadcastInput) (*service.BroadcastResult, error) {
			// Omitted radius falls back to the configured default.
			assert.Equal(t, 5.0, input.RadiusKm)
			assert.Equal(t, models.AlertEvacuation, input.AlertType)
			return &service.BroadcastResult{
				Alert: &models.Alert{
					ID:              uuid.New(),
					IncidentID:      incidentID,
					AlertType:       input.AlertType,
					Message:         "FLOOD WARNING: Please evacuate to higher ground immediately.",
					RadiusKm:        input.RadiusKm,
					BroadcastStatus: models.BroadcastStatusSent,
					RecipientsCount: 17,
					SentAt:          &sentAt,
				},
				RecipientCount: 17,
				Message:        "Alert broadcast to ~17 citizens",
			}, nil
		}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/alerts/broadcast",
		jsonBody(t, BroadcastRequest{IncidentID: incidentID.String(), AlertType: "evacuation"}))

	require.Equal(t, http.StatusOK, w.Code)

	var resp BroadcastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 17, resp.RecipientCount)
	assert.Equal(t, "sent", resp.Alert.BroadcastStatus)
}

func TestBroadcastAlert_ExplicitZeroRadius(t *testing.T) {
	tm, router := newTestHandler(t)
	incidentID := uuid.New()
	zero := 0.0

	tm.broadcaster.EXPECT().
		Broadcast(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input service.BroadcastInput) (*service.BroadcastResult, error) {
			assert.Equal(t, 0.0, input.RadiusKm)
			return &service.BroadcastResult{
				Alert:          &models.Alert{IncidentID: incidentID, BroadcastStatus: models.BroadcastStatusSent},
				RecipientCount: 0,
				Message:        "Alert broadcast to ~0 citizens",
			}, nil
		}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/alerts/broadcast",
		jsonBody(t, BroadcastRequest{IncidentID: incidentID.String(), AlertType: "warning", RadiusKm: &zero}))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestBroadcastAlert_InvalidAlertType(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/alerts/broadcast",
		jsonBody(t, BroadcastRequest{IncidentID: uuid.NewString(), AlertType: "siren"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBroadcastAlert_IncidentNotFound(t *testing.T) {
	tm, router := newTestHandler(t)
	incidentID := uuid.New()

	tm.broadcaster.EXPECT().
		Broadcast(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", apperrors.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/crisis/alerts/broadcast",
		jsonBody(t, BroadcastRequest{IncidentID: incidentID.String(), AlertType: "shelter"}))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestListActiveIncidents_Success(t *testing.T) {
	tm, router := newTestHandler(t)
	incidentID := uuid.New()

	tm.ranker.EXPECT().
		ListActive(gomock.Any()).
		Return([]*models.Incident{
			{ID: incidentID, IncidentType: models.IncidentFire, Severity: models.SeverityHigh, Status: models.IncidentStatusActive},
		}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/crisis/incidents", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []*IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, incidentID, resp[0].ID)
	assert.Equal(t, "fire", resp[0].IncidentType)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
