package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/crisisops/crisis_response_system/internal/apperrors"
	"github.com/crisisops/crisis_response_system/internal/config"
	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/service"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/crisisops/crisis_response_system/internal/service ClassifierService,RankerService,DispatcherService,BroadcasterService

type Handler struct {
	classifier  service.ClassifierService
	ranker      service.RankerService
	dispatcher  service.DispatcherService
	broadcaster service.BroadcasterService
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(
	classifier service.ClassifierService,
	ranker service.RankerService,
	dispatcher service.DispatcherService,
	broadcaster service.BroadcasterService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		classifier:  classifier,
		ranker:      ranker,
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// @Summary Classify a citizen report
// @Description Run keyword-based emergency detection over a report and create an incident if one is found. Requires API key.
// @Tags Crisis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ClassifyRequest true "Classification request"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crisis/classify [post]
func (h *Handler) classifyReport(c *gin.Context) {
	var input ClassifyRequest
	log := h.logger.WithField("method", "classifyReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reportID, err := uuid.Parse(input.ReportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}

	result, err := h.classifier.Classify(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.WithError(err).Warn("Report not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		log.WithError(err).Error("Failed to classify report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toClassifyResponse(result))
}

// @Summary Rank all active incidents
// @Description Recompute priority scores for every active incident and return the full ranking. Requires API key.
// @Tags Crisis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} PrioritizeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crisis/prioritize [post]
func (h *Handler) prioritizeIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "prioritizeIncidents")

	results, err := h.ranker.RankActive(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to rank incidents")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toPrioritizeResponse(results))
}

// @Summary Dispatch resources to an incident
// @Description Score available resources against an incident and commit the best candidates as pending deployments. Requires API key.
// @Tags Crisis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body DispatchRequest true "Dispatch request"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crisis/dispatch [post]
func (h *Handler) dispatchResources(c *gin.Context) {
	var input DispatchRequest
	log := h.logger.WithField("method", "dispatchResources")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incidentID, err := uuid.Parse(input.IncidentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}

	result, err := h.dispatcher.Dispatch(c.Request.Context(), incidentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.WithError(err).Warn("Incident not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to dispatch resources")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toDispatchResponse(result))
}

// @Summary Broadcast a geofenced alert
// @Description Create an alert for an incident, estimate recipients inside the radius and mark it sent. Requires API key.
// @Tags Crisis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body BroadcastRequest true "Broadcast request"
// @Success 200 {object} BroadcastResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crisis/alerts/broadcast [post]
func (h *Handler) broadcastAlert(c *gin.Context) {
	var input BroadcastRequest
	log := h.logger.WithField("method", "broadcastAlert")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incidentID, err := uuid.Parse(input.IncidentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}

	radius := h.cfg.DefaultAlertRadiusKm
	if input.RadiusKm != nil {
		radius = *input.RadiusKm
	}

	result, err := h.broadcaster.Broadcast(c.Request.Context(), service.BroadcastInput{
		IncidentID: incidentID,
		AlertType:  models.AlertType(input.AlertType),
		Message:    input.Message,
		RadiusKm:   radius,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.WithError(err).Warn("Incident not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to broadcast alert")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toBroadcastResponse(result))
}

// @Summary List active incidents
// @Description Get all active incidents, newest first. Requires API key.
// @Tags Crisis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crisis/incidents [get]
func (h *Handler) listActiveIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveIncidents")

	incidents, err := h.ranker.ListActive(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list active incidents")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toIncidentListResponse(incidents))
}

// @Summary Health check
// @Description Check that the service is up.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
