package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	crisis := api.Group("/crisis")
	crisis.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		crisis.POST("/classify", h.classifyReport)
		crisis.POST("/prioritize", h.prioritizeIncidents)
		crisis.POST("/dispatch", h.dispatchResources)
		crisis.POST("/alerts/broadcast", h.broadcastAlert)
		crisis.GET("/incidents", h.listActiveIncidents)
	}

	// Health check stays open.
	api.GET("/system/health", h.healthCheck)
}
