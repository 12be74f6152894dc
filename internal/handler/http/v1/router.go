package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/officer/:badge", h.getOfficerByBadge)

	routes := api.Group("/routes")
	{
		routes.GET("", h.listRoutes)
		routes.GET("/:id", h.getRoute)
	}

	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listActiveAlerts)
		alerts.POST("", h.createAlert)
		alerts.POST("/:id/deactivate", h.deactivateAlert)
	}

	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id/status", h.updateIncidentStatus)
	}

	api.GET("/emergency-services", h.listEmergencyServices)
	api.POST("/emergency-alert", h.triggerEmergencyAlert)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
