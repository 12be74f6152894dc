package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/shenikar/tactical_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dashboardService service.DashboardService
	logger           *logrus.Logger
}

func NewHandler(dashboardService service.DashboardService, logger *logrus.Logger) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Message: message})
}

// @Summary Get officer by badge
// @Description Get a single officer by badge number
// @Tags Officers
// @Produce json
// @Param badge path string true "Badge number"
// @Success 200 {object} models.Officer
// @Failure 404 {object} ErrorResponse "Officer not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /officer/{badge} [get]
func (h *Handler) getOfficerByBadge(c *gin.Context) {
	badge := c.Param("badge")
	log := h.logger.WithField("method", "getOfficerByBadge").WithField("badge", badge)

	officer, err := h.dashboardService.GetOfficerByBadge(c.Request.Context(), badge)
	if err != nil {
		log.WithError(err).Error("Failed to get officer from service")
		respondError(c, http.StatusInternalServerError, "Failed to fetch officer")
		return
	}
	if officer == nil {
		respondError(c, http.StatusNotFound, "Officer not found")
		return
	}
	c.JSON(http.StatusOK, officer)
}

// @Summary List routes
// @Tags Routes
// @Produce json
// @Success 200 {array} models.Route
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /routes [get]
func (h *Handler) listRoutes(c *gin.Context) {
	routes, err := h.dashboardService.ListRoutes(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "listRoutes").WithError(err).Error("Failed to list routes from service")
		respondError(c, http.StatusInternalServerError, "Failed to fetch routes")
		return
	}
	c.JSON(http.StatusOK, routes)
}

// @Summary Get route by ID
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} models.Route
// @Failure 404 {object} ErrorResponse "Route not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /routes/{id} [get]
func (h *Handler) getRoute(c *gin.Context) {
	id := c.Param("id")
	route, err := h.dashboardService.GetRoute(c.Request.Context(), id)
	if err != nil {
		h.logger.WithField("method", "getRoute").WithField("id", id).WithError(err).Error("Failed to get route from service")
		respondError(c, http.StatusInternalServerError, "Failed to fetch route")
		return
	}
	if route == nil {
		respondError(c, http.StatusNotFound, "Route not found")
		return
	}
	c.JSON(http.StatusOK, route)
}

// @Summary List active alerts
// @Description Only alerts with isActive == true, in creation order
// @Tags Alerts
// @Produce json
// @Success 200 {array} models.Alert
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts [get]
func (h *Handler) listActiveAlerts(c *gin.Context) {
	alerts, err := h.dashboardService.ListActiveAlerts(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "listActiveAlerts").WithError(err).Error("Failed to list alerts from service")
		respondError(c, http.StatusInternalServerError, "Failed to fetch alerts")
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// @Summary Create a new alert
// @Description Create an alert and broadcast new_alert to every connected viewer
// @Tags Alerts
// @Accept json
// @Produce json
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} models.Alert
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "Failed to create alert")
		return
	}

	alert, err := h.dashboardService.CreateAlert(c.Request.Context(), CreateAlertDTOToInput(input))
	if err != nil {
		if service.IsValidationError(err) {
			respondError(c, http.StatusBadRequest, "Failed to create alert")
			return
		}
		log.WithError(err).Error("Failed to create alert in service")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// @Summary Deactivate an alert
// @Description Soft deactivation. Unknown IDs are accepted and ignored.
// @Tags Alerts
// @Param id path string true "Alert ID"
// @Success 204 "No Content"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts/{id}/deactivate [post]
func (h *Handler) deactivateAlert(c *gin.Context) {
	id := c.Param("id")
	if err := h.dashboardService.DeactivateAlert(c.Request.Context(), id); err != nil {
		h.logger.WithField("method", "deactivateAlert").WithField("id", id).WithError(err).Error("Failed to deactivate alert in service")
		respondError(c, http.StatusInternalServerError, "Failed to deactivate alert")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List incidents
// @Tags Incidents
// @Produce json
// @Success 200 {array} models.Incident
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	incidents, err := h.dashboardService.ListIncidents(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "listIncidents").WithError(err).Error("Failed to list incidents from service")
		respondError(c, http.StatusInternalServerError, "Failed to fetch incidents")
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} models.Incident
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	incident, err := h.dashboardService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.logger.WithField("method", "getIncident").WithField("id", id).WithError(err).Error("Failed to get incident from service")
		respondError(c, http.StatusInternalServerError, "Failed to fetch incident")
		return
	}
	if incident == nil {
		respondError(c, http.StatusNotFound, "Incident not found")
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Create a new incident
// @Description Incidents are pull-only and are not broadcast
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} models.Incident
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "Failed to create incident")
		return
	}

	incident, err := h.dashboardService.CreateIncident(c.Request.Context(), CreateIncidentDTOToInput(input))
	if err != nil {
		if service.IsValidationError(err) {
			respondError(c, http.StatusBadRequest, "Failed to create incident")
			return
		}
		log.WithError(err).Error("Failed to create incident in service")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusCreated, incident)
}

// @Summary Update incident status
// @Description Unknown IDs are accepted and ignored
// @Tags Incidents
// @Accept json
// @Param id path string true "Incident ID"
// @Param status body UpdateIncidentStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/status [patch]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateIncidentStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.dashboardService.UpdateIncidentStatus(c.Request.Context(), id, input.Status); err != nil {
		log.WithError(err).Error("Failed to update incident status in service")
		respondError(c, http.StatusInternalServerError, "Failed to update incident")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List emergency services
// @Description Without type returns all services; with type returns available services of that type, nearest first
// @Tags EmergencyServices
// @Produce json
// @Param type query string false "Service type" Enums(fire, ems, police)
// @Success 200 {array} models.EmergencyService
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergency-services [get]
func (h *Handler) listEmergencyServices(c *gin.Context) {
	log := h.logger.WithField("method", "listEmergencyServices")

	var (
		services []models.EmergencyService
		err      error
	)
	if serviceType := c.Query("type"); serviceType != "" {
		services, err = h.dashboardService.ListAvailableServices(c.Request.Context(), models.ServiceType(serviceType))
	} else {
		services, err = h.dashboardService.ListEmergencyServices(c.Request.Context())
	}
	if err != nil {
		log.WithError(err).Error("Failed to list emergency services from service")
		respondError(c, http.StatusInternalServerError, "Failed to fetch emergency services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// @Summary Trigger an emergency alert
// @Description Creates a critical EMERGENCY alert and broadcasts emergency_alert to every connected viewer
// @Tags Alerts
// @Accept json
// @Produce json
// @Param request body EmergencyAlertRequest true "Emergency request"
// @Success 201 {object} EmergencyAlertResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergency-alert [post]
func (h *Handler) triggerEmergencyAlert(c *gin.Context) {
	var input EmergencyAlertRequest
	log := h.logger.WithField("method", "triggerEmergencyAlert")

	// Пустое тело допустимо: все поля получают значения по умолчанию
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	alert, err := h.dashboardService.TriggerEmergencyAlert(c.Request.Context(), EmergencyDTOToRequest(input))
	if err != nil {
		log.WithError(err).Error("Failed to trigger emergency alert in service")
		respondError(c, http.StatusInternalServerError, "Failed to send emergency alert")
		return
	}
	c.JSON(http.StatusCreated, EmergencyAlertResponse{Message: "Emergency alert sent", Alert: alert})
}

// @Summary Get application health status
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
