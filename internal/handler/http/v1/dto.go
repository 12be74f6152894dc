package v1

import "github.com/shenikar/tactical_dashboard/internal/models"

// CreateAlertRequest DTO для создания оповещения
// @Description DTO для создания оповещения
type CreateAlertRequest struct {
	Type        string              `json:"type"`
	Priority    string              `json:"priority"`
	Message     string              `json:"message"`
	Location    string              `json:"location"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	OfficerID   string              `json:"officerId"`
	Type        string              `json:"type"`
	Description string              `json:"description"`
	Location    string              `json:"location"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	ThreatLevel string              `json:"threatLevel"`
}

// UpdateIncidentStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateIncidentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// EmergencyAlertRequest DTO для экстренного вызова. Все поля, кроме officerId, необязательны.
// @Description DTO для экстренного вызова
type EmergencyAlertRequest struct {
	OfficerID   string              `json:"officerId"`
	Location    string              `json:"location,omitempty"`
	Message     string              `json:"message,omitempty"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
}

// EmergencyAlertResponse DTO для ответа на экстренный вызов
// @Description DTO для ответа на экстренный вызов
type EmergencyAlertResponse struct {
	Message string        `json:"message"`
	Alert   *models.Alert `json:"alert"`
}

// ErrorResponse DTO для ответа с ошибкой
// @Description DTO для ответа с ошибкой
type ErrorResponse struct {
	Message string `json:"message"`
}
