package models

import "time"

// Priority - приоритет оповещения
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

const (
	EmergencyAlertType       = "EMERGENCY"
	DefaultEmergencyMessage  = "Officer requires immediate assistance"
	DefaultEmergencyLocation = "Unknown location"
)

// Alert - оповещение, отображаемое на дашборде
type Alert struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Priority    Priority     `json:"priority"`
	Message     string       `json:"message"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
	IsActive    bool         `json:"isActive"`
}

// AlertInput - поля, которые задает вызывающий при создании оповещения
type AlertInput struct {
	Type        string       `json:"type" validate:"required"`
	Priority    Priority     `json:"priority" validate:"required,oneof=critical high medium low"`
	Message     string       `json:"message" validate:"required"`
	Location    string       `json:"location" validate:"required"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// EmergencyRequest - запрос экстренной помощи от сотрудника. Пустые поля заменяются значениями по умолчанию.
type EmergencyRequest struct {
	OfficerID   string       `json:"officerId"`
	Location    string       `json:"location,omitempty"`
	Message     string       `json:"message,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}
