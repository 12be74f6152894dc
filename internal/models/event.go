package models

import "encoding/json"

// Типы событий канала /ws
const (
	EventConnected        = "connected"
	EventNewAlert         = "new_alert"
	EventEmergencyAlert   = "emergency_alert"
	EventAlertDeactivated = "alert_deactivated"
	EventRouteRequest     = "route_request"
	EventRouteResponse    = "route_response"
	EventLocationUpdate   = "location_update"
	EventStatusUpdate     = "status_update"
)

// Event - кадр канала /ws
type Event struct {
	Type    string `json:"type"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// InboundEvent - кадр от клиента; Data сохраняется как есть для ретрансляции
type InboundEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// StatusUpdate - полезная нагрузка периодического status_update
type StatusUpdate struct {
	Timestamp    string `json:"timestamp"`
	SystemStatus string `json:"systemStatus"`
	ActiveUnits  int    `json:"activeUnits"`
}
