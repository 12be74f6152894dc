package models

import "time"

const IncidentStatusOpen = "open"

type Incident struct {
	ID          string       `json:"id"`
	OfficerID   string       `json:"officerId"`
	Type        string       `json:"type"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
	Status      string       `json:"status"`
	ThreatLevel string       `json:"threatLevel"`
}

type IncidentInput struct {
	OfficerID   string       `json:"officerId" validate:"required"`
	Type        string       `json:"type" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Location    string       `json:"location" validate:"required"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	ThreatLevel string       `json:"threatLevel" validate:"required"`
}
