package v1

import "github.com/shenikar/tactical_dashboard/internal/models"

// CreateAlertDTOToInput преобразует DTO создания оповещения во входные данные сервиса
func CreateAlertDTOToInput(dto CreateAlertRequest) models.AlertInput {
	return models.AlertInput{
		Type:        dto.Type,
		Priority:    models.Priority(dto.Priority),
		Message:     dto.Message,
		Location:    dto.Location,
		Coordinates: dto.Coordinates,
	}
}

// CreateIncidentDTOToInput преобразует DTO создания инцидента во входные данные сервиса
func CreateIncidentDTOToInput(dto CreateIncidentRequest) models.IncidentInput {
	return models.IncidentInput{
		OfficerID:   dto.OfficerID,
		Type:        dto.Type,
		Description: dto.Description,
		Location:    dto.Location,
		Coordinates: dto.Coordinates,
		ThreatLevel: dto.ThreatLevel,
	}
}

func EmergencyDTOToRequest(dto EmergencyAlertRequest) models.EmergencyRequest {
	return models.EmergencyRequest{
		OfficerID:   dto.OfficerID,
		Location:    dto.Location,
		Message:     dto.Message,
		Coordinates: dto.Coordinates,
	}
}
