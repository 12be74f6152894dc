package models

// ServiceType - тип экстренной службы
type ServiceType string

const (
	ServiceTypeFire   ServiceType = "fire"
	ServiceTypeEMS    ServiceType = "ems"
	ServiceTypePolice ServiceType = "police"
)

// EmergencyService - ближайшая экстренная служба
type EmergencyService struct {
	ID          string      `json:"id"`
	Type        ServiceType `json:"type"`
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	Coordinates Coordinates `json:"coordinates"`
	Distance    float64     `json:"distance"` // мили от текущей позиции
	IsAvailable bool        `json:"isAvailable"`
}

type EmergencyServiceInput struct {
	Type        ServiceType `json:"type" validate:"required,oneof=fire ems police"`
	Name        string      `json:"name" validate:"required"`
	Location    string      `json:"location" validate:"required"`
	Coordinates Coordinates `json:"coordinates"`
	Distance    float64     `json:"distance" validate:"gte=0"`
}
