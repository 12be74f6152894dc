package models

const RouteStatusAvailable = "available"

// SafetyBand - уровень безопасности маршрута, выведенный из SafetyScore
type SafetyBand string

const (
	SafetyBandSafe     SafetyBand = "safe"
	SafetyBandCaution  SafetyBand = "caution"
	SafetyBandHighRisk SafetyBand = "high-risk"
)

// Route - маршрут патрулирования
type Route struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	SafetyScore   int           `json:"safetyScore"`
	RiskFactors   string        `json:"riskFactors"`
	Coordinates   []Coordinates `json:"coordinates"`
	EstimatedTime int           `json:"estimatedTime"` // минуты
	Distance      float64       `json:"distance"`      // мили
	Status        string        `json:"status"`
}

// SafetyBand: >=80 safe, 50-79 caution, <50 high-risk
func (r Route) SafetyBand() SafetyBand {
	switch {
	case r.SafetyScore >= 80:
		return SafetyBandSafe
	case r.SafetyScore >= 50:
		return SafetyBandCaution
	default:
		return SafetyBandHighRisk
	}
}

type RouteInput struct {
	Name          string        `json:"name" validate:"required"`
	Description   string        `json:"description" validate:"required"`
	SafetyScore   int           `json:"safetyScore" validate:"gte=0,lte=100"`
	RiskFactors   string        `json:"riskFactors"`
	Coordinates   []Coordinates `json:"coordinates" validate:"required"`
	EstimatedTime int           `json:"estimatedTime" validate:"gte=0"`
	Distance      float64       `json:"distance" validate:"gte=0"`
}
