package models

// ThreatLevel - сводный уровень угрозы по активным оповещениям. Не хранится.
type ThreatLevel string

const (
	ThreatLevelHigh   ThreatLevel = "HIGH"
	ThreatLevelMedium ThreatLevel = "MEDIUM"
	ThreatLevelLow    ThreatLevel = "LOW"
)

// ThreatLevelOf: critical перекрывает high, high перекрывает все остальное
func ThreatLevelOf(alerts []Alert) ThreatLevel {
	level := ThreatLevelLow
	for _, a := range alerts {
		switch a.Priority {
		case PriorityCritical:
			return ThreatLevelHigh
		case PriorityHigh:
			level = ThreatLevelMedium
		}
	}
	return level
}
