package client

import (
	"fmt"
	"slices"

	"github.com/shenikar/tactical_dashboard/internal/models"
)

// MissionStartSeconds - стартовое значение таймера миссии
const MissionStartSeconds = 154

// State - локальный снимок дашборда. Уровень угрозы не хранится, а выводится из Alerts.
type State struct {
	Officer  *models.Officer
	Routes   []models.Route
	Alerts   []models.Alert
	Services []models.EmergencyService

	Connected      bool
	MissionSeconds int

	// AlertsStale - кэш оповещений устарел, перечитывание запрошено или не удалось
	AlertsStale bool

	// EmergencyPrompt - открыт диалог подтверждения экстренного вызова
	EmergencyPrompt  bool
	EmergencySending bool

	// IncomingEmergency - полученный emergency_alert; висит, пока пользователь его не закроет
	IncomingEmergency *models.Alert
}

// ThreatLevel пересчитывается при каждом чтении
func (s State) ThreatLevel() models.ThreatLevel {
	return models.ThreatLevelOf(s.Alerts)
}

func (s State) MissionTime() string {
	return FormatMissionTime(s.MissionSeconds)
}

func (s State) clone() State {
	out := s
	out.Routes = slices.Clone(s.Routes)
	out.Alerts = slices.Clone(s.Alerts)
	out.Services = slices.Clone(s.Services)
	if s.Officer != nil {
		officer := *s.Officer
		out.Officer = &officer
	}
	if s.IncomingEmergency != nil {
		alert := *s.IncomingEmergency
		out.IncomingEmergency = &alert
	}
	return out
}

// FormatMissionTime форматирует секунды как mm:ss. Минуты не переносятся в часы.
func FormatMissionTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
